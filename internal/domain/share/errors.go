package share

import "errors"

var (
	ErrInvalidPhone   = errors.New("invalid phone number")
	ErrInvalidChannel = errors.New("invalid share channel")
	ErrSendFailed     = errors.New("failed to send share email")
)
