package auth

import "errors"

var (
	ErrInvalidCode      = errors.New("invalid or expired code")
	ErrInvalidChannel   = errors.New("invalid channel, must be 'email' or 'phone'")
	ErrDeliveryFailed   = errors.New("failed to deliver code")
	ErrInvalidGoogleJWT = errors.New("invalid google credential")
)
