package swap

import "errors"

var (
	ErrSourceNotFound   = errors.New("uploaded photo not found")
	ErrTemplateNotFound = errors.New("no usable theme template")
)
