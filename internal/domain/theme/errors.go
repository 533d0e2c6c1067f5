package theme

import "errors"

var (
	ErrNotFound   = errors.New("theme not found")
	ErrNoTemplate = errors.New("no template image available")
)
