package gallery

import "errors"

var (
	ErrUnknownMode             = errors.New("unknown gallery mode")
	ErrSmoothScrollUnsupported = errors.New("smooth scrolling not supported")
)
