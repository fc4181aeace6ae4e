package catalog

import "errors"

var (
	ErrInvalidMarkup   = errors.New("invalid gallery markup")
	ErrInvalidManifest = errors.New("invalid gallery manifest")
	ErrUnknownSource   = errors.New("unknown catalog source")
	ErrMissingPath     = errors.New("catalog source path is required")
	ErrNoStorage       = errors.New("bucket source requires a storage client")
)
