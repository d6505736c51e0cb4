package binder

import "errors"

// Structural decode failures. Handlers treat them as a malformed request,
// never as a validation result.
var (
	ErrMissingContentType   = errors.New("binder: missing content type")
	ErrUnsupportedMediaType = errors.New("binder: unsupported media type")
	ErrFailedToParseJSON    = errors.New("binder: malformed JSON body")
	ErrFailedToParseForm    = errors.New("binder: malformed form body")
	ErrInvalidTarget        = errors.New("binder: target must be a non-nil pointer")
)
