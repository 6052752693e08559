package entity

import "errors"

// Domain errors. Route handlers map these to 4xx responses; anything
// else surfaces as a 500 and gets logged.
var (
	ErrNotFound          = errors.New("not found")
	ErrConflict          = errors.New("already exists")
	ErrMatchLimitReached = errors.New("match limit reached")
	ErrValidation        = errors.New("validation failed")
	ErrNotMatched        = errors.New("pair is not matched")
)
