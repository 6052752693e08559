package validator

import (
	"github.com/go-playground/validator/v10"
)

// Echo-compatible request validator backed by go-playground tags.
// Request structs without tags pass through untouched.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	return &RequestValidator{validate: validator.New()}
}

func (v *RequestValidator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
