package api

import (
	"github.com/go-playground/validator/v10"
)

// Validator checks request payloads against the storage column constraints
// (required fields, formats, max lengths). Business rules live in services.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	return &Validator{validate: validator.New()}
}

func (v *Validator) Validate(i interface{}) error {
	return v.validate.Struct(i)
}
