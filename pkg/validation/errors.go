package validation

import (
	"strconv"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"
)

// Names of the validation failures a control can report.
const (
	ErrRequired  = "required"
	ErrEmail     = "email"
	ErrMinLength = "minlength"
)

// MinLengthError describes a value shorter than the configured minimum.
type MinLengthError struct {
	RequiredLength int `json:"requiredLength"`
	ActualLength   int `json:"actualLength"`
}

// Errors is the set of named failures attached to an invalid control.
// A valid control has no Errors at all (nil), never an empty one.
type Errors struct {
	Required  bool            `json:"required,omitempty"`
	Email     bool            `json:"email,omitempty"`
	MinLength *MinLengthError `json:"minlength,omitempty"`
	// Other holds failures of tags without a dedicated field, keyed by tag with its param.
	Other map[string]string `json:"other,omitempty"`
}

// Has reports whether the named failure is present.
func (e *Errors) Has(name string) bool {
	if e == nil {
		return false
	}
	switch name {
	case ErrRequired:
		return e.Required
	case ErrEmail:
		return e.Email
	case ErrMinLength:
		return e.MinLength != nil
	}
	_, ok := e.Other[name]
	return ok
}

// fromFieldError maps a validator failure onto the named failure set.
func fromFieldError(fe validator.FieldError, value string) *Errors {
	errs := &Errors{}
	switch fe.Tag() {
	case "required":
		errs.Required = true
	case "email":
		errs.Email = true
	case "min":
		required, err := strconv.Atoi(fe.Param())
		if err != nil {
			errs.Other = map[string]string{fe.Tag(): fe.Param()}
			break
		}
		errs.MinLength = &MinLengthError{
			RequiredLength: required,
			ActualLength:   utf8.RuneCountInString(value),
		}
	default:
		errs.Other = map[string]string{fe.Tag(): fe.Param()}
	}
	return errs
}
