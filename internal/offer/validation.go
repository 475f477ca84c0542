package offer

import (
	"parkpass/internal/booking"

	"github.com/go-playground/validator/v10"
)

// LocationTag is the struct tag that accepts only bookable park names
const LocationTag = "park_location"

// NewValidator returns a validator with the park rules registered
func NewValidator() *validator.Validate {
	v := validator.New()
	// registration only fails on an empty tag or nil func
	_ = RegisterValidations(v)
	return v
}

// RegisterValidations adds the park rules to an existing validator, such as
// gin's binding engine.
func RegisterValidations(v *validator.Validate) error {
	return v.RegisterValidation(LocationTag, func(fl validator.FieldLevel) bool {
		return booking.IsKnownLocation(fl.Field().String())
	})
}
