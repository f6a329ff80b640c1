// Package validator adapts go-playground/validator to echo.Validator.
package validator

import (
	"math"

	"circlecheck/internal/errors"

	"github.com/go-playground/validator/v10"
)

// CustomValidator implements echo.Validator
type CustomValidator struct {
	validate *validator.Validate
}

// New creates a validator with the custom tags registered
func New() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// finite rejects NaN and Inf, which slip through min/max comparisons
	_ = v.RegisterValidation("finite", func(fl validator.FieldLevel) bool {
		f := fl.Field().Float()

		return !math.IsNaN(f) && !math.IsInf(f, 0)
	})

	return &CustomValidator{validate: v}
}

// Validate validates the given struct
func (cv *CustomValidator) Validate(i any) error {
	if err := cv.validate.Struct(i); err != nil {
		return errors.WithStack(err)
	}

	return nil
}
