package utils

import (
	"github.com/go-playground/validator/v10"

	"order-catalog/pkg/schedule"
)

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator(v *validator.Validate) *CustomValidator {
	return &CustomValidator{validator: v}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

// RegisterCustomValidations wires the domain rules into the validator.
func RegisterCustomValidations(v *validator.Validate) error {
	return v.RegisterValidation("hhmm", isClockTime)
}

func isClockTime(fl validator.FieldLevel) bool {
	_, err := schedule.ParseClock(fl.Field().String())
	return err == nil
}
