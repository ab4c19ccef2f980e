package utils

import (
	"reflect"

	"github.com/go-playground/validator/v10"
)

type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()

	// Custom validations
	v.RegisterValidation("truthy", validateTruthy)
	v.RegisterValidation("positive_number", validatePositiveNumber)
	v.RegisterValidation("payment_type", validatePaymentType)
	v.RegisterValidation("billing_interval", validateBillingInterval)

	return &Validator{
		validate: v,
	}
}

func (v *Validator) Struct(s interface{}) error {
	return v.validate.Struct(s)
}

// validateTruthy rejects zero values hidden behind an interface{} field,
// which "required" only checks for nil: 0, false and "" all fail.
func validateTruthy(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Bool:
		return field.Bool()
	case reflect.String:
		return field.Len() > 0
	case reflect.Float32, reflect.Float64:
		return field.Float() != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() != 0
	}
	return true
}

// JSON numbers decode to float64; strings such as "10" are rejected.
func validatePositiveNumber(fl validator.FieldLevel) bool {
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return field.Float() > 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return field.Int() > 0
	}
	return false
}

func validatePaymentType(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "pago_unico", "suscripcion":
		return true
	}
	return false
}

func validateBillingInterval(fl validator.FieldLevel) bool {
	switch fl.Field().String() {
	case "day", "week", "month", "year":
		return true
	}
	return false
}
