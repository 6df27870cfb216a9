package booking

import (
	"github.com/go-playground/validator/v10"
	"regexp"
)

// Vietnamese mobile numbers: leading 0, carrier prefix 3/5/7/8/9, 8 digits.
var vnPhonePattern = regexp.MustCompile(`^0[35789][0-9]{8}$`)

// NewValidator returns a validator with the custom vnphone rule registered.
// All request structs in model/ rely on it.
func NewValidator() *validator.Validate {
	validate := validator.New()

	_ = validate.RegisterValidation("vnphone", func(fl validator.FieldLevel) bool {
		return vnPhonePattern.MatchString(fl.Field().String())
	})

	return validate
}

// FieldErrors flattens a validation error into an independent message per
// failing field, so every invalid field is reported at once.
func FieldErrors(err error) map[string]string {
	validationErr, ok := err.(validator.ValidationErrors)
	if !ok {
		return nil
	}

	fields := make(map[string]string, len(validationErr))
	for _, fieldErr := range validationErr {
		fields[fieldErr.Field()] = fieldErr.Tag()
	}

	return fields
}
