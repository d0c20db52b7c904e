package validation

import (
	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// registerRules регистрирует теги, которые мы используем в struct tags
func registerRules(v *validator.Validate) error {
	if err := v.RegisterValidation("notblank", validators.NotBlank); err != nil {
		return err
	}
	return nil
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "notblank":
		return "This value should not be blank."
	case "max":
		return "This value is too long. It should have " + fe.Param() + " characters or less."
	default:
		return "This value is not valid."
	}
}
