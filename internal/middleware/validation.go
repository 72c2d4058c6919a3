package middleware

import (
	"regexp"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

var hexColorRe = regexp.MustCompile(`^#[0-9A-Fa-f]{6}$`)

func newValidator() *validator.Validate {
	v := validator.New()
	// 6-digit hex only; the builtin hexcolor tag also accepts #RGB shorthand.
	_ = v.RegisterValidation("hexcolor6", func(fl validator.FieldLevel) bool {
		return hexColorRe.MatchString(fl.Field().String())
	})
	return v
}

// IsHexColor reports whether s is a 6-digit #RRGGBB color.
func IsHexColor(s string) bool {
	return hexColorRe.MatchString(s)
}

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
	Type    string `json:"type"`
}

// ValidateRequest checks obj against its validate struct tags and returns
// field-level errors, nil when valid.
func ValidateRequest(obj any) []ValidationError {
	var validationErrors []ValidationError

	err := validate.Struct(obj)
	if err == nil {
		return nil
	}

	for _, err := range err.(validator.ValidationErrors) {
		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: getErrorMsg(err),
			Type:    err.Tag(),
		})
	}

	return validationErrors
}

func getErrorMsg(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be greater than " + err.Param()
	case "gte":
		return "Value must be greater than or equal to " + err.Param()
	case "lte":
		return "Value must be less than or equal to " + err.Param()
	case "hexcolor6":
		return "Color must be a valid hex color (e.g., #FF5733)"
	default:
		return "Invalid value"
	}
}
