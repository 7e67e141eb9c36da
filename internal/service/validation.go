package service

import (
	"errors"
	"strings"

	"campusfeed/internal/apperrors"

	"github.com/go-playground/validator/v10"
)

// validation wraps the struct validator shared by services.
type validation struct {
	validate *validator.Validate
}

func newValidator() *validation {
	return &validation{validate: validator.New()}
}

// Struct converts validator failures into a ValidationError naming the first bad field.
func (v *validation) Struct(s any) error {
	if err := v.validate.Struct(s); err != nil {
		return toValidationError(err)
	}
	return nil
}

func (v *validation) Var(field string, value any, tag string) error {
	if err := v.validate.Var(value, tag); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) {
			return apperrors.Validation("некорректное значение поля %s", field)
		}
		return apperrors.Validation("%v", err)
	}
	return nil
}

// Text trims surrounding whitespace. User text is stored as written;
// clients escape it when rendering.
func (v *validation) Text(s string) string {
	return strings.TrimSpace(s)
}

func (v *validation) OptionalText(s *string) *string {
	if s == nil {
		return nil
	}
	clean := v.Text(*s)
	if clean == "" {
		return nil
	}
	return &clean
}

func toValidationError(err error) error {
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		fe := fieldErrs[0]
		switch fe.Tag() {
		case "required":
			return apperrors.Validation("поле %s обязательно", fe.Field())
		case "max":
			return apperrors.Validation("поле %s длиннее %s символов", fe.Field(), fe.Param())
		default:
			return apperrors.Validation("некорректное значение поля %s", fe.Field())
		}
	}
	return apperrors.Validation("%v", err)
}
