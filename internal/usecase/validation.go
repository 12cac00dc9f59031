package usecase

import (
	"errors"
	"reflect"
	"strings"

	"voyagebj-service/internal/domain/entity"

	"github.com/go-playground/validator/v10"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	// report fields by their json name
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// validateStruct checks the validate tags of s and returns the first failed
// rule as a ValidationError
func validateStruct(s any) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
		return entity.NewValidationError(fieldErrs[0].Field(), fieldErrs[0].Tag())
	}
	return err
}

// validateVar checks a single value against tag, reporting it as field
func validateVar(field string, value any, tag string) error {
	if err := validate.Var(value, tag); err != nil {
		var fieldErrs validator.ValidationErrors
		if errors.As(err, &fieldErrs) && len(fieldErrs) > 0 {
			return entity.NewValidationError(field, fieldErrs[0].Tag())
		}
		return err
	}
	return nil
}
