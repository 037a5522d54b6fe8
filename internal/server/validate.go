package server

import (
	stderrors "errors"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/matzehuels/fengshui/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names.
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name, _, _ := strings.Cut(f.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		return name
	})

	v.RegisterValidation("itemid", func(fl validator.FieldLevel) bool {
		return errors.ValidateItemID(fl.Field().String()) == nil
	})
	return v
}

// validateRequest checks v's validate tags and reports the first failure as
// an INVALID_INPUT error.
func validateRequest(v any) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if stderrors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		if fe.Param() != "" {
			return errors.New(errors.ErrCodeInvalidInput, "%s must satisfy %s=%s", fe.Field(), fe.Tag(), fe.Param())
		}
		return errors.New(errors.ErrCodeInvalidInput, "%s must satisfy %s", fe.Field(), fe.Tag())
	}
	return errors.Wrap(errors.ErrCodeInvalidInput, err, "validate request")
}
