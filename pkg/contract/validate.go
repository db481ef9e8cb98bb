package contract

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	pkgerrors "github.com/snkrsdev/snkrs-backend/pkg/errors"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		tag := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if tag == "" {
			return f.Name
		}
		return tag
	})
	return v
}

// Validate checks a payload against its contract tags. The server runs it on
// decoded request bodies and the client runs it before sending, so both sides
// reject the same inputs. Failures surface the first offending field.
func Validate(value any) error {
	if err := validate.Struct(value); err != nil {
		return firstValidationError(err)
	}
	return nil
}

func firstValidationError(err error) *pkgerrors.Error {
	if errs, ok := err.(validator.ValidationErrors); ok && len(errs) > 0 {
		first := errs[0]
		return pkgerrors.
			New(pkgerrors.CodeValidation, fmt.Sprintf("%s %s", first.Field(), validationMessage(first))).
			WithField(fieldPath(first))
	}
	return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "validation failed")
}

// fieldPath strips the root struct name, leaving the dotted path of the field
// itself ("brand", "inventory.size").
func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if idx := strings.Index(ns, "."); idx >= 0 {
		return ns[idx+1:]
	}
	return fe.Field()
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "min":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "max":
		return fmt.Sprintf("must be at most %s", fe.Param())
	case "gt":
		return fmt.Sprintf("must be greater than %s", fe.Param())
	case "gte":
		return fmt.Sprintf("must be at least %s", fe.Param())
	case "oneof":
		return fmt.Sprintf("must be one of: %s", fe.Param())
	case "url":
		return "must be a valid URL"
	case "datetime":
		return fmt.Sprintf("must be a date in %s format", fe.Param())
	}
	return "is invalid"
}
