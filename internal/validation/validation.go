// Package validation wraps go-playground/validator so services get domain
// errors naming the offending field instead of raw validator errors.
package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/clefio/clefs-backend/internal/domain"
	"github.com/go-playground/validator/v10"
)

// French phone numbers: +33/0033/0 prefix then 9 digits in pairs, with
// optional spaces, dots or dashes (e.g. "06 12 34 56 78").
var frPhonePattern = regexp.MustCompile(`^(?:(?:\+|00)33|0)\s*[1-9](?:[\s.-]*\d{2}){4}$`)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their json name so errors line up with the wire shape.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Empty strings pass so optional fields can be cleared; mandatory
	// fields compose the rule with required.
	if err := v.RegisterValidation("frphone", func(fl validator.FieldLevel) bool {
		value := fl.Field().String()
		return value == "" || frPhonePattern.MatchString(value)
	}); err != nil {
		panic(err)
	}

	return v
}

// Struct validates a request struct and translates the first failure into
// a *domain.ValidationError.
func Struct(s interface{}) error {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		fe := verrs[0]
		return domain.Invalid(fe.Field(), messageFor(fe))
	}
	return err
}

func messageFor(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required", "omitnil":
		return "is required"
	case "email":
		return "invalid email address"
	case "frphone":
		return "invalid phone number"
	case "uuid":
		return "must be a valid id"
	case "oneof":
		return "must be one of: " + fe.Param()
	case "min":
		if fe.Kind() == reflect.Slice {
			return "at least " + fe.Param() + " required"
		}
		return "must be at least " + fe.Param() + " characters"
	case "datetime":
		return "invalid date, expected " + fe.Param()
	default:
		return "is invalid"
	}
}
