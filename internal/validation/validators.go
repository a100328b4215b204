package validation

import (
	"errors"
	"reflect"
	"regexp"
	"strconv"
	"strings"

	apperrors "project-tracker-backend/internal/errors"

	"github.com/go-playground/validator/v10"
)

// flagsPattern accepts "" or one or more "token;" groups, a token may be empty
var flagsPattern = regexp.MustCompile(`^([^;]*;)*$`)

// shared instance for the free functions below, validator caches are concurrency safe
var std = New()

// New returns a validator with the tracker specific tags registered
// and field names reported by their json tag.
func New() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("flags", func(fl validator.FieldLevel) bool {
		return ValidateFlags(fl.Field().Interface())
	})
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// ValidateUUID4 reports whether value is a string in the canonical 8-4-4-4-12 layout
// with version nibble 4 and variant nibble in {8,9,a,b}. Anything that is not a
// string (or a non-nil *string) is rejected.
func ValidateUUID4(value interface{}) bool {
	s, ok := asString(value)
	if !ok || s == "" {
		return false
	}
	return std.Var(s, "uuid4_rfc4122") == nil
}

// ValidateFlags reports whether value is a string that is empty or a sequence of
// "token;" groups with nothing trailing.
func ValidateFlags(value interface{}) bool {
	s, ok := asString(value)
	if !ok {
		return false
	}
	return flagsPattern.MatchString(s)
}

func asString(value interface{}) (string, bool) {
	switch v := value.(type) {
	case string:
		return v, true
	case *string:
		if v == nil {
			return "", false
		}
		return *v, true
	default:
		return "", false
	}
}

// Struct validates a request struct and translates the first failure into the
// error taxonomy. Emptiness failures win over format failures so that a request
// with a blank required field always reports EmptyValue.
func Struct(v *validator.Validate, req interface{}) error {
	err := v.Struct(req)
	if err == nil {
		return nil
	}
	return Translate(err)
}

// Translate maps validator errors onto EmptyValue, ValueTooShort and InvalidInput
func Translate(err error) error {
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return apperrors.NewInvalidInputError("request", err.Error())
	}

	for _, fe := range fieldErrs {
		if fe.Tag() == "required" {
			return apperrors.NewEmptyValueError(fe.Field())
		}
	}
	for _, fe := range fieldErrs {
		if fe.Tag() == "min" && fe.Kind() == reflect.String {
			return apperrors.NewValueTooShortError(fe.Field(), minLength(fe.Param()))
		}
	}

	fe := fieldErrs[0]
	switch fe.Tag() {
	case "uuid4_rfc4122":
		return apperrors.NewInvalidInputError(fe.Field(), "unvalid formatting of uuid4")
	case "flags":
		return apperrors.NewInvalidInputError(fe.Field(), "not being in 'one;two;three;flags;' format")
	case "max":
		if fe.Kind() != reflect.String {
			return apperrors.NewInvalidInputError(fe.Field(), "value out of range, maximum is "+fe.Param())
		}
		return apperrors.NewInvalidInputError(fe.Field(), "value too long, maximum is "+fe.Param())
	case "min":
		return apperrors.NewInvalidInputError(fe.Field(), "value out of range, minimum is "+fe.Param())
	default:
		return apperrors.NewInvalidInputError(fe.Field(), "failed on "+fe.Tag()+" check")
	}
}

func minLength(param string) int {
	n, _ := strconv.Atoi(param)
	return n
}
