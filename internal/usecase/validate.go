package usecase

import (
	"reflect"
	"regexp"
	"strings"
	"sync"

	domainerrors "clinic/internal/domain/errors"
	"clinic/internal/errors"

	"github.com/go-playground/validator/v10"
)

var (
	validatorOnce sync.Once
	validate      *validator.Validate

	usernamePattern = regexp.MustCompile(`^[\w.@+-]+$`)
)

// Validator returns the process-wide validator with the clinic's custom rules registered.
func Validator() *validator.Validate {
	validatorOnce.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterTagNameFunc(func(field reflect.StructField) string {
			name, _, _ := strings.Cut(field.Tag.Get("json"), ",")
			if name == "" || name == "-" {
				return field.Name
			}

			return name
		})
		// Letters, digits and @/./+/-/_ only.
		_ = validate.RegisterValidation("username", func(fl validator.FieldLevel) bool {
			return usernamePattern.MatchString(fl.Field().String())
		})
	})

	return validate
}

// Normalizer is implemented by inputs that trim and canonicalise their own
// fields. Validate calls it first, so "m" and " M " are checked as "M".
type Normalizer interface {
	Normalize()
}

// Validate normalises input in place when it is a Normalizer, then checks it
// against its struct tags. Failures come back as ErrValidationFailed with the
// offending fields in the details.
func Validate(input any) error {
	if n, ok := input.(Normalizer); ok {
		n.Normalize()
	}

	err := Validator().Struct(input)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return errors.Wrap(err, "validate input")
	}

	details := make([]string, 0, len(fieldErrs))
	for _, fe := range fieldErrs {
		details = append(details, describeFieldError(fe))
	}

	return domainerrors.ErrValidationFailed.WithDetails(strings.Join(details, "; "))
}

func describeFieldError(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fe.Field() + " is required"
	case "oneof":
		return fe.Field() + " must be one of " + fe.Param()
	case "max":
		return fe.Field() + " must be at most " + fe.Param() + " characters"
	case "gte":
		return fe.Field() + " must be at least " + fe.Param()
	case "email":
		return fe.Field() + " must be a valid email address"
	case "datetime":
		return fe.Field() + " must be a date in YYYY-MM-DD format"
	case "username":
		return fe.Field() + " may contain only letters, digits and @/./+/-/_"
	default:
		return fe.Field() + " is invalid"
	}
}
