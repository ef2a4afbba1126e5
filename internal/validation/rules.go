package validation

import (
	"reflect"
	"regexp"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
)

var (
	uppercaseStartRegex = regexp.MustCompile(`^[A-Z]`)
	simpleEmailRegex    = regexp.MustCompile(`[a-z0-9]+@[a-z]+\.[a-z]{2,3}`)
)

const (
	strongPasswordMinLength = 8
	strongPasswordSpecials  = "!@#$%^&*()_+"
)

// newValidator builds a validator with the rule functions both rulesets use.
// Field errors are reported under their JSON names.
func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	mustRegister(v, "uppercase_start", func(fl validator.FieldLevel) bool {
		return uppercaseStartRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "simple_email", func(fl validator.FieldLevel) bool {
		return simpleEmailRegex.MatchString(fl.Field().String())
	})
	mustRegister(v, "nonnegative", func(fl validator.FieldLevel) bool {
		n, err := strconv.ParseFloat(fl.Field().String(), 64)
		return err == nil && n >= 0
	})
	mustRegister(v, "has_lower", hasRune(isLower))
	mustRegister(v, "has_upper", hasRune(isUpper))
	mustRegister(v, "has_digit", hasRune(isDigit))
	mustRegister(v, "strong_password", func(fl validator.FieldLevel) bool {
		return isStrongPassword(fl.Field().String())
	})
	mustRegister(v, "must_accept", func(fl validator.FieldLevel) bool {
		return fl.Field().Kind() == reflect.Bool && fl.Field().Bool()
	})

	return v
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic("validation: register " + tag + ": " + err.Error())
	}
}

func hasRune(pred func(rune) bool) validator.Func {
	return func(fl validator.FieldLevel) bool {
		return strings.IndexFunc(fl.Field().String(), pred) >= 0
	}
}

func isLower(r rune) bool { return r >= 'a' && r <= 'z' }
func isUpper(r rune) bool { return r >= 'A' && r <= 'Z' }
func isDigit(r rune) bool { return r >= '0' && r <= '9' }

// isStrongPassword requires at least 8 characters drawn only from letters,
// digits and strongPasswordSpecials, with at least one of each class.
func isStrongPassword(s string) bool {
	if len(s) < strongPasswordMinLength {
		return false
	}

	var lower, upper, digit, special bool
	for _, r := range s {
		switch {
		case isLower(r):
			lower = true
		case isUpper(r):
			upper = true
		case isDigit(r):
			digit = true
		case strings.ContainsRune(strongPasswordSpecials, r):
			special = true
		default:
			return false
		}
	}
	return lower && upper && digit && special
}
