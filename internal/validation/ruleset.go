package validation

import (
	"errors"
	"strconv"
	"strings"

	"github.com/getmentor/formsdemo/internal/models"
	"github.com/go-playground/validator/v10"
)

// Fields lists every validated field in form order
var Fields = []string{
	"name", "age", "email", "password", "confirmPassword",
	"gender", "acceptTerms", "picture", "country",
}

// Result is the outcome of running a ruleset
type Result struct {
	Errors models.FieldErrors
}

// Valid reports whether every evaluated field passed
func (r Result) Valid() bool {
	return len(r.Errors) == 0
}

// Ruleset is the declarative rule set of one form variant. Rules live in the
// validate tags of the candidate struct built by bind; messages are looked up
// by field and failing tag.
type Ruleset struct {
	variant  models.Variant
	validate *validator.Validate
	bind     func(raw *models.RawSubmission) any
	messages map[string]map[string]string
	fallback map[string]string
}

// Variant returns the form variant this ruleset belongs to
func (r *Ruleset) Variant() models.Variant {
	return r.variant
}

// Validate evaluates every field and collects one message per failing field
func (r *Ruleset) Validate(raw *models.RawSubmission) Result {
	err := r.validate.Struct(r.bind(raw))
	if err == nil {
		return Result{}
	}

	var validationErrors validator.ValidationErrors
	if !errors.As(err, &validationErrors) {
		// Only reachable when bind returns something other than a struct
		return Result{Errors: models.FieldErrors{"": err.Error()}}
	}

	fieldErrors := make(models.FieldErrors, len(validationErrors))
	for _, fe := range validationErrors {
		if _, seen := fieldErrors[fe.Field()]; !seen {
			fieldErrors[fe.Field()] = r.message(fe)
		}
	}
	return Result{Errors: fieldErrors}
}

// ValidateFields evaluates the whole candidate and keeps only the named
// fields, so cross-field rules still see every value.
func (r *Ruleset) ValidateFields(raw *models.RawSubmission, fields ...string) Result {
	full := r.Validate(raw)
	if full.Valid() || len(fields) == 0 {
		return Result{}
	}

	filtered := models.FieldErrors{}
	for _, field := range fields {
		if msg, ok := full.Errors[field]; ok {
			filtered[field] = msg
		}
	}
	return Result{Errors: filtered}
}

func (r *Ruleset) message(fe validator.FieldError) string {
	if byTag, ok := r.messages[fe.Field()]; ok {
		if msg, ok := byTag[fe.Tag()]; ok {
			return msg
		}
	}
	if msg, ok := r.fallback[fe.Tag()]; ok {
		return msg
	}
	return fe.Field() + " is invalid"
}

// ToSubmission converts a raw submission that passed validation into the
// stored payload.
func ToSubmission(raw *models.RawSubmission) *models.FormSubmission {
	age, _ := strconv.ParseFloat(strings.TrimSpace(raw.Age), 64)

	return &models.FormSubmission{
		Name:            raw.Name,
		Age:             age,
		Email:           raw.Email,
		Password:        raw.Password,
		ConfirmPassword: raw.ConfirmPassword,
		Gender:          raw.Gender,
		AcceptTerms:     raw.AcceptTerms,
		Picture:         raw.Picture,
		Country:         raw.Country,
	}
}

// IsField reports whether name is one of the validated fields
func IsField(name string) bool {
	for _, f := range Fields {
		if f == name {
			return true
		}
	}
	return false
}
