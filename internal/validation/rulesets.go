package validation

import (
	"github.com/getmentor/formsdemo/internal/models"
)

const (
	msgRequired  = "Required field!"
	msgUppercase = "Must begin with an uppercase letter!"
	msgNumber    = "Must be a number!"
	msgPositive  = "Must be a positive number!"
	msgEmail     = "Incorrect email! (e.g. example@gmail.com)"
)

// uncontrolledCandidate carries the uncontrolled form's rules. Password rules
// run in order and each reports its own message. Gender is optional.
type uncontrolledCandidate struct {
	Name            string `json:"name" validate:"omitempty,uppercase_start"`
	Age             string `json:"age" validate:"required,numeric,nonnegative"`
	Email           string `json:"email" validate:"required,simple_email"`
	Password        string `json:"password" validate:"required,has_lower,has_upper,has_digit,containsany=#?!@$%^&*-,min=8"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Gender          string `json:"gender" validate:"omitempty,oneof=male female"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"must_accept"`
	Picture         string `json:"picture" validate:"required"`
	Country         string `json:"country" validate:"required"`
}

// hookFormCandidate carries the reactive form's rules. Email must pass both
// the RFC check and the simplified pattern, the password is checked by one
// composite rule and gender is required.
type hookFormCandidate struct {
	Name            string `json:"name" validate:"omitempty,uppercase_start"`
	Age             string `json:"age" validate:"required,numeric,nonnegative"`
	Email           string `json:"email" validate:"required,email,simple_email"`
	Password        string `json:"password" validate:"required,strong_password"`
	ConfirmPassword string `json:"confirmPassword" validate:"required,eqfield=Password"`
	Gender          string `json:"gender" validate:"required,oneof=male female other"`
	AcceptTerms     bool   `json:"acceptTerms" validate:"must_accept"`
	Picture         string `json:"picture" validate:"required"`
	Country         string `json:"country" validate:"required"`
}

// UncontrolledGenders and HookFormGenders are the select options of each form
var (
	UncontrolledGenders = []string{"male", "female"}
	HookFormGenders     = []string{"male", "female", "other"}
)

// Uncontrolled is the ruleset of the uncontrolled form
var Uncontrolled = &Ruleset{
	variant:  models.VariantUncontrolled,
	validate: newValidator(),
	bind: func(raw *models.RawSubmission) any {
		return &uncontrolledCandidate{
			Name:            raw.Name,
			Age:             raw.Age,
			Email:           raw.Email,
			Password:        raw.Password,
			ConfirmPassword: raw.ConfirmPassword,
			Gender:          raw.Gender,
			AcceptTerms:     raw.AcceptTerms,
			Picture:         raw.Picture,
			Country:         raw.Country,
		}
	},
	messages: map[string]map[string]string{
		"age": {
			"required":    "Age is a required field",
			"numeric":     msgNumber,
			"nonnegative": msgPositive,
		},
		"password": {
			"has_lower":   "Must contain at least one lowercase letter!",
			"has_upper":   "Must contain at least one uppercase letter!",
			"has_digit":   "Must contain at least one digit!",
			"containsany": "Must contain at least 1 special character!",
			"min":         "Must be at least 8 characters long!",
		},
		"confirmPassword": {
			"required": "Retype your password!",
			"eqfield":  "Your passwords do not match.",
		},
		"gender": {
			"oneof": "Select a gender from the list",
		},
		"acceptTerms": {
			"must_accept": "You must accept it",
		},
	},
	fallback: map[string]string{
		"required":        msgRequired,
		"uppercase_start": msgUppercase,
		"simple_email":    msgEmail,
	},
}

// HookForm is the ruleset of the reactive form
var HookForm = &Ruleset{
	variant:  models.VariantHookForm,
	validate: newValidator(),
	bind: func(raw *models.RawSubmission) any {
		return &hookFormCandidate{
			Name:            raw.Name,
			Age:             raw.Age,
			Email:           raw.Email,
			Password:        raw.Password,
			ConfirmPassword: raw.ConfirmPassword,
			Gender:          raw.Gender,
			AcceptTerms:     raw.AcceptTerms,
			Picture:         raw.Picture,
			Country:         raw.Country,
		}
	},
	messages: map[string]map[string]string{
		"age": {
			"numeric":     msgNumber,
			"nonnegative": msgPositive,
		},
		"password": {
			"strong_password": "Password must meet the criteria",
		},
		"confirmPassword": {
			"eqfield": "Passwords must match",
		},
		"gender": {
			"oneof": "Select a gender from the list",
		},
		"acceptTerms": {
			"must_accept": msgRequired,
		},
	},
	fallback: map[string]string{
		"required":        msgRequired,
		"uppercase_start": msgUppercase,
		"email":           msgEmail,
		"simple_email":    msgEmail,
	},
}

// ForVariant returns the ruleset of a form variant
func ForVariant(v models.Variant) *Ruleset {
	if v == models.VariantHookForm {
		return HookForm
	}
	return Uncontrolled
}
