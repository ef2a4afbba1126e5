package models

// Variant names one of the two form implementations and, with it, its store slot
type Variant string

const (
	VariantUncontrolled Variant = "uncontrolled"
	VariantHookForm     Variant = "hookForm"
)

// Variants lists the slots in landing page order
var Variants = []Variant{VariantUncontrolled, VariantHookForm}

// Title is the heading shown on the variant's tile
func (v Variant) Title() string {
	switch v {
	case VariantUncontrolled:
		return "Uncontrolled Form"
	case VariantHookForm:
		return "React Hook Form"
	default:
		return string(v)
	}
}

// Path is the route serving the variant's form
func (v Variant) Path() string {
	switch v {
	case VariantUncontrolled:
		return "/uncontrolled"
	case VariantHookForm:
		return "/react-hook-form"
	default:
		return "/"
	}
}

// FormSubmission is a submission that passed its variant's ruleset
type FormSubmission struct {
	Name            string  `json:"name"`
	Age             float64 `json:"age"`
	Email           string  `json:"email"`
	Password        string  `json:"password"`
	ConfirmPassword string  `json:"confirmPassword"`
	Gender          string  `json:"gender"`
	AcceptTerms     bool    `json:"acceptTerms"`
	Picture         string  `json:"picture"` // data URL
	Country         string  `json:"country"`
}

// RawSubmission holds the form values exactly as submitted, before validation.
// Age stays a string so that "not a number" can be reported as a field error.
type RawSubmission struct {
	Name            string `form:"name" json:"name"`
	Age             string `form:"age" json:"age"`
	Email           string `form:"email" json:"email"`
	Password        string `form:"password" json:"password"`
	ConfirmPassword string `form:"confirmPassword" json:"confirmPassword"`
	Gender          string `form:"gender" json:"gender"`
	AcceptTerms     bool   `form:"-" json:"acceptTerms"`
	Picture         string `form:"-" json:"picture"`
	Country         string `form:"country" json:"country"`
}

// FieldErrors maps a field's JSON name to the message of its first failing rule
type FieldErrors map[string]string

// SubmitState is a step of the submit state machine
type SubmitState string

const (
	StateIdle       SubmitState = "idle"
	StateValidating SubmitState = "validating"
	StateRejected   SubmitState = "rejected"
	StateAccepted   SubmitState = "accepted"
	StateSubmitted  SubmitState = "submitted"
)

// SubmitResult is the outcome of a form submission
type SubmitResult struct {
	State       SubmitState     `json:"state"`
	Errors      FieldErrors     `json:"errors,omitempty"`
	Submission  *FormSubmission `json:"submission,omitempty"`
	Raw         *RawSubmission  `json:"-"`
	Transitions []SubmitState   `json:"-"`
}

// Accepted reports whether the submission reached the store
func (r *SubmitResult) Accepted() bool {
	return r != nil && r.State == StateSubmitted
}
