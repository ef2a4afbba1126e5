package forms

import (
	"fmt"

	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/validation"
)

// FieldState is the state of one reactive field
type FieldState string

const (
	FieldUntouched FieldState = "untouched"
	FieldTouched   FieldState = "touched"
	FieldValid     FieldState = "valid"
	FieldInvalid   FieldState = "invalid"
)

// Reactive tracks the values and errors of the hook-based form field by field.
// A field moves Untouched → Touched when its value is set and to Valid or
// Invalid each time it is triggered. Only touched fields ever carry errors.
type Reactive struct {
	ruleset    *validation.Ruleset
	values     models.RawSubmission
	registered map[string]bool
	touched    map[string]bool
	checked    map[string]bool
	errors     models.FieldErrors
}

// NewReactive creates a reactive form with every ruleset field registered
func NewReactive(ruleset *validation.Ruleset) *Reactive {
	f := &Reactive{
		ruleset:    ruleset,
		registered: make(map[string]bool, len(validation.Fields)),
		touched:    make(map[string]bool, len(validation.Fields)),
		checked:    make(map[string]bool, len(validation.Fields)),
		errors:     models.FieldErrors{},
	}
	for _, field := range validation.Fields {
		f.registered[field] = true
	}
	return f
}

// Register binds a field so it can be set and triggered
func (f *Reactive) Register(field string) error {
	if !validation.IsField(field) {
		return fmt.Errorf("unknown field %q", field)
	}
	f.registered[field] = true
	return nil
}

// SetValue updates a field value and marks the field touched. It does not
// validate; call Trigger for that.
func (f *Reactive) SetValue(field, value string) error {
	if !f.registered[field] {
		return fmt.Errorf("field %q is not registered", field)
	}

	switch field {
	case "name":
		f.values.Name = value
	case "age":
		f.values.Age = value
	case "email":
		f.values.Email = value
	case "password":
		f.values.Password = value
	case "confirmPassword":
		f.values.ConfirmPassword = value
	case "gender":
		f.values.Gender = value
	case "acceptTerms":
		f.values.AcceptTerms = IsChecked(value)
	case "picture":
		f.values.Picture = value
	case "country":
		f.values.Country = value
	}

	f.touched[field] = true
	delete(f.checked, field)
	return nil
}

// Load replaces all values at once and marks the given fields touched
func (f *Reactive) Load(values *models.RawSubmission, touched []string) {
	f.values = *values
	for _, field := range touched {
		if f.registered[field] {
			f.touched[field] = true
		}
	}
}

// Trigger re-validates fields, or every touched field when none are given,
// and reports whether they all passed. Triggering a field touches it.
func (f *Reactive) Trigger(fields ...string) bool {
	if len(fields) == 0 {
		fields = f.TouchedFields()
	}

	targets := make([]string, 0, len(fields))
	for _, field := range fields {
		if f.registered[field] {
			targets = append(targets, field)
		}
	}

	result := f.ruleset.ValidateFields(&f.values, targets...)
	for _, field := range targets {
		f.touched[field] = true
		f.checked[field] = true
		if msg, failed := result.Errors[field]; failed {
			f.errors[field] = msg
		} else {
			delete(f.errors, field)
		}
	}
	return result.Valid()
}

// State returns the current state of field
func (f *Reactive) State(field string) FieldState {
	switch {
	case !f.touched[field]:
		return FieldUntouched
	case !f.checked[field]:
		return FieldTouched
	case f.errors[field] != "":
		return FieldInvalid
	default:
		return FieldValid
	}
}

// TouchedFields lists touched fields in form order
func (f *Reactive) TouchedFields() []string {
	out := make([]string, 0, len(f.touched))
	for _, field := range validation.Fields {
		if f.touched[field] {
			out = append(out, field)
		}
	}
	return out
}

// Errors returns a copy of the current field errors
func (f *Reactive) Errors() models.FieldErrors {
	out := make(models.FieldErrors, len(f.errors))
	for k, v := range f.errors {
		out[k] = v
	}
	return out
}

// CanSubmit reports whether the submit control is enabled, i.e. no field
// currently has an error
func (f *Reactive) CanSubmit() bool {
	return len(f.errors) == 0
}

// Values returns the current values
func (f *Reactive) Values() *models.RawSubmission {
	values := f.values
	return &values
}

// HandleSubmit touches and validates every field. With errors the submit is
// blocked and nothing is committed; otherwise the submission is committed.
func (f *Reactive) HandleSubmit(commit CommitFunc) *models.SubmitResult {
	transitions := []models.SubmitState{models.StateIdle, models.StateValidating}

	if !f.Trigger(validation.Fields...) {
		return &models.SubmitResult{
			State:       models.StateRejected,
			Errors:      f.Errors(),
			Raw:         f.Values(),
			Transitions: append(transitions, models.StateRejected, models.StateIdle),
		}
	}

	submission := validation.ToSubmission(&f.values)
	commit(submission)

	return &models.SubmitResult{
		State:       models.StateSubmitted,
		Submission:  submission,
		Raw:         f.Values(),
		Transitions: append(transitions, models.StateAccepted, models.StateSubmitted),
	}
}
