package forms

import (
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/validation"
)

// CommitFunc writes an accepted submission; for both flows it is the store write
type CommitFunc func(submission *models.FormSubmission)

// Uncontrolled runs one submit of the uncontrolled form through
// Idle → Validating → {Rejected → Idle, Accepted → Submitted}.
type Uncontrolled struct {
	ruleset     *validation.Ruleset
	state       models.SubmitState
	transitions []models.SubmitState
}

// NewUncontrolled creates an idle uncontrolled form bound to ruleset
func NewUncontrolled(ruleset *validation.Ruleset) *Uncontrolled {
	return &Uncontrolled{
		ruleset:     ruleset,
		state:       models.StateIdle,
		transitions: []models.SubmitState{models.StateIdle},
	}
}

// State returns the current state
func (u *Uncontrolled) State() models.SubmitState {
	return u.state
}

func (u *Uncontrolled) enter(state models.SubmitState) {
	u.state = state
	u.transitions = append(u.transitions, state)
}

// Submit validates the values read at submit time. Rejected submissions
// return the errors of every failing field and the form goes back to Idle;
// accepted submissions are committed before the result is returned.
func (u *Uncontrolled) Submit(raw *models.RawSubmission, commit CommitFunc) *models.SubmitResult {
	u.enter(models.StateValidating)

	result := u.ruleset.Validate(raw)
	if !result.Valid() {
		u.enter(models.StateRejected)
		u.enter(models.StateIdle)
		return &models.SubmitResult{
			State:       models.StateRejected,
			Errors:      result.Errors,
			Raw:         raw,
			Transitions: u.history(),
		}
	}

	u.enter(models.StateAccepted)
	submission := validation.ToSubmission(raw)
	commit(submission)
	u.enter(models.StateSubmitted)

	return &models.SubmitResult{
		State:       models.StateSubmitted,
		Submission:  submission,
		Raw:         raw,
		Transitions: u.history(),
	}
}

func (u *Uncontrolled) history() []models.SubmitState {
	return append([]models.SubmitState(nil), u.transitions...)
}
