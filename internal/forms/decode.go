// Package forms implements the two submit flows: the uncontrolled form, read
// once at submit time, and the reactive form, re-validated on every change.
package forms

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/getmentor/formsdemo/internal/models"
	"github.com/go-playground/form/v4"
)

// DraftField is the hidden input carrying the form's picture preview draft ID
const DraftField = "draft"

var decoder = form.NewDecoder()

// Decode reads the submitted input values as they are, without trimming or
// coercion. The picture is not part of the form values; it is merged from the
// preview cache by the caller.
func Decode(values url.Values) (*models.RawSubmission, error) {
	var raw models.RawSubmission
	if err := decoder.Decode(&raw, values); err != nil {
		return nil, fmt.Errorf("failed to decode form values: %w", err)
	}

	raw.AcceptTerms = IsChecked(values.Get("acceptTerms"))
	return &raw, nil
}

// IsChecked interprets a checkbox value. Browsers send "on" for a checked box
// without a value attribute and omit unchecked boxes entirely.
func IsChecked(value string) bool {
	switch strings.ToLower(strings.TrimSpace(value)) {
	case "on", "true", "1", "yes":
		return true
	default:
		return false
	}
}
