package handlers

import (
	"context"
	"net/http"
	"strings"

	"github.com/getmentor/formsdemo/internal/countries"
	"github.com/getmentor/formsdemo/internal/forms"
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/services"
	"github.com/getmentor/formsdemo/internal/validation"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const (
	ValidatePath  = "/api/v1/forms/react-hook-form/validate"
	PreviewPath   = "/api/v1/pictures/preview"
	CountriesPath = "/api/v1/countries"
)

// fieldError is what the "error" template renders below an input
type fieldError struct {
	Field   string
	Message string
}

// formPage is the view model of both form pages
type formPage struct {
	Title        string
	Variant      models.Variant
	Action       string
	Reactive     bool
	ValidateURL  string
	PreviewURL   string
	CountriesURL string
	Draft        string
	Seq          int64  // last picture selection already previewed for Draft
	Touched      string // comma-separated fields the reactive form starts touched
	Values       *models.RawSubmission
	Errors       models.FieldErrors
	Genders      []string
	Countries    []string
	CanSubmit    bool
}

// Error returns the message shown below field
func (p *formPage) Error(field string) fieldError {
	return fieldError{Field: field, Message: p.Errors[field]}
}

// tile is the view model of one populated store slot
type tile struct {
	Variant    models.Variant
	Title      string
	Submission models.FormSubmission
}

type landingPage struct {
	Title string
	Tiles []tile
}

type submitFunc func(ctx context.Context, raw *models.RawSubmission, draft string) *models.SubmitResult

// PageHandler serves the landing page and both form pages
type PageHandler struct {
	forms services.FormServiceInterface
}

func NewPageHandler(formService services.FormServiceInterface) *PageHandler {
	return &PageHandler{forms: formService}
}

// Landing renders one tile per populated slot
func (h *PageHandler) Landing(c *gin.Context) {
	entries := h.forms.Submissions(c.Request.Context())

	tiles := make([]tile, 0, len(entries))
	for _, e := range entries {
		tiles = append(tiles, tile{
			Variant:    e.Variant,
			Title:      e.Variant.Title(),
			Submission: e.Submission,
		})
	}

	c.HTML(http.StatusOK, "landing.tmpl", &landingPage{Title: "Main Page", Tiles: tiles})
}

// UncontrolledForm renders an empty uncontrolled form
func (h *PageHandler) UncontrolledForm(c *gin.Context) {
	c.HTML(http.StatusOK, "uncontrolled.tmpl", newFormPage(models.VariantUncontrolled, uuid.NewString(), nil, nil))
}

// HookForm renders an empty reactive form
func (h *PageHandler) HookForm(c *gin.Context) {
	c.HTML(http.StatusOK, "hookform.tmpl", newFormPage(models.VariantHookForm, uuid.NewString(), nil, nil))
}

// SubmitUncontrolled validates the posted uncontrolled form
func (h *PageHandler) SubmitUncontrolled(c *gin.Context) {
	h.submit(c, models.VariantUncontrolled, "uncontrolled.tmpl", h.forms.SubmitUncontrolled)
}

// SubmitHookForm validates the posted reactive form
func (h *PageHandler) SubmitHookForm(c *gin.Context) {
	h.submit(c, models.VariantHookForm, "hookform.tmpl", h.forms.SubmitHookForm)
}

// submit re-renders the form with its errors (422) on rejection and
// redirects to the landing page once the submission is stored.
func (h *PageHandler) submit(c *gin.Context, variant models.Variant, name string, run submitFunc) {
	if err := c.Request.ParseForm(); err != nil {
		attachError(c, err)
		c.HTML(http.StatusBadRequest, name, newFormPage(variant, uuid.NewString(), nil, nil))
		return
	}

	// The draft keeps the picture preview across a rejected submit
	draft := c.Request.PostForm.Get(forms.DraftField)
	if _, err := uuid.Parse(draft); err != nil {
		draft = uuid.NewString()
	}

	raw, err := forms.Decode(c.Request.PostForm)
	if err != nil {
		attachError(c, err)
		c.HTML(http.StatusBadRequest, name, newFormPage(variant, draft, nil, nil))
		return
	}

	result := run(c.Request.Context(), raw, draft)
	if !result.Accepted() {
		page := newFormPage(variant, draft, result.Raw, result.Errors)
		page.Seq = h.forms.PreviewSeq(draft)
		if page.Reactive {
			// A submit attempt touches every field, so later changes keep
			// validating all of them.
			page.Touched = strings.Join(validation.Fields, ",")
		}
		c.HTML(http.StatusUnprocessableEntity, name, page)
		return
	}

	c.Redirect(http.StatusSeeOther, "/")
}

func newFormPage(variant models.Variant, draft string, values *models.RawSubmission, errs models.FieldErrors) *formPage {
	if values == nil {
		values = &models.RawSubmission{}
	}
	if errs == nil {
		errs = models.FieldErrors{}
	}

	page := &formPage{
		Title:        variant.Title(),
		Variant:      variant,
		Action:       variant.Path(),
		PreviewURL:   PreviewPath,
		CountriesURL: CountriesPath,
		Draft:        draft,
		Values:       values,
		Errors:       errs,
		Genders:      validation.UncontrolledGenders,
		Countries:    countries.All(),
		CanSubmit:    true,
	}

	if variant == models.VariantHookForm {
		page.Reactive = true
		page.ValidateURL = ValidatePath
		page.Genders = validation.HookFormGenders
		// The submit control stays disabled while any field has an error
		page.CanSubmit = len(errs) == 0
	}

	return page
}
