package services

import (
	"context"

	"github.com/getmentor/formsdemo/internal/cache"
	"github.com/getmentor/formsdemo/internal/forms"
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/store"
	"github.com/getmentor/formsdemo/internal/validation"
	"github.com/getmentor/formsdemo/pkg/logger"
	"github.com/getmentor/formsdemo/pkg/metrics"
	"github.com/getmentor/formsdemo/pkg/tracing"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// SubmissionStore is the slot storage the form flows commit to
type SubmissionStore interface {
	Set(variant models.Variant, submission *models.FormSubmission)
	Get(variant models.Variant) (*models.FormSubmission, bool)
	Snapshot() []store.Entry
}

// PreviewStore resolves the picture preview of a form draft
type PreviewStore interface {
	Put(draft string, p cache.Preview) error
	Get(draft string) (cache.Preview, bool)
}

// FormService runs both submit flows and the live validation of the reactive form
type FormService struct {
	store    SubmissionStore
	previews PreviewStore
}

// NewFormService creates a new form service instance
func NewFormService(st SubmissionStore, previews PreviewStore) *FormService {
	return &FormService{
		store:    st,
		previews: previews,
	}
}

// SubmitUncontrolled validates the values read at submit time and, when they
// pass, overwrites the uncontrolled slot.
func (s *FormService) SubmitUncontrolled(ctx context.Context, raw *models.RawSubmission, draft string) *models.SubmitResult {
	_, span := tracing.StartSpan(ctx, "forms.submit",
		attribute.String("form.variant", string(models.VariantUncontrolled)))
	defer span.End()

	s.mergePicture(raw, draft)

	form := forms.NewUncontrolled(validation.Uncontrolled)
	result := form.Submit(raw, s.commit(models.VariantUncontrolled))

	s.record(models.VariantUncontrolled, result)
	span.SetAttributes(attribute.String("form.state", string(result.State)))
	return result
}

// SubmitHookForm touches and validates every field of the reactive form and,
// when none fails, overwrites the hook-form slot.
func (s *FormService) SubmitHookForm(ctx context.Context, raw *models.RawSubmission, draft string) *models.SubmitResult {
	_, span := tracing.StartSpan(ctx, "forms.submit",
		attribute.String("form.variant", string(models.VariantHookForm)))
	defer span.End()

	s.mergePicture(raw, draft)

	form := forms.NewReactive(validation.HookForm)
	form.Load(raw, nil)
	result := form.HandleSubmit(s.commit(models.VariantHookForm))

	s.record(models.VariantHookForm, result)
	span.SetAttributes(attribute.String("form.state", string(result.State)))
	return result
}

// ValidateHookForm re-validates the reactive form after a change. Only
// touched fields report errors; the changed field is touched implicitly.
func (s *FormService) ValidateHookForm(ctx context.Context, req *models.ReactiveValidateRequest) *models.ReactiveValidateResponse {
	_, span := tracing.StartSpan(ctx, "forms.validate",
		attribute.String("form.changed", req.Changed))
	defer span.End()

	values := req.Values
	s.mergePicture(&values, req.Draft)

	touched := append([]string(nil), req.Touched...)
	switch {
	case validation.IsField(req.Changed):
		touched = append(touched, req.Changed)
		metrics.ReactiveValidations.WithLabelValues(req.Changed).Inc()
	case req.Changed != "":
		logger.Debug("Ignoring change of unknown field", zap.String("field", req.Changed))
	}

	form := forms.NewReactive(validation.HookForm)
	form.Load(&values, touched)
	form.Trigger()

	return &models.ReactiveValidateResponse{
		Errors:    form.Errors(),
		CanSubmit: form.CanSubmit(),
	}
}

// PreviewSeq returns the sequence number of the draft's current picture
// preview, or 0 when it has none. A re-rendered form continues numbering
// its selections from here.
func (s *FormService) PreviewSeq(draft string) int64 {
	if preview, ok := s.previews.Get(draft); ok {
		return preview.Seq
	}
	return 0
}

// Submissions returns the populated slots for the landing page
func (s *FormService) Submissions(ctx context.Context) []store.Entry {
	_, span := tracing.StartSpan(ctx, "store.snapshot")
	defer span.End()

	return s.store.Snapshot()
}

func (s *FormService) mergePicture(raw *models.RawSubmission, draft string) {
	if preview, ok := s.previews.Get(draft); ok {
		raw.Picture = preview.DataURL
	}
}

func (s *FormService) commit(variant models.Variant) forms.CommitFunc {
	return func(submission *models.FormSubmission) {
		s.store.Set(variant, submission)
	}
}

func (s *FormService) record(variant models.Variant, result *models.SubmitResult) {
	if result.Accepted() {
		metrics.FormSubmissions.WithLabelValues(string(variant), "accepted").Inc()
		logger.Info("Form submission stored", zap.String("variant", string(variant)))
		return
	}

	metrics.FormSubmissions.WithLabelValues(string(variant), "rejected").Inc()
	fields := make([]string, 0, len(result.Errors))
	for field := range result.Errors {
		metrics.ValidationFailures.WithLabelValues(string(variant), field).Inc()
		fields = append(fields, field)
	}
	logger.Debug("Form submission rejected",
		zap.String("variant", string(variant)),
		zap.Strings("fields", fields))
}
