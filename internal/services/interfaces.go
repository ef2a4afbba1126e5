package services

import (
	"context"
	"io"

	"github.com/getmentor/formsdemo/internal/cache"
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/internal/store"
)

// FormServiceInterface defines the interface for form service operations
type FormServiceInterface interface {
	SubmitUncontrolled(ctx context.Context, raw *models.RawSubmission, draft string) *models.SubmitResult
	SubmitHookForm(ctx context.Context, raw *models.RawSubmission, draft string) *models.SubmitResult
	ValidateHookForm(ctx context.Context, req *models.ReactiveValidateRequest) *models.ReactiveValidateResponse
	PreviewSeq(draft string) int64
	Submissions(ctx context.Context) []store.Entry
}

// PictureServiceInterface defines the interface for picture preview operations
type PictureServiceInterface interface {
	Preview(ctx context.Context, draft string, seq int64, file io.Reader) (*models.PicturePreviewResponse, error)
}

// Ensure services and their dependencies implement their interfaces
var _ FormServiceInterface = (*FormService)(nil)
var _ PictureServiceInterface = (*PictureService)(nil)
var _ SubmissionStore = (*store.Store)(nil)
var _ PreviewStore = (*cache.PreviewCache)(nil)
