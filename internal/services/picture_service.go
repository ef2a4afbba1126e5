package services

import (
	"context"
	"fmt"
	"io"

	"github.com/getmentor/formsdemo/internal/cache"
	"github.com/getmentor/formsdemo/internal/models"
	"github.com/getmentor/formsdemo/pkg/datauri"
	apperrors "github.com/getmentor/formsdemo/pkg/errors"
	"github.com/getmentor/formsdemo/pkg/logger"
	"github.com/getmentor/formsdemo/pkg/metrics"
	"github.com/getmentor/formsdemo/pkg/tracing"
	"github.com/gabriel-vasile/mimetype"
	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// AllowedPictureTypes are the picture formats the file input accepts
var AllowedPictureTypes = []string{"image/png", "image/jpeg"}

// PictureService turns selected picture files into data URL previews
type PictureService struct {
	previews PreviewStore
	maxBytes int64
}

// NewPictureService creates a new picture service instance
func NewPictureService(previews PreviewStore, maxBytes int64) *PictureService {
	return &PictureService{
		previews: previews,
		maxBytes: maxBytes,
	}
}

// Preview reads a selected file, converts it to a data URL and records it as
// the draft's preview. A preview for an older selection than the one already
// recorded is rejected with ErrConflict.
func (s *PictureService) Preview(ctx context.Context, draft string, seq int64, file io.Reader) (*models.PicturePreviewResponse, error) {
	_, span := tracing.StartSpan(ctx, "pictures.preview",
		attribute.String("picture.draft", draft),
		attribute.Int64("picture.seq", seq))
	defer span.End()

	if draft == "" {
		metrics.PicturePreviews.WithLabelValues("invalid").Inc()
		return nil, apperrors.InvalidInputError("draft", "missing")
	}

	data, err := io.ReadAll(io.LimitReader(file, s.maxBytes+1))
	if err != nil {
		metrics.PicturePreviews.WithLabelValues("error").Inc()
		return nil, fmt.Errorf("failed to read picture: %w", err)
	}
	if int64(len(data)) > s.maxBytes {
		metrics.PicturePreviews.WithLabelValues("too_large").Inc()
		return nil, apperrors.TooLargeError("picture", int64(len(data)), s.maxBytes)
	}
	if len(data) == 0 {
		metrics.PicturePreviews.WithLabelValues("invalid").Inc()
		return nil, apperrors.InvalidInputError("picture", "empty file")
	}

	mime := mimetype.Detect(data)
	if !mimetype.EqualsAny(mime.String(), AllowedPictureTypes...) {
		metrics.PicturePreviews.WithLabelValues("invalid").Inc()
		return nil, apperrors.InvalidInputError("picture", "unsupported type "+mime.String())
	}

	uri, contentType := datauri.Encode(data)
	preview := cache.Preview{
		Seq:         seq,
		DataURL:     uri,
		ContentType: contentType,
		Size:        len(data),
	}
	if err := s.previews.Put(draft, preview); err != nil {
		metrics.PicturePreviews.WithLabelValues("stale").Inc()
		return nil, err
	}

	metrics.PicturePreviews.WithLabelValues("success").Inc()
	metrics.PicturePreviewBytes.Observe(float64(len(data)))
	logger.Debug("Picture preview ready",
		zap.String("draft", draft),
		zap.Int64("seq", seq),
		zap.String("content_type", contentType),
		zap.Int("size", len(data)))

	return &models.PicturePreviewResponse{
		Draft:   draft,
		Seq:     seq,
		DataURL: uri,
		Type:    contentType,
		Size:    len(data),
	}, nil
}
