package cache

import (
	"sync"
	"time"

	apperrors "github.com/getmentor/formsdemo/pkg/errors"
	"github.com/getmentor/formsdemo/pkg/logger"
	"github.com/getmentor/formsdemo/pkg/metrics"
	gocache "github.com/patrickmn/go-cache"
	"go.uber.org/zap"
)

const (
	previewCacheName     = "picture_previews"
	previewKeyPrefix     = "preview:draft:"
	previewCleanupPeriod = time.Minute
)

// Preview is a picture already converted to a data URL for one form draft
type Preview struct {
	Seq         int64
	DataURL     string
	ContentType string
	Size        int
}

// PreviewCache holds the latest picture preview of every open form draft.
// Entries expire after the TTL, so abandoned drafts do not accumulate.
type PreviewCache struct {
	cache *gocache.Cache
	mu    sync.Mutex
	ttl   time.Duration
}

// NewPreviewCache creates a preview cache with the given entry TTL
func NewPreviewCache(ttl time.Duration) *PreviewCache {
	return &PreviewCache{
		cache: gocache.New(ttl, previewCleanupPeriod),
		ttl:   ttl,
	}
}

// Put stores p for draft unless a preview with the same or a newer sequence
// number is already present. Selections are numbered by the client, so the
// most recently selected file wins even when an older read finishes last.
func (pc *PreviewCache) Put(draft string, p Preview) error {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	key := previewKeyPrefix + draft
	if data, found := pc.cache.Get(key); found {
		if current, ok := data.(Preview); ok && current.Seq >= p.Seq {
			logger.Debug("Discarding stale picture preview",
				zap.String("draft", draft),
				zap.Int64("seq", p.Seq),
				zap.Int64("current_seq", current.Seq))
			return apperrors.ConflictError("a newer picture was already selected")
		}
	}

	pc.cache.Set(key, p, pc.ttl)
	metrics.CacheSize.WithLabelValues(previewCacheName).Set(float64(pc.cache.ItemCount()))
	return nil
}

// Get returns the current preview of draft
func (pc *PreviewCache) Get(draft string) (Preview, bool) {
	if draft == "" {
		return Preview{}, false
	}

	data, found := pc.cache.Get(previewKeyPrefix + draft)
	if !found {
		return Preview{}, false
	}

	p, ok := data.(Preview)
	if !ok {
		logger.Error("Invalid preview cache data type", zap.String("draft", draft))
		pc.cache.Delete(previewKeyPrefix + draft)
		return Preview{}, false
	}
	return p, true
}

// Count returns the number of cached previews, including expired entries not
// yet cleaned up
func (pc *PreviewCache) Count() int {
	return pc.cache.ItemCount()
}
