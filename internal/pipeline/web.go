package pipeline

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"

	"github.com/openpaws/synthfeedback/internal/cache"
	"github.com/openpaws/synthfeedback/internal/extract"
	"github.com/openpaws/synthfeedback/internal/telemetry"
)

// WebExtractor fetches a webpage and reduces it to its main text.
// Extracted text is cached untruncated under the page URL.
type WebExtractor struct {
	fetcher *Fetcher
	cache   cache.Cache
	ttl     time.Duration
	logger  *zap.Logger
	metrics *telemetry.Metrics
}

// NewWebExtractor creates an extractor. c may be cache.Nop{}; metrics may be nil.
func NewWebExtractor(fetcher *Fetcher, c cache.Cache, ttl time.Duration, logger *zap.Logger, metrics *telemetry.Metrics) *WebExtractor {
	if c == nil {
		c = cache.Nop{}
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &WebExtractor{
		fetcher: fetcher,
		cache:   c,
		ttl:     ttl,
		logger:  logger,
		metrics: metrics,
	}
}

// Extract returns at most maxChars characters of the page's main text.
func (w *WebExtractor) Extract(ctx context.Context, rawURL string, maxChars int) (string, error) {
	key := cache.Key("page", rawURL)
	if cached, ok := w.cache.Get(key); ok {
		w.metrics.RecordWebFetch(ctx, "cache")
		return extract.Truncate(string(cached), maxChars), nil
	}

	result, err := w.fetcher.FetchWithRetry(ctx, rawURL)
	if err != nil {
		w.metrics.RecordWebFetch(ctx, "failed")
		return "", err
	}

	text, err := extract.MainText(result.HTML, 0)
	if err != nil {
		w.metrics.RecordWebFetch(ctx, "failed")
		return "", fmt.Errorf("extract %s: %w", rawURL, err)
	}
	w.metrics.RecordWebFetch(ctx, "fetched")

	if err := w.cache.Set(key, []byte(text), w.ttl); err != nil {
		w.logger.Warn("Failed to cache page text", zap.String("url", rawURL), zap.Error(err))
	}

	return extract.Truncate(text, maxChars), nil
}
