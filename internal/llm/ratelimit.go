package llm

import (
	"context"
	"fmt"

	"golang.org/x/time/rate"
)

type rateLimitedProvider struct {
	Provider
	limiter *rate.Limiter
}

// WithRateLimit wraps p so calls are spaced to at most requestsPerMinute.
// requestsPerMinute <= 0 returns p unchanged.
func WithRateLimit(p Provider, requestsPerMinute float64) Provider {
	if requestsPerMinute <= 0 {
		return p
	}
	return &rateLimitedProvider{
		Provider: p,
		limiter:  rate.NewLimiter(rate.Limit(requestsPerMinute/60), 1),
	}
}

func (r *rateLimitedProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	if err := r.limiter.Wait(ctx); err != nil {
		return nil, fmt.Errorf("rate limit: %w", err)
	}
	return r.Provider.Generate(ctx, req)
}
