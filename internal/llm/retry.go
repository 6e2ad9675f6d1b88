package llm

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v5"

	"github.com/openpaws/synthfeedback/internal/model"
)

// ErrRetriesExhausted wraps the last error once every attempt has failed.
var ErrRetriesExhausted = errors.New("retries exhausted")

// RetryNotify is called after a failed attempt, before waiting to retry.
type RetryNotify func(err error, wait time.Duration)

type retryProvider struct {
	Provider
	cfg    model.RetryConfig
	notify RetryNotify
}

// WithRetry wraps p so every failed call is retried with exponential backoff
// until cfg.MaxAttempts attempts have been made. notify may be nil.
func WithRetry(p Provider, cfg model.RetryConfig, notify RetryNotify) Provider {
	if cfg.MaxAttempts < 1 {
		cfg.MaxAttempts = 1
	}
	return &retryProvider{Provider: p, cfg: cfg, notify: notify}
}

func (r *retryProvider) Generate(ctx context.Context, req Request) (*Response, error) {
	multiplier := r.cfg.Multiplier
	if multiplier < 1 {
		multiplier = 2
	}
	b := &backoff.ExponentialBackOff{
		InitialInterval:     r.cfg.InitialBackoff,
		RandomizationFactor: 0,
		Multiplier:          multiplier,
		MaxInterval:         r.cfg.MaxBackoff,
	}
	b.Reset()

	opts := []backoff.RetryOption{
		backoff.WithBackOff(b),
		backoff.WithMaxTries(uint(r.cfg.MaxAttempts)),
	}
	if r.notify != nil {
		opts = append(opts, backoff.WithNotify(backoff.Notify(r.notify)))
	}

	resp, err := backoff.Retry(ctx, func() (*Response, error) {
		return r.Provider.Generate(ctx, req)
	}, opts...)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("%s: %w", r.Name(), err)
		}
		return nil, fmt.Errorf("%w after %d attempts: %w", ErrRetriesExhausted, r.cfg.MaxAttempts, err)
	}
	return resp, nil
}
