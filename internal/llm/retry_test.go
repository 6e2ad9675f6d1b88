package llm

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpaws/synthfeedback/internal/model"
)

// fakeProvider fails the first failures calls, then answers text.
type fakeProvider struct {
	calls    atomic.Int32
	failures int32
	text     string
}

func (f *fakeProvider) Name() string  { return "fake" }
func (f *fakeProvider) Model() string { return "fake-1" }

func (f *fakeProvider) Generate(context.Context, Request) (*Response, error) {
	if f.calls.Add(1) <= f.failures {
		return nil, errors.New("transient")
	}
	return &Response{Text: f.text, Model: "fake-1"}, nil
}

var fastRetry = model.RetryConfig{
	MaxAttempts:    3,
	InitialBackoff: time.Millisecond,
	Multiplier:     2,
	MaxBackoff:     5 * time.Millisecond,
}

func TestWithRetry_SucceedsAfterTransientFailures(t *testing.T) {
	fake := &fakeProvider{failures: 2, text: "ok"}
	var waits []time.Duration

	p := WithRetry(fake, fastRetry, func(_ error, d time.Duration) { waits = append(waits, d) })
	resp, err := p.Generate(context.Background(), Request{})

	require.NoError(t, err)
	assert.Equal(t, "ok", resp.Text)
	assert.Equal(t, int32(3), fake.calls.Load())
	assert.Equal(t, []time.Duration{time.Millisecond, 2 * time.Millisecond}, waits)
}

func TestWithRetry_Exhausted(t *testing.T) {
	fake := &fakeProvider{failures: 10}

	_, err := WithRetry(fake, fastRetry, nil).Generate(context.Background(), Request{})

	assert.ErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, int32(3), fake.calls.Load())
}

func TestWithRetry_BackoffIsCapped(t *testing.T) {
	cfg := model.RetryConfig{MaxAttempts: 4, InitialBackoff: 4 * time.Millisecond, Multiplier: 2, MaxBackoff: 10 * time.Millisecond}
	fake := &fakeProvider{failures: 10}
	var waits []time.Duration

	_, _ = WithRetry(fake, cfg, func(_ error, d time.Duration) { waits = append(waits, d) }).Generate(context.Background(), Request{})

	assert.Equal(t, []time.Duration{4 * time.Millisecond, 8 * time.Millisecond, 10 * time.Millisecond}, waits)
}

func TestWithRetry_StopsOnCancel(t *testing.T) {
	cfg := model.RetryConfig{MaxAttempts: 3, InitialBackoff: time.Hour, Multiplier: 2, MaxBackoff: time.Hour}
	fake := &fakeProvider{failures: 10}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := WithRetry(fake, cfg, nil).Generate(ctx, Request{})
	assert.Error(t, err)
	assert.NotErrorIs(t, err, ErrRetriesExhausted)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestWithRetry_KeepsProviderIdentity(t *testing.T) {
	p := WithRetry(&fakeProvider{}, fastRetry, nil)
	assert.Equal(t, "fake", p.Name())
	assert.Equal(t, "fake-1", p.Model())
}

func TestWithRateLimit(t *testing.T) {
	fake := &fakeProvider{text: "ok"}
	assert.Same(t, Provider(fake), WithRateLimit(fake, 0))

	// 60/min = one per second with a burst of one: the second call must wait.
	p := WithRateLimit(fake, 60)
	_, err := p.Generate(context.Background(), Request{})
	require.NoError(t, err)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	_, err = p.Generate(ctx, Request{})
	assert.Error(t, err)
	assert.Equal(t, int32(1), fake.calls.Load())
}

func TestNewProvider_Unknown(t *testing.T) {
	_, err := NewProvider(context.Background(), Config{Provider: "mystery"})
	assert.Error(t, err)
}

func TestNewProvider_Selects(t *testing.T) {
	p, err := NewProvider(context.Background(), Config{Provider: "anthropic", APIKey: "k"})
	require.NoError(t, err)
	assert.Equal(t, "anthropic", p.Name())

	p, err = NewProvider(context.Background(), Config{Provider: "ollama"})
	require.NoError(t, err)
	assert.Equal(t, "ollama", p.Name())
}

func TestConfigFromModel(t *testing.T) {
	cfg := model.DefaultConfig()
	cfg.ProjectID = "proj"
	cfg.LLM.APIKey = "k"

	got := ConfigFromModel(cfg)
	assert.Equal(t, "gemini", got.Provider)
	assert.Equal(t, "proj", got.ProjectID)
	assert.Equal(t, "us-central1", got.Location)
	assert.Equal(t, 2*time.Minute, got.Timeout)
	assert.Equal(t, 2048, got.MaxTokens)
}
