// Package llm talks to generative model backends.
//
// Every backend implements Provider with the same multimodal Request: a system
// instruction plus ordered text and image-reference fragments. Retry and rate
// limiting are layered on as decorators (WithRetry, WithRateLimit).
package llm

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/openpaws/synthfeedback/internal/model"
)

// ErrEmptyResponse is returned when a backend answers without any text.
var ErrEmptyResponse = errors.New("empty model response")

// Provider defines the interface for model backends.
type Provider interface {
	// Name returns the provider name, e.g. "gemini".
	Name() string

	// Model returns the model the provider sends requests to.
	Model() string

	// Generate sends one request and returns the model's text answer.
	Generate(ctx context.Context, req Request) (*Response, error)
}

// Request is one model call.
type Request struct {
	// System is the fixed system instruction.
	System string

	// Parts is the user turn, in order.
	Parts []model.Fragment

	// MaxTokens limits the response length; zero uses the provider default.
	MaxTokens int

	// JSON asks the backend for a JSON response where it supports that.
	JSON bool
}

// Response is the model's answer.
type Response struct {
	Text         string
	Model        string
	InputTokens  int64
	OutputTokens int64
	FinishReason string
}

// Config holds provider configuration.
type Config struct {
	// Provider name: "gemini", "vertex", "openai", "ollama", "anthropic"
	Provider string

	// Model name (provider-specific)
	Model string

	// APIKey for Gemini API, OpenAI or Anthropic
	APIKey string

	// BaseURL overrides the API endpoint (Ollama, Azure, tests)
	BaseURL string

	// ProjectID and Location select Vertex AI for Gemini models
	ProjectID string
	Location  string

	// Timeout bounds each request
	Timeout time.Duration

	// MaxTokens for response generation
	MaxTokens int
}

// ConfigFromModel converts the runtime configuration into a provider Config.
func ConfigFromModel(cfg *model.Config) Config {
	return Config{
		Provider:  cfg.LLM.Provider,
		Model:     cfg.LLM.Model,
		APIKey:    cfg.LLM.APIKey,
		BaseURL:   cfg.LLM.BaseURL,
		ProjectID: cfg.ProjectID,
		Location:  cfg.Location,
		Timeout:   cfg.LLM.Timeout,
		MaxTokens: cfg.LLM.MaxTokens,
	}
}

func (c Config) maxTokens(req Request) int {
	if req.MaxTokens > 0 {
		return req.MaxTokens
	}
	if c.MaxTokens > 0 {
		return c.MaxTokens
	}
	return 2048
}

// withTimeout bounds one request by the configured timeout, if any.
func withTimeout(ctx context.Context, timeout time.Duration) (context.Context, context.CancelFunc) {
	if timeout <= 0 {
		return context.WithCancel(ctx)
	}
	return context.WithTimeout(ctx, timeout)
}

// flattenText joins the text parts of a request, dropping image references.
func flattenText(parts []model.Fragment) string {
	var texts []string
	for _, p := range parts {
		if p.Type == model.FragmentText {
			texts = append(texts, p.Text)
		}
	}
	return strings.Join(texts, "\n\n")
}

// hasImages reports whether any part is an image reference.
func hasImages(parts []model.Fragment) bool {
	for _, p := range parts {
		if p.Type == model.FragmentImage {
			return true
		}
	}
	return false
}
