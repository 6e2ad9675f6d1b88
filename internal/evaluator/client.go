// Package evaluator asks a model to judge content as a persona and reads its
// answer back into an EvaluationResult.
package evaluator

import (
	"context"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"go.uber.org/zap"

	"github.com/openpaws/synthfeedback/internal/llm"
	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/persona"
	"github.com/openpaws/synthfeedback/internal/telemetry"
)

var evalTracer = otel.Tracer("synthfeedback/evaluator")

// Client sends persona-conditioned prompts to a model provider.
type Client struct {
	provider  llm.Provider
	maxTokens int
	logger    *zap.Logger
	metrics   *telemetry.Metrics
}

// NewClient creates a Client. provider normally carries the retry and rate
// limit decorators. metrics may be nil.
func NewClient(provider llm.Provider, maxTokens int, logger *zap.Logger, metrics *telemetry.Metrics) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		provider:  provider,
		maxTokens: maxTokens,
		logger:    logger,
		metrics:   metrics,
	}
}

// Prompt returns the user turn for p and content: the persona description
// followed by the content fragments.
func Prompt(p model.Persona, content model.NormalizedContent) []model.Fragment {
	parts := make([]model.Fragment, 0, len(content.Fragments)+1)
	parts = append(parts, model.TextFragment(persona.Describe(p)))
	return append(parts, content.Fragments...)
}

// Evaluate asks the model to judge content as persona p and returns its raw text.
func (c *Client) Evaluate(ctx context.Context, p model.Persona, content model.NormalizedContent) (string, error) {
	modelName := c.provider.Model()

	// GenAI semantic conventions; span name is "{operation} {model}".
	ctx, span := evalTracer.Start(ctx, "chat "+modelName,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(
			attribute.String("gen_ai.operation.name", "chat"),
			attribute.String("gen_ai.provider.name", c.provider.Name()),
			attribute.String("gen_ai.request.model", modelName),
			attribute.Int("gen_ai.request.max_tokens", c.maxTokens),
			attribute.Int("synthfeedback.persona.id", p.ID),
			attribute.String("synthfeedback.content.kind", string(content.Kind)),
		),
	)
	defer span.End()

	resp, err := c.provider.Generate(ctx, llm.Request{
		System:    SystemPrompt,
		Parts:     Prompt(p, content),
		MaxTokens: c.maxTokens,
		JSON:      true,
	})
	if err != nil {
		span.RecordError(err)
		span.SetStatus(codes.Error, "model call failed")
		c.metrics.RecordModelCall(ctx, c.provider.Name(), modelName, "error", 0, 0)
		return "", fmt.Errorf("evaluate: %w", err)
	}

	span.SetAttributes(
		attribute.String("gen_ai.response.model", resp.Model),
		attribute.Int64("gen_ai.usage.input_tokens", resp.InputTokens),
		attribute.Int64("gen_ai.usage.output_tokens", resp.OutputTokens),
	)
	if resp.FinishReason != "" {
		span.SetAttributes(attribute.StringSlice("gen_ai.response.finish_reasons", []string{resp.FinishReason}))
	}
	c.metrics.RecordModelCall(ctx, c.provider.Name(), modelName, "ok", resp.InputTokens, resp.OutputTokens)

	c.logger.Debug("Model responded",
		zap.Int("persona_id", p.ID),
		zap.String("model", resp.Model),
		zap.Int64("input_tokens", resp.InputTokens),
		zap.Int64("output_tokens", resp.OutputTokens),
	)

	return resp.Text, nil
}
