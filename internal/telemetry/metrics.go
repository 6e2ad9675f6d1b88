package telemetry

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

// Metrics holds the counters recorded by the worker. A nil *Metrics is valid
// and records nothing.
type Metrics struct {
	Tasks        metric.Int64Counter // partitioned by outcome and stage
	ModelCalls   metric.Int64Counter // partitioned by provider, model and outcome
	ModelRetries metric.Int64Counter
	InputTokens  metric.Int64Counter
	OutputTokens metric.Int64Counter
	WebFetches   metric.Int64Counter // partitioned by result: cache, fetched, failed
	PollCycles   metric.Int64Counter // partitioned by result: idle, batch, error
}

// NewMetrics creates the instruments on the global MeterProvider.
func NewMetrics() (*Metrics, error) {
	meter := otel.Meter(ServiceName)
	m := &Metrics{}
	var err error

	if m.Tasks, err = meter.Int64Counter("tasks.processed",
		metric.WithDescription("Task files processed, by final outcome and stage reached")); err != nil {
		return nil, err
	}
	if m.ModelCalls, err = meter.Int64Counter("llm.calls",
		metric.WithDescription("Model evaluation calls, by outcome")); err != nil {
		return nil, err
	}
	if m.ModelRetries, err = meter.Int64Counter("llm.retries",
		metric.WithDescription("Model call attempts that failed and were retried")); err != nil {
		return nil, err
	}
	if m.InputTokens, err = meter.Int64Counter("llm.tokens.input",
		metric.WithDescription("Model input tokens consumed"),
		metric.WithUnit("{token}")); err != nil {
		return nil, err
	}
	if m.OutputTokens, err = meter.Int64Counter("llm.tokens.output",
		metric.WithDescription("Model output tokens produced"),
		metric.WithUnit("{token}")); err != nil {
		return nil, err
	}
	if m.WebFetches, err = meter.Int64Counter("web.fetches",
		metric.WithDescription("Webpage extractions, by result")); err != nil {
		return nil, err
	}
	if m.PollCycles, err = meter.Int64Counter("poll.cycles",
		metric.WithDescription("Polling cycles, by result")); err != nil {
		return nil, err
	}

	return m, nil
}

// RecordTask records the final state of one task.
func (m *Metrics) RecordTask(ctx context.Context, outcome, stage string) {
	if m == nil {
		return
	}
	m.Tasks.Add(ctx, 1, metric.WithAttributes(
		attribute.String("task.outcome", outcome),
		attribute.String("task.stage", stage),
	))
}

// RecordModelCall records one model call and its token usage.
func (m *Metrics) RecordModelCall(ctx context.Context, provider, model, outcome string, input, output int64) {
	if m == nil {
		return
	}
	attrs := metric.WithAttributes(
		attribute.String("llm.provider", provider),
		attribute.String("llm.model", model),
	)
	m.ModelCalls.Add(ctx, 1, attrs, metric.WithAttributes(attribute.String("llm.outcome", outcome)))
	if input > 0 {
		m.InputTokens.Add(ctx, input, attrs)
	}
	if output > 0 {
		m.OutputTokens.Add(ctx, output, attrs)
	}
}

// RecordRetry records a failed model attempt that will be retried.
func (m *Metrics) RecordRetry(ctx context.Context, provider string) {
	if m == nil {
		return
	}
	m.ModelRetries.Add(ctx, 1, metric.WithAttributes(attribute.String("llm.provider", provider)))
}

// RecordWebFetch records a webpage extraction result.
func (m *Metrics) RecordWebFetch(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.WebFetches.Add(ctx, 1, metric.WithAttributes(attribute.String("web.result", result)))
}

// RecordPoll records the result of one polling cycle.
func (m *Metrics) RecordPoll(ctx context.Context, result string) {
	if m == nil {
		return
	}
	m.PollCycles.Add(ctx, 1, metric.WithAttributes(attribute.String("poll.result", result)))
}
