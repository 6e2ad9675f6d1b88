// Package pipeline turns one task into one annotation record: normalize the
// payload, ask the model, interpret the answer, assemble and write the record.
package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.uber.org/zap"

	"github.com/openpaws/synthfeedback/internal/annotation"
	"github.com/openpaws/synthfeedback/internal/evaluator"
	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/storage"
	"github.com/openpaws/synthfeedback/internal/telemetry"
)

// State is a step of per-task processing. States only move forward; Skipped
// is absorbing.
type State string

const (
	StateFetched     State = "fetched"
	StateNormalized  State = "normalized"
	StateEvaluated   State = "evaluated"
	StateInterpreted State = "interpreted"
	StateAssembled   State = "assembled"
	StateWritten     State = "written"
	StateSkipped     State = "skipped"
)

// Skip reasons.
const (
	ReasonReadFailed       = "read_failed"
	ReasonDecodeFailed     = "decode_failed"
	ReasonMalformedTask    = "malformed_task"
	ReasonExtractionFailed = "extraction_failed"
	ReasonModelFailed      = "model_call_failed"
	ReasonParseFailed      = "parse_failed"
	ReasonRatingOutOfRange = "rating_out_of_range"
	ReasonEncodeFailed     = "encode_failed"
	ReasonWriteFailed      = "write_failed"
	ReasonPanic            = "panic"
)

// Outcome is the final state of one task.
type Outcome struct {
	Name      string
	State     State  // StateWritten or StateSkipped
	Stage     State  // the step that failed when skipped, StateWritten otherwise
	Reason    string // empty unless skipped
	Err       error
	Kind      model.ContentKind
	PersonaID int
	Record    *model.AnnotationRecord
}

// Written reports whether the record was written.
func (o Outcome) Written() bool {
	return o.State == StateWritten
}

// Skip builds the outcome of a task abandoned at stage.
func Skip(name string, stage State, reason string, err error) Outcome {
	return Outcome{Name: name, State: StateSkipped, Stage: stage, Reason: reason, Err: err}
}

// Evaluator asks the model to judge normalized content as a persona.
// evaluator.Client implements it.
type Evaluator interface {
	Evaluate(ctx context.Context, p model.Persona, content model.NormalizedContent) (string, error)
}

var tracer = otel.Tracer("synthfeedback/pipeline")

// Processor runs the per-task pipeline.
type Processor struct {
	normalizer  *Normalizer
	evaluator   Evaluator
	interpreter *evaluator.Interpreter
	assembler   *annotation.Assembler
	sink        storage.Sink
	logger      *zap.Logger
	metrics     *telemetry.Metrics
}

// NewProcessor wires the pipeline stages together. metrics may be nil.
func NewProcessor(
	normalizer *Normalizer,
	eval Evaluator,
	interpreter *evaluator.Interpreter,
	assembler *annotation.Assembler,
	sink storage.Sink,
	logger *zap.Logger,
	metrics *telemetry.Metrics,
) *Processor {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Processor{
		normalizer:  normalizer,
		evaluator:   eval,
		interpreter: interpreter,
		assembler:   assembler,
		sink:        sink,
		logger:      logger,
		metrics:     metrics,
	}
}

// Process takes a fetched task through every stage with persona p. Failures
// never escape as errors or panics; they end in a skipped Outcome.
func (p *Processor) Process(ctx context.Context, task model.Task, persona model.Persona) (out Outcome) {
	ctx, span := tracer.Start(ctx, "process task")
	defer span.End()
	span.SetAttributes(
		attribute.String("synthfeedback.object", task.Name),
		attribute.Int("synthfeedback.persona.id", persona.ID),
	)

	log := p.logger.With(zap.String("object", task.Name), zap.Int("persona_id", persona.ID))

	defer func() {
		if r := recover(); r != nil {
			out = Skip(task.Name, out.Stage, ReasonPanic, fmt.Errorf("panic: %v", r))
		}
		out.PersonaID = persona.ID
		p.finish(ctx, log, out)
		span.SetAttributes(
			attribute.String("synthfeedback.state", string(out.State)),
			attribute.String("synthfeedback.content.kind", string(out.Kind)),
		)
		if out.Err != nil {
			span.RecordError(out.Err)
			span.SetStatus(codes.Error, out.Reason)
		}
	}()

	out = Outcome{Name: task.Name, Stage: StateNormalized}
	content, err := p.normalizer.Normalize(ctx, task, persona)
	if err != nil {
		reason := ReasonExtractionFailed
		if errors.Is(err, ErrMalformedTask) {
			reason = ReasonMalformedTask
		}
		return Skip(task.Name, StateNormalized, reason, err)
	}
	out.Kind = content.Kind

	out.Stage = StateEvaluated
	raw, err := p.evaluator.Evaluate(ctx, persona, content)
	if err != nil {
		return withKind(Skip(task.Name, StateEvaluated, ReasonModelFailed, err), content.Kind)
	}

	out.Stage = StateInterpreted
	result, err := p.interpreter.Interpret(raw)
	if err != nil {
		reason := ReasonParseFailed
		if errors.Is(err, evaluator.ErrRatingOutOfRange) {
			reason = ReasonRatingOutOfRange
		}
		log.Debug("Unusable model response", zap.String("response", raw))
		return withKind(Skip(task.Name, StateInterpreted, reason, err), content.Kind)
	}

	out.Stage = StateAssembled
	record := p.assembler.Assemble(result, persona, task, content.Kind)
	data, err := EncodeRecord(record)
	if err != nil {
		return withKind(Skip(task.Name, StateAssembled, ReasonEncodeFailed, err), content.Kind)
	}

	out.Stage = StateWritten
	if err := p.sink.Write(ctx, task.Name, data); err != nil {
		return withKind(Skip(task.Name, StateWritten, ReasonWriteFailed, err), content.Kind)
	}

	return Outcome{
		Name:   task.Name,
		State:  StateWritten,
		Stage:  StateWritten,
		Kind:   content.Kind,
		Record: &record,
	}
}

func (p *Processor) finish(ctx context.Context, log *zap.Logger, out Outcome) {
	p.metrics.RecordTask(ctx, string(out.State), string(out.Stage))

	if out.Written() {
		log.Info("Task processed",
			zap.String("kind", string(out.Kind)),
			zap.String("state", string(out.State)),
		)
		return
	}
	log.Warn("Task skipped",
		zap.String("kind", string(out.Kind)),
		zap.String("state", string(out.Stage)),
		zap.String("reason", out.Reason),
		zap.Error(out.Err),
	)
}

func withKind(o Outcome, kind model.ContentKind) Outcome {
	o.Kind = kind
	return o
}

// EncodeRecord renders a record as indented JSON without HTML escaping.
func EncodeRecord(record model.AnnotationRecord) ([]byte, error) {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "  ")
	if err := enc.Encode(record); err != nil {
		return nil, fmt.Errorf("encode record: %w", err)
	}
	return bytes.TrimRight(buf.Bytes(), "\n"), nil
}
