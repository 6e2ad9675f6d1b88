package pipeline

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/openpaws/synthfeedback/internal/annotation"
	"github.com/openpaws/synthfeedback/internal/evaluator"
	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/storage"
)

type stubEvaluator struct {
	response string
	err      error
	panics   bool
	calls    int
}

func (s *stubEvaluator) Evaluate(_ context.Context, _ model.Persona, _ model.NormalizedContent) (string, error) {
	s.calls++
	if s.panics {
		panic("boom")
	}
	return s.response, s.err
}

type failingSink struct{}

func (failingSink) Write(context.Context, string, []byte) error {
	return errors.New("bucket unavailable")
}

const goodResponse = `{"is_content_harmful_to_animals": "Yes", "explanation": "Cages <hurt>", "rating_relevance": 5}`

func newTestProcessor(t *testing.T, eval Evaluator, sink storage.Sink, policy evaluator.RatingPolicy) *Processor {
	t.Helper()
	return NewProcessor(
		NewNormalizer(&stubPages{text: "page"}, 100, nil),
		eval,
		evaluator.NewInterpreter(policy),
		annotation.NewAssembler(model.AnnotationConfig{Project: 7, ToName: "chat"}),
		sink,
		zaptest.NewLogger(t),
		nil,
	)
}

func TestProcess_Written(t *testing.T) {
	dir, err := storage.NewDir(t.TempDir())
	require.NoError(t, err)

	eval := &stubEvaluator{response: goodResponse}
	p := newTestProcessor(t, eval, dir, evaluator.PolicyPassthrough)

	task := decode(t, `{"text": "hello"}`)
	task.Seq = 4
	out := p.Process(context.Background(), task, testPersona)

	require.True(t, out.Written(), "outcome: %+v", out)
	assert.Equal(t, StateWritten, out.Stage)
	assert.Equal(t, model.KindText, out.Kind)
	assert.Equal(t, testPersona.ID, out.PersonaID)
	require.NotNil(t, out.Record)

	data, err := dir.Read(context.Background(), "task.json")
	require.NoError(t, err)
	assert.Contains(t, string(data), "\n  \"id\": ")
	assert.Contains(t, string(data), "Cages <hurt>")

	var record model.AnnotationRecord
	require.NoError(t, json.Unmarshal(data, &record))
	assert.Equal(t, 7, record.Project)
	assert.Equal(t, 4, record.UpdatedBy)
	assert.Len(t, record.Result, len(annotation.Schema))
}

func TestProcess_Skips(t *testing.T) {
	tests := []struct {
		name    string
		payload string
		eval    *stubEvaluator
		policy  evaluator.RatingPolicy
		stage   State
		reason  string
		calls   int
	}{
		{
			name:    "malformed text",
			payload: `{"text": 42}`,
			eval:    &stubEvaluator{response: goodResponse},
			stage:   StateNormalized,
			reason:  ReasonMalformedTask,
		},
		{
			name:    "model failure",
			payload: `{"text": "hello"}`,
			eval:    &stubEvaluator{err: errors.New("quota")},
			stage:   StateEvaluated,
			reason:  ReasonModelFailed,
			calls:   1,
		},
		{
			name:    "unparseable response",
			payload: `{"text": "hello"}`,
			eval:    &stubEvaluator{response: "I refuse"},
			stage:   StateInterpreted,
			reason:  ReasonParseFailed,
			calls:   1,
		},
		{
			name:    "rating rejected",
			payload: `{"text": "hello"}`,
			eval:    &stubEvaluator{response: `{"rating_insight": 9}`},
			policy:  evaluator.PolicyReject,
			stage:   StateInterpreted,
			reason:  ReasonRatingOutOfRange,
			calls:   1,
		},
		{
			name:    "panic",
			payload: `{"text": "hello"}`,
			eval:    &stubEvaluator{panics: true},
			stage:   StateEvaluated,
			reason:  ReasonPanic,
			calls:   1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir, err := storage.NewDir(t.TempDir())
			require.NoError(t, err)
			p := newTestProcessor(t, tt.eval, dir, tt.policy)

			out := p.Process(context.Background(), decode(t, tt.payload), testPersona)

			assert.False(t, out.Written())
			assert.Equal(t, StateSkipped, out.State)
			assert.Equal(t, tt.stage, out.Stage)
			assert.Equal(t, tt.reason, out.Reason)
			assert.Error(t, out.Err)
			assert.Nil(t, out.Record)
			assert.Equal(t, tt.calls, tt.eval.calls)

			_, err = dir.Read(context.Background(), "task.json")
			assert.ErrorIs(t, err, storage.ErrNotFound, "skipped task must not produce output")
		})
	}
}

func TestProcess_WriteFailure(t *testing.T) {
	p := newTestProcessor(t, &stubEvaluator{response: goodResponse}, failingSink{}, evaluator.PolicyPassthrough)

	out := p.Process(context.Background(), decode(t, `{"text": "hello"}`), testPersona)

	assert.Equal(t, StateSkipped, out.State)
	assert.Equal(t, StateWritten, out.Stage)
	assert.Equal(t, ReasonWriteFailed, out.Reason)
	assert.Equal(t, model.KindText, out.Kind)
}

func TestProcess_ExtractionFailure(t *testing.T) {
	p := NewProcessor(
		NewNormalizer(&stubPages{err: errors.New("403")}, 100, nil),
		&stubEvaluator{response: goodResponse},
		evaluator.NewInterpreter(evaluator.PolicyPassthrough),
		annotation.NewAssembler(model.AnnotationConfig{}),
		failingSink{},
		nil,
		nil,
	)

	out := p.Process(context.Background(), decode(t, `{"url": "https://example.com/page"}`), testPersona)

	assert.Equal(t, StateNormalized, out.Stage)
	assert.Equal(t, ReasonExtractionFailed, out.Reason)
}

func TestSkip(t *testing.T) {
	err := errors.New("gone")
	out := Skip("a.json", StateFetched, ReasonReadFailed, err)

	assert.Equal(t, "a.json", out.Name)
	assert.Equal(t, StateSkipped, out.State)
	assert.Equal(t, StateFetched, out.Stage)
	assert.ErrorIs(t, out.Err, err)
	assert.False(t, out.Written())
}

func TestEncodeRecord(t *testing.T) {
	data, err := EncodeRecord(model.AnnotationRecord{ID: 3, CreatedUsername: "a & b <c>"})
	require.NoError(t, err)

	s := string(data)
	assert.Contains(t, s, `"created_username": "a & b <c>"`)
	assert.Contains(t, s, "\n  \"id\": 3,")
	assert.NotEqual(t, byte('\n'), s[len(s)-1])
}
