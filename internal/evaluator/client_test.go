package evaluator

import (
	"context"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"

	"github.com/openpaws/synthfeedback/internal/llm"
	"github.com/openpaws/synthfeedback/internal/model"
)

type captureProvider struct {
	req  llm.Request
	text string
	err  error
}

func (c *captureProvider) Name() string  { return "capture" }
func (c *captureProvider) Model() string { return "capture-1" }

func (c *captureProvider) Generate(_ context.Context, req llm.Request) (*llm.Response, error) {
	c.req = req
	if c.err != nil {
		return nil, c.err
	}
	return &llm.Response{Text: c.text, Model: "capture-1", InputTokens: 10, OutputTokens: 5}, nil
}

func TestClient_Evaluate_PromptOrder(t *testing.T) {
	provider := &captureProvider{text: `{"rating_insight": 4}`}
	client := NewClient(provider, 512, zaptest.NewLogger(t), nil)

	p := model.Persona{ID: 3, FirstName: "FirstName1", LastName: "LastName2", Species: "Goat", Role: "in a sanctuary"}
	content := model.NormalizedContent{
		Kind: model.KindImage,
		Fragments: []model.Fragment{
			model.TextFragment("Please evaluate the following image and provide your feedback:"),
			model.ImageFragment("https://x/goat.jpg", "image/jpeg"),
		},
	}

	raw, err := client.Evaluate(context.Background(), p, content)
	require.NoError(t, err)
	assert.Equal(t, `{"rating_insight": 4}`, raw)

	req := provider.req
	assert.Equal(t, SystemPrompt, req.System)
	assert.True(t, req.JSON)
	assert.Equal(t, 512, req.MaxTokens)
	require.Len(t, req.Parts, 3)
	assert.Contains(t, req.Parts[0].Text, "Species: Goat")
	assert.Equal(t, content.Fragments, req.Parts[1:])
}

func TestClient_Evaluate_Failure(t *testing.T) {
	provider := &captureProvider{err: llm.ErrRetriesExhausted}
	client := NewClient(provider, 0, nil, nil)

	_, err := client.Evaluate(context.Background(), model.Persona{Species: "Cow"}, model.NormalizedContent{})
	assert.True(t, errors.Is(err, llm.ErrRetriesExhausted))
}

func TestSystemPrompt_DefinesEveryField(t *testing.T) {
	require.NotEmpty(t, SystemPrompt)
	for _, field := range append([]string{model.FieldHarmful, model.FieldExplanation}, model.RatingFields...) {
		assert.True(t, strings.Contains(SystemPrompt, field), "system prompt missing %s", field)
	}
	assert.Contains(t, SystemPrompt, "raw JSON only")
}
