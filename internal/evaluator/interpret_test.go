package evaluator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openpaws/synthfeedback/internal/model"
)

func TestStripMarkdownFences(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "plain JSON unchanged",
			input: `{"explanation": "fine", "rating_insight": 4}`,
			want:  `{"explanation": "fine", "rating_insight": 4}`,
		},
		{
			name:  "fenced json block",
			input: "```json\n{\"rating_insight\": 4}\n```",
			want:  `{"rating_insight": 4}`,
		},
		{
			name:  "fenced without language",
			input: "```\n{\"rating_insight\": 4}\n```",
			want:  `{"rating_insight": 4}`,
		},
		{
			name:  "fenced with whitespace",
			input: "  ```json\n{\"key\": \"value\"}\n```  ",
			want:  `{"key": "value"}`,
		},
		{
			name:  "multiline JSON in fences",
			input: "```json\n{\n  \"a\": 1,\n  \"b\": 2\n}\n```",
			want:  "{\n  \"a\": 1,\n  \"b\": 2\n}",
		},
		{
			name:  "empty string",
			input: "",
			want:  "",
		},
		{
			name:  "only fences no content",
			input: "```json\n```",
			want:  "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := stripMarkdownFences(tt.input)
			if got != tt.want {
				t.Errorf("stripMarkdownFences(%q) =\n  %q\nwant:\n  %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestInterpret_FullResponse(t *testing.T) {
	raw := `{
		"is_content_harmful_to_animals": "Yes",
		"explanation": "Promotes battery cages.",
		"rating_effect_on_animals": 1,
		"rating_cultural_sensitivity": 2,
		"rating_relevance": 5,
		"rating_insight": 2,
		"rating_trustworthiness": 3,
		"rating_emotional_impact": 4,
		"rating_rationality": 2,
		"rating_influence": 1,
		"rating_alignment": 1
	}`

	got, err := NewInterpreter(PolicyPassthrough).Interpret(raw)
	require.NoError(t, err)
	assert.Equal(t, "Yes", got.Harmful)
	assert.Equal(t, "Promotes battery cages.", got.Explanation)
	assert.Equal(t, 1, got.Ratings["rating_effect_on_animals"])
	assert.Equal(t, 5, got.Ratings["rating_relevance"])
	assert.Len(t, got.Ratings, len(model.RatingFields))
}

func TestInterpret_Defaults(t *testing.T) {
	got, err := NewInterpreter(PolicyPassthrough).Interpret(`{"rating_insight": 4}`)
	require.NoError(t, err)

	want := model.DefaultEvaluation()
	want.Ratings["rating_insight"] = 4
	assert.Equal(t, want, got)
	assert.Equal(t, "No", got.Harmful)
	assert.Equal(t, "", got.Explanation)
	assert.Equal(t, 3, got.Ratings["rating_alignment"])
}

func TestInterpret_WrongTypesTakeDefaults(t *testing.T) {
	raw := `{
		"is_content_harmful_to_animals": "Maybe",
		"explanation": 42,
		"rating_relevance": "high",
		"rating_insight": 3.5,
		"rating_alignment": null,
		"rating_influence": [4]
	}`

	got, err := NewInterpreter(PolicyPassthrough).Interpret(raw)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultEvaluation(), got)
}

func TestInterpret_LenientValues(t *testing.T) {
	raw := "```json\n" + `{
		"is_content_harmful_to_animals": "yes",
		"rating_relevance": "4",
		"rating_insight": 5.0,
		"rating_alignment": " 2 "
	}` + "\n```"

	got, err := NewInterpreter(PolicyPassthrough).Interpret(raw)
	require.NoError(t, err)
	assert.Equal(t, "Yes", got.Harmful)
	assert.Equal(t, 4, got.Ratings["rating_relevance"])
	assert.Equal(t, 5, got.Ratings["rating_insight"])
	assert.Equal(t, 2, got.Ratings["rating_alignment"])
}

func TestInterpret_BoolHarmFlag(t *testing.T) {
	got, err := NewInterpreter("").Interpret(`{"is_content_harmful_to_animals": true}`)
	require.NoError(t, err)
	assert.Equal(t, "Yes", got.Harmful)
}

func TestInterpret_ProseAroundObject(t *testing.T) {
	got, err := NewInterpreter("").Interpret(`Here is my evaluation: {"rating_influence": 5} Thanks!`)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Ratings["rating_influence"])
}

func TestInterpret_ParseFailure(t *testing.T) {
	for _, raw := range []string{
		"",
		"not json at all",
		`[1, 2, 3]`,
		`"a string"`,
		`{"rating_insight": 4`,
	} {
		_, err := NewInterpreter("").Interpret(raw)
		assert.ErrorIs(t, err, ErrParse, "input %q", raw)
	}
}

func TestInterpret_RatingPolicies(t *testing.T) {
	raw := `{"rating_relevance": 7, "rating_insight": 0, "rating_alignment": 5}`

	got, err := NewInterpreter(PolicyPassthrough).Interpret(raw)
	require.NoError(t, err)
	assert.Equal(t, 7, got.Ratings["rating_relevance"])
	assert.Equal(t, 0, got.Ratings["rating_insight"])

	got, err = NewInterpreter(PolicyClamp).Interpret(raw)
	require.NoError(t, err)
	assert.Equal(t, 5, got.Ratings["rating_relevance"])
	assert.Equal(t, 1, got.Ratings["rating_insight"])
	assert.Equal(t, 5, got.Ratings["rating_alignment"])

	_, err = NewInterpreter(PolicyReject).Interpret(raw)
	assert.ErrorIs(t, err, ErrRatingOutOfRange)

	_, err = NewInterpreter(PolicyReject).Interpret(`{"rating_alignment": 5}`)
	assert.NoError(t, err)
}

func TestParseRatingPolicy(t *testing.T) {
	tests := []struct {
		in      string
		want    RatingPolicy
		wantErr bool
	}{
		{"", PolicyPassthrough, false},
		{"passthrough", PolicyPassthrough, false},
		{"Clamp", PolicyClamp, false},
		{" reject ", PolicyReject, false},
		{"strict", "", true},
	}
	for _, tt := range tests {
		got, err := ParseRatingPolicy(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseRatingPolicy(%q) error = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseRatingPolicy(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
