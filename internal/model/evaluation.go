package model

// Evaluation field names, as requested from the model and as emitted in records.
const (
	FieldHarmful     = "is_content_harmful_to_animals"
	FieldExplanation = "explanation"
)

// RatingFields lists the nine 1-5 ratings in output order.
var RatingFields = []string{
	"rating_effect_on_animals",
	"rating_cultural_sensitivity",
	"rating_relevance",
	"rating_insight",
	"rating_trustworthiness",
	"rating_emotional_impact",
	"rating_rationality",
	"rating_influence",
	"rating_alignment",
}

// Defaults applied to any field missing or malformed in a model response.
const (
	DefaultHarmful     = "No"
	DefaultExplanation = ""
	DefaultRating      = 3
)

// EvaluationResult is the eleven-field judgment of one task.
type EvaluationResult struct {
	Harmful     string         `json:"is_content_harmful_to_animals"` // "Yes" or "No"
	Explanation string         `json:"explanation"`
	Ratings     map[string]int `json:"ratings"` // keyed by RatingFields
}

// DefaultEvaluation returns a result with every field at its default.
func DefaultEvaluation() EvaluationResult {
	ratings := make(map[string]int, len(RatingFields))
	for _, name := range RatingFields {
		ratings[name] = DefaultRating
	}
	return EvaluationResult{
		Harmful:     DefaultHarmful,
		Explanation: DefaultExplanation,
		Ratings:     ratings,
	}
}
