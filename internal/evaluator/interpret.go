package evaluator

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/openpaws/synthfeedback/internal/model"
)

var (
	// ErrParse is returned when a model response is not a JSON object.
	ErrParse = errors.New("unparseable model response")

	// ErrRatingOutOfRange is returned under PolicyReject for ratings outside 1..5.
	ErrRatingOutOfRange = errors.New("rating out of range")
)

// RatingPolicy decides what happens to integer ratings outside 1..5.
type RatingPolicy string

const (
	PolicyPassthrough RatingPolicy = "passthrough" // keep the value as given
	PolicyClamp       RatingPolicy = "clamp"       // move it to the nearest bound
	PolicyReject      RatingPolicy = "reject"      // fail the whole response
)

const (
	minRating = 1
	maxRating = 5
)

// ParseRatingPolicy validates a configured policy name. Empty means passthrough.
func ParseRatingPolicy(s string) (RatingPolicy, error) {
	switch p := RatingPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case "":
		return PolicyPassthrough, nil
	case PolicyPassthrough, PolicyClamp, PolicyReject:
		return p, nil
	default:
		return "", fmt.Errorf("unknown rating policy %q (supported: passthrough, clamp, reject)", s)
	}
}

// Interpreter reads model responses into evaluation results.
type Interpreter struct {
	policy RatingPolicy
}

// NewInterpreter creates an Interpreter applying policy to ratings.
func NewInterpreter(policy RatingPolicy) *Interpreter {
	if policy == "" {
		policy = PolicyPassthrough
	}
	return &Interpreter{policy: policy}
}

// Interpret parses raw into a result. Each field is read on its own; a missing
// or wrongly typed field takes its default instead of failing the response.
func (i *Interpreter) Interpret(raw string) (model.EvaluationResult, error) {
	fields, err := decodeObject(raw)
	if err != nil {
		return model.EvaluationResult{}, err
	}

	result := model.DefaultEvaluation()
	if v, ok := harmFlag(fields[model.FieldHarmful]); ok {
		result.Harmful = v
	}
	if v, ok := fields[model.FieldExplanation].(string); ok {
		result.Explanation = v
	}

	for _, name := range model.RatingFields {
		v, ok := rating(fields[name])
		if !ok {
			continue
		}
		if v < minRating || v > maxRating {
			switch i.policy {
			case PolicyReject:
				return model.EvaluationResult{}, fmt.Errorf("%w: %s = %d", ErrRatingOutOfRange, name, v)
			case PolicyClamp:
				v = min(max(v, minRating), maxRating)
			}
		}
		result.Ratings[name] = v
	}

	return result, nil
}

// decodeObject parses a JSON object, tolerating markdown fences and prose
// around the object.
func decodeObject(raw string) (map[string]any, error) {
	text := stripMarkdownFences(raw)

	fields, err := unmarshalObject(text)
	if err == nil {
		return fields, nil
	}
	if start, end := strings.IndexByte(text, '{'), strings.LastIndexByte(text, '}'); start >= 0 && end > start {
		if fields, err2 := unmarshalObject(text[start : end+1]); err2 == nil {
			return fields, nil
		}
	}
	return nil, fmt.Errorf("%w: %v", ErrParse, err)
}

func unmarshalObject(text string) (map[string]any, error) {
	dec := json.NewDecoder(bytes.NewReader([]byte(text)))
	dec.UseNumber()

	var v any
	if err := dec.Decode(&v); err != nil {
		return nil, err
	}
	if dec.More() {
		return nil, errors.New("trailing data after JSON value")
	}
	fields, ok := v.(map[string]any)
	if !ok {
		return nil, fmt.Errorf("expected a JSON object, got %T", v)
	}
	return fields, nil
}

// stripMarkdownFences removes a surrounding ```json ... ``` block.
func stripMarkdownFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}

	// Drop the opening fence line, language tag included.
	if idx := strings.IndexByte(s, '\n'); idx >= 0 {
		s = s[idx+1:]
	} else {
		s = strings.TrimPrefix(s, "```")
	}
	s = strings.TrimSpace(s)
	s = strings.TrimSuffix(s, "```")
	return strings.TrimSpace(s)
}

func harmFlag(v any) (string, bool) {
	switch t := v.(type) {
	case bool:
		if t {
			return "Yes", true
		}
		return "No", true
	case string:
		switch strings.ToLower(strings.TrimSpace(t)) {
		case "yes":
			return "Yes", true
		case "no":
			return "No", true
		}
	}
	return "", false
}

// rating accepts integral JSON numbers and numeric strings.
func rating(v any) (int, bool) {
	var s string
	switch t := v.(type) {
	case json.Number:
		s = t.String()
	case string:
		s = strings.TrimSpace(t)
	default:
		return 0, false
	}

	if n, err := strconv.Atoi(s); err == nil {
		return n, true
	}
	f, err := strconv.ParseFloat(s, 64)
	if err != nil || f != math.Trunc(f) || math.Abs(f) > math.MaxInt32 {
		return 0, false
	}
	return int(f), true
}
