// Package annotation builds the labeling-tool records written for each task.
package annotation

import "github.com/openpaws/synthfeedback/internal/model"

// FieldType is the labeling control a result entry belongs to.
type FieldType string

const (
	TypeChoices  FieldType = "choices"
	TypeTextarea FieldType = "textarea"
	TypeRating   FieldType = "rating"
)

// Field is one row of the output schema.
type Field struct {
	Name string
	Type FieldType
}

// Schema lists the result entries of every record, in output order.
var Schema = buildSchema()

func buildSchema() []Field {
	fields := []Field{
		{Name: model.FieldHarmful, Type: TypeChoices},
		{Name: model.FieldExplanation, Type: TypeTextarea},
	}
	for _, name := range model.RatingFields {
		fields = append(fields, Field{Name: name, Type: TypeRating})
	}
	return fields
}

// Value shapes the field's value from r the way the labeling tool expects it.
func (f Field) Value(r model.EvaluationResult) any {
	switch f.Type {
	case TypeChoices:
		return map[string]any{"choices": []string{r.Harmful}}
	case TypeTextarea:
		return map[string]any{"text": []string{r.Explanation}}
	default:
		rating, ok := r.Ratings[f.Name]
		if !ok {
			rating = model.DefaultRating
		}
		return map[string]any{"rating": rating}
	}
}
