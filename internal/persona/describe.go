package persona

import (
	"fmt"
	"strings"

	"github.com/openpaws/synthfeedback/internal/model"
)

// scale names one continuous attribute and the words for its two ends.
type scale struct {
	label string
	low   string
	high  string
}

// scales is aligned with (*model.HumanProfile).Scores.
var scales = []scale{
	{"Approach to change", "incrementalist", "abolitionist"},
	{"Focus of advocacy", "individual-focused", "institution-focused"},
	{"Scope of activism", "focused solely on animals", "intersectional"},
	{"Welfare versus rights", "welfare-focused", "rights-focused"},
	{"Advocacy style", "diplomatic", "confrontational"},
	{"Judging effectiveness", "intuitive", "empirical"},
	{"Openness to experience", "closed to new experiences", "open to new experiences"},
	{"Conscientiousness", "spontaneous", "conscientious"},
	{"Extraversion", "introverted", "extraverted"},
	{"Agreeableness", "challenging", "agreeable"},
	{"Neuroticism", "emotionally stable", "emotionally reactive"},
}

// ScaleTerm maps a [0,1] score to a descriptive term.
func ScaleTerm(value float64, low, high string) string {
	switch {
	case value < 0.25:
		return "Highly " + low
	case value < 0.5:
		return "Moderately " + low
	case value < 0.75:
		return "Moderately " + high
	default:
		return "Highly " + high
	}
}

// Describe renders the persona as the opening fragment of an evaluation prompt.
func Describe(p model.Persona) string {
	var b strings.Builder

	if !p.IsHuman() {
		species := strings.ToLower(p.Species)
		fmt.Fprintf(&b, "You are %s, a synthetic evaluator who is not human.\n", p.DisplayName())
		fmt.Fprintf(&b, "Species: %s\n", p.Species)
		fmt.Fprintf(&b, "Situation: %s\n\n", p.Role)
		fmt.Fprintf(&b, "Evaluate the content from the perspective of a %s %s: "+
			"what it would mean for your life, your body and others of your kind.", species, p.Role)
		return b.String()
	}

	h := p.HumanProfile
	fmt.Fprintf(&b, "You are %s, a synthetic human evaluator.\n", p.DisplayName())
	fmt.Fprintf(&b, "Role in animal advocacy: %s\n", p.Role)
	fmt.Fprintf(&b, "Advocates for animals: %s\n", h.AdvocateForAnimals)
	fmt.Fprintf(&b, "Current lifestyle/diet: %s\n", h.LifestyleDiet)
	fmt.Fprintf(&b, "Age: %d\n", h.Age)
	fmt.Fprintf(&b, "Gender: %s\n", h.Gender)
	fmt.Fprintf(&b, "Ethnicity: %s\n", h.Ethnicity)
	fmt.Fprintf(&b, "Country: %s\n", h.Country)
	fmt.Fprintf(&b, "Education level: %s\n", h.EducationLevel)
	fmt.Fprintf(&b, "Income level: %s\n", h.IncomeLevel)
	fmt.Fprintf(&b, "Political affiliation: %s\n", h.PoliticalAffiliation)
	fmt.Fprintf(&b, "Religious affiliation: %s\n", h.ReligiousAffiliation)

	b.WriteString("\nApproach to animal advocacy and personality:\n")
	for i, v := range h.Scores() {
		s := scales[i]
		fmt.Fprintf(&b, "- %s: %s (%.2f)\n", s.label, ScaleTerm(v, s.low, s.high), v)
	}

	b.WriteString("\nEvaluate the content as this person would, letting these attributes shape your judgment.")
	return b.String()
}
