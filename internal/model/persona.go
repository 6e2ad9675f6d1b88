package model

// SpeciesHuman is the species tag of human personas.
const SpeciesHuman = "Human"

// Persona is a synthetic evaluator identity. Personas are generated once per
// process and never mutated afterwards.
//
// The human-only attributes live behind an embedded pointer so that they are
// absent, not blank, on non-human personas: encoding/json skips the fields of
// a nil embedded struct pointer.
type Persona struct {
	ID        int    `json:"id"` // 1-based position in the pool
	Email     string `json:"email"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Species   string `json:"species"`
	Role      string `json:"role_in_animal_advocacy"` // advocacy role for humans, situation for animals

	*HumanProfile
}

// IsHuman reports whether the persona is a human evaluator.
func (p Persona) IsHuman() bool {
	return p.Species == SpeciesHuman
}

// DisplayName returns "First Last".
func (p Persona) DisplayName() string {
	return p.FirstName + " " + p.LastName
}

// HumanProfile holds the demographic and psychometric attributes of a human persona.
type HumanProfile struct {
	AdvocateForAnimals   string `json:"advocate_for_animals"` // Yes or No
	LifestyleDiet        string `json:"current_lifestyle_diet"`
	Age                  int    `json:"age"`
	Gender               string `json:"gender"`
	Ethnicity            string `json:"ethnicity"`
	Country              string `json:"country"`
	EducationLevel       string `json:"education_level"`
	IncomeLevel          string `json:"income_level"`
	PoliticalAffiliation string `json:"political_affiliation"`
	ReligiousAffiliation string `json:"religious_affiliation"`

	AdvocacyApproach
	Personality
}

// AdvocacyApproach places a persona on six advocacy-strategy axes, each in [0,1].
type AdvocacyApproach struct {
	IncrementalistVsAbolitionist   float64 `json:"incrementalist_vs_abolitionist"`
	IndividualVsInstitutional      float64 `json:"individual_vs_institutional"`
	SingleIssueVsIntersectional    float64 `json:"solely_on_animal_activism_vs_intersectional"`
	WelfareVsRights                float64 `json:"focus_on_welfare_vs_rights"`
	DiplomaticVsConfrontational    float64 `json:"diplomatic_vs_confrontational"`
	IntuitiveVsEmpiricalEfficiency float64 `json:"intuitive_vs_empirical_effectiveness"`
}

// Personality holds Big Five trait scores, each in [0,1].
type Personality struct {
	Openness          float64 `json:"openness_to_experience"`
	Conscientiousness float64 `json:"conscientiousness"`
	Extraversion      float64 `json:"extraversion"`
	Agreeableness     float64 `json:"agreeableness"`
	Neuroticism       float64 `json:"neuroticism"`
}

// Scores returns the eleven continuous attributes in a fixed order:
// the six advocacy axes followed by the five personality traits.
func (h *HumanProfile) Scores() []float64 {
	a, p := h.AdvocacyApproach, h.Personality
	return []float64{
		a.IncrementalistVsAbolitionist,
		a.IndividualVsInstitutional,
		a.SingleIssueVsIntersectional,
		a.WelfareVsRights,
		a.DiplomaticVsConfrontational,
		a.IntuitiveVsEmpiricalEfficiency,
		p.Openness,
		p.Conscientiousness,
		p.Extraversion,
		p.Agreeableness,
		p.Neuroticism,
	}
}
