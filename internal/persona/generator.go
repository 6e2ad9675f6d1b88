// Package persona builds the pool of synthetic evaluators and renders each
// persona as a prompt fragment.
package persona

import (
	"fmt"
	"math"
	"math/rand/v2"

	"github.com/google/uuid"
	"github.com/openpaws/synthfeedback/internal/model"
)

const (
	humanProbability = 0.5
	minAge, maxAge   = 18, 90
	maxNameSuffix    = 10000
)

// Generator draws synthetic personas from the static pools.
type Generator struct {
	rng   *rand.Rand
	newID func() string
}

// NewGenerator returns a generator using rng. A nil rng uses a randomly seeded source.
func NewGenerator(rng *rand.Rand) *Generator {
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	return &Generator{rng: rng, newID: uuid.NewString}
}

// Generate returns n personas with ids 1..n.
func (g *Generator) Generate(n int) []model.Persona {
	personas := make([]model.Persona, 0, n)
	for i := 1; i <= n; i++ {
		personas = append(personas, g.one(i))
	}
	return personas
}

func (g *Generator) one(id int) model.Persona {
	p := model.Persona{
		ID:        id,
		Email:     fmt.Sprintf("synthetic_user_%s@example.com", g.newID()),
		FirstName: fmt.Sprintf("FirstName%d", g.rng.IntN(maxNameSuffix)+1),
		LastName:  fmt.Sprintf("LastName%d", g.rng.IntN(maxNameSuffix)+1),
	}

	if g.rng.Float64() >= humanProbability {
		p.Species = g.pick(NonHumanSpecies)
		p.Role = g.pick(NonHumanRoles)
		return p
	}

	p.Species = model.SpeciesHuman
	p.Role = g.pick(HumanRoles)
	p.HumanProfile = &model.HumanProfile{
		AdvocateForAnimals:   g.pick(AdvocateOptions),
		LifestyleDiet:        g.pick(LifestyleOptions),
		Age:                  minAge + g.rng.IntN(maxAge-minAge+1),
		Gender:               g.pick(Genders),
		Ethnicity:            g.pick(Ethnicities),
		Country:              g.pick(Countries),
		EducationLevel:       g.pick(EducationLevels),
		IncomeLevel:          g.pick(IncomeLevels),
		PoliticalAffiliation: g.pick(PoliticalAffiliations),
		ReligiousAffiliation: g.pick(ReligiousAffiliations),
		AdvocacyApproach: model.AdvocacyApproach{
			IncrementalistVsAbolitionist:   g.score(),
			IndividualVsInstitutional:      g.score(),
			SingleIssueVsIntersectional:    g.score(),
			WelfareVsRights:                g.score(),
			DiplomaticVsConfrontational:    g.score(),
			IntuitiveVsEmpiricalEfficiency: g.score(),
		},
		Personality: model.Personality{
			Openness:          g.score(),
			Conscientiousness: g.score(),
			Extraversion:      g.score(),
			Agreeableness:     g.score(),
			Neuroticism:       g.score(),
		},
	}
	return p
}

func (g *Generator) pick(pool []string) string {
	return pool[g.rng.IntN(len(pool))]
}

// score draws uniformly from [0,1] rounded to two decimals.
func (g *Generator) score() float64 {
	return math.Round(g.rng.Float64()*100) / 100
}

// RoundRobin hands out personas from a fixed pool in order, wrapping around.
// It is not safe for concurrent use.
type RoundRobin struct {
	pool []model.Persona
	next int
}

// NewRoundRobin returns a RoundRobin over pool, which must not be empty.
func NewRoundRobin(pool []model.Persona) *RoundRobin {
	return &RoundRobin{pool: pool}
}

// Next returns the next persona and the 1-based count of personas handed out so far.
func (r *RoundRobin) Next() (model.Persona, int) {
	p := r.pool[r.next%len(r.pool)]
	r.next++
	return p, r.next
}

// Pool returns the underlying personas.
func (r *RoundRobin) Pool() []model.Persona {
	return r.pool
}
