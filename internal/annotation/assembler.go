package annotation

import (
	"encoding/json"
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/google/uuid"

	"github.com/openpaws/synthfeedback/internal/model"
)

// TimeFormat renders UTC timestamps with microseconds and a Z suffix.
const TimeFormat = "2006-01-02T15:04:05.000000Z"

const (
	originManual = "manual"
	maxRecordID  = 1_000_000
)

// Assembler turns evaluation results into annotation records.
type Assembler struct {
	project int
	toName  string
	now     func() time.Time
	newID   func() string
	rng     *rand.Rand
}

// Option configures an Assembler.
type Option func(*Assembler)

// WithClock sets the time source.
func WithClock(now func() time.Time) Option {
	return func(a *Assembler) { a.now = now }
}

// WithIDs sets the result entry id source.
func WithIDs(newID func() string) Option {
	return func(a *Assembler) { a.newID = newID }
}

// WithRand sets the source of record ids and lead times.
func WithRand(rng *rand.Rand) Option {
	return func(a *Assembler) { a.rng = rng }
}

// NewAssembler creates an Assembler stamping records with cfg's project and target name.
func NewAssembler(cfg model.AnnotationConfig, opts ...Option) *Assembler {
	a := &Assembler{
		project: cfg.Project,
		toName:  cfg.ToName,
		now:     time.Now,
		newID:   uuid.NewString,
		rng:     rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
	if a.toName == "" {
		a.toName = "chat"
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Assemble builds the record for task as judged by persona p. task.Seq is the
// persona round-robin count and fills the sequence fields of the envelope.
func (a *Assembler) Assemble(result model.EvaluationResult, p model.Persona, task model.Task, kind model.ContentKind) model.AnnotationRecord {
	ts := a.now().UTC().Format(TimeFormat)
	recordID := a.rng.IntN(maxRecordID) + 1

	entries := make([]model.ResultEntry, 0, len(Schema))
	for _, f := range Schema {
		entries = append(entries, model.ResultEntry{
			ID:       a.newID(),
			FromName: f.Name,
			ToName:   a.toName,
			Type:     string(f.Type),
			Value:    f.Value(result),
			Origin:   originManual,
		})
	}

	taskID, data := echo(task, recordID)

	return model.AnnotationRecord{
		ID:              recordID,
		CreatedUsername: fmt.Sprintf("%s %s, %d", p.DisplayName(), p.Email, task.Seq),
		CreatedAgo:      "0 minutes",
		CompletedBy: model.CompletedBy{
			ID:        p.ID,
			FirstName: p.FirstName,
			LastName:  p.LastName,
			Email:     p.Email,
			Persona:   p,
		},
		DraftCreatedAt: ts,
		Task: model.TaskEnvelope{
			ID:               taskID,
			Data:             data,
			Meta:             map[string]any{"content_kind": string(kind)},
			CreatedAt:        ts,
			UpdatedAt:        ts,
			IsLabeled:        true,
			Overlap:          1,
			InnerID:          task.Seq,
			TotalAnnotations: 1,
			Project:          a.project,
			UpdatedBy:        task.Seq,
			CommentAuthors:   []int{},
		},
		Project:   a.project,
		UpdatedBy: task.Seq,
		Result:    entries,
		CreatedAt: ts,
		UpdatedAt: ts,
		LeadTime:  1 + a.rng.Float64()*99,
	}
}

// echo picks the task id and data for the envelope. A Label-Studio task
// ({"id": n, "data": {...}}) keeps its own id and data; anything else is
// echoed whole under the record id.
func echo(task model.Task, fallbackID int) (int, any) {
	payload := task.Echo()

	obj, ok := payload.(map[string]any)
	if !ok {
		return fallbackID, payload
	}
	data, ok := obj["data"].(map[string]any)
	if !ok {
		return fallbackID, payload
	}

	id := fallbackID
	if n, ok := obj["id"].(json.Number); ok {
		if v, err := n.Int64(); err == nil {
			id = int(v)
		}
	}
	return id, data
}
