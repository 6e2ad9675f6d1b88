package worker

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"time"

	"go.uber.org/zap"

	"github.com/openpaws/synthfeedback/internal/ledger"
	"github.com/openpaws/synthfeedback/internal/model"
	"github.com/openpaws/synthfeedback/internal/persona"
	"github.com/openpaws/synthfeedback/internal/pipeline"
	"github.com/openpaws/synthfeedback/internal/storage"
	"github.com/openpaws/synthfeedback/internal/telemetry"
)

// TaskProcessor runs one decoded task through the pipeline.
// pipeline.Processor implements it.
type TaskProcessor interface {
	Process(ctx context.Context, task model.Task, p model.Persona) pipeline.Outcome
}

// Deps are the collaborators of the polling loop.
type Deps struct {
	Processor TaskProcessor
	Source    storage.Source
	Ledger    ledger.Ledger       // nil means ledger.Nop
	Personas  *persona.RoundRobin // advanced once per pending task
	Logger    *zap.Logger
	Metrics   *telemetry.Metrics // may be nil
}

// Options shape the polling cadence.
type Options struct {
	Suffix        string        // object name suffix of task files
	Limit         int           // listing cap per poll, 0 for none
	IdleInterval  time.Duration // sleep when a poll found nothing pending
	BatchInterval time.Duration // sleep after a poll that processed tasks
	Once          bool          // stop after a single poll
}

// CycleStats summarizes one poll.
type CycleStats struct {
	Listed  int
	Pending int
	Written int
	Skipped int
}

// sleepFunc waits for d or until ctx is done. Tests replace it.
var sleepFunc = sleepContext

// Poller lists the input store, processes every pending task in shuffled
// order, sleeps, and repeats. Tasks are handled one at a time.
type Poller struct {
	deps Deps
	opts Options
	rng  *rand.Rand
}

// NewPoller creates a Poller.
func NewPoller(deps Deps, opts Options) *Poller {
	if deps.Ledger == nil {
		deps.Ledger = ledger.Nop{}
	}
	if deps.Logger == nil {
		deps.Logger = zap.NewNop()
	}
	return &Poller{
		deps: deps,
		opts: opts,
		rng:  rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64())),
	}
}

// Run polls until ctx is cancelled, or once when Options.Once is set.
// Cancellation is a normal stop and returns nil.
func (p *Poller) Run(ctx context.Context) error {
	log := p.deps.Logger
	log.Info("Polling started",
		zap.String("suffix", p.opts.Suffix),
		zap.Int("limit", p.opts.Limit),
		zap.Int("personas", len(p.deps.Personas.Pool())),
	)

	for {
		stats, err := p.PollOnce(ctx)
		if ctx.Err() != nil {
			log.Info("Polling stopped")
			return nil
		}
		if err != nil {
			if p.opts.Once {
				return err
			}
			log.Error("Poll failed", zap.Error(err))
		}
		if p.opts.Once {
			return nil
		}

		wait := p.opts.IdleInterval
		if stats.Pending > 0 {
			wait = p.opts.BatchInterval
		} else {
			log.Info("No pending tasks", zap.Duration("sleep", wait))
		}
		if err := sleepFunc(ctx, wait); err != nil {
			log.Info("Polling stopped")
			return nil
		}
	}
}

// PollOnce lists the input store and processes each pending task.
func (p *Poller) PollOnce(ctx context.Context) (CycleStats, error) {
	var stats CycleStats

	objects, err := p.deps.Source.List(ctx, p.opts.Suffix, p.opts.Limit)
	if err != nil {
		p.deps.Metrics.RecordPoll(ctx, "error")
		return stats, fmt.Errorf("list tasks: %w", err)
	}
	stats.Listed = len(objects)

	p.rng.Shuffle(len(objects), func(i, j int) { objects[i], objects[j] = objects[j], objects[i] })

	for _, obj := range objects {
		if ctx.Err() != nil {
			break
		}

		pending, err := p.deps.Ledger.ShouldProcess(ctx, obj.Name)
		if err != nil {
			p.deps.Logger.Warn("Ledger lookup failed", zap.String("object", obj.Name), zap.Error(err))
			continue
		}
		if !pending {
			continue
		}
		stats.Pending++

		who, seq := p.deps.Personas.Next()
		out := p.processObject(ctx, obj.Name, who, seq)
		if out.Written() {
			stats.Written++
		} else {
			stats.Skipped++
		}
		p.record(ctx, out)
	}

	result := "idle"
	if stats.Pending > 0 {
		result = "batch"
	}
	p.deps.Metrics.RecordPoll(ctx, result)

	p.deps.Logger.Debug("Poll finished",
		zap.Int("listed", stats.Listed),
		zap.Int("pending", stats.Pending),
		zap.Int("written", stats.Written),
		zap.Int("skipped", stats.Skipped),
	)
	return stats, nil
}

// processObject reads and decodes one task file and hands it to the processor.
// A panic anywhere in here costs only this task.
func (p *Poller) processObject(ctx context.Context, name string, who model.Persona, seq int) (out pipeline.Outcome) {
	defer func() {
		if r := recover(); r != nil {
			out = pipeline.Skip(name, pipeline.StateFetched, pipeline.ReasonPanic, fmt.Errorf("panic: %v", r))
			out.PersonaID = who.ID
			p.deps.Logger.Error("Recovered from panic", zap.String("object", name), zap.Any("panic", r))
		}
	}()

	data, err := p.deps.Source.Read(ctx, name)
	if err != nil {
		return p.skipFetch(ctx, name, who, pipeline.ReasonReadFailed, err)
	}
	task, err := model.DecodeTask(name, data)
	if err != nil {
		return p.skipFetch(ctx, name, who, pipeline.ReasonDecodeFailed, err)
	}
	task.Seq = seq

	return p.deps.Processor.Process(ctx, task, who)
}

func (p *Poller) skipFetch(ctx context.Context, name string, who model.Persona, reason string, err error) pipeline.Outcome {
	out := pipeline.Skip(name, pipeline.StateFetched, reason, err)
	out.PersonaID = who.ID
	p.deps.Metrics.RecordTask(ctx, string(out.State), string(out.Stage))
	p.deps.Logger.Warn("Task skipped",
		zap.String("object", name),
		zap.Int("persona_id", who.ID),
		zap.String("state", string(out.Stage)),
		zap.String("reason", reason),
		zap.Error(err),
	)
	return out
}

// record stores the outcome in the ledger. Attempts cut short by shutdown
// are not counted against the object.
func (p *Poller) record(ctx context.Context, out pipeline.Outcome) {
	if !out.Written() && (errors.Is(out.Err, context.Canceled) || ctx.Err() != nil) {
		return
	}

	status, reason := ledger.StatusWritten, ""
	if !out.Written() {
		status = ledger.StatusSkipped
		reason = out.Reason
		if out.Err != nil {
			reason = fmt.Sprintf("%s: %v", out.Reason, out.Err)
		}
	}

	// A written record is noted even when shutdown began after the write.
	if err := p.deps.Ledger.Record(context.WithoutCancel(ctx), out.Name, status, reason); err != nil {
		p.deps.Logger.Warn("Ledger update failed", zap.String("object", out.Name), zap.Error(err))
	}
}

func sleepContext(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
