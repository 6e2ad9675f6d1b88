// Package ledger remembers which input objects have been processed so the
// polling loop does not evaluate the same task again on every cycle.
package ledger

import (
	"context"
	"time"
)

// Status is the recorded state of one input object.
type Status string

const (
	StatusWritten Status = "written" // record produced; never reprocessed
	StatusSkipped Status = "skipped" // failed; retried on later polls
	StatusParked  Status = "parked"  // failed too often; no longer retried
)

// Entry is the ledger row for one object.
type Entry struct {
	Name      string    `json:"name"`
	Status    Status    `json:"status"`
	Attempts  int       `json:"attempts"`
	LastError string    `json:"last_error,omitempty"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Stats counts entries per status.
type Stats struct {
	Written int `json:"written"`
	Skipped int `json:"skipped"`
	Parked  int `json:"parked"`
}

// Ledger records task outcomes.
type Ledger interface {
	// ShouldProcess reports whether name is still pending.
	ShouldProcess(ctx context.Context, name string) (bool, error)

	// Record stores the outcome of one attempt. reason is empty for StatusWritten.
	Record(ctx context.Context, name string, status Status, reason string) error

	Close() error
}

// Nop processes every object on every poll and remembers nothing.
type Nop struct{}

func (Nop) ShouldProcess(context.Context, string) (bool, error)  { return true, nil }
func (Nop) Record(context.Context, string, Status, string) error { return nil }
func (Nop) Close() error                                         { return nil }
