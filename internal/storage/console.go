package storage

import (
	"context"
	"fmt"
	"io"
	"sync"
)

// Console is a dry-run Sink that prints records instead of storing them.
type Console struct {
	mu sync.Mutex
	w  io.Writer
}

// NewConsole creates a Console writing to w.
func NewConsole(w io.Writer) *Console {
	return &Console{w: w}
}

// Write prints the object name and its content.
func (c *Console) Write(_ context.Context, name string, data []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := fmt.Fprintf(c.w, "DRYRUN: Processed %s\n%s\n", name, data); err != nil {
		return fmt.Errorf("console write %s: %w", name, err)
	}
	return nil
}
