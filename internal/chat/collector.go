package chat

import (
	"context"
	"strings"
	"sync"

	"timesheet-assistant/internal/model"
)

// Collector is a model.Channel that buffers the reply of a request-response
// surface instead of pushing it anywhere.
type Collector struct {
	mu sync.Mutex
	t  Transcript
}

func NewCollector() *Collector {
	return &Collector{}
}

func (c *Collector) Emit(ctx context.Context, text string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Messages = append(c.t.Messages, text)
	return nil
}

func (c *Collector) Confirm(ctx context.Context, prompt string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Prompt = prompt
	return nil
}

func (c *Collector) SendFile(ctx context.Context, export model.Export) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Exports = append(c.t.Exports, export)
	return nil
}

func (c *Collector) SignalWorking(ctx context.Context) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.t.Working = true
	return nil
}

// Transcript returns a copy of what was collected so far.
func (c *Collector) Transcript() Transcript {
	c.mu.Lock()
	defer c.mu.Unlock()
	t := c.t
	t.Messages = append([]string(nil), c.t.Messages...)
	t.Exports = append([]model.Export(nil), c.t.Exports...)
	return t
}

// Text joins messages and the pending prompt with blank lines.
func (t Transcript) Text() string {
	parts := append([]string(nil), t.Messages...)
	if t.Prompt != "" {
		parts = append(parts, t.Prompt)
	}
	return strings.Join(parts, "\n\n")
}
