package feed

import (
	"context"
	"encoding/json"
	"log/slog"
	"sync"

	"github.com/juniarta/devpulse/internal/compiler"
)

// Lifecycle event names accepted on a pipeline feed.
const (
	eventInvalidate = "invalidate"
	eventDone       = "done"
)

// lifecycleRecord is one line of a pipeline feed file.
type lifecycleRecord struct {
	Event    string   `json:"event"`
	Errors   []string `json:"errors,omitempty"`
	Warnings []string `json:"warnings,omitempty"`
}

// Pipeline adapts a JSONL lifecycle feed to the compiler interface: each
// appended record fires the matching registered hooks. Malformed or unknown
// records are dropped; a broken feed line degrades display accuracy, never
// correctness.
type Pipeline struct {
	name   string
	tail   *Tail
	logger *slog.Logger

	mu          sync.Mutex
	invalidates []func()
	dones       []func(compiler.Result)
}

// NewPipeline creates a Pipeline following the feed file at path. name
// identifies the pipeline in logs (e.g. "client", "server").
func NewPipeline(path, name string, logger *slog.Logger) *Pipeline {
	if logger == nil {
		logger = slog.Default()
	}
	p := &Pipeline{
		name:   name,
		logger: logger.With("component", "feed", "pipeline", name),
	}
	p.tail = NewTail(path, p.handleLine, logger)
	return p
}

// Start begins following the feed file.
func (p *Pipeline) Start(ctx context.Context) error {
	return p.tail.Start(ctx)
}

// Stop terminates the feed.
func (p *Pipeline) Stop() error {
	return p.tail.Stop()
}

// OnInvalidate implements compiler.Compiler.
func (p *Pipeline) OnInvalidate(fn func()) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.invalidates = append(p.invalidates, fn)
}

// OnDone implements compiler.Compiler.
func (p *Pipeline) OnDone(fn func(compiler.Result)) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.dones = append(p.dones, fn)
}

// handleLine parses one feed record and dispatches the matching hooks.
func (p *Pipeline) handleLine(line []byte) {
	var rec lifecycleRecord
	if err := json.Unmarshal(line, &rec); err != nil {
		p.logger.Debug("dropping malformed feed line", "error", err)
		return
	}

	switch rec.Event {
	case eventInvalidate:
		for _, fn := range p.hooks() {
			fn()
		}
	case eventDone:
		res := compiler.Diagnostics{Errors: rec.Errors, Warnings: rec.Warnings}
		for _, fn := range p.doneHooks() {
			fn(res)
		}
	default:
		p.logger.Debug("dropping unknown feed event", "event", rec.Event)
	}
}

func (p *Pipeline) hooks() []func() {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]func(){}, p.invalidates...)
}

func (p *Pipeline) doneHooks() []func(compiler.Result) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]func(compiler.Result){}, p.dones...)
}
