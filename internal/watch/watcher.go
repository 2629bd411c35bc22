// Package watch binds compiler pipelines to the build store, translating
// bundler lifecycle events into status updates.
package watch

import (
	"log/slog"
	"sync"

	"github.com/juniarta/devpulse/internal/compiler"
	"github.com/juniarta/devpulse/internal/status"
)

// Watcher attaches lifecycle hooks to a client/server compiler pair and
// writes the resulting statuses to the build store. It remembers the last
// pair it bound so a configuration reload that hands back the same pair
// does not register hooks twice.
type Watcher struct {
	store  *status.BuildStore
	logger *slog.Logger

	mu         sync.Mutex
	lastClient compiler.Compiler
	lastServer compiler.Compiler
}

// New creates a Watcher that publishes to store.
func New(st *status.BuildStore, logger *slog.Logger) *Watcher {
	if logger == nil {
		logger = slog.Default()
	}
	return &Watcher{
		store:  st,
		logger: logger.With("component", "watch"),
	}
}

// Watch binds the given compiler pair. Calling it again with the identical
// pair is a no-op. Binding a new pair resets both pipelines to loading and
// registers invalidation and completion hooks on each compiler.
func (w *Watcher) Watch(client, server compiler.Compiler) {
	w.mu.Lock()
	if client == w.lastClient && server == w.lastServer {
		w.mu.Unlock()
		w.logger.Debug("compiler pair already watched, skipping")
		return
	}
	w.lastClient = client
	w.lastServer = server
	w.mu.Unlock()

	w.store.ResetPipelines()

	w.bind(client, w.store.SetClient, "client")
	w.bind(server, w.store.SetServer, "server")
}

// bind registers the lifecycle hooks for one pipeline.
func (w *Watcher) bind(c compiler.Compiler, set func(status.CompileStatus), side string) {
	c.OnInvalidate(func() {
		w.logger.Debug("pipeline invalidated", "side", side)
		set(status.Loading())
	})

	c.OnDone(func(res compiler.Result) {
		cs := compiler.StatusFromResult(res)
		w.logger.Debug("pipeline settled",
			"side", side,
			"errors", len(cs.Errors),
			"warnings", len(cs.Warnings),
		)

		// A completed build invalidates all page validation diagnostics;
		// they are regenerated per compile cycle. The registry clear is
		// published before the settled status so subscribers never derive
		// a settled state from a stale registry.
		w.store.ClearRegistry()
		set(cs)
	})
}
