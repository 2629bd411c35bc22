// Package aggregate derives the single externally visible output status
// from the two pipeline statuses and the validation registry.
package aggregate

import (
	"log/slog"
	"sync"

	"github.com/juniarta/devpulse/internal/diagfmt"
	"github.com/juniarta/devpulse/internal/status"
	"github.com/juniarta/devpulse/internal/store"
)

// Aggregator subscribes to the build store and recomputes the output state
// on every change. It owns the output store that renderers subscribe to.
type Aggregator struct {
	build  *status.BuildStore
	out    *store.Store[status.OutputState]
	logger *slog.Logger

	mu            sync.Mutex
	appURL        string
	bootstrapping bool

	unsubscribe func()
}

// New creates an Aggregator bound to the build store and starts it in the
// bootstrap phase: loading states are suppressed until the first compile
// settles, so the initial spin-up never flickers in the renderer.
func New(build *status.BuildStore, logger *slog.Logger) *Aggregator {
	if logger == nil {
		logger = slog.Default()
	}
	a := &Aggregator{
		build:         build,
		out:           store.New(status.OutputState{Bootstrapping: true}),
		logger:        logger.With("component", "aggregate"),
		bootstrapping: true,
	}
	a.unsubscribe = build.Subscribe(a.recompute)
	return a
}

// Output returns the store renderers subscribe to. Every emitted snapshot
// is a full replacement of the displayable fields.
func (a *Aggregator) Output() *store.Store[status.OutputState] {
	return a.out
}

// StartedDevelopmentServer seeds the application URL into the output store.
// The bootstrap entry point calls it once, before the first status renders.
func (a *Aggregator) StartedDevelopmentServer(appURL string) {
	a.mu.Lock()
	a.appURL = appURL
	a.mu.Unlock()

	a.out.Patch(func(st *status.OutputState) { st.AppURL = appURL })
	a.logger.Info("development server started", "app_url", appURL)
}

// Close detaches the aggregator from the build store.
func (a *Aggregator) Close() {
	a.unsubscribe()
}

// recompute derives and publishes the output state for one build state.
func (a *Aggregator) recompute(st status.BuildState) {
	rep := status.Representative(st.Client, st.Server)

	a.mu.Lock()
	defer a.mu.Unlock()

	if rep.Phase == status.PhaseLoading {
		if a.bootstrapping {
			// Still spinning up; the renderer has nothing useful to show yet.
			return
		}
		a.out.Replace(status.OutputState{AppURL: a.appURL, Loading: true})
		return
	}

	// First settled emission ends the bootstrap phase for good.
	a.bootstrapping = false

	errs := rep.Errors
	warns := rep.Warnings
	if len(errs) == 0 && st.Validation.Len() > 0 {
		// Compile errors take precedence over page validation: the block is
		// only appended when the representative settled without errors.
		warns = append(append([]string(nil), warns...), diagfmt.FormatValidation(st.Validation))
	}

	a.out.Replace(status.OutputState{
		AppURL:   a.appURL,
		Loading:  false,
		Errors:   errs,
		Warnings: warns,
	})
}
