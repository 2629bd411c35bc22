package status

import (
	"github.com/juniarta/devpulse/internal/store"
	"github.com/juniarta/devpulse/internal/validation"
)

// BuildStore wraps the observable build-state store with domain-level
// setters. Each setter is one store write, so subscribers observe writes
// in exactly the order they were issued.
type BuildStore struct {
	*store.Store[BuildState]
}

// NewBuildStore creates a build store with both pipelines loading and an
// empty validation registry, the state at process start.
func NewBuildStore() *BuildStore {
	return &BuildStore{Store: store.New(BuildState{
		Client: Loading(),
		Server: Loading(),
	})}
}

// SetClient sets the client pipeline status.
func (b *BuildStore) SetClient(cs CompileStatus) {
	b.Patch(func(st *BuildState) { st.Client = cs })
}

// SetServer sets the server pipeline status.
func (b *BuildStore) SetServer(cs CompileStatus) {
	b.Patch(func(st *BuildState) { st.Server = cs })
}

// ResetPipelines returns both pipelines to loading in a single write.
func (b *BuildStore) ResetPipelines() {
	b.Patch(func(st *BuildState) {
		st.Client = Loading()
		st.Server = Loading()
	})
}

// Registry returns the current validation registry.
func (b *BuildStore) Registry() validation.Registry {
	return b.State().Validation
}

// SetRegistry replaces the validation registry as a whole value.
func (b *BuildStore) SetRegistry(reg validation.Registry) {
	b.Patch(func(st *BuildState) { st.Validation = reg })
}

// ClearRegistry drops all page validation diagnostics. Called when a compile
// cycle completes, since diagnostics are regenerated per cycle.
func (b *BuildStore) ClearRegistry() {
	b.SetRegistry(validation.Registry{})
}
