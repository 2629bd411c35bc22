// Package status defines the build status model: the per-pipeline compile
// status, the aggregate build state, and the derived output snapshot that
// renderers consume.
package status

import (
	"github.com/juniarta/devpulse/internal/validation"
)

// Phase is the lifecycle phase of one compile pipeline.
type Phase int

const (
	// PhaseLoading means the pipeline is compiling (or has been invalidated).
	PhaseLoading Phase = iota
	// PhaseSettled means the pipeline finished its last compile cycle.
	PhaseSettled
)

// CompileStatus is the last-known outcome of one compiler pipeline. Errors
// and Warnings are nil when absent; they are only meaningful while settled.
type CompileStatus struct {
	Phase    Phase
	Errors   []string
	Warnings []string
}

// Loading returns the status of a pipeline that is still compiling.
func Loading() CompileStatus {
	return CompileStatus{Phase: PhaseLoading}
}

// Settled returns the status of a completed compile cycle. Empty diagnostic
// slices are normalized to nil so "no problems" is always represented the
// same way.
func Settled(errs, warns []string) CompileStatus {
	if len(errs) == 0 {
		errs = nil
	}
	if len(warns) == 0 {
		warns = nil
	}
	return CompileStatus{Phase: PhaseSettled, Errors: errs, Warnings: warns}
}

// Rank orders compile statuses by how urgently they should be reported:
// a still-loading pipeline first, then one with errors, then warnings,
// then clean. Lower is more urgent.
func (c CompileStatus) Rank() int {
	switch {
	case c.Phase == PhaseLoading:
		return 1
	case len(c.Errors) > 0:
		return 2
	case len(c.Warnings) > 0:
		return 3
	default:
		return 4
	}
}

// Representative picks the pipeline status that describes the whole build:
// the one with the lowest rank, client winning ties. A build is only as
// good as its least-finished or most-broken half.
func Representative(client, server CompileStatus) CompileStatus {
	if server.Rank() < client.Rank() {
		return server
	}
	return client
}

// BuildState is the root of the build store: two independent pipeline
// statuses plus the accumulated page validation registry.
type BuildState struct {
	Client     CompileStatus
	Server     CompileStatus
	Validation validation.Registry
}

// OutputState is the externally visible derived snapshot. Renderers must
// treat every snapshot as a full replacement of displayable fields.
type OutputState struct {
	AppURL        string
	Bootstrapping bool
	Loading       bool
	Errors        []string
	Warnings      []string
}
