// Package compiler defines the boundary to the external bundler. The rest
// of the core never sees the bundler's own result schema: results are
// converted into the internal status model right here.
package compiler

import "github.com/juniarta/devpulse/internal/status"

// Result is the filtered view of one completed compile cycle. Only the
// error and warning message lists are requested from the bundler; other
// result metadata is deliberately not exposed.
type Result interface {
	ErrorMessages() []string
	WarningMessages() []string
}

// Compiler is one build pipeline (client-targeted or server-targeted).
// Implementations register lifecycle callbacks: OnInvalidate fires when a
// rebuild starts, OnDone when a compile cycle completes.
type Compiler interface {
	OnInvalidate(fn func())
	OnDone(fn func(Result))
}

// Diagnostics is a plain Result carrying message lists directly. Feed
// adapters and tests use it.
type Diagnostics struct {
	Errors   []string
	Warnings []string
}

// ErrorMessages implements Result.
func (d Diagnostics) ErrorMessages() []string { return d.Errors }

// WarningMessages implements Result.
func (d Diagnostics) WarningMessages() []string { return d.Warnings }

// StatusFromResult converts a bundler result into a settled compile status.
// Missing pieces degrade to "no diagnostics reported": a nil result settles
// clean rather than failing.
func StatusFromResult(res Result) status.CompileStatus {
	if res == nil {
		return status.Settled(nil, nil)
	}
	return status.Settled(res.ErrorMessages(), res.WarningMessages())
}
