package validation

import "sync"

// Sink is where the reporter publishes registry updates. The build store
// implements it; the registry is always written back as a whole value since
// its shape changes on every report.
type Sink interface {
	Registry() Registry
	SetRegistry(Registry)
}

// Reporter applies page-level validation reports to a sink.
type Reporter struct {
	mu   sync.Mutex
	sink Sink
}

// NewReporter creates a Reporter that publishes to sink.
func NewReporter(sink Sink) *Reporter {
	return &Reporter{sink: sink}
}

// Report records the diagnostics for page, replacing any prior entry. When
// both sequences are empty the page is removed; reporting an absent page
// with empty sequences is a no-op on the registry content, but the update
// is still published so the write path stays uniform.
func (r *Reporter) Report(page string, errs, warns []Entry) {
	r.mu.Lock()
	defer r.mu.Unlock()

	next := r.sink.Registry().WithPage(page, errs, warns)
	r.sink.SetRegistry(next)
}
