// Package validation maintains per-page validation diagnostics reported by
// external page-level validators, independently of compile status.
package validation

import "sort"

// Entry is one validation diagnostic tied to a page.
type Entry struct {
	Message string `json:"message"`
	Line    int    `json:"line"`
	Column  int    `json:"column"`
	SpecURL string `json:"specUrl,omitempty"`
}

// PageDiagnostics holds the diagnostics for one page, in reported order.
type PageDiagnostics struct {
	Errors   []Entry
	Warnings []Entry
}

// Registry maps pages to their diagnostics. A page is present only while it
// has at least one error or warning, and page keys are kept in lexicographic
// order for deterministic rendering. Registry is a value type: mutations
// return a new Registry and never modify the receiver, so store snapshots
// holding one stay stable.
type Registry struct {
	pages map[string]PageDiagnostics
	order []string
}

// WithPage returns a Registry with the entry for page replaced wholesale by
// the given sequences. When both sequences are empty the page is removed.
// Nil sequences are treated as empty.
func (r Registry) WithPage(page string, errs, warns []Entry) Registry {
	next := r.clone()

	if len(errs) == 0 && len(warns) == 0 {
		delete(next.pages, page)
	} else {
		next.pages[page] = PageDiagnostics{Errors: errs, Warnings: warns}
	}

	next.order = next.order[:0]
	for p := range next.pages {
		next.order = append(next.order, p)
	}
	sort.Strings(next.order)

	return next
}

// Len returns the number of pages with diagnostics.
func (r Registry) Len() int {
	return len(r.pages)
}

// Pages returns the page keys in lexicographic order.
// Callers must not modify the returned slice.
func (r Registry) Pages() []string {
	return r.order
}

// Page returns the diagnostics for a page, if present.
func (r Registry) Page(page string) (PageDiagnostics, bool) {
	d, ok := r.pages[page]
	return d, ok
}

func (r Registry) clone() Registry {
	next := Registry{
		pages: make(map[string]PageDiagnostics, len(r.pages)),
		order: make([]string, 0, len(r.pages)+1),
	}
	for p, d := range r.pages {
		next.pages[p] = d
	}
	return next
}
