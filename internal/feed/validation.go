package feed

import (
	"context"
	"encoding/json"
	"log/slog"

	"github.com/juniarta/devpulse/internal/validation"
)

// Report is one line of a validation feed file, as written by an external
// page-level validator.
type Report struct {
	Page     string             `json:"page"`
	Errors   []validation.Entry `json:"errors,omitempty"`
	Warnings []validation.Entry `json:"warnings,omitempty"`
}

// ValidationFeed forwards validation reports from a JSONL feed file to a
// reporter. Records with an empty page are dropped.
type ValidationFeed struct {
	tail     *Tail
	reporter *validation.Reporter
	logger   *slog.Logger
}

// NewValidationFeed creates a ValidationFeed following the file at path.
func NewValidationFeed(path string, reporter *validation.Reporter, logger *slog.Logger) *ValidationFeed {
	if logger == nil {
		logger = slog.Default()
	}
	v := &ValidationFeed{
		reporter: reporter,
		logger:   logger.With("component", "feed", "feed", "validation"),
	}
	v.tail = NewTail(path, v.handleLine, logger)
	return v
}

// Start begins following the feed file.
func (v *ValidationFeed) Start(ctx context.Context) error {
	return v.tail.Start(ctx)
}

// Stop terminates the feed.
func (v *ValidationFeed) Stop() error {
	return v.tail.Stop()
}

func (v *ValidationFeed) handleLine(line []byte) {
	var rec Report
	if err := json.Unmarshal(line, &rec); err != nil {
		v.logger.Debug("dropping malformed validation line", "error", err)
		return
	}
	if rec.Page == "" {
		v.logger.Debug("dropping validation report without a page")
		return
	}
	v.reporter.Report(rec.Page, rec.Errors, rec.Warnings)
}
