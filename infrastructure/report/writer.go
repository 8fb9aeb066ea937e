// Package report writes the per-run dependency report to disk as JSON.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/rios0rios0/depstatus/domain"
)

// Writer serializes dependency reports. The clock is injectable so tests
// can pin the timestamp.
type Writer struct {
	Clock func() time.Time
}

// NewWriter creates a writer using the wall clock.
func NewWriter() *Writer {
	return &Writer{Clock: time.Now}
}

// Write overwrites path with a JSON report for deps, creating parent
// directories as needed. Write failures propagate to the caller; they are
// never retried or swallowed.
func (w *Writer) Write(path string, deps []domain.DependencyStatus) error {
	rep := domain.NewReport(w.Clock(), deps)

	data, err := json.MarshalIndent(rep, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode report: %w", err)
	}

	if mkErr := os.MkdirAll(filepath.Dir(path), 0o755); mkErr != nil {
		return fmt.Errorf("failed to create report directory: %w", mkErr)
	}

	if writeErr := os.WriteFile(path, data, 0o644); writeErr != nil {
		return fmt.Errorf("failed to write report %q: %w", path, writeErr)
	}

	return nil
}

// FilePath returns the dated report path inside dir, e.g.
// reports/dependencies/dependency_report_20240102.json.
func FilePath(dir string, now time.Time) string {
	return filepath.Join(dir, fmt.Sprintf("dependency_report_%s.json", now.Format("20060102")))
}
