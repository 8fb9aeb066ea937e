// Package readme keeps the generated dependency-status section of a README
// in sync with the current query results.
package readme

import (
	"fmt"
	"os"
	"time"

	"github.com/rios0rios0/depstatus/domain"
	"github.com/rios0rios0/depstatus/infrastructure/render"
)

// endMarker terminates the generated section at the next heading of equal
// or higher level. It is broader than the section header on purpose; see
// domain.Splice.
const endMarker = "##"

// Updater splices the rendered status section into a README file. The clock
// is injectable so tests can pin the date in the section heading.
type Updater struct {
	Clock func() time.Time
}

// NewUpdater creates an updater using the wall clock.
func NewUpdater() *Updater {
	return &Updater{Clock: time.Now}
}

// Update rewrites the status section of the document at path for deps.
// A missing document yields domain.ErrMissingDocument so the caller can
// skip the step; any other I/O failure is fatal and propagates.
func (u *Updater) Update(path string, deps []domain.DependencyStatus) error {
	raw, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", domain.ErrMissingDocument, path)
		}
		return fmt.Errorf("failed to read %q: %w", path, err)
	}

	section := render.StatusSection(deps, u.Clock())
	updated := domain.Splice(string(raw), render.SectionHeader, endMarker, section)

	if writeErr := os.WriteFile(path, []byte(updated), 0o644); writeErr != nil {
		return fmt.Errorf("failed to write %q: %w", path, writeErr)
	}

	return nil
}
