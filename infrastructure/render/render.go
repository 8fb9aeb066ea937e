// Package render turns dependency statuses into a terminal table and a
// markdown section. Both renderers are pure functions of their input.
package render

import (
	"fmt"
	"strings"
	"time"

	"github.com/fatih/color"

	"github.com/rios0rios0/depstatus/domain"
)

// SectionHeader is the heading that identifies the generated section inside
// the README. The updater searches for this literal to find the section.
const SectionHeader = "## Dependency Status"

const (
	statusUpToDate        = "✓ Up to date"
	statusUpdateAvailable = "⟳ Update available"
)

var (
	upToDateColor = color.New(color.FgGreen)
	outdatedColor = color.New(color.FgYellow)
)

// Table renders an aligned terminal table with one row per package and a
// two-valued status column. Rows keep the input order.
func Table(deps []domain.DependencyStatus) string {
	nameW := len("Package")
	currentW := len("Current")
	latestW := len("Latest")

	for _, d := range deps {
		if len(d.Name) > nameW {
			nameW = len(d.Name)
		}
		if len(d.CurrentVer) > currentW {
			currentW = len(d.CurrentVer)
		}
		if len(d.LatestVer) > latestW {
			latestW = len(d.LatestVer)
		}
	}

	var b strings.Builder

	fmt.Fprintf(&b, "%-*s  %-*s  %-*s  %s\n",
		nameW, "Package",
		currentW, "Current",
		latestW, "Latest",
		"Status")
	b.WriteString(strings.Repeat("-", nameW+currentW+latestW+len("Status")+6))
	b.WriteString("\n")

	for _, d := range deps {
		status := outdatedColor.Sprint(statusUpdateAvailable)
		if d.UpToDate() {
			status = upToDateColor.Sprint(statusUpToDate)
		}

		fmt.Fprintf(&b, "%-*s  %-*s  %-*s  %s\n",
			nameW, d.Name,
			currentW, d.CurrentVer,
			latestW, d.LatestVer,
			status)
	}

	return b.String()
}

// StatusSection builds the markdown block spliced into the README. The
// heading carries the update date so readers can tell how fresh it is.
func StatusSection(deps []domain.DependencyStatus, now time.Time) string {
	lines := []string{
		fmt.Sprintf("%s (Updated: %s)", SectionHeader, now.Format("2006-01-02")),
		"",
		"### Core Dependencies",
		"| Package | Version | Status |",
		"|---------|---------|--------|",
	}

	for _, d := range deps {
		status := statusUpdateAvailable
		if d.UpToDate() {
			status = statusUpToDate
		}
		lines = append(lines, fmt.Sprintf("| %s | %s | %s |", d.Name, d.CurrentVer, status))
	}

	return strings.Join(lines, "\n")
}
