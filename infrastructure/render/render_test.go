package render_test

import (
	"strings"
	"testing"
	"time"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rios0rios0/depstatus/domain"
	"github.com/rios0rios0/depstatus/infrastructure/render"
)

func init() {
	// Deterministic output regardless of TTY detection.
	color.NoColor = true
}

func sampleDeps() []domain.DependencyStatus {
	return []domain.DependencyStatus{
		{Name: "requests", CurrentVer: "2.31.0", LatestVer: "2.32.0"},
		{Name: "click", CurrentVer: "8.1.7", LatestVer: "8.1.7"},
	}
}

func TestTable(t *testing.T) {
	t.Parallel()

	t.Run("should render one aligned row per package in input order", func(t *testing.T) {
		t.Parallel()

		// when
		table := render.Table(sampleDeps())

		// then
		lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
		require.Len(t, lines, 4) // header, separator, two rows
		assert.Contains(t, lines[0], "Package")
		assert.Contains(t, lines[0], "Current")
		assert.Contains(t, lines[0], "Latest")
		assert.Contains(t, lines[0], "Status")
		assert.Contains(t, lines[2], "requests")
		assert.Contains(t, lines[3], "click")
	})

	t.Run("should use the two-valued status labels", func(t *testing.T) {
		t.Parallel()

		// when
		table := render.Table(sampleDeps())

		// then
		assert.Contains(t, table, "⟳ Update available")
		assert.Contains(t, table, "✓ Up to date")
	})

	t.Run("should render only the header for no packages", func(t *testing.T) {
		t.Parallel()

		// when
		table := render.Table(nil)

		// then
		lines := strings.Split(strings.TrimRight(table, "\n"), "\n")
		assert.Len(t, lines, 2) // header and separator only
	})
}

func TestStatusSection(t *testing.T) {
	t.Parallel()

	t.Run("should render the exact markdown block", func(t *testing.T) {
		t.Parallel()

		// given
		now := time.Date(2024, 1, 2, 10, 0, 0, 0, time.UTC)

		// when
		section := render.StatusSection(sampleDeps(), now)

		// then
		expected := strings.Join([]string{
			"## Dependency Status (Updated: 2024-01-02)",
			"",
			"### Core Dependencies",
			"| Package | Version | Status |",
			"|---------|---------|--------|",
			"| requests | 2.31.0 | ⟳ Update available |",
			"| click | 8.1.7 | ✓ Up to date |",
		}, "\n")
		assert.Equal(t, expected, section)
	})

	t.Run("should begin with the section header literal", func(t *testing.T) {
		t.Parallel()

		// when
		section := render.StatusSection(nil, time.Now())

		// then
		assert.True(t, strings.HasPrefix(section, render.SectionHeader))
		assert.Contains(t, section, "| Package | Version | Status |")
	})
}
