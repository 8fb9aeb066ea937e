// Package testdoubles provides test doubles (spies, stubs, dummies) for
// domain interfaces. These are hand-crafted implementations — no mock
// frameworks.
package testdoubles

import (
	"context"
	"fmt"

	"github.com/rios0rios0/depstatus/domain"
)

// ---------------------------------------------------------------------------
// SpyQuerier
// ---------------------------------------------------------------------------

// SpyQuerier implements domain.PackageQuerier as a configurable spy.
// Configure the response fields for the methods your test exercises,
// then inspect the call-tracking fields to verify behavior.
type SpyQuerier struct {
	// --- QueryOutdated ---
	Outdated    []domain.DependencyStatus
	OutdatedErr error
	// spy: number of queries performed
	QueryCalls int

	// --- InstalledPackages ---
	Installed    map[string]string
	InstalledErr error

	// --- CheckCompatibility ---
	Compatible       bool
	CompatibilityErr error
	// spy: "pkg@version" specs that were checked
	CheckedSpecs []string
}

var _ domain.PackageQuerier = (*SpyQuerier)(nil)

func (q *SpyQuerier) QueryOutdated(_ context.Context) ([]domain.DependencyStatus, error) {
	q.QueryCalls++
	return q.Outdated, q.OutdatedErr
}

func (q *SpyQuerier) InstalledPackages(_ context.Context) (map[string]string, error) {
	return q.Installed, q.InstalledErr
}

func (q *SpyQuerier) CheckCompatibility(
	_ context.Context,
	pkg, version string,
) (bool, error) {
	q.CheckedSpecs = append(q.CheckedSpecs, fmt.Sprintf("%s@%s", pkg, version))
	return q.Compatible, q.CompatibilityErr
}

// ---------------------------------------------------------------------------
// SpyConsole
// ---------------------------------------------------------------------------

// SpyConsole implements domain.Console by recording formatted output
// instead of printing it.
type SpyConsole struct {
	Lines  []string // Printf, Successf, and Warnf output
	Errors []string // Errorf output
}

var _ domain.Console = (*SpyConsole)(nil)

func (c *SpyConsole) Printf(format string, args ...interface{}) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}

func (c *SpyConsole) Successf(format string, args ...interface{}) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}

func (c *SpyConsole) Warnf(format string, args ...interface{}) {
	c.Lines = append(c.Lines, fmt.Sprintf(format, args...))
}

func (c *SpyConsole) Errorf(format string, args ...interface{}) {
	c.Errors = append(c.Errors, fmt.Sprintf(format, args...))
}

// Output joins everything written through the non-error methods.
func (c *SpyConsole) Output() string {
	out := ""
	for _, line := range c.Lines {
		out += line + "\n"
	}
	return out
}
