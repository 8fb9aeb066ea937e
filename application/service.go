package application

import (
	"context"
	"errors"
	"time"

	logger "github.com/sirupsen/logrus"

	"github.com/rios0rios0/depstatus/config"
	"github.com/rios0rios0/depstatus/domain"
	"github.com/rios0rios0/depstatus/infrastructure/readme"
	"github.com/rios0rios0/depstatus/infrastructure/render"
	"github.com/rios0rios0/depstatus/infrastructure/report"
)

// StatusService orchestrates the full dependency status flow:
// query -> terminal table -> JSON report -> README section -> summary.
//
// Each run performs a single query; the same ordered result feeds the
// table, the report, and the README so the three views never disagree.
type StatusService struct {
	querier domain.PackageQuerier
	reports *report.Writer
	readme  *readme.Updater
	console domain.Console
	cfg     *config.Config
	clock   func() time.Time
}

// NewStatusService creates a service with the given collaborators.
func NewStatusService(
	querier domain.PackageQuerier,
	reports *report.Writer,
	readmeUpdater *readme.Updater,
	console domain.Console,
	cfg *config.Config,
) *StatusService {
	return &StatusService{
		querier: querier,
		reports: reports,
		readme:  readmeUpdater,
		console: console,
		cfg:     cfg,
		clock:   time.Now,
	}
}

// Run executes the full flow and prints the closing two-line summary.
// Recoverable failures (tool output, missing README) degrade to partial
// results; only filesystem write failures terminate the run.
func (s *StatusService) Run(ctx context.Context) error {
	s.console.Printf("\nDependency Management\n\n")

	deps := s.queryOutdated(ctx)

	reportPath, err := s.writeReport(deps)
	if err != nil {
		return err
	}

	if readmeErr := s.updateReadme(deps); readmeErr != nil {
		return readmeErr
	}

	s.console.Successf("\nDependency management tasks completed:")
	s.console.Printf("1. Generated dependency report: %s\n", reportPath)
	s.console.Printf("2. Updated %s with current status\n", s.cfg.ReadmePath)
	return nil
}

// Report runs the query and report steps only.
func (s *StatusService) Report(ctx context.Context) error {
	deps := s.queryOutdated(ctx)
	_, err := s.writeReport(deps)
	return err
}

// Readme runs the query and README update steps only.
func (s *StatusService) Readme(ctx context.Context) error {
	deps := s.queryOutdated(ctx)
	return s.updateReadme(deps)
}

// Check dry-runs adding pkg at version and reports the outcome, including
// the severity of the jump from the installed version when both are semver.
func (s *StatusService) Check(ctx context.Context, pkg, version string) error {
	compatible, err := s.querier.CheckCompatibility(ctx, pkg, version)
	if err != nil {
		return err
	}

	if compatible {
		s.console.Successf("%s %s is compatible with the current project", pkg, version)
	} else {
		s.console.Warnf("%s %s is not compatible with the current project", pkg, version)
	}

	installed, instErr := s.querier.InstalledPackages(ctx)
	if instErr != nil {
		logger.Debugf("failed to list installed packages: %v", instErr)
		return nil
	}
	if current, ok := installed[pkg]; ok {
		if severity := domain.UpdateSeverity(current, version); severity != "" {
			s.console.Printf("This is a %s upgrade from %s.\n", severity, current)
		}
	}

	return nil
}

// queryOutdated recovers from external tool failures by continuing with an
// empty result set. Data is never fabricated to fill the gap.
func (s *StatusService) queryOutdated(ctx context.Context) []domain.DependencyStatus {
	deps, err := s.querier.QueryOutdated(ctx)
	if err != nil {
		s.console.Errorf("Error parsing %s output", s.cfg.PoetryBin)
		logger.Warnf("outdated query failed: %v", err)
		return nil
	}

	for _, d := range deps {
		if severity := domain.UpdateSeverity(d.CurrentVer, d.LatestVer); severity != "" {
			logger.Debugf("%s: %s -> %s (%s update)", d.Name, d.CurrentVer, d.LatestVer, severity)
		}
	}

	if installed, instErr := s.querier.InstalledPackages(ctx); instErr == nil {
		logger.Debugf("%d packages installed", len(installed))
	} else {
		logger.Debugf("failed to list installed packages: %v", instErr)
	}

	return deps
}

// writeReport prints the terminal table and writes the dated JSON report.
// Write failures are fatal and propagate unchanged.
func (s *StatusService) writeReport(deps []domain.DependencyStatus) (string, error) {
	s.console.Printf("%s", render.Table(deps))

	path := report.FilePath(s.cfg.ReportsDir, s.clock())
	if err := s.reports.Write(path, deps); err != nil {
		return "", err
	}

	s.console.Printf("\nReport saved to: %s\n", path)
	return path, nil
}

// updateReadme updates the README, recovering only the missing-file case
// with a diagnostic (report generation already succeeded at this point).
// Other failures, such as an unwritable document, are fatal and returned.
func (s *StatusService) updateReadme(deps []domain.DependencyStatus) error {
	err := s.readme.Update(s.cfg.ReadmePath, deps)
	if err == nil {
		s.console.Successf("Updated dependency status in %s", s.cfg.ReadmePath)
		return nil
	}

	if errors.Is(err, domain.ErrMissingDocument) {
		s.console.Errorf("%s not found", s.cfg.ReadmePath)
		return nil
	}

	return err
}
