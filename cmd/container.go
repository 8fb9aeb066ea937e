package cmd

import (
	"go.uber.org/dig"

	"github.com/rios0rios0/depstatus/application"
	"github.com/rios0rios0/depstatus/config"
	"github.com/rios0rios0/depstatus/domain"
	consolePkg "github.com/rios0rios0/depstatus/infrastructure/console"
	"github.com/rios0rios0/depstatus/infrastructure/poetry"
	"github.com/rios0rios0/depstatus/infrastructure/readme"
	"github.com/rios0rios0/depstatus/infrastructure/report"
)

// buildService wires the service graph for a single invocation.
func buildService() (*application.StatusService, *config.Config, error) {
	applyGlobalFlags()

	container := dig.New()

	constructors := []interface{}{
		loadConfig,
		func() domain.Console { return consolePkg.New() },
		func(cfg *config.Config) domain.PackageQuerier {
			return poetry.NewQuerier(cfg.PoetryBin, cfg.PipBin, cfg.ProjectDir)
		},
		report.NewWriter,
		readme.NewUpdater,
		application.NewStatusService,
	}
	for _, c := range constructors {
		if err := container.Provide(c); err != nil {
			return nil, nil, err
		}
	}

	var svc *application.StatusService
	var cfg *config.Config
	err := container.Invoke(func(s *application.StatusService, c *config.Config) {
		svc = s
		cfg = c
	})
	if err != nil {
		return nil, nil, err
	}

	return svc, cfg, nil
}

// loadConfig resolves the configuration: explicit --config path, then
// auto-detected file, then defaults. CLI flags override file values.
func loadConfig() (*config.Config, error) {
	path := cfgFile
	if path == "" {
		if found, err := config.FindConfigFile(); err == nil {
			path = found
		}
	}

	cfg := config.Default()
	if path != "" {
		loaded, err := config.Load(path)
		if err != nil {
			return nil, err
		}
		cfg = loaded
	}

	if readmePath != "" {
		cfg.ReadmePath = readmePath
	}
	if reportsDir != "" {
		cfg.ReportsDir = reportsDir
	}

	return cfg, nil
}
