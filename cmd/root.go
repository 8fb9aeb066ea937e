package cmd

import (
	logger "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/rios0rios0/depstatus/infrastructure/console"
	"github.com/rios0rios0/depstatus/infrastructure/poetry"
)

var (
	// Global flags
	cfgFile    string
	readmePath string
	reportsDir string
	noColor    bool
	verbose    bool
)

var rootCmd = &cobra.Command{
	Use:   "depstatus",
	Short: "Dependency status reporter for Poetry projects",
	Long: `A maintenance tool that checks a Poetry-managed Python project for
outdated dependencies and keeps its status visible.

Running without arguments performs the full flow:
- queries 'poetry show --outdated' for the current state
- renders a status table to the terminal
- writes a timestamped JSON report under reports/dependencies/
- splices a '## Dependency Status' section into README.md`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, cfg, err := buildService()
		if err != nil {
			return err
		}
		warnIfNotPoetryProject(cfg.ProjectDir)
		return svc.Run(cmd.Context())
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&cfgFile, "config", "c", "",
		"Path to config file (default: auto-detect)")
	rootCmd.PersistentFlags().StringVar(&readmePath, "readme", "",
		"Path to the document to update (default: README.md)")
	rootCmd.PersistentFlags().StringVar(&reportsDir, "reports-dir", "",
		"Directory for JSON reports (default: reports/dependencies)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false,
		"Disable colored output")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false,
		"Enable verbose output")
}

// applyGlobalFlags translates persistent flags into process-wide settings.
func applyGlobalFlags() {
	if verbose {
		logger.SetLevel(logger.DebugLevel)
	}
	if noColor {
		console.NoColor()
	}
}

// warnIfNotPoetryProject emits a warning when the project directory has no
// [tool.poetry] section; the run continues since the query step degrades to
// an empty result on its own.
func warnIfNotPoetryProject(dir string) {
	if !poetry.DetectProject(dir) {
		logger.Warnf("no [tool.poetry] section found in %s/pyproject.toml", dir)
	}
}
