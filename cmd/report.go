package cmd

import (
	"github.com/spf13/cobra"
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Generate the dependency status table and JSON report",
	Long: `Query outdated dependencies, render the status table, and write the
timestamped JSON report without touching the README.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}
		return svc.Report(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(reportCmd)
}
