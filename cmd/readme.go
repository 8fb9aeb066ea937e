package cmd

import (
	"github.com/spf13/cobra"
)

var readmeCmd = &cobra.Command{
	Use:   "readme",
	Short: "Update the dependency status section of the README",
	Long: `Query outdated dependencies and splice the rendered status section
into the README, leaving the rest of the document untouched. No JSON
report is written.`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}
		return svc.Readme(cmd.Context())
	},
}

func init() {
	rootCmd.AddCommand(readmeCmd)
}
