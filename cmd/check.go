package cmd

import (
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check <package> <version>",
	Short: "Check whether a package version is compatible with the project",
	Long: `Dry-run adding the given package version with poetry and report
whether the resolver accepts it. Nothing is installed or modified.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		svc, _, err := buildService()
		if err != nil {
			return err
		}
		return svc.Check(cmd.Context(), args[0], args[1])
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
