package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/tui"
)

var summaryCmd = &cobra.Command{
	Use:   "summary [paths...]",
	Short: "Show a diff summary for the provided files",
	Long: `Show how many keys are incomplete (missing from some files) and how many
have diverging values, followed by the details of each.

Examples:
  envdiff summary .env .env.staging .env.production
  envdiff summary ./deploy            # every .env* file in ./deploy
  envdiff summary --reveal '*.env'    # show real values`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, args, func(r tui.Renderer, m diff.Matrix) error {
			return r.Summary(m)
		})
	},
}

func init() {
	addCompareFlags(summaryCmd)
	rootCmd.AddCommand(summaryCmd)
}
