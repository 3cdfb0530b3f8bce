package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/tui"
)

var valuesCmd = &cobra.Command{
	Use:   "values [paths...]",
	Short: "Show value diffs as a matrix",
	Long: `Show every key as a row and every file as a column. Missing keys are
shown as a dash. Values are masked unless --reveal is passed.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, args, func(r tui.Renderer, m diff.Matrix) error {
			return r.Values(m)
		})
	},
}

func init() {
	addCompareFlags(valuesCmd)
	rootCmd.AddCommand(valuesCmd)
}
