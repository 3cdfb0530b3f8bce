package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/diff"
	"github.com/xmazu/envdiff/internal/tui"
)

var presenceCmd = &cobra.Command{
	Use:   "presence [paths...]",
	Short: "Show presence diffs as a matrix",
	Long:  `Show which file defines which key, without printing any value.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runCompare(cmd, args, func(r tui.Renderer, m diff.Matrix) error {
			return r.Presence(m)
		})
	},
}

func init() {
	addCompareFlags(presenceCmd)
	rootCmd.AddCommand(presenceCmd)
}
