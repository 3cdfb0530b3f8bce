package cmd

import (
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/mcpserver"
)

var mcpCmd = &cobra.Command{
	Use:   "mcp",
	Short: "Run the MCP server (stdio) for AI/IDE integration",
	Long: `Run the Model Context Protocol server on stdio. Exposes env_diff_summary,
env_diff_matrix and env_presence. Values are always masked unless the server
itself was started with --reveal and the caller asks for them.`,
	Args: cobra.NoArgs,
	RunE: runMCP,
}

func init() {
	rootCmd.AddCommand(mcpCmd)
}

func runMCP(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr())
	settings, err := loadSettings(cmd, logger)
	if err != nil {
		return err
	}

	return mcpserver.Run(cmd.Context(), mcpserver.Options{
		Version:     rootCmd.Version,
		Settings:    settings,
		AllowReveal: settings.Reveal,
		Logger:      logger,
	})
}
