package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/envfile"
	"github.com/xmazu/envdiff/internal/tui"
	"github.com/xmazu/envdiff/internal/workspace"
)

var lsCmd = &cobra.Command{
	Use:   "ls [directory]",
	Short: "List the .env files that can be compared",
	Long: `Discover .env and .env.* files under the given directory, or under the
workspace root when none is given, and print them as a tree with the number
of keys each one defines.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runLs,
}

func init() {
	rootCmd.AddCommand(lsCmd)
}

func runLs(cmd *cobra.Command, args []string) error {
	root := "."
	var ws workspace.Root
	if len(args) == 1 {
		root = args[0]
	} else {
		var err error
		ws, err = workspace.FindRoot(".")
		if err != nil {
			return fmt.Errorf("detect workspace: %w", err)
		}
		root = ws.Dir
	}

	root, err := filepath.Abs(root)
	if err != nil {
		return fmt.Errorf("resolve directory: %w", err)
	}
	info, err := os.Stat(root)
	if err != nil {
		return fmt.Errorf("directory %s: %w", root, err)
	}
	if !info.IsDir() {
		return fmt.Errorf("not a directory: %s", root)
	}

	files, err := workspace.ListEnvFiles(root)
	if err != nil {
		return fmt.Errorf("list .env files: %w", err)
	}
	if len(files) == 0 {
		return nil
	}

	paths := make([]string, 0, len(files))
	for _, f := range files {
		rel, _ := filepath.Rel(root, f)
		paths = append(paths, rel)
	}

	stdout := cmd.OutOrStdout()
	if ws.Found() {
		fmt.Fprintf(stdout, "%s%s (%s)\n\n", tui.Label("Workspace: "), ws.Dir, ws.Describe())
	}

	workspace.PrintEnvTree(stdout, workspace.BuildEnvTree(paths), func(rel string) string {
		return tui.Muted(keyCountLabel(filepath.Join(root, rel)))
	})
	return nil
}

func keyCountLabel(path string) string {
	f, err := os.Open(path)
	if err != nil {
		return "(unreadable)"
	}
	defer f.Close()

	lines, err := envfile.Parse(f)
	if err != nil {
		return "(unreadable)"
	}

	keys := make(map[string]bool, len(lines))
	for _, l := range lines {
		keys[l.Key] = true
	}
	if len(keys) == 1 {
		return "(1 key)"
	}
	return fmt.Sprintf("(%d keys)", len(keys))
}
