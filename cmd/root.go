package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"github.com/xmazu/envdiff/internal/config"
	"github.com/xmazu/envdiff/internal/tui"
	"github.com/xmazu/envdiff/internal/workspace"
)

var errNoCommand = errors.New("no command given")

var rootCmd = &cobra.Command{
	Use:           "envdiff",
	Short:         "Spot missing keys and diverging values across .env files",
	SilenceUsage:  true,
	SilenceErrors: true,
	Long: `envdiff - Lightweight tool for quickly spotting missing keys and differing values in .env files.

Give it files, directories (every .env* entry inside is used) or glob patterns.
Values are masked unless --reveal is passed. Nothing is ever written.

EXAMPLES:

  envdiff summary .env .env.production
  envdiff values ./config
  envdiff presence 'apps/**/.env'
  envdiff summary -o json . > drift.json

  # Keep comparing while you edit
  envdiff values --watch .env.local .env.example

Exit status is 1 when no file resolves, a path does not exist or no variable
is found. Missing or diverging keys alone never fail.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		_ = cmd.Help()
		return errNoCommand
	},
}

var (
	flagReveal  bool
	flagOutput  string
	flagConfig  string
	flagVerbose bool
)

func init() {
	rootCmd.SetVersionTemplate("envdiff version {{.Version}}\n")

	pf := rootCmd.PersistentFlags()
	pf.BoolVar(&flagReveal, "reveal", false, "Reveal masked values")
	pf.StringVarP(&flagOutput, "output", "o", config.OutputText, "Output format: text or json")
	pf.StringVar(&flagConfig, "config", "", "Settings file to use instead of the project's "+workspace.ProjectConfigFile)
	pf.BoolVarP(&flagVerbose, "verbose", "v", false, "Log debug information to stderr")
}

// SetVersion sets the version string shown by --version (e.g. from ldflags).
func SetVersion(v string) { rootCmd.Version = v }

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errNoCommand) {
			fmt.Fprintln(os.Stderr, tui.Error("Error:"), err)
		}
		os.Exit(1)
	}
}

func newLogger(w io.Writer) *log.Logger {
	level := log.WarnLevel
	if flagVerbose {
		level = log.DebugLevel
	}
	return log.NewWithOptions(w, log.Options{
		Prefix: "envdiff",
		Level:  level,
	})
}

// loadSettings reads the config files and applies the flags the user set
// explicitly on top of them.
func loadSettings(cmd *cobra.Command, logger *log.Logger) (*config.Settings, error) {
	opts := config.LoadOptions{File: flagConfig}
	if opts.File == "" {
		ws, err := workspace.FindRoot(".")
		if err != nil {
			return nil, fmt.Errorf("detect workspace: %w", err)
		}
		opts.ProjectRoot = ws.Dir
	}

	settings, loaded, err := config.Load(opts)
	if err != nil {
		return nil, err
	}
	logger.Debug("loaded settings", "files", loaded)

	flags := cmd.Flags()
	if flags.Changed("reveal") {
		settings.Reveal = flagReveal
	}
	if flags.Changed("output") {
		settings.Output = flagOutput
	}
	if err := settings.Validate(); err != nil {
		return nil, err
	}
	return settings, nil
}
