// Package cmd implements the navtree command line.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"runtime"
	"slices"

	"github.com/spf13/cobra"

	"github.com/oakwood-commons/navtree/internal/keymap"
	"github.com/oakwood-commons/navtree/pkg/logger"
	"github.com/oakwood-commons/navtree/pkg/settings"
)

var (
	debug      bool
	logFormat  string
	noColor    bool
	quiet      bool
	configFile string
	keyMode    string
)

var rootCtx = context.Background()

// flagError marks invalid flag values; the process exits with status 2.
type flagError struct {
	err error
}

func (e flagError) Error() string { return e.err.Error() }
func (e flagError) Unwrap() error { return e.err }

func flagErrorf(format string, args ...any) error {
	return flagError{err: fmt.Errorf(format, args...)}
}

// ExitCode maps an error returned by Execute to a process exit status.
func ExitCode(err error) int {
	if err == nil {
		return 0
	}
	var fe flagError
	if errors.As(err, &fe) {
		return 2
	}
	return 1
}

var rootCmd = &cobra.Command{
	Use:   settings.CliBinaryName,
	Short: "Explore and test hierarchical focus navigation",
	Long: `navtree builds navigation trees from layout files and routes directional
events through them the way a focus manager in a UI would: events bubble up
from the focused node until some node handles them, then drill down into the
chosen child.

Layouts are YAML, JSON or TOML files; see 'navtree docs' for the format.`,
	Example:       "\n  navtree validate examples/menu.yaml\n  navtree replay examples/menu.yaml down right right enter\n  navtree replay examples/dashboard.yaml --press '<Down>jj' --keymap vim -o tree\n  navtree explore examples/dashboard.yaml\n",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
		run, err := runSettings()
		if err != nil {
			return err
		}
		// Map CLI debug flag to log level: debug => zap.DebugLevel (-1), else zap.InfoLevel (0)
		lgr := logger.Get(logger.Options{Level: run.MinLogLevel, Format: run.LogFormat})
		lgr = logger.WithValues(lgr, logger.RootCommandKey, settings.CliBinaryName, logger.SubCommandKey, cmd.Name())
		rootCtx = settings.IntoContext(logger.WithLogger(context.Background(), lgr), run)
		cmd.SetContext(rootCtx)
		return nil
	},
	RunE: func(cmd *cobra.Command, _ []string) error {
		return cmd.Help()
	},
}

// runSettings validates the global flags and turns them into run settings.
func runSettings() (*settings.Run, error) {
	run := settings.NewCliParams()
	if debug {
		run.MinLogLevel = -1
	}
	switch settings.LogFormat(logFormat) {
	case settings.LogFormatJSON, settings.LogFormatConsole:
		run.LogFormat = settings.LogFormat(logFormat)
	default:
		return nil, flagErrorf("invalid --log-format %q (expected 'json' or 'console')", logFormat)
	}
	if keyMode != "" && !slices.Contains(keymap.ValidModes, keymap.Mode(keyMode)) {
		return nil, flagErrorf("invalid --keymap %q (expected arrows, vim or emacs)", keyMode)
	}
	run.KeyMode = keyMode
	run.ConfigFile = configFile
	run.NoColor = noColor
	run.IsQuiet = quiet
	return run, nil
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print navtree version",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, _ []string) error {
		fmt.Fprintln(cmd.OutOrStdout(), cliVersionString())
		return nil
	},
}

// cliVersionString builds the version line shared by 'navtree version' and --version.
func cliVersionString() string {
	v := settings.VersionInformation
	return fmt.Sprintf("%s %s (commit %s, built %s, %s)", settings.CliBinaryName, v.BuildVersion, v.Commit, v.BuildTime, runtime.Version())
}

func init() { //nolint:gochecknoinits
	rootCmd.PersistentFlags().BoolVar(&debug, "debug", false, "enable debug logging (resolver traces)")
	rootCmd.PersistentFlags().StringVar(&logFormat, "log-format", string(settings.LogFormatJSON), "log encoding: json|console")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable color output")
	rootCmd.PersistentFlags().BoolVarP(&quiet, "quiet", "q", false, "only print errors")
	rootCmd.PersistentFlags().StringVar(&configFile, "config-file", "", "path to a YAML config file (keymap, theme, output)")
	rootCmd.PersistentFlags().StringVar(&keyMode, "keymap", "", "key binding mode: arrows|vim|emacs (default from config)")

	rootCmd.Version = cliVersionString()
	rootCmd.SetVersionTemplate("{{.Version}}\n")

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(replayCmd)
	rootCmd.AddCommand(exploreCmd)
	rootCmd.AddCommand(validateCmd)
	rootCmd.AddCommand(docsCmd)
	rootCmd.AddCommand(configCmd)
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}
