// Package commands implements the tui-renamer command line.
package commands

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/pstuifzand/tui-renamer/internal/config"
	"github.com/pstuifzand/tui-renamer/internal/preset"
)

// Version is set at build time with -ldflags "-X ...commands.Version=..."
var Version = "dev"

// Sentinel errors for the persistent flags.
var (
	ErrVerboseAndQuiet = errors.New("--verbose and --quiet can't be used together")
	ErrBadOverride     = errors.New("--set takes key=value")
)

// rootOptions holds the persistent flags and the state every subcommand
// shares once the root has run.
type rootOptions struct {
	verbose    bool
	quiet      bool
	noColor    bool
	logFile    string
	configPath string
	overrides  []string

	cfg     *config.Config
	logSink io.Closer
}

// NewRootCommand creates the tui-renamer command tree.
func NewRootCommand() *cobra.Command {
	opts := &rootOptions{}

	rootCmd := &cobra.Command{
		Use:   "tui-renamer",
		Short: "Preview and apply bulk renames",
		Long: `tui-renamer runs file names through an ordered sequence of rename
operations and shows, step by step, how every name changes.

Sequences come from a YAML pipeline file (--pipeline), a saved preset
(--preset) or a serialized sequence file (--sequence).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			return opts.setup(cmd)
		},
		PersistentPostRun: func(_ *cobra.Command, _ []string) {
			opts.teardown()
		},
	}

	rootCmd.PersistentFlags().BoolVarP(&opts.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().BoolVarP(&opts.quiet, "quiet", "q", false, "suppress log output")
	rootCmd.PersistentFlags().BoolVar(&opts.noColor, "no-color", false, "disable colored output")
	rootCmd.PersistentFlags().StringVar(&opts.logFile, "log-file", "", "write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&opts.configPath, "config", "", "config file (default ~/.config/tui-renamer/config.toml)")
	rootCmd.PersistentFlags().StringArrayVar(&opts.overrides, "set", nil, "override a config value for this run (key=value)")

	rootCmd.AddCommand(newPreviewCommand(opts))
	rootCmd.AddCommand(newApplyCommand(opts))
	rootCmd.AddCommand(newUndoCommand(opts))
	rootCmd.AddCommand(newPresetCommand(opts))
	rootCmd.AddCommand(newInspectCommand(opts))
	rootCmd.AddCommand(newConfigCommand(opts))
	rootCmd.AddCommand(versionCmd())

	return rootCmd
}

// Execute runs the command line and exits non-zero on error.
func Execute() {
	rootCmd := NewRootCommand()

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func (o *rootOptions) setup(cmd *cobra.Command) error {
	if o.verbose && o.quiet {
		return ErrVerboseAndQuiet
	}
	if o.noColor {
		color.NoColor = true //nolint:reassign // library switch
	}

	if err := o.setupLogging(cmd.ErrOrStderr()); err != nil {
		return err
	}

	var err error
	if o.configPath != "" {
		o.cfg, err = config.LoadFromFile(o.configPath)
	} else {
		o.cfg, err = config.Load()
	}
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	for _, kv := range o.overrides {
		key, value, ok := strings.Cut(kv, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return fmt.Errorf("%w: %q", ErrBadOverride, kv)
		}
		o.cfg.Set(key, value)
	}

	slog.Debug("loaded config", "path", o.cfg.Path(), "theme", o.cfg.Get("theme"), "overrides", len(o.overrides))
	return nil
}

func (o *rootOptions) setupLogging(stderr io.Writer) error {
	level := slog.LevelInfo
	if o.verbose {
		level = slog.LevelDebug
	}

	out := stderr
	switch {
	case o.quiet:
		out = io.Discard
	case o.logFile != "":
		f, err := os.OpenFile(o.logFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return fmt.Errorf("failed to open log file: %w", err)
		}
		o.logSink = f
		out = f
	}

	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: level})))
	return nil
}

func (o *rootOptions) teardown() {
	if o.logSink != nil {
		_ = o.logSink.Close()
		o.logSink = nil
	}
}

// presets opens the preset store named in the config
func (o *rootOptions) presets() (*preset.Store, error) {
	return preset.Open(o.cfg.Get("preset_file"))
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Show version information",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "tui-renamer %s\n", Version)
		},
	}
}
