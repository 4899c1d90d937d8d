// Package main provides the lv2ttl binary entry point.
// lv2ttl turns LV2 plugin descriptions into Turtle manifest files.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"runtime"
	"strings"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/c360studio/lv2ttl/config"
	"github.com/c360studio/lv2ttl/export"
)

const (
	Version   = "0.1.0"
	BuildTime = "dev"
	appName   = "lv2ttl"
)

var errorColor = color.New(color.FgRed, color.Bold)

func main() {
	// Add panic recovery
	defer func() {
		if r := recover(); r != nil {
			buf := make([]byte, 4096)
			n := runtime.Stack(buf, false)
			_, _ = fmt.Fprintf(os.Stderr, "PANIC: %v\nStack trace:\n%s\n", r, string(buf[:n]))
			os.Exit(2)
		}
	}()

	if err := rootCmd().Execute(); err != nil {
		_, _ = errorColor.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

// globalFlags are the persistent flags shared by every command.
type globalFlags struct {
	configPath string
	logLevel   string
	color      string
}

func rootCmd() *cobra.Command {
	var flags globalFlags

	cmd := &cobra.Command{
		Use:   appName,
		Short: "Generate LV2 Turtle manifests",
		Long: `lv2ttl generates the Turtle (.ttl) manifest of an LV2 audio plugin
from a small YAML or TOML description.

Every prefix used by the manifest is declared at the top of the document,
and the statements are laid out with configurable indentation.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return applyColorMode(flags.color)
		},
	}

	cmd.PersistentFlags().StringVarP(&flags.configPath, "config", "c", "", "Config file path (YAML)")
	cmd.PersistentFlags().StringVar(&flags.logLevel, "log-level", "info", "Log level (debug, info, warn, error)")
	cmd.PersistentFlags().StringVar(&flags.color, "color", "auto", "Colorize output (auto|on|off)")

	cmd.AddCommand(
		generateCmd(&flags),
		watchCmd(&flags),
		prefixesCmd(&flags),
		configCmd(&flags),
		&cobra.Command{
			Use:   "version",
			Short: "Print version information",
			Run: func(cmd *cobra.Command, args []string) {
				fmt.Fprintf(cmd.OutOrStdout(), "%s version %s (build: %s)\n", appName, Version, BuildTime)
			},
		},
	)

	return cmd
}

func applyColorMode(mode string) error {
	switch strings.ToLower(mode) {
	case "auto":
	case "on":
		color.NoColor = false
	case "off":
		color.NoColor = true
	default:
		return fmt.Errorf("invalid --color value %q (want auto, on or off)", mode)
	}
	return nil
}

// newLogger configures logging the same way for every command.
func newLogger(w io.Writer, logLevel string) *slog.Logger {
	level := slog.LevelInfo
	switch strings.ToLower(logLevel) {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	logger := slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
	slog.SetDefault(logger)
	return logger
}

// setup loads the layered configuration and builds the renderer from it.
func setup(cmd *cobra.Command, flags *globalFlags) (*slog.Logger, *config.Config, error) {
	logger := newLogger(cmd.ErrOrStderr(), flags.logLevel)

	cfg, err := config.NewLoader(logger).Load(flags.configPath)
	if err != nil {
		return nil, nil, fmt.Errorf("load config: %w", err)
	}
	return logger, cfg, nil
}

func newRenderer(cfg *config.Config) (*export.Renderer, error) {
	registry, err := cfg.Registry()
	if err != nil {
		return nil, err
	}
	return export.NewRenderer(registry, cfg.Options())
}
