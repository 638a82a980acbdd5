package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/cobra"

	"github.com/chazu/quadric/pkg/config"
)

// NewRootCmd creates the root command for quadric.
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "quadric",
		Short: "BREP surface classification and axis annotation",
		Long: `quadric analyzes BREP solids and standalone surfaces described in a
scene file. It classifies every face as cylinder, cone, plane, freeform
or other, extracts the axis segment of cylindrical and conical faces
bounded to the face's own trimmed extent, and plans color-coded axis
annotations (green for cylinders, red for cones).`,
		Version:       getVersion(),
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// Global flags that apply to all commands
	cmd.PersistentFlags().BoolP("verbose", "v", false, "Enable verbose logging")
	cmd.PersistentFlags().StringP("config", "c", "",
		"Configuration file path (default: .quadric.yaml in current or home directory)")

	// Add subcommands
	cmd.AddCommand(NewInspectCmd())
	cmd.AddCommand(NewAnalyzeCmd())
	cmd.AddCommand(NewAnnotateCmd())
	cmd.AddCommand(NewVersionCmd())

	return cmd
}

// Execute runs the root command.
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// setupLogger creates a structured logger based on verbosity.
func setupLogger(verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})
	return slog.New(handler)
}

// loadConfig resolves the configuration for a command invocation.
// An explicitly specified file must exist; a discovered file is
// optional and defaults apply when none is found.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	explicit, _ := cmd.Flags().GetString("config")

	path := config.Find(explicit)
	if path == "" {
		if explicit != "" {
			return nil, fmt.Errorf("config file %q not found", explicit)
		}
		return config.Default(), nil
	}

	cfg, err := config.Load(path)
	if err != nil {
		if errors.Is(err, config.ErrConfigNotFound) && explicit == "" {
			return config.Default(), nil
		}
		return nil, err
	}
	return cfg, nil
}
