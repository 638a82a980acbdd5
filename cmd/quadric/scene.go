package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/chazu/quadric/pkg/engine"
	"github.com/chazu/quadric/pkg/scene"
)

// loadScene reads and evaluates a scene description file.
func loadScene(path string) (*scene.Scene, error) {
	data, err := os.ReadFile(path) //nolint:gosec // user-provided scene path is intentional
	if err != nil {
		return nil, fmt.Errorf("failed to read scene file: %w", err)
	}

	sc, evalErrs, err := engine.NewEngine().Evaluate(string(data))
	if err != nil {
		return nil, fmt.Errorf("scene evaluation failed: %w", err)
	}
	if len(evalErrs) > 0 {
		msgs := make([]string, 0, len(evalErrs))
		for _, e := range evalErrs {
			msgs = append(msgs, e.Error())
		}
		return nil, fmt.Errorf("scene errors in %s: %s", path, strings.Join(msgs, "; "))
	}
	return sc, nil
}

// outputWriter resolves the --output flag: stdout by default, a file
// (with parent directories created) when a path is given. The caller
// must invoke the returned cleanup function.
func outputWriter(cmd *cobra.Command) (io.Writer, func() error, error) {
	path, _ := cmd.Flags().GetString("output")
	if path == "" {
		return cmd.OutOrStdout(), func() error { return nil }, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0750); err != nil {
		return nil, nil, fmt.Errorf("failed to create output directory: %w", err)
	}
	f, err := os.Create(path) //nolint:gosec // user-provided output path is intentional
	if err != nil {
		return nil, nil, fmt.Errorf("failed to create output file: %w", err)
	}
	return f, f.Close, nil
}
