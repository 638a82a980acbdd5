package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/report"
)

// NewInspectCmd creates the inspect command.
func NewInspectCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "inspect <scene-file> <name>",
		Short: "Detailed analysis of a single surface",
		Long: `Inspect classifies one named surface from a scene file and reports its
surface class, every independent analytic fit (including the diagnostic
sphere fit), bounding box, face center, and axis segment when the face
is a cylinder or cone.

Examples:
  # Inspect the surface named "bore"
  quadric inspect parts.lisp bore

  # Write the report to a file
  quadric inspect parts.lisp bore -o bore.md`,
		Args: cobra.ExactArgs(2),
		RunE: runInspectCmd,
	}

	cmd.Flags().StringP("output", "o", "", "Write report to file instead of stdout")
	return cmd
}

// runInspectCmd executes the inspect command.
func runInspectCmd(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := setupLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}

	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}

	obj, ok := sc.Lookup(args[1])
	if !ok {
		return fmt.Errorf("no object named %q in scene", args[1])
	}
	face, ok := obj.FirstFace()
	if !ok {
		return fmt.Errorf("object %q has no faces", args[1])
	}

	logger.Debug("inspecting surface", "name", obj.Name)
	ins := classify.Inspect(face, classify.Options{
		ConeAxisHalfLength: cfg.ConeAxisHalfLength,
	})

	out, cleanup, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	return report.NewWriter(out).WriteInspection(obj.Name, ins)
}
