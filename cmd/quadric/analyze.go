package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/report"
	"github.com/chazu/quadric/pkg/stats"
)

// NewAnalyzeCmd creates the analyze command.
func NewAnalyzeCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "analyze <scene-file> [name]",
		Short: "Count surface types across a solid",
		Long: `Analyze classifies every face of a solid and reports per-type counts:
cylinders (with a diameter-threshold sub-count), cones, planes,
freeform surfaces, and others. With no name the first solid in the
scene is analyzed.

Examples:
  # Analyze the solid named "body"
  quadric analyze parts.lisp body

  # Use a custom diameter threshold
  quadric analyze parts.lisp body --threshold 5.0`,
		Args: cobra.RangeArgs(1, 2),
		RunE: runAnalyzeCmd,
	}

	cmd.Flags().Float64P("threshold", "t", 0,
		"Cylinder diameter threshold for the sub-count (default from config)")
	cmd.Flags().StringP("output", "o", "", "Write report to file instead of stdout")
	return cmd
}

// runAnalyzeCmd executes the analyze command.
func runAnalyzeCmd(cmd *cobra.Command, args []string) error {
	verbose, _ := cmd.Flags().GetBool("verbose")
	logger := setupLogger(verbose)

	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	threshold, _ := cmd.Flags().GetFloat64("threshold")
	if threshold == 0 {
		threshold = cfg.DiameterThreshold
	}

	sc, err := loadScene(args[0])
	if err != nil {
		return err
	}

	var (
		name  string
		solid brep.Solid
	)
	if len(args) == 2 {
		obj, ok := sc.Lookup(args[1])
		if !ok {
			return fmt.Errorf("no object named %q in scene", args[1])
		}
		if obj.Solid == nil {
			return fmt.Errorf("object %q is not a solid", args[1])
		}
		name, solid = obj.Name, obj.Solid
	} else {
		for _, obj := range sc.Objects {
			if obj.Solid != nil {
				name, solid = obj.Name, obj.Solid
				break
			}
		}
		if solid == nil {
			return fmt.Errorf("scene contains no solids")
		}
	}

	logger.Debug("analyzing solid", "name", name, "faces", solid.FaceCount())
	counts, err := stats.Aggregate(cmd.Context(), solid, stats.Options{
		DiameterThreshold: threshold,
		Progress: func(i int, res classify.Result) {
			logger.Debug("classified face", "index", i, "class", res.Class.String())
		},
	})
	if err != nil {
		return err
	}

	out, cleanup, err := outputWriter(cmd)
	if err != nil {
		return err
	}
	defer func() { _ = cleanup() }()

	return report.NewWriter(out).WriteStats(name, counts, threshold)
}
