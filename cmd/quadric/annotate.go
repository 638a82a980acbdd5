package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/chazu/quadric/pkg/batch"
	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/document"
)

// NewAnnotateCmd creates the annotate command.
func NewAnnotateCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "annotate <scene-file> [names...]",
		Short: "Create axis-line annotations for cylinders and cones",
		Long: `Annotate classifies the selected surfaces and stores an axis-line
annotation in the document for every cylinder (green) and cone (red).
Planes, freeform surfaces, and other types produce no annotation.
With no names every object in the scene is processed, in scene order.

Examples:
  # Annotate every surface in the scene
  quadric annotate parts.lisp

  # Annotate selected surfaces into a specific document
  quadric annotate parts.lisp bore taper --db ./annotations.db

  # Plan without writing anything
  quadric annotate parts.lisp --dry-run`,
		Args: cobra.MinimumNArgs(1),
		RunE: runAnnotateCmd,
	}

	cmd.Flags().String("db", "", "Annotation document path (default from config)")
	cmd.Flags().Bool("dry-run", false, "Plan annotations without materializing them")
	return cmd
}

// runAnnotateCmd executes the annotate command.
func runAnnotateCmd(cmd *cobra.Command, args []string) error {
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

	// Resolve the selection: named objects, or the whole scene.
	var items []brep.Face
	if len(args) > 1 {
		for _, name := range args[1:] {
			obj, ok := sc.Lookup(name)
			if !ok {
				return fmt.Errorf("no object named %q in scene", name)
			}
			f, ok := obj.FirstFace()
			if !ok {
				return fmt.Errorf("object %q has no faces", name)
			}
			items = append(items, f)
		}
	} else {
		items = sc.Faces()
	}

	reqs, err := batch.Plan(cmd.Context(), items, classify.Options{
		ConeAxisHalfLength: cfg.ConeAxisHalfLength,
	})
	if err != nil {
		return err
	}
	logger.Info("planned annotations", "selected", len(items), "planned", len(reqs))

	dryRun, _ := cmd.Flags().GetBool("dry-run")
	if dryRun {
		fmt.Fprintf(cmd.OutOrStdout(), "planned %d annotation(s) for %d surface(s)\n",
			len(reqs), len(items))
		return nil
	}

	dbPath, _ := cmd.Flags().GetString("db")
	if dbPath == "" {
		dbPath = cfg.Document
	}
	store, err := document.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = store.Close() }()

	created, failed := batch.Apply(cmd.Context(), reqs, store, logger)
	fmt.Fprintf(cmd.OutOrStdout(), "created %d annotation(s) in %s", created, store.Path())
	if failed > 0 {
		fmt.Fprintf(cmd.OutOrStdout(), " (%d failed)", failed)
	}
	fmt.Fprintln(cmd.OutOrStdout())
	return nil
}
