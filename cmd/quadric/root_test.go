package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const sceneSource = `
(defsurface "bore" (cylinder :radius 1.6 :height 10))
(defsurface "taper" (cone :angle 15 :height 5))
(defsurface "base" (plane :size 20))
(defsolid "body"
	(solid
		(cylinder :radius 1 :height 4)
		(cylinder :radius 2 :height 4)
		(cylinder :radius 3 :height 4)
		(cone :angle 15 :height 5)
		(plane :size 10)
		(plane :size 10)))
`

// writeScene drops a scene file and a config file into a temp dir and
// returns their paths. Tests pass the config explicitly so a stray
// .quadric.yaml near the test runner never leaks in.
func writeScene(t *testing.T) (scenePath, configPath string) {
	t.Helper()
	dir := t.TempDir()

	scenePath = filepath.Join(dir, "parts.lisp")
	if err := os.WriteFile(scenePath, []byte(sceneSource), 0600); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}

	configPath = filepath.Join(dir, ".quadric.yaml")
	cfg := "document: " + filepath.Join(dir, "annotations.db") + "\n"
	if err := os.WriteFile(configPath, []byte(cfg), 0600); err != nil {
		t.Fatalf("failed to write config: %v", err)
	}
	return scenePath, configPath
}

// execute runs the root command with args and returns its output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCmd()
	var buf bytes.Buffer
	cmd.SetOut(&buf)
	cmd.SetErr(&buf)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestRootSubcommands(t *testing.T) {
	cmd := NewRootCmd()
	for _, name := range []string{"inspect", "analyze", "annotate", "version"} {
		found := false
		for _, sub := range cmd.Commands() {
			if sub.Name() == name {
				found = true
				break
			}
		}
		if !found {
			t.Errorf("root command is missing the %q subcommand", name)
		}
	}
}

func TestVersionCommand(t *testing.T) {
	out, err := execute(t, "version")
	if err != nil {
		t.Fatalf("version error = %v", err)
	}
	if !strings.Contains(out, "quadric version") {
		t.Errorf("version output = %q, want it to contain the version line", out)
	}
}

func TestAnalyzeCommand(t *testing.T) {
	scenePath, configPath := writeScene(t)

	out, err := execute(t, "analyze", scenePath, "body", "-c", configPath)
	if err != nil {
		t.Fatalf("analyze error = %v", err)
	}
	for _, want := range []string{
		"# BREP Analysis",
		"`body`",
		"6 faces",
		"Ø > 3.2",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("analyze output missing %q\n%s", want, out)
		}
	}
}

func TestAnalyzeUnknownSolid(t *testing.T) {
	scenePath, configPath := writeScene(t)

	if _, err := execute(t, "analyze", scenePath, "nope", "-c", configPath); err == nil {
		t.Error("analyze error = nil for an unknown solid name")
	}
}

func TestInspectCommand(t *testing.T) {
	scenePath, configPath := writeScene(t)

	out, err := execute(t, "inspect", scenePath, "bore", "-c", configPath)
	if err != nil {
		t.Fatalf("inspect error = %v", err)
	}
	for _, want := range []string{
		"# Surface Inspection",
		"`bore`",
		"CylinderSurface",
		"cylinder: radius 1.600, diameter 3.200",
		"## Axis segment",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("inspect output missing %q\n%s", want, out)
		}
	}
}

func TestInspectOutputFile(t *testing.T) {
	scenePath, configPath := writeScene(t)
	outPath := filepath.Join(t.TempDir(), "reports", "bore.md")

	if _, err := execute(t, "inspect", scenePath, "taper", "-c", configPath, "-o", outPath); err != nil {
		t.Fatalf("inspect error = %v", err)
	}

	data, err := os.ReadFile(outPath)
	if err != nil {
		t.Fatalf("failed to read report: %v", err)
	}
	if !strings.Contains(string(data), "ConeSurface") {
		t.Errorf("report file missing cone surface class\n%s", data)
	}
}

func TestAnnotateDryRun(t *testing.T) {
	scenePath, configPath := writeScene(t)

	out, err := execute(t, "annotate", scenePath, "--dry-run", "-c", configPath)
	if err != nil {
		t.Fatalf("annotate error = %v", err)
	}
	// bore and taper plus 4 annotatable faces are selectable, but only
	// the first face of the solid counts for it; expect cylinders and
	// cones among {bore, taper, base, body[0]} -> 3 annotations.
	if !strings.Contains(out, "planned 3 annotation(s) for 4 surface(s)") {
		t.Errorf("dry-run output = %q", out)
	}
}

func TestAnnotateCommand(t *testing.T) {
	scenePath, configPath := writeScene(t)
	dbPath := filepath.Join(t.TempDir(), "annotations.db")

	out, err := execute(t, "annotate", scenePath, "bore", "taper", "base", "--db", dbPath, "-c", configPath)
	if err != nil {
		t.Fatalf("annotate error = %v", err)
	}
	if !strings.Contains(out, "created 2 annotation(s) in "+dbPath) {
		t.Errorf("annotate output = %q", out)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("annotation document not created: %v", err)
	}
}

func TestBadSceneFile(t *testing.T) {
	dir := t.TempDir()
	scenePath := filepath.Join(dir, "broken.lisp")
	if err := os.WriteFile(scenePath, []byte(`(defsurface "x" (plane)`), 0600); err != nil {
		t.Fatalf("failed to write scene: %v", err)
	}

	if _, err := execute(t, "analyze", scenePath); err == nil {
		t.Error("analyze error = nil for a broken scene file")
	}
}
