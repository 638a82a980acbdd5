package report

import (
	"math"
	"strings"
	"testing"

	"github.com/chazu/quadric/pkg/brep/analytic"
	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/geom"
	"github.com/chazu/quadric/pkg/stats"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestWriteStats(t *testing.T) {
	counts := stats.Counts{
		Cylinders:               3,
		CylindersAboveThreshold: 2,
		Cones:                   1,
		Planes:                  2,
	}

	var sb strings.Builder
	if err := NewWriter(&sb).WriteStats("part", counts, 3.2); err != nil {
		t.Fatalf("WriteStats() error = %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		"# BREP Analysis",
		"`part`",
		"6 faces",
		"Cylinders",
		"Ø > 3.2",
		"Cones",
		"Planes",
		"**6**",
		"```mermaid",
		"Surface Type Distribution",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\n%s", want, got)
		}
	}

	// Empty classes never enter the chart.
	if strings.Contains(got, `"Freeform"`) {
		t.Errorf("chart contains a zero-count Freeform slice\n%s", got)
	}
}

func TestWriteStatsEmptySolid(t *testing.T) {
	var sb strings.Builder
	if err := NewWriter(&sb).WriteStats("empty", stats.Counts{}, 3.2); err != nil {
		t.Fatalf("WriteStats() error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, "0 faces") {
		t.Errorf("report missing zero face count\n%s", got)
	}
	if strings.Contains(got, "mermaid") {
		t.Errorf("empty report contains a chart\n%s", got)
	}
}

func TestWriteInspectionCylinder(t *testing.T) {
	f := analytic.NewFace(
		analytic.NewCylinder(v3.Vec{}, v3.Vec{Z: 1}, 1.6),
		geom.Interval{Min: 0, Max: 2 * math.Pi},
		geom.Interval{Min: 0, Max: 10})
	ins := classify.Inspect(f, classify.Options{})

	var sb strings.Builder
	if err := NewWriter(&sb).WriteInspection("shaft", ins); err != nil {
		t.Fatalf("WriteInspection() error = %v", err)
	}
	got := sb.String()

	for _, want := range []string{
		"# Surface Inspection",
		"`shaft`",
		"CylinderSurface",
		"## Bounding box",
		"## Type checks",
		"cylinder: radius 1.600, diameter 3.200",
		"cone: no fit",
		"sphere (diagnostic): no fit",
		"planar: no",
		"## Axis segment",
		"length: 10.000",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("report missing %q\n%s", want, got)
		}
	}
}

func TestWriteInspectionSphere(t *testing.T) {
	f := analytic.NewFace(
		analytic.NewSphere(v3.Vec{X: 2}, 3),
		geom.Interval{Min: 0, Max: 2 * math.Pi},
		geom.Interval{Min: -math.Pi / 2, Max: math.Pi / 2})
	ins := classify.Inspect(f, classify.Options{})

	var sb strings.Builder
	if err := NewWriter(&sb).WriteInspection("ball", ins); err != nil {
		t.Fatalf("WriteInspection() error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, "sphere (diagnostic): radius 3.000") {
		t.Errorf("report missing the diagnostic sphere fit\n%s", got)
	}
	if strings.Contains(got, "## Axis segment") {
		t.Errorf("sphere report contains an axis segment section\n%s", got)
	}
}

func TestWriteInspectionPlane(t *testing.T) {
	unit := geom.Interval{Min: 0, Max: 1}
	f := analytic.NewFace(analytic.NewPlane(v3.Vec{}, v3.Vec{Z: 1}), unit, unit)
	ins := classify.Inspect(f, classify.Options{})

	var sb strings.Builder
	if err := NewWriter(&sb).WriteInspection("base", ins); err != nil {
		t.Fatalf("WriteInspection() error = %v", err)
	}
	got := sb.String()

	if !strings.Contains(got, "planar: yes") {
		t.Errorf("report missing planar flag\n%s", got)
	}
	if !strings.Contains(got, "PlaneSurface") {
		t.Errorf("report missing surface class\n%s", got)
	}
}
