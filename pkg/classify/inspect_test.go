package classify

import (
	"math"
	"testing"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/brep/analytic"
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

func TestInspectCylinder(t *testing.T) {
	f := cylinderFace(1.6, geom.Interval{Min: 0, Max: 10})

	ins := Inspect(f, Options{})

	if ins.Result.Class != ClassCylinder {
		t.Fatalf("Class = %v, want ClassCylinder", ins.Result.Class)
	}
	if ins.Kind != brep.KindCylinder {
		t.Errorf("Kind = %v, want KindCylinder", ins.Kind)
	}
	if ins.HasSphere {
		t.Error("HasSphere = true for a cylinder face")
	}
	if !ins.HasSegment {
		t.Fatal("HasSegment = false for a cylinder face")
	}
	if math.Abs(ins.Segment.Length()-10) > eps {
		t.Errorf("segment length = %v, want 10", ins.Segment.Length())
	}

	// The sampled box covers the cross-section up to grid resolution.
	if ins.Bounds.Max.X < 1.55 || ins.Bounds.Min.X > -1.55 {
		t.Errorf("X bounds = [%v, %v], want to span roughly [-1.6, 1.6]",
			ins.Bounds.Min.X, ins.Bounds.Max.X)
	}
	if math.Abs(ins.Bounds.Min.Z) > eps || math.Abs(ins.Bounds.Max.Z-10) > eps {
		t.Errorf("Z bounds = [%v, %v], want [0, 10]", ins.Bounds.Min.Z, ins.Bounds.Max.Z)
	}
}

func TestInspectSphereDiagnostic(t *testing.T) {
	center := v3.Vec{X: 2}
	f := analytic.NewFace(analytic.NewSphere(center, 3), fullTurn,
		geom.Interval{Min: -math.Pi / 2, Max: math.Pi / 2})

	ins := Inspect(f, Options{})

	if !ins.HasSphere {
		t.Fatal("HasSphere = false for a sphere face")
	}
	if math.Abs(ins.Sphere.Radius-3) > eps {
		t.Errorf("diagnostic sphere radius = %v, want 3", ins.Sphere.Radius)
	}
	// Primary tag unaffected by the diagnostic.
	if ins.Result.Class == ClassSphere {
		t.Error("primary class is ClassSphere; sphere fit must stay diagnostic")
	}
	if ins.HasSegment {
		t.Error("HasSegment = true for a sphere face")
	}
}

func TestInspectPlanarFlag(t *testing.T) {
	if !Inspect(planeFace(), Options{}).Planar {
		t.Error("Planar = false for a plane face")
	}
	if Inspect(cylinderFace(1, unit), Options{}).Planar {
		t.Error("Planar = true for a cylinder face")
	}
}

func TestInspectCenter(t *testing.T) {
	f := cylinderFace(2, geom.Interval{Min: 0, Max: 6})

	ins := Inspect(f, Options{})

	want := f.PointAt(math.Pi, 3)
	if ins.Center.Sub(want).Length() > eps {
		t.Errorf("Center = %v, want domain-midpoint evaluation %v", ins.Center, want)
	}
}
