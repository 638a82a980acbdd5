// Package classify determines the canonical type of a BREP face and,
// for quadrics of revolution, extracts the axis segment bounded by the
// face's own parametric domain.
//
// Classification runs an ordered rule chain. The order is load-bearing:
// the cylinder and cone fits are algebraically tight while the planar
// predicate is coarse, so a near-degenerate cylinder that also passes
// the planarity check must still be reported as a cylinder. A sphere
// fit never participates in the chain; it is available only as a
// diagnostic through Inspect.
package classify

import (
	"github.com/chazu/quadric/pkg/brep"
)

// Class tags the outcome of classifying one face.
type Class int

const (
	// ClassOther is the fallback for unrecognized geometry.
	ClassOther Class = iota

	// ClassCylinder is a circular cylinder face.
	ClassCylinder

	// ClassCone is a circular cone face.
	ClassCone

	// ClassSphere is a sphere face. The primary chain never produces
	// this tag; it exists for diagnostic reporting.
	ClassSphere

	// ClassPlane is a planar face.
	ClassPlane

	// ClassFreeform is a recognized non-analytic representation.
	ClassFreeform
)

// String returns a short display name for the class.
func (c Class) String() string {
	switch c {
	case ClassCylinder:
		return "cylinder"
	case ClassCone:
		return "cone"
	case ClassSphere:
		return "sphere"
	case ClassPlane:
		return "plane"
	case ClassFreeform:
		return "freeform"
	}
	return "other"
}

// Result is the typed outcome of classifying one face. Exactly one
// class applies; the parameter pointer matching the class is non-nil.
// Kind carries the concrete representation for freeform and other.
type Result struct {
	Class    Class
	Cylinder *brep.Cylinder
	Cone     *brep.Cone
	Kind     brep.SurfaceKind
}

// rule attempts to classify a face. The second return value reports
// whether the rule matched; an unmatched rule passes the face on.
type rule func(brep.Face) (Result, bool)

// chain is the classification precedence order. Do not reorder:
// cylinder before cone, both before the planar predicate, freeform
// kind recognition last before the fallback.
var chain = []rule{
	cylinderRule,
	coneRule,
	planeRule,
	freeformRule,
}

// Classify resolves a face to exactly one class. It is a pure function
// of the face's current geometry: no caching, no side effects, and
// never an error. Unrecognized geometry falls through to ClassOther.
func Classify(f brep.Face) Result {
	for _, r := range chain {
		if res, ok := r(f); ok {
			return res
		}
	}
	return Result{Class: ClassOther, Kind: f.Surface().Kind()}
}

// cylinderRule matches faces whose surface fits a cylinder. A match
// here is final; later rules never override cylinder parameters.
func cylinderRule(f brep.Face) (Result, bool) {
	cyl, ok := f.Surface().AsCylinder()
	if !ok {
		return Result{}, false
	}
	return Result{Class: ClassCylinder, Cylinder: &cyl, Kind: f.Surface().Kind()}, true
}

// coneRule matches faces whose surface fits a cone.
func coneRule(f brep.Face) (Result, bool) {
	cone, ok := f.Surface().AsCone()
	if !ok {
		return Result{}, false
	}
	return Result{Class: ClassCone, Cone: &cone, Kind: f.Surface().Kind()}, true
}

// planeRule matches faces the host reports as flat. This is the face's
// trim/flatness predicate, not a numeric surface fit.
func planeRule(f brep.Face) (Result, bool) {
	if !f.IsPlanar() {
		return Result{}, false
	}
	return Result{Class: ClassPlane, Kind: f.Surface().Kind()}, true
}

// freeformRule matches the fixed set of recognized non-analytic
// representations by their concrete kind.
func freeformRule(f brep.Face) (Result, bool) {
	kind := f.Surface().Kind()
	if !kind.IsFreeform() {
		return Result{}, false
	}
	return Result{Class: ClassFreeform, Kind: kind}, true
}

// SphereFit attempts the diagnostic sphere fit for a face. It is
// intentionally not part of the classification chain; callers surface
// it as additional information without changing the primary tag.
func SphereFit(f brep.Face) (brep.Sphere, bool) {
	return f.Surface().AsSphere()
}
