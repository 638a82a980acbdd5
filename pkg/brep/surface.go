// Package brep defines the boundary-representation model quadric
// operates on: evaluable parametric surfaces, trimmed faces, solids,
// and the analytic primitive parameters produced by fit queries.
// Implementations (see brep/analytic) provide the geometry behind
// these interfaces; the classification layer depends only on them.
package brep

import (
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// SurfaceKind identifies the concrete representation of a surface.
// It is a closed enumeration rather than a name string so kind checks
// are compile-time matches with an explicit unknown fallback.
type SurfaceKind int

const (
	// KindUnknown is the fallback for unrecognized representations.
	KindUnknown SurfaceKind = iota

	// KindPlane is an infinite plane.
	KindPlane

	// KindCylinder is a circular cylinder.
	KindCylinder

	// KindCone is a circular cone.
	KindCone

	// KindSphere is a sphere.
	KindSphere

	// KindNurbs is a non-uniform rational B-spline patch.
	KindNurbs

	// KindSum is a translational sum of two curves.
	KindSum

	// KindRevolution is a profile curve revolved about an axis.
	KindRevolution
)

// String returns the host-style representation name for the kind.
func (k SurfaceKind) String() string {
	switch k {
	case KindPlane:
		return "PlaneSurface"
	case KindCylinder:
		return "CylinderSurface"
	case KindCone:
		return "ConeSurface"
	case KindSphere:
		return "SphereSurface"
	case KindNurbs:
		return "NurbsSurface"
	case KindSum:
		return "SumSurface"
	case KindRevolution:
		return "RevSurface"
	}
	return "Unknown"
}

// IsFreeform reports whether the kind is one of the recognized
// non-analytic representations.
func (k SurfaceKind) IsFreeform() bool {
	return k == KindNurbs || k == KindSum || k == KindRevolution
}

// Dir selects one of a face's two parametric directions.
type Dir int

const (
	// DirU is the first parametric direction.
	DirU Dir = iota
	// DirV is the second parametric direction.
	DirV
)

// Surface is an evaluable parametric surface together with its
// analytic-fit query. The surface is logically unbounded in its own
// parametrization; trimming to a finite region is the Face's job.
//
// Each As* fit attempt succeeds or fails independently. A surface may
// satisfy more than one fit, so callers that need a single answer must
// apply a precedence order (see the classify package).
type Surface interface {
	// PointAt evaluates the surface at parameters (u, v).
	PointAt(u, v float64) v3.Vec

	// Kind returns the concrete representation kind.
	Kind() SurfaceKind

	// AsCylinder attempts to recognize the surface as a cylinder.
	AsCylinder() (Cylinder, bool)

	// AsCone attempts to recognize the surface as a cone.
	AsCone() (Cone, bool)

	// AsSphere attempts to recognize the surface as a sphere.
	AsSphere() (Sphere, bool)
}

// Face is a trimmed region of an underlying surface, bounded by one
// parameter interval per direction.
type Face interface {
	// Surface returns the untrimmed underlying surface.
	Surface() Surface

	// Domain returns the parameter interval in the given direction.
	Domain(d Dir) geom.Interval

	// PointAt evaluates the underlying surface at (u, v).
	PointAt(u, v float64) v3.Vec

	// IsPlanar reports whether the trimmed face is flat. This is a
	// property of the face, independent of the analytic fit queries.
	IsPlanar() bool
}

// Solid is an indexable collection of faces bounding a closed region.
type Solid interface {
	// FaceCount returns the number of faces.
	FaceCount() int

	// Face returns the face at index i, 0 <= i < FaceCount().
	Face(i int) Face
}
