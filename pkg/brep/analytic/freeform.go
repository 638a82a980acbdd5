package analytic

import (
	"math"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var (
	_ brep.Surface = (*Revolution)(nil)
	_ brep.Surface = (*Sum)(nil)
	_ brep.Surface = (*Nurbs)(nil)
)

// freeform carries the behavior shared by the non-analytic surface
// representations: every fit query fails.
type freeform struct{}

func (freeform) AsCylinder() (brep.Cylinder, bool) { return brep.Cylinder{}, false }
func (freeform) AsCone() (brep.Cone, bool)         { return brep.Cone{}, false }
func (freeform) AsSphere() (brep.Sphere, bool)     { return brep.Sphere{}, false }

// ---------------------------------------------------------------------------
// Surface of revolution
// ---------------------------------------------------------------------------

// Profile describes a planar generating curve for a revolution: for a
// profile parameter t it returns the radial distance from the axis and
// the height along the axis.
type Profile func(t float64) (radius, height float64)

// Revolution is a profile curve revolved about an axis. U is the
// revolution angle in radians; V is the profile parameter.
type Revolution struct {
	freeform
	Origin  v3.Vec // point on the axis
	Axis    v3.Vec // unit axis direction
	Profile Profile

	e1, e2 v3.Vec
}

// NewRevolution creates a surface of revolution about the given axis.
func NewRevolution(origin, axis v3.Vec, profile Profile) *Revolution {
	r := &Revolution{Origin: origin, Axis: axis, Profile: profile}
	r.e1, r.e2 = geom.Basis(axis)
	return r
}

// NewTorus creates a circular-profile revolution: a torus with the
// given major and minor radii about the axis through origin.
func NewTorus(origin, axis v3.Vec, major, minor float64) *Revolution {
	return NewRevolution(origin, axis, func(t float64) (float64, float64) {
		return major + minor*math.Cos(t), minor * math.Sin(t)
	})
}

// PointAt evaluates the revolution at angle u and profile parameter v.
func (r *Revolution) PointAt(u, v float64) v3.Vec {
	rad, h := r.Profile(v)
	radial := r.e1.MulScalar(math.Cos(u)).Add(r.e2.MulScalar(math.Sin(u)))
	return r.Origin.Add(radial.MulScalar(rad)).Add(r.Axis.MulScalar(h))
}

// Kind returns KindRevolution.
func (r *Revolution) Kind() brep.SurfaceKind { return brep.KindRevolution }

// ---------------------------------------------------------------------------
// Sum surface
// ---------------------------------------------------------------------------

// Curve is a parametric space curve.
type Curve func(t float64) v3.Vec

// Sum is a translational surface: the first curve swept along the
// second, P(u, v) = A(u) + B(v).
type Sum struct {
	freeform
	A, B Curve
}

// NewSum creates a sum surface from two curves.
func NewSum(a, b Curve) *Sum {
	return &Sum{A: a, B: b}
}

// PointAt evaluates the sum surface.
func (s *Sum) PointAt(u, v float64) v3.Vec {
	return s.A(u).Add(s.B(v))
}

// Kind returns KindSum.
func (s *Sum) Kind() brep.SurfaceKind { return brep.KindSum }

// ---------------------------------------------------------------------------
// NURBS patch
// ---------------------------------------------------------------------------

// Nurbs is a spline patch stand-in evaluated by bilinear interpolation
// of a 2x2 control grid over the unit square. It represents geometry
// with no canonical analytic form.
type Nurbs struct {
	freeform
	Control [2][2]v3.Vec
}

// NewNurbs creates a patch from four corner control points.
func NewNurbs(p00, p10, p01, p11 v3.Vec) *Nurbs {
	return &Nurbs{Control: [2][2]v3.Vec{{p00, p01}, {p10, p11}}}
}

// PointAt evaluates the patch at (u, v) in [0, 1] x [0, 1].
func (n *Nurbs) PointAt(u, v float64) v3.Vec {
	bottom := n.Control[0][0].MulScalar(1 - u).Add(n.Control[1][0].MulScalar(u))
	top := n.Control[0][1].MulScalar(1 - u).Add(n.Control[1][1].MulScalar(u))
	return bottom.MulScalar(1 - v).Add(top.MulScalar(v))
}

// Kind returns KindNurbs.
func (n *Nurbs) Kind() brep.SurfaceKind { return brep.KindNurbs }
