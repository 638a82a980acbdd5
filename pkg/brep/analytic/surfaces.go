// Package analytic implements the brep interfaces with exact analytic
// surfaces: planes, cylinders, cones, spheres, and the recognized
// freeform representations. It is the geometry backend used by the
// scene engine and the test suites; fit queries succeed exactly for
// the matching primitive and fail for everything else.
package analytic

import (
	"math"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var (
	_ brep.Surface = (*Plane)(nil)
	_ brep.Surface = (*Cylinder)(nil)
	_ brep.Surface = (*Cone)(nil)
	_ brep.Surface = (*Sphere)(nil)
)

// ---------------------------------------------------------------------------
// Plane
// ---------------------------------------------------------------------------

// Plane is an infinite plane parametrized by two in-plane directions.
type Plane struct {
	Origin v3.Vec
	Normal v3.Vec // unit normal

	e1, e2 v3.Vec
}

// NewPlane creates a plane through origin with the given unit normal.
func NewPlane(origin, normal v3.Vec) *Plane {
	p := &Plane{Origin: origin, Normal: normal}
	p.e1, p.e2 = geom.Basis(normal)
	return p
}

// PointAt evaluates the plane at in-plane coordinates (u, v).
func (p *Plane) PointAt(u, v float64) v3.Vec {
	return p.Origin.Add(p.e1.MulScalar(u)).Add(p.e2.MulScalar(v))
}

// Kind returns KindPlane.
func (p *Plane) Kind() brep.SurfaceKind { return brep.KindPlane }

// AsCylinder always fails for a plane.
func (p *Plane) AsCylinder() (brep.Cylinder, bool) { return brep.Cylinder{}, false }

// AsCone always fails for a plane.
func (p *Plane) AsCone() (brep.Cone, bool) { return brep.Cone{}, false }

// AsSphere always fails for a plane.
func (p *Plane) AsSphere() (brep.Sphere, bool) { return brep.Sphere{}, false }

// ---------------------------------------------------------------------------
// Cylinder
// ---------------------------------------------------------------------------

// Cylinder is a circular cylinder. U is the angular parameter in
// radians; V is the signed distance along the axis from Center.
type Cylinder struct {
	Center v3.Vec // point on the axis
	Axis   v3.Vec // unit axis direction
	Radius float64

	e1, e2 v3.Vec
}

// NewCylinder creates a cylinder about the given axis through center.
func NewCylinder(center, axis v3.Vec, radius float64) *Cylinder {
	c := &Cylinder{Center: center, Axis: axis, Radius: radius}
	c.e1, c.e2 = geom.Basis(axis)
	return c
}

// PointAt evaluates the cylinder at angle u and axial offset v.
func (c *Cylinder) PointAt(u, v float64) v3.Vec {
	radial := c.e1.MulScalar(math.Cos(u)).Add(c.e2.MulScalar(math.Sin(u)))
	return c.Center.Add(radial.MulScalar(c.Radius)).Add(c.Axis.MulScalar(v))
}

// Kind returns KindCylinder.
func (c *Cylinder) Kind() brep.SurfaceKind { return brep.KindCylinder }

// AsCylinder succeeds with the cylinder's own parameters.
func (c *Cylinder) AsCylinder() (brep.Cylinder, bool) {
	return brep.Cylinder{Center: c.Center, Axis: c.Axis, Radius: c.Radius}, true
}

// AsCone always fails for a cylinder.
func (c *Cylinder) AsCone() (brep.Cone, bool) { return brep.Cone{}, false }

// AsSphere always fails for a cylinder.
func (c *Cylinder) AsSphere() (brep.Sphere, bool) { return brep.Sphere{}, false }

// ---------------------------------------------------------------------------
// Cone
// ---------------------------------------------------------------------------

// Cone is a circular cone. U is the angular parameter; V is the signed
// distance along the axis from the apex, so the local radius at V is
// V * tan(HalfAngle). Height fixes the base circle for the fit query.
type Cone struct {
	Apex      v3.Vec
	Axis      v3.Vec // unit direction, apex toward base
	HalfAngle float64
	Height    float64

	e1, e2 v3.Vec
}

// NewCone creates a cone from apex along axis with the given half-angle
// and axial height.
func NewCone(apex, axis v3.Vec, halfAngle, height float64) *Cone {
	c := &Cone{Apex: apex, Axis: axis, HalfAngle: halfAngle, Height: height}
	c.e1, c.e2 = geom.Basis(axis)
	return c
}

// PointAt evaluates the cone at angle u and axial offset v.
func (c *Cone) PointAt(u, v float64) v3.Vec {
	r := v * math.Tan(c.HalfAngle)
	radial := c.e1.MulScalar(math.Cos(u)).Add(c.e2.MulScalar(math.Sin(u)))
	return c.Apex.Add(c.Axis.MulScalar(v)).Add(radial.MulScalar(r))
}

// Kind returns KindCone.
func (c *Cone) Kind() brep.SurfaceKind { return brep.KindCone }

// AsCylinder always fails for a cone.
func (c *Cone) AsCylinder() (brep.Cylinder, bool) { return brep.Cylinder{}, false }

// AsCone succeeds with the cone's own parameters.
func (c *Cone) AsCone() (brep.Cone, bool) {
	return brep.Cone{
		Apex:      c.Apex,
		Axis:      c.Axis,
		Radius:    c.Height * math.Tan(c.HalfAngle),
		HalfAngle: c.HalfAngle,
	}, true
}

// AsSphere always fails for a cone.
func (c *Cone) AsSphere() (brep.Sphere, bool) { return brep.Sphere{}, false }

// ---------------------------------------------------------------------------
// Sphere
// ---------------------------------------------------------------------------

// Sphere is parametrized by longitude U and latitude V (radians,
// V in [-pi/2, pi/2] for the full sphere).
type Sphere struct {
	Center v3.Vec
	Radius float64

	axis, e1, e2 v3.Vec
}

// NewSphere creates a sphere with poles along +Z.
func NewSphere(center v3.Vec, radius float64) *Sphere {
	s := &Sphere{Center: center, Radius: radius, axis: v3.Vec{Z: 1}}
	s.e1, s.e2 = geom.Basis(s.axis)
	return s
}

// PointAt evaluates the sphere at longitude u and latitude v.
func (s *Sphere) PointAt(u, v float64) v3.Vec {
	radial := s.e1.MulScalar(math.Cos(u)).Add(s.e2.MulScalar(math.Sin(u)))
	p := radial.MulScalar(s.Radius * math.Cos(v))
	return s.Center.Add(p).Add(s.axis.MulScalar(s.Radius * math.Sin(v)))
}

// Kind returns KindSphere.
func (s *Sphere) Kind() brep.SurfaceKind { return brep.KindSphere }

// AsCylinder always fails for a sphere.
func (s *Sphere) AsCylinder() (brep.Cylinder, bool) { return brep.Cylinder{}, false }

// AsCone always fails for a sphere.
func (s *Sphere) AsCone() (brep.Cone, bool) { return brep.Cone{}, false }

// AsSphere succeeds with the sphere's own parameters.
func (s *Sphere) AsSphere() (brep.Sphere, bool) {
	return brep.Sphere{Center: s.Center, Radius: s.Radius}, true
}
