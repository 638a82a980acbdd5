package brep

import (
	"math"

	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Cylinder holds the parameters of a recognized circular cylinder.
type Cylinder struct {
	Center v3.Vec  // a point on the axis
	Axis   v3.Vec  // unit axis direction
	Radius float64 // cylinder radius
}

// Diameter returns twice the radius.
func (c Cylinder) Diameter() float64 {
	return 2 * c.Radius
}

// Cone holds the parameters of a recognized circular cone.
type Cone struct {
	Apex      v3.Vec  // cone apex
	Axis      v3.Vec  // unit direction from apex toward the base
	Radius    float64 // base radius
	HalfAngle float64 // half-angle between axis and lateral surface, radians
}

// AngleDegrees returns the half-angle in degrees.
func (c Cone) AngleDegrees() float64 {
	return c.HalfAngle * 180 / math.Pi
}

// Sphere holds the parameters of a recognized sphere.
type Sphere struct {
	Center v3.Vec
	Radius float64
}
