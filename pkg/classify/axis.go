package classify

import (
	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/geom"
)

// DefaultConeAxisHalfLength is the fixed half-length of a cone's axis
// indicator segment, in model length units.
const DefaultConeAxisHalfLength = 2.5

// Options configures axis segment extraction.
type Options struct {
	// ConeAxisHalfLength is the half-length of the cone axis segment.
	// Zero selects DefaultConeAxisHalfLength.
	ConeAxisHalfLength float64
}

func (o Options) coneHalfLength() float64 {
	if o.ConeAxisHalfLength == 0 {
		return DefaultConeAxisHalfLength
	}
	return o.ConeAxisHalfLength
}

// Axis computes the axis segment for a classified face. It returns
// ok=false for classes that have no axis segment (plane, sphere,
// freeform, other).
func Axis(f brep.Face, res Result, opts Options) (geom.Segment, bool) {
	switch res.Class {
	case ClassCylinder:
		return CylinderAxis(f, *res.Cylinder), true
	case ClassCone:
		return ConeAxis(f, *res.Cone, opts.coneHalfLength()), true
	}
	return geom.Segment{}, false
}

// CylinderAxis computes the portion of the cylinder axis spanning
// exactly this face's trimmed extent. The face is evaluated at the
// U-domain midpoint and both V-domain ends; each boundary point is
// projected onto the axis through the cylinder center. Two faces on
// the same underlying cylinder with disjoint V-domains therefore yield
// disjoint segments. A degenerate V-domain yields a zero-length
// segment.
//
// Endpoint order is preserved: Start corresponds to V-min, End to
// V-max.
func CylinderAxis(f brep.Face, cyl brep.Cylinder) geom.Segment {
	uMid := f.Domain(brep.DirU).Mid()
	vDom := f.Domain(brep.DirV)

	p1 := f.PointAt(uMid, vDom.Min)
	p2 := f.PointAt(uMid, vDom.Max)

	t1 := p1.Sub(cyl.Center).Dot(cyl.Axis)
	t2 := p2.Sub(cyl.Center).Dot(cyl.Axis)

	return geom.Segment{
		Start: cyl.Center.Add(cyl.Axis.MulScalar(t1)),
		End:   cyl.Center.Add(cyl.Axis.MulScalar(t2)),
	}
}

// ConeAxis computes a fixed-length axis indicator for a cone face,
// centered on the surface point at the face's (U, V) domain midpoint.
// When no face is available the apex is used as the center. Unlike the
// cylinder case the segment is not bounded by the face's V-domain;
// that asymmetry is preserved from the observed host behavior.
func ConeAxis(f brep.Face, cone brep.Cone, halfLength float64) geom.Segment {
	center := cone.Apex
	if f != nil {
		u := f.Domain(brep.DirU).Mid()
		v := f.Domain(brep.DirV).Mid()
		center = f.PointAt(u, v)
	}
	return geom.Segment{
		Start: center.Sub(cone.Axis.MulScalar(halfLength)),
		End:   center.Add(cone.Axis.MulScalar(halfLength)),
	}
}
