package analytic

import (
	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/geom"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Compile-time interface checks.
var (
	_ brep.Face  = (*Face)(nil)
	_ brep.Solid = (*Solid)(nil)
)

// Face trims an underlying surface to a U x V parameter region.
// Planar mirrors the host's face-level flatness predicate; NewFace
// derives it from the surface kind, but it remains an independent
// property of the face and may be overridden.
type Face struct {
	Surf   brep.Surface
	U, V   geom.Interval
	Planar bool
}

// NewFace creates a face trimming surf to the given parameter region.
func NewFace(surf brep.Surface, u, v geom.Interval) *Face {
	return &Face{
		Surf:   surf,
		U:      u,
		V:      v,
		Planar: surf.Kind() == brep.KindPlane,
	}
}

// Surface returns the untrimmed underlying surface.
func (f *Face) Surface() brep.Surface { return f.Surf }

// Domain returns the parameter interval in the given direction.
func (f *Face) Domain(d brep.Dir) geom.Interval {
	if d == brep.DirU {
		return f.U
	}
	return f.V
}

// PointAt evaluates the underlying surface at (u, v).
func (f *Face) PointAt(u, v float64) v3.Vec {
	return f.Surf.PointAt(u, v)
}

// IsPlanar reports whether the face is flat.
func (f *Face) IsPlanar() bool { return f.Planar }

// Solid is an ordered list of faces.
type Solid struct {
	faces []*Face
}

// NewSolid creates a solid from the given faces, in order.
func NewSolid(faces ...*Face) *Solid {
	return &Solid{faces: faces}
}

// FaceCount returns the number of faces.
func (s *Solid) FaceCount() int { return len(s.faces) }

// Face returns the face at index i.
func (s *Solid) Face(i int) brep.Face { return s.faces[i] }
