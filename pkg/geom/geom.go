// Package geom provides the small geometric value types shared across
// quadric: parametric intervals, finite axis segments, and bounding-box
// sampling. Points and directions use v3.Vec from the sdfx vector
// package. Axis directions are assumed to be unit length by convention;
// nothing in this package re-normalizes them.
package geom

import (
	"math"

	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// Interval is a closed parameter range along one parametric direction
// of a surface. A trimmed face owns two intervals, one per direction.
type Interval struct {
	Min, Max float64
}

// Mid returns the interval midpoint.
func (i Interval) Mid() float64 {
	return (i.Min + i.Max) / 2
}

// Length returns the extent of the interval.
func (i Interval) Length() float64 {
	return i.Max - i.Min
}

// IsDegenerate reports whether the interval has collapsed to a point.
func (i Interval) IsDegenerate() bool {
	return i.Min == i.Max
}

// Segment is a finite, directed portion of an infinite line.
// The zero value is a zero-length segment at the origin.
type Segment struct {
	Start, End v3.Vec
}

// Length returns the Euclidean length of the segment.
func (s Segment) Length() float64 {
	return s.End.Sub(s.Start).Length()
}

// IsZero reports whether the segment has (numerically) no extent.
func (s Segment) IsZero() bool {
	return s.Length() < 1e-12
}

// Basis returns two unit vectors that form a right-handed orthonormal
// frame with the given unit axis. The frame choice is deterministic for
// a given axis so repeated parametrizations agree.
func Basis(axis v3.Vec) (e1, e2 v3.Vec) {
	// Pick the reference direction least aligned with the axis.
	ref := v3.Vec{X: 1}
	if math.Abs(axis.X) > math.Abs(axis.Y) {
		ref = v3.Vec{Y: 1}
	}
	e1 = axis.Cross(ref).Normalize()
	e2 = axis.Cross(e1)
	return e1, e2
}

// SampleBounds evaluates eval over an n x n grid spanning the given
// parameter intervals and returns the axis-aligned bounding box of the
// sampled points. n must be at least 2; smaller values are clamped.
// This bounds the trimmed face, not the underlying infinite surface.
func SampleBounds(eval func(u, v float64) v3.Vec, uDom, vDom Interval, n int) sdf.Box3 {
	if n < 2 {
		n = 2
	}
	box := sdf.Box3{}
	first := true
	for i := 0; i < n; i++ {
		u := uDom.Min + uDom.Length()*float64(i)/float64(n-1)
		for j := 0; j < n; j++ {
			v := vDom.Min + vDom.Length()*float64(j)/float64(n-1)
			p := eval(u, v)
			if first {
				box.Min, box.Max = p, p
				first = false
				continue
			}
			box.Min.X = math.Min(box.Min.X, p.X)
			box.Min.Y = math.Min(box.Min.Y, p.Y)
			box.Min.Z = math.Min(box.Min.Z, p.Z)
			box.Max.X = math.Max(box.Max.X, p.X)
			box.Max.Y = math.Max(box.Max.Y, p.Y)
			box.Max.Z = math.Max(box.Max.Z, p.Z)
		}
	}
	return box
}
