// Package stats aggregates face classifications across a whole solid.
package stats

import (
	"context"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/classify"
)

// DefaultDiameterThreshold is the cylinder diameter above which the
// above-threshold sub-count increments, in model length units.
const DefaultDiameterThreshold = 3.2

// Options configures aggregation.
type Options struct {
	// DiameterThreshold is the cylinder diameter cutoff for the
	// above-threshold sub-count. Zero selects the default.
	DiameterThreshold float64

	// Progress, when non-nil, is called after each face with the face
	// index and its classification. Faces are visited in index order.
	Progress func(i int, res classify.Result)
}

func (o Options) threshold() float64 {
	if o.DiameterThreshold == 0 {
		return DefaultDiameterThreshold
	}
	return o.DiameterThreshold
}

// Counts holds per-class face counts for one solid.
type Counts struct {
	Cylinders               int
	CylindersAboveThreshold int
	Cones                   int
	Planes                  int
	Freeform                int
	Other                   int
}

// Total returns the number of classified faces.
func (c Counts) Total() int {
	return c.Cylinders + c.Cones + c.Planes + c.Freeform + c.Other
}

// Aggregate classifies every face of the solid exactly once, in face
// index order, and returns the per-class counts. Cylinders whose
// diameter exceeds the threshold additionally increment the
// above-threshold sub-count. A solid with zero faces yields zero
// counts. The context is checked between faces so large solids can be
// cancelled.
func Aggregate(ctx context.Context, solid brep.Solid, opts Options) (Counts, error) {
	var counts Counts
	threshold := opts.threshold()

	for i := 0; i < solid.FaceCount(); i++ {
		if err := ctx.Err(); err != nil {
			return counts, err
		}

		res := classify.Classify(solid.Face(i))
		switch res.Class {
		case classify.ClassCylinder:
			counts.Cylinders++
			if res.Cylinder.Diameter() > threshold {
				counts.CylindersAboveThreshold++
			}
		case classify.ClassCone:
			counts.Cones++
		case classify.ClassPlane:
			counts.Planes++
		case classify.ClassFreeform:
			counts.Freeform++
		default:
			counts.Other++
		}

		if opts.Progress != nil {
			opts.Progress(i, res)
		}
	}
	return counts, nil
}
