// Package batch plans axis-line annotations for a set of independently
// selected faces. The planner is pure: it classifies each face, emits
// an annotation request for every cylinder and cone, and leaves
// materializing those requests to a Sink.
package batch

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/geom"
)

// RGB is an annotation display color.
type RGB struct {
	R, G, B uint8
}

// String returns the color as "R,G,B".
func (c RGB) String() string {
	return fmt.Sprintf("%d,%d,%d", c.R, c.G, c.B)
}

// Annotation colors by face class.
var (
	// Green marks cylinder axis lines.
	Green = RGB{G: 255}
	// Red marks cone axis lines.
	Red = RGB{R: 255}
)

// Request is one planned annotation: an axis segment with its display
// color. The planner never creates a displayed object itself.
type Request struct {
	Segment geom.Segment
	Class   classify.Class
	Color   RGB

	// Diameter is set for cylinder requests.
	Diameter float64
}

// Plan classifies each face in input order and returns the annotation
// requests: red axis lines for cones, green for cylinders, nothing for
// every other class. The returned slice preserves input order and its
// length is the created-request count. The context is checked between
// items.
func Plan(ctx context.Context, items []brep.Face, opts classify.Options) ([]Request, error) {
	var reqs []Request
	for _, f := range items {
		if err := ctx.Err(); err != nil {
			return reqs, err
		}

		res := classify.Classify(f)
		switch res.Class {
		case classify.ClassCone:
			seg, _ := classify.Axis(f, res, opts)
			reqs = append(reqs, Request{
				Segment: seg,
				Class:   res.Class,
				Color:   Red,
			})
		case classify.ClassCylinder:
			seg, _ := classify.Axis(f, res, opts)
			reqs = append(reqs, Request{
				Segment:  seg,
				Class:    res.Class,
				Color:    Green,
				Diameter: res.Cylinder.Diameter(),
			})
		}
	}
	return reqs, nil
}

// Sink materializes annotation requests as visible or persistent
// entities. Create reports per-request failure; a failed request must
// not prevent later requests from being attempted.
type Sink interface {
	Create(ctx context.Context, req Request) error
}

// Apply sends each request to the sink in order. Failures are logged
// and counted but do not abort the remaining requests. It returns the
// number of requests materialized and the number that failed.
func Apply(ctx context.Context, reqs []Request, sink Sink, logger *slog.Logger) (created, failed int) {
	if logger == nil {
		logger = slog.Default()
	}
	for i, req := range reqs {
		if err := sink.Create(ctx, req); err != nil {
			failed++
			logger.Warn("annotation not materialized",
				"index", i,
				"class", req.Class.String(),
				"error", err)
			continue
		}
		created++
	}
	return created, failed
}
