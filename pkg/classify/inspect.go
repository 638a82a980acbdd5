package classify

import (
	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/geom"
	"github.com/deadsy/sdfx/sdf"
	v3 "github.com/deadsy/sdfx/vec/v3"
)

// boundsSamples is the grid resolution used to sample a face's
// bounding box for inspection reports.
const boundsSamples = 16

// Inspection is the detailed single-surface report: the primary
// classification plus diagnostics that never alter the primary tag.
type Inspection struct {
	Result Result

	// Sphere is the diagnostic sphere fit, valid when HasSphere.
	Sphere    brep.Sphere
	HasSphere bool

	// Kind is the concrete surface representation.
	Kind brep.SurfaceKind

	// Planar is the face's flatness predicate, independent of the
	// primary classification.
	Planar bool

	// Bounds is the sampled bounding box of the trimmed face.
	Bounds sdf.Box3

	// Center is the surface point at the face's domain midpoint.
	Center v3.Vec

	// Segment is the axis segment, valid when HasSegment (cylinder
	// and cone faces only).
	Segment    geom.Segment
	HasSegment bool
}

// Inspect classifies a single face and gathers the auxiliary
// diagnostics shown in interactive inspection: the independent sphere
// fit, the sampled bounding box, the face center, and the axis segment
// where one applies.
func Inspect(f brep.Face, opts Options) Inspection {
	res := Classify(f)

	ins := Inspection{
		Result: res,
		Kind:   f.Surface().Kind(),
		Planar: f.IsPlanar(),
	}
	ins.Sphere, ins.HasSphere = SphereFit(f)

	uDom := f.Domain(brep.DirU)
	vDom := f.Domain(brep.DirV)
	ins.Bounds = geom.SampleBounds(f.PointAt, uDom, vDom, boundsSamples)
	ins.Center = f.PointAt(uDom.Mid(), vDom.Mid())

	ins.Segment, ins.HasSegment = Axis(f, res, opts)
	return ins
}
