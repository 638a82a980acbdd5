// Package scene models the resolved geometry selection handed to the
// classification workflows: an ordered list of named objects, each a
// standalone face or a whole solid. Selection itself (picking in a
// host viewer) is out of scope; a scene is already-resolved input.
package scene

import (
	"github.com/chazu/quadric/pkg/brep"
)

// Object is one selected geometry entity. Exactly one of Face and
// Solid is non-nil.
type Object struct {
	Name  string
	Face  brep.Face
	Solid brep.Solid
}

// FirstFace resolves the object to a single face: the face itself, or
// the first face of a solid. ok is false for an empty solid.
func (o Object) FirstFace() (brep.Face, bool) {
	if o.Face != nil {
		return o.Face, true
	}
	if o.Solid != nil && o.Solid.FaceCount() > 0 {
		return o.Solid.Face(0), true
	}
	return nil, false
}

// Scene is an ordered collection of selected objects. The zero value
// is an empty scene.
type Scene struct {
	Objects []Object
}

// New returns a new empty scene.
func New() *Scene {
	return &Scene{}
}

// Add appends an object, preserving selection order.
func (s *Scene) Add(obj Object) {
	s.Objects = append(s.Objects, obj)
}

// Len returns the number of objects.
func (s *Scene) Len() int {
	return len(s.Objects)
}

// Lookup returns the first object with the given name.
func (s *Scene) Lookup(name string) (Object, bool) {
	for _, obj := range s.Objects {
		if obj.Name == name {
			return obj, true
		}
	}
	return Object{}, false
}

// Faces resolves every object to a single face, in selection order,
// skipping objects that cannot provide one. This matches the
// single-face-per-selection behavior of the batch workflow.
func (s *Scene) Faces() []brep.Face {
	var faces []brep.Face
	for _, obj := range s.Objects {
		if f, ok := obj.FirstFace(); ok {
			faces = append(faces, f)
		}
	}
	return faces
}
