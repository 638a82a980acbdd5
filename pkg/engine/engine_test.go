package engine

import (
	"errors"
	"math"
	"strings"
	"testing"

	"github.com/chazu/quadric/pkg/brep"
	"github.com/chazu/quadric/pkg/classify"
)

func TestEvaluateEmptySource(t *testing.T) {
	for _, source := range []string{"", "   ", "\n\t\n"} {
		sc, evalErrs, err := NewEngine().Evaluate(source)
		if err != nil {
			t.Fatalf("Evaluate(%q) fatal error = %v", source, err)
		}
		if len(evalErrs) > 0 {
			t.Fatalf("Evaluate(%q) eval errors = %v", source, evalErrs)
		}
		if sc == nil || sc.Len() != 0 {
			t.Errorf("Evaluate(%q) scene = %v, want empty scene", source, sc)
		}
	}
}

func TestEvaluateDefsurface(t *testing.T) {
	source := `(defsurface "shaft"
		(cylinder :center (vec3 0 0 0) :axis (vec3 0 0 1) :radius 1.6 :height 10))`

	sc, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() fatal error = %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("Evaluate() eval errors = %v", evalErrs)
	}
	if sc.Len() != 1 {
		t.Fatalf("scene has %d objects, want 1", sc.Len())
	}

	obj, ok := sc.Lookup("shaft")
	if !ok {
		t.Fatal(`Lookup("shaft") not found`)
	}
	if obj.Face == nil {
		t.Fatal("object has nil Face")
	}

	res := classify.Classify(obj.Face)
	if res.Class != classify.ClassCylinder {
		t.Fatalf("Classify().Class = %v, want ClassCylinder", res.Class)
	}
	if math.Abs(res.Cylinder.Radius-1.6) > 1e-9 {
		t.Errorf("cylinder radius = %v, want 1.6", res.Cylinder.Radius)
	}
	if vDom := obj.Face.Domain(brep.DirV); vDom.Max != 10 {
		t.Errorf("V domain max = %v, want 10 (height)", vDom.Max)
	}
}

func TestEvaluateDefsolid(t *testing.T) {
	source := `(defsolid "part"
		(solid
			(cylinder :radius 1 :height 4)
			(cone :angle 15 :height 5)
			(plane :size 20)))`

	sc, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() fatal error = %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("Evaluate() eval errors = %v", evalErrs)
	}

	obj, ok := sc.Lookup("part")
	if !ok {
		t.Fatal(`Lookup("part") not found`)
	}
	if obj.Solid == nil {
		t.Fatal("object has nil Solid")
	}
	if obj.Solid.FaceCount() != 3 {
		t.Fatalf("FaceCount() = %d, want 3", obj.Solid.FaceCount())
	}

	wantClasses := []classify.Class{
		classify.ClassCylinder,
		classify.ClassCone,
		classify.ClassPlane,
	}
	for i, want := range wantClasses {
		if got := classify.Classify(obj.Solid.Face(i)).Class; got != want {
			t.Errorf("face %d class = %v, want %v", i, got, want)
		}
	}
}

func TestEvaluateFaceRetrim(t *testing.T) {
	source := `(defsurface "half"
		(face (cylinder :radius 2 :height 10) :vmin 2 :vmax 8))`

	sc, _, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() fatal error = %v", err)
	}
	obj, ok := sc.Lookup("half")
	if !ok {
		t.Fatal(`Lookup("half") not found`)
	}

	vDom := obj.Face.Domain(brep.DirV)
	if vDom.Min != 2 || vDom.Max != 8 {
		t.Errorf("V domain = [%v, %v], want [2, 8]", vDom.Min, vDom.Max)
	}
}

func TestEvaluateMultipleObjects(t *testing.T) {
	source := `
		(defsurface "a" (plane))
		(defsurface "b" (sphere :radius 4))
		(defsurface "c" (torus :major 6 :minor 1))`

	sc, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() fatal error = %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("Evaluate() eval errors = %v", evalErrs)
	}
	if sc.Len() != 3 {
		t.Fatalf("scene has %d objects, want 3", sc.Len())
	}

	// Definition order is preserved.
	for i, want := range []string{"a", "b", "c"} {
		if sc.Objects[i].Name != want {
			t.Errorf("Objects[%d].Name = %q, want %q", i, sc.Objects[i].Name, want)
		}
	}
}

func TestEvaluateSemicolonComments(t *testing.T) {
	source := `; scene with one plane
		(defsurface "base" (plane :size 10)) ; trailing note`

	sc, evalErrs, err := NewEngine().Evaluate(source)
	if err != nil {
		t.Fatalf("Evaluate() fatal error = %v", err)
	}
	if len(evalErrs) > 0 {
		t.Fatalf("Evaluate() eval errors = %v", evalErrs)
	}
	if _, ok := sc.Lookup("base"); !ok {
		t.Error(`Lookup("base") not found`)
	}
}

func TestEvaluateBadSource(t *testing.T) {
	tests := []struct {
		name   string
		source string
	}{
		{"unbalanced parens", `(defsurface "x" (plane)`},
		{"wrong argument type", `(defsurface 42 (plane))`},
		{"unknown surface arg", `(solid 7)`},
		{"missing nurbs corners", `(nurbs (vec3 0 0 0))`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sc, evalErrs, err := NewEngine().Evaluate(tt.source)
			if err != nil {
				t.Fatalf("Evaluate() fatal error = %v", err)
			}
			if len(evalErrs) == 0 {
				t.Fatal("Evaluate() returned no eval errors")
			}
			if sc != nil {
				t.Error("Evaluate() returned a scene alongside eval errors")
			}
		})
	}
}

func TestEvalErrorMessage(t *testing.T) {
	withLine := EvalError{Line: 3, Message: "undefined symbol"}
	if got := withLine.Error(); got != "line 3: undefined symbol" {
		t.Errorf("Error() = %q, want %q", got, "line 3: undefined symbol")
	}
	bare := EvalError{Message: "timeout"}
	if got := bare.Error(); got != "timeout" {
		t.Errorf("Error() = %q, want %q", got, "timeout")
	}
}

func TestParseZygomysError(t *testing.T) {
	errs := parseZygomysError(errors.New("Error on line 7: unbound symbol `foo`"))
	if len(errs) != 1 {
		t.Fatalf("got %d errors, want 1", len(errs))
	}
	if errs[0].Line != 7 {
		t.Errorf("Line = %d, want 7", errs[0].Line)
	}
	if !strings.Contains(errs[0].Message, "unbound symbol") {
		t.Errorf("Message = %q, want it to mention the unbound symbol", errs[0].Message)
	}

	errs = parseZygomysError(errors.New("something went wrong"))
	if len(errs) != 1 || errs[0].Line != 0 {
		t.Errorf("got %+v, want one line-less error", errs)
	}
}

func TestPreprocessSource(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"keyword", `(plane :size 5)`, `(plane "__kw_size" 5)`},
		{"keyword untouched in string", `(defsurface "a :b" (plane))`, `(defsurface "a :b" (plane))`},
		{"semicolon comment", "; note\n(plane)", "// note\n(plane)"},
		{"double semicolon", ";; note", "// note"},
		{"semicolon inside string", `(defsurface "a;b" (plane))`, `(defsurface "a;b" (plane))`},
		{"plain source", `(vec3 1 2 3)`, `(vec3 1 2 3)`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := preprocessSource(tt.in); got != tt.want {
				t.Errorf("preprocessSource(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}
