package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/chazu/quadric/pkg/brep/analytic"
	"github.com/chazu/quadric/pkg/geom"
	"github.com/chazu/quadric/pkg/scene"
	v3 "github.com/deadsy/sdfx/vec/v3"
	zygo "github.com/glycerine/zygomys/zygo"
)

// ---------------------------------------------------------------------------
// Source preprocessing
// ---------------------------------------------------------------------------

// kwPrefix is the marker prepended to keyword names by preprocessSource.
const kwPrefix = "__kw_"

// preprocessSource transforms scene DSL source before it reaches
// zygomys:
//
//  1. Keyword conversion: :keyword -> "__kw_keyword" (string literal),
//     avoiding the need to register keyword symbols as globals.
//  2. Comment conversion: ; line comments -> // (zygomys uses //).
//
// Both transformations respect double-quoted string boundaries.
func preprocessSource(source string) string {
	result := make([]byte, 0, len(source)+len(source)/4)
	b := []byte(source)
	i := 0
	for i < len(b) {
		// Copy string literals untouched.
		if b[i] == '"' {
			result = append(result, b[i])
			i++
			for i < len(b) && b[i] != '"' {
				if b[i] == '\\' && i+1 < len(b) {
					result = append(result, b[i], b[i+1])
					i += 2
					continue
				}
				result = append(result, b[i])
				i++
			}
			if i < len(b) {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Convert ; line comments to // comments.
		if b[i] == ';' {
			result = append(result, '/', '/')
			for i < len(b) && b[i] == ';' {
				i++
			}
			for i < len(b) && b[i] != '\n' {
				result = append(result, b[i])
				i++
			}
			continue
		}
		// Transform :keyword to "__kw_keyword".
		if b[i] == ':' && i+1 < len(b) && isLetter(b[i+1]) {
			j := i + 1
			for j < len(b) && isKWChar(b[j]) {
				j++
			}
			result = append(result, '"')
			result = append(result, kwPrefix...)
			result = append(result, b[i+1:j]...)
			result = append(result, '"')
			i = j
			continue
		}
		result = append(result, b[i])
		i++
	}
	return string(result)
}

func isLetter(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}

func isKWChar(c byte) bool {
	return isLetter(c) || (c >= '0' && c <= '9') || c == '_'
}

// ---------------------------------------------------------------------------
// Custom Sexp types for passing geometry through the zygomys environment
// ---------------------------------------------------------------------------

// sexpVec3 wraps a vector literal.
type sexpVec3 struct {
	vec v3.Vec
}

func (v *sexpVec3) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(vec3 %.3f %.3f %.3f)", v.vec.X, v.vec.Y, v.vec.Z)
}
func (v *sexpVec3) Type() *zygo.RegisteredType { return nil }

// sexpFace wraps a trimmed analytic face so surface builtins can be
// consumed by face, solid, and defsurface.
type sexpFace struct {
	face *analytic.Face
}

func (f *sexpFace) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(face %s)", f.face.Surf.Kind())
}
func (f *sexpFace) Type() *zygo.RegisteredType { return nil }

// sexpSolid wraps a solid built by the solid builtin.
type sexpSolid struct {
	solid *analytic.Solid
}

func (s *sexpSolid) SexpString(ps *zygo.PrintState) string {
	return fmt.Sprintf("(solid %d faces)", s.solid.FaceCount())
}
func (s *sexpSolid) Type() *zygo.RegisteredType { return nil }

// ---------------------------------------------------------------------------
// Argument parsing
// ---------------------------------------------------------------------------

// isKW checks if a Sexp is a preprocessed keyword string, returning
// the bare keyword name on success.
func isKW(s zygo.Sexp) (string, bool) {
	str, ok := s.(*zygo.SexpStr)
	if !ok {
		return "", false
	}
	if strings.HasPrefix(str.S, kwPrefix) {
		return str.S[len(kwPrefix):], true
	}
	return "", false
}

// kwArgs holds a parsed mixed positional+keyword argument list.
type kwArgs struct {
	kw         map[string]zygo.Sexp
	positional []zygo.Sexp
}

// parseArgs separates args into keyword and positional arguments.
func parseArgs(args []zygo.Sexp) kwArgs {
	result := kwArgs{kw: make(map[string]zygo.Sexp)}
	i := 0
	for i < len(args) {
		if name, ok := isKW(args[i]); ok {
			if i+1 < len(args) {
				result.kw[name] = args[i+1]
				i += 2
			} else {
				result.kw[name] = zygo.SexpNull
				i++
			}
			continue
		}
		result.positional = append(result.positional, args[i])
		i++
	}
	return result
}

// toFloat64 extracts a float64 from a Sexp.
func toFloat64(s zygo.Sexp) (float64, error) {
	switch v := s.(type) {
	case *zygo.SexpInt:
		return float64(v.Val), nil
	case *zygo.SexpFloat:
		return v.Val, nil
	}
	return 0, fmt.Errorf("expected number, got %T (%s)", s, s.SexpString(nil))
}

// toString extracts a string from a Sexp.
func toString(s zygo.Sexp) (string, error) {
	if str, ok := s.(*zygo.SexpStr); ok {
		return str.S, nil
	}
	return "", fmt.Errorf("expected string, got %T (%s)", s, s.SexpString(nil))
}

// toVec3 extracts a vector from a sexpVec3.
func toVec3(s zygo.Sexp) (v3.Vec, error) {
	if v, ok := s.(*sexpVec3); ok {
		return v.vec, nil
	}
	return v3.Vec{}, fmt.Errorf("expected vec3, got %T (%s)", s, s.SexpString(nil))
}

// toFace extracts a face from a sexpFace.
func toFace(s zygo.Sexp) (*analytic.Face, error) {
	if f, ok := s.(*sexpFace); ok {
		return f.face, nil
	}
	return nil, fmt.Errorf("expected surface or face, got %T (%s)", s, s.SexpString(nil))
}

// floatArg reads an optional keyword float with a default.
func (pa kwArgs) floatArg(name string, def float64) (float64, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	f, err := toFloat64(v)
	if err != nil {
		return 0, fmt.Errorf("%s: %w", name, err)
	}
	return f, nil
}

// vecArg reads an optional keyword vec3 with a default.
func (pa kwArgs) vecArg(name string, def v3.Vec) (v3.Vec, error) {
	v, ok := pa.kw[name]
	if !ok {
		return def, nil
	}
	vec, err := toVec3(v)
	if err != nil {
		return v3.Vec{}, fmt.Errorf("%s: %w", name, err)
	}
	return vec, nil
}

// ---------------------------------------------------------------------------
// Builtin registration
// ---------------------------------------------------------------------------

// zAxis is the default axis/normal direction for surface builtins.
var zAxis = v3.Vec{Z: 1}

// registerBuiltins installs the scene DSL builtins into a zygomys
// environment. The builtins populate the provided scene during
// evaluation. Source must be preprocessed with preprocessSource first
// so :keyword tokens arrive as marker strings.
func registerBuiltins(env *zygo.Zlisp, sc *scene.Scene) {

	// -----------------------------------------------------------------------
	// (vec3 1 2 3)
	// -----------------------------------------------------------------------
	env.AddFunction("vec3", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 3 {
			return zygo.SexpNull, fmt.Errorf("vec3 requires exactly 3 arguments, got %d", len(args))
		}
		var c [3]float64
		for i, a := range args {
			f, err := toFloat64(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("vec3: %w", err)
			}
			c[i] = f
		}
		return &sexpVec3{vec: v3.Vec{X: c[0], Y: c[1], Z: c[2]}}, nil
	})

	// -----------------------------------------------------------------------
	// (plane :origin (vec3 0 0 0) :normal (vec3 0 0 1) :size 20)
	// -----------------------------------------------------------------------
	env.AddFunction("plane", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		origin, err := pa.vecArg("origin", v3.Vec{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		normal, err := pa.vecArg("normal", zAxis)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		size, err := pa.floatArg("size", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("plane: %w", err)
		}
		half := geom.Interval{Min: -size / 2, Max: size / 2}
		f := analytic.NewFace(analytic.NewPlane(origin, normal.Normalize()), half, half)
		return &sexpFace{face: f}, nil
	})

	// -----------------------------------------------------------------------
	// (cylinder :center (vec3 0 0 0) :axis (vec3 0 0 1) :radius 1.6 :height 10)
	// -----------------------------------------------------------------------
	env.AddFunction("cylinder", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vecArg("center", v3.Vec{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		axis, err := pa.vecArg("axis", zAxis)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		radius, err := pa.floatArg("radius", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		height, err := pa.floatArg("height", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cylinder: %w", err)
		}
		surf := analytic.NewCylinder(center, axis.Normalize(), radius)
		f := analytic.NewFace(surf,
			geom.Interval{Min: 0, Max: 2 * math.Pi},
			geom.Interval{Min: 0, Max: height})
		return &sexpFace{face: f}, nil
	})

	// -----------------------------------------------------------------------
	// (cone :apex (vec3 0 0 0) :axis (vec3 0 0 1) :angle 15 :height 5)
	// angle is the half-angle in degrees.
	// -----------------------------------------------------------------------
	env.AddFunction("cone", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		apex, err := pa.vecArg("apex", v3.Vec{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		axis, err := pa.vecArg("axis", zAxis)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		angle, err := pa.floatArg("angle", 30)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		height, err := pa.floatArg("height", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("cone: %w", err)
		}
		surf := analytic.NewCone(apex, axis.Normalize(), angle*math.Pi/180, height)
		f := analytic.NewFace(surf,
			geom.Interval{Min: 0, Max: 2 * math.Pi},
			geom.Interval{Min: 0, Max: height})
		return &sexpFace{face: f}, nil
	})

	// -----------------------------------------------------------------------
	// (sphere :center (vec3 0 0 0) :radius 4)
	// -----------------------------------------------------------------------
	env.AddFunction("sphere", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vecArg("center", v3.Vec{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		radius, err := pa.floatArg("radius", 1)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sphere: %w", err)
		}
		f := analytic.NewFace(analytic.NewSphere(center, radius),
			geom.Interval{Min: 0, Max: 2 * math.Pi},
			geom.Interval{Min: -math.Pi / 2, Max: math.Pi / 2})
		return &sexpFace{face: f}, nil
	})

	// -----------------------------------------------------------------------
	// (torus :center (vec3 0 0 0) :axis (vec3 0 0 1) :major 6 :minor 1)
	// A circular-profile surface of revolution (freeform kind).
	// -----------------------------------------------------------------------
	env.AddFunction("torus", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		center, err := pa.vecArg("center", v3.Vec{})
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		axis, err := pa.vecArg("axis", zAxis)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		major, err := pa.floatArg("major", 2)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		minor, err := pa.floatArg("minor", 0.5)
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("torus: %w", err)
		}
		full := geom.Interval{Min: 0, Max: 2 * math.Pi}
		f := analytic.NewFace(analytic.NewTorus(center, axis.Normalize(), major, minor), full, full)
		return &sexpFace{face: f}, nil
	})

	// -----------------------------------------------------------------------
	// (nurbs (vec3 ...) (vec3 ...) (vec3 ...) (vec3 ...))
	// Corner order: u0v0 u1v0 u0v1 u1v1.
	// -----------------------------------------------------------------------
	env.AddFunction("nurbs", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 4 {
			return zygo.SexpNull, fmt.Errorf("nurbs requires 4 corner points, got %d", len(args))
		}
		var corners [4]v3.Vec
		for i, a := range args {
			vec, err := toVec3(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("nurbs: corner %d: %w", i, err)
			}
			corners[i] = vec
		}
		unit := geom.Interval{Min: 0, Max: 1}
		surf := analytic.NewNurbs(corners[0], corners[1], corners[2], corners[3])
		return &sexpFace{face: analytic.NewFace(surf, unit, unit)}, nil
	})

	// -----------------------------------------------------------------------
	// (sum (vec3 ...) (vec3 ...))
	// Translational surface of two line curves (freeform kind).
	// -----------------------------------------------------------------------
	env.AddFunction("sum", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("sum requires 2 direction vectors, got %d", len(args))
		}
		da, err := toVec3(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sum: %w", err)
		}
		db, err := toVec3(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("sum: %w", err)
		}
		surf := analytic.NewSum(
			func(t float64) v3.Vec { return da.MulScalar(t) },
			func(t float64) v3.Vec { return db.MulScalar(t) })
		unit := geom.Interval{Min: 0, Max: 1}
		return &sexpFace{face: analytic.NewFace(surf, unit, unit)}, nil
	})

	// -----------------------------------------------------------------------
	// (face (cylinder ...) :umin 0 :umax 3.14 :vmin 2 :vmax 8)
	// Re-trims a surface's face to an explicit parameter region.
	// -----------------------------------------------------------------------
	env.AddFunction("face", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		pa := parseArgs(args)
		if len(pa.positional) != 1 {
			return zygo.SexpNull, fmt.Errorf("face requires a surface argument")
		}
		base, err := toFace(pa.positional[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("face: %w", err)
		}

		u, v := base.U, base.V
		if u.Min, err = pa.floatArg("umin", u.Min); err != nil {
			return zygo.SexpNull, fmt.Errorf("face: %w", err)
		}
		if u.Max, err = pa.floatArg("umax", u.Max); err != nil {
			return zygo.SexpNull, fmt.Errorf("face: %w", err)
		}
		if v.Min, err = pa.floatArg("vmin", v.Min); err != nil {
			return zygo.SexpNull, fmt.Errorf("face: %w", err)
		}
		if v.Max, err = pa.floatArg("vmax", v.Max); err != nil {
			return zygo.SexpNull, fmt.Errorf("face: %w", err)
		}

		return &sexpFace{face: analytic.NewFace(base.Surf, u, v)}, nil
	})

	// -----------------------------------------------------------------------
	// (solid f1 f2 ...)
	// -----------------------------------------------------------------------
	env.AddFunction("solid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		faces := make([]*analytic.Face, 0, len(args))
		for i, a := range args {
			f, err := toFace(a)
			if err != nil {
				return zygo.SexpNull, fmt.Errorf("solid: face %d: %w", i, err)
			}
			faces = append(faces, f)
		}
		return &sexpSolid{solid: analytic.NewSolid(faces...)}, nil
	})

	// -----------------------------------------------------------------------
	// (defsurface "name" (cylinder ...))
	// -----------------------------------------------------------------------
	env.AddFunction("defsurface", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defsurface requires a name and a surface expression")
		}
		objName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsurface: name: %w", err)
		}
		f, err := toFace(args[1])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsurface %q: %w", objName, err)
		}
		sc.Add(scene.Object{Name: objName, Face: f})
		return args[1], nil
	})

	// -----------------------------------------------------------------------
	// (defsolid "name" (solid ...))
	// -----------------------------------------------------------------------
	env.AddFunction("defsolid", func(env *zygo.Zlisp, name string, args []zygo.Sexp) (zygo.Sexp, error) {
		if len(args) != 2 {
			return zygo.SexpNull, fmt.Errorf("defsolid requires a name and a solid expression")
		}
		objName, err := toString(args[0])
		if err != nil {
			return zygo.SexpNull, fmt.Errorf("defsolid: name: %w", err)
		}
		s, ok := args[1].(*sexpSolid)
		if !ok {
			return zygo.SexpNull, fmt.Errorf("defsolid %q: expected solid expression, got %T", objName, args[1])
		}
		sc.Add(scene.Object{Name: objName, Solid: s.solid})
		return args[1], nil
	})
}
