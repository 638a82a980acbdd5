// Package main provides the entry point for the quadric CLI.
//
// quadric classifies the faces of BREP solids and standalone surfaces
// into canonical analytic types (cylinder, cone, sphere, plane) or
// freeform representations, and annotates quadrics of revolution with
// their axis segments.
//
// Usage:
//
//	quadric inspect <scene.lisp> <name>
//	quadric analyze <scene.lisp> [name]
//	quadric annotate <scene.lisp> [names...]
//
// See --help for all available options.
package main

// main is the entry point for quadric.
func main() {
	Execute()
}
