// Package report renders classification results as Markdown: a
// statistics report for a whole solid and a detailed inspection report
// for a single surface. Writers are consumers only; nothing here feeds
// back into classification.
package report

import (
	"fmt"
	"io"
	"strconv"

	"github.com/chazu/quadric/pkg/classify"
	"github.com/chazu/quadric/pkg/stats"
	v3 "github.com/deadsy/sdfx/vec/v3"
	"github.com/nao1215/markdown"
	"github.com/nao1215/markdown/mermaid/piechart"
)

// Writer renders Markdown reports to an output stream.
type Writer struct {
	output io.Writer
}

// NewWriter creates a Writer that renders to the given stream.
func NewWriter(output io.Writer) *Writer {
	return &Writer{output: output}
}

// WriteStats renders the whole-solid statistics report: a counts table
// plus a surface-type distribution chart.
func (w *Writer) WriteStats(name string, counts stats.Counts, threshold float64) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("BREP Analysis")
	md.PlainText("")
	md.PlainTextf("Solid: `%s` — %d faces", name, counts.Total())
	md.PlainText("")

	md.Table(markdown.TableSet{
		Header: []string{"Surface type", "Count"},
		Rows: [][]string{
			{"Cylinders", strconv.Itoa(counts.Cylinders)},
			{fmt.Sprintf("Cylinders Ø > %.1f", threshold), strconv.Itoa(counts.CylindersAboveThreshold)},
			{"Cones", strconv.Itoa(counts.Cones)},
			{"Planes", strconv.Itoa(counts.Planes)},
			{"Freeform (NURBS)", strconv.Itoa(counts.Freeform)},
			{"Other", strconv.Itoa(counts.Other)},
			{"**Total**", "**" + strconv.Itoa(counts.Total()) + "**"},
		},
	})
	md.PlainText("")

	if counts.Total() > 0 {
		w.writePieChart(md, counts)
	}

	return md.Build()
}

// writePieChart renders a mermaid pie chart of the type distribution.
func (w *Writer) writePieChart(md *markdown.Markdown, counts stats.Counts) {
	chart := piechart.NewPieChart(
		io.Discard,
		piechart.WithTitle("Surface Type Distribution"),
		piechart.WithShowData(true),
	)

	if counts.Cylinders > 0 {
		chart.LabelAndIntValue("Cylinders", uint64(counts.Cylinders))
	}
	if counts.Cones > 0 {
		chart.LabelAndIntValue("Cones", uint64(counts.Cones))
	}
	if counts.Planes > 0 {
		chart.LabelAndIntValue("Planes", uint64(counts.Planes))
	}
	if counts.Freeform > 0 {
		chart.LabelAndIntValue("Freeform", uint64(counts.Freeform))
	}
	if counts.Other > 0 {
		chart.LabelAndIntValue("Other", uint64(counts.Other))
	}

	md.PlainText("")
	md.CodeBlocks(markdown.SyntaxHighlightMermaid, chart.String())
	md.PlainText("")
}

// WriteInspection renders the single-surface inspection report.
func (w *Writer) WriteInspection(name string, ins classify.Inspection) error {
	md := markdown.NewMarkdown(w.output)

	md.H1("Surface Inspection")
	md.PlainText("")

	rows := [][]string{
		{"Object", "`" + name + "`"},
		{"Surface class", ins.Kind.String()},
		{"Classification", ins.Result.Class.String()},
		{"Face center", formatPoint(ins.Center)},
	}
	md.Table(markdown.TableSet{
		Header: []string{"Property", "Value"},
		Rows:   rows,
	})
	md.PlainText("")

	md.H2("Bounding box")
	md.Table(markdown.TableSet{
		Header: []string{"Axis", "Min", "Max", "Size"},
		Rows: [][]string{
			{"X", format(ins.Bounds.Min.X), format(ins.Bounds.Max.X), format(ins.Bounds.Max.X - ins.Bounds.Min.X)},
			{"Y", format(ins.Bounds.Min.Y), format(ins.Bounds.Max.Y), format(ins.Bounds.Max.Y - ins.Bounds.Min.Y)},
			{"Z", format(ins.Bounds.Min.Z), format(ins.Bounds.Max.Z), format(ins.Bounds.Max.Z - ins.Bounds.Min.Z)},
		},
	})
	md.PlainText("")

	md.H2("Type checks")
	w.writeTypeChecks(md, ins)

	if ins.HasSegment {
		md.H2("Axis segment")
		md.BulletList(
			"start: "+formatPoint(ins.Segment.Start),
			"end: "+formatPoint(ins.Segment.End),
			fmt.Sprintf("length: %.3f", ins.Segment.Length()),
		)
		md.PlainText("")
	}

	return md.Build()
}

// writeTypeChecks lists each independent analytic fit with its
// parameters. The sphere row is diagnostic only and never changes the
// primary classification.
func (w *Writer) writeTypeChecks(md *markdown.Markdown, ins classify.Inspection) {
	var items []string

	if cyl := ins.Result.Cylinder; cyl != nil {
		items = append(items, fmt.Sprintf(
			"cylinder: radius %.3f, diameter %.3f, center %s",
			cyl.Radius, cyl.Diameter(), formatPoint(cyl.Center)))
	} else {
		items = append(items, "cylinder: no fit")
	}

	if cone := ins.Result.Cone; cone != nil {
		items = append(items, fmt.Sprintf(
			"cone: base radius %.3f, half-angle %.2f°, apex %s",
			cone.Radius, cone.AngleDegrees(), formatPoint(cone.Apex)))
	} else {
		items = append(items, "cone: no fit")
	}

	if ins.HasSphere {
		items = append(items, fmt.Sprintf(
			"sphere (diagnostic): radius %.3f, center %s",
			ins.Sphere.Radius, formatPoint(ins.Sphere.Center)))
	} else {
		items = append(items, "sphere (diagnostic): no fit")
	}

	if ins.Planar {
		items = append(items, "planar: yes")
	} else {
		items = append(items, "planar: no")
	}

	md.BulletList(items...)
	md.PlainText("")
}

func format(f float64) string {
	return strconv.FormatFloat(f, 'f', 3, 64)
}

func formatPoint(p v3.Vec) string {
	return fmt.Sprintf("(%.3f, %.3f, %.3f)", p.X, p.Y, p.Z)
}
