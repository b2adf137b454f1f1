// Copyright 2023 Gustavo C. Viegas. All rights reserved.

// Package dot renders a compiled frame graph as Graphviz DOT source,
// grouping pass and resource vertices into clusters and coloring them by
// liveness/kind, for visual debugging of the compiled schedule.
package dot

import (
	"fmt"
	"io"
	"strings"

	"gviegas/framegraph"
)

// Colors holds the fill/edge colors used by Writer. Color names follow
// Graphviz's X11 color scheme (https://graphviz.org/doc/info/colors.html).
type Colors struct {
	PassExecuted      string
	PassCulled        string
	ResourceImported  string
	ResourceTransient string
	EdgeRead          string
	EdgeWrite         string
}

// DefaultColors mirrors the palette used by the original implementation's
// debug writer: executed passes in orange, culled passes in light gray,
// imported resources in light steel blue, transient resources in sky
// blue, read edges in yellow-green, write edges in orange-red.
func DefaultColors() Colors {
	return Colors{
		PassExecuted:      "orange",
		PassCulled:        "lightgray",
		ResourceImported:  "lightsteelblue",
		ResourceTransient: "skyblue",
		EdgeRead:          "yellowgreen",
		EdgeWrite:         "orangered",
	}
}

// Writer implements framegraph.Visitor, accumulating vertices and edges as
// DebugOutput drives it, then rendering a single DOT digraph on Flush.
type Writer struct {
	Colors Colors

	passes    []passVertex
	resources []resourceVertex
	edges     []edge
}

type passVertex struct {
	key, label, color string
}

type resourceVertex struct {
	key, label, color string
}

type edge struct {
	from, to, color string
}

// NewWriter returns a Writer using DefaultColors.
func NewWriter() *Writer { return &Writer{Colors: DefaultColors()} }

func passKey(id int) string { return fmt.Sprintf("pass%d", id) }
func resourceKey(h framegraph.Handle) string { return fmt.Sprintf("res%d", int(h)) }

// VisitPass implements framegraph.Visitor.
func (w *Writer) VisitPass(p framegraph.PassView, _ []framegraph.ResourceView) {
	color := w.Colors.PassCulled
	if p.Live {
		color = w.Colors.PassExecuted
	}
	w.passes = append(w.passes, passVertex{
		key:   passKey(p.ID),
		label: p.Name,
		color: color,
	})
	for _, h := range p.Reads {
		w.edges = append(w.edges, edge{from: resourceKey(h), to: passKey(p.ID), color: w.Colors.EdgeRead})
	}
	for _, h := range p.Writes {
		w.edges = append(w.edges, edge{from: passKey(p.ID), to: resourceKey(h), color: w.Colors.EdgeWrite})
	}
}

// VisitResource implements framegraph.Visitor.
func (w *Writer) VisitResource(r framegraph.ResourceView, entry framegraph.EntryView, _ []framegraph.PassView) {
	color := w.Colors.ResourceTransient
	if entry.Imported {
		color = w.Colors.ResourceImported
	}
	label := fmt.Sprintf("%s (v%d)", r.Name, r.Version)
	if entry.Describe != "" {
		label += "\\n" + entry.Describe
	}
	w.resources = append(w.resources, resourceVertex{
		key:   resourceKey(r.Handle),
		label: label,
		color: color,
	})
}

// Flush implements framegraph.Visitor, writing the accumulated graph as DOT
// source to sink.
func (w *Writer) Flush(sink io.Writer) {
	var b strings.Builder
	b.WriteString("digraph framegraph {\n")
	b.WriteString("  rankdir=TB;\n")
	b.WriteString("  fontname=\"helvetica\";\n")
	b.WriteString("  node [fontname=\"helvetica\", fontsize=10, style=filled];\n\n")

	b.WriteString("  subgraph cluster_passes {\n")
	b.WriteString("    label=\"passes\";\n")
	for _, p := range w.passes {
		fmt.Fprintf(&b, "    %s [shape=box, label=%q, fillcolor=%q];\n", p.key, p.label, p.color)
	}
	b.WriteString("  }\n\n")

	b.WriteString("  subgraph cluster_resources {\n")
	b.WriteString("    label=\"resources\";\n")
	for _, r := range w.resources {
		fmt.Fprintf(&b, "    %s [shape=ellipse, label=%q, fillcolor=%q];\n", r.key, r.label, r.color)
	}
	b.WriteString("  }\n\n")

	for _, e := range w.edges {
		fmt.Fprintf(&b, "  %s -> %s [color=%q];\n", e.from, e.to, e.color)
	}

	b.WriteString("}\n")
	io.WriteString(sink, b.String())
}

var _ framegraph.Visitor = (*Writer)(nil)
