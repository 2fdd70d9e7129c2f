package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/san-kum/algoviz/internal/export"
)

const (
	colorCurrent  = "#f43f5e"
	colorVisited  = "#ec4899"
	colorFrontier = "#fce7f3"
	colorIdle     = "white"
)

// DOT renders the graph in Graphviz syntax. When f is non-nil nodes are
// filled by their state in that frame.
func (g *Graph) DOT(f *Frame) string {
	var buf bytes.Buffer
	buf.WriteString("graph G {\n")
	buf.WriteString("  layout=circo;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=circle, fontname=\"SF Mono, Menlo, monospace\", style=filled, fillcolor=white];\n\n")

	for u := range g.adj {
		fill := colorIdle
		if f != nil {
			switch {
			case f.Current == u:
				fill = colorCurrent
			case f.IsVisited(u):
				fill = colorVisited
			case f.InFrontier(u):
				fill = colorFrontier
			}
		}
		fmt.Fprintf(&buf, "  n%d [label=\"%d\", fillcolor=%q];\n", u, u, fill)
	}
	for _, e := range g.Edges() {
		fmt.Fprintf(&buf, "  n%d -- n%d;\n", e[0], e[1])
	}
	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders DOT(f) to an SVG document through Graphviz.
func (g *Graph) RenderSVG(ctx context.Context, f *Frame) ([]byte, error) {
	return export.RenderSVG(ctx, g.DOT(f))
}
