package export

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"
	"github.com/san-kum/algoviz/internal/trace"
)

// TreeDOT renders the recursion tree of lg. Each node shows its path label
// and the values of its range once resolved.
func TreeDOT(lg *trace.Log) string {
	resolved := make(map[int]trace.Step)
	for _, s := range lg.Steps {
		if s.Kind == trace.KindResolved && s.Node != trace.None {
			resolved[s.Node] = s
		}
	}

	var buf bytes.Buffer
	buf.WriteString("digraph Recursion {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [fontname=\"SF Mono, Menlo, monospace\", fontsize=12, shape=box, style=\"filled,rounded\", fillcolor=white];\n")
	buf.WriteString("  edge [arrowhead=none];\n\n")

	for _, n := range lg.Tree.Nodes {
		label := lg.Tree.Label(n.ID)
		fill := "white"
		if s, ok := resolved[n.ID]; ok {
			if s.Low == trace.None {
				label += "\nempty"
			} else {
				label += "\n" + joinInts(s.Seq[s.Low:s.High+1])
			}
			fill = "#dcfce7"
		}
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%q];\n", n.ID, label, fill)
		if n.Parent != trace.None {
			fmt.Fprintf(&buf, "  n%d -> n%d [label=%q];\n", n.Parent, n.ID, n.Side.String())
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderSVG renders a DOT document to SVG with the embedded Graphviz.
func RenderSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
