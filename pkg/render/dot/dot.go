// Package dot renders layout trees as Graphviz node-link diagrams, mainly
// for debugging tree shape after a sequence of split and stack operations.
package dot

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/tilekit/docktree/pkg/layout"
)

// Options configures DOT output.
type Options struct {
	// Detailed includes form ids and icons in panel labels.
	// When false, only form titles are shown.
	Detailed bool
}

// ToDOT converts a layout tree to Graphviz DOT format. Splitters are drawn
// as dashed boxes labeled with their direction and proportion; panels list
// their forms in stack order. The resulting DOT string can be rendered with
// [RenderSVG] or [RenderPNG].
func ToDOT(root layout.Node, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph layout {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	layout.Walk(root, func(n layout.Node) {
		switch n := n.(type) {
		case *layout.Panel:
			fmt.Fprintf(&buf, "  %q [label=%q];\n", n.ID(), panelLabel(n, opts.Detailed))
		case *layout.Splitter:
			label := fmt.Sprintf("%s\n%s %.0f/%.0f", n.ID(), n.Direction, n.Size, 100-n.Size)
			fmt.Fprintf(&buf, "  %q [label=%q, style=\"rounded,filled,dashed\", fillcolor=lightgrey];\n", n.ID(), label)
		}
	})

	buf.WriteString("\n")
	layout.Walk(root, func(n layout.Node) {
		if s, ok := n.(*layout.Splitter); ok {
			fmt.Fprintf(&buf, "  %q -> %q [label=\"primary\"];\n", s.ID(), s.Primary.ID())
			fmt.Fprintf(&buf, "  %q -> %q [label=\"secondary\"];\n", s.ID(), s.Secondary.ID())
		}
	})

	buf.WriteString("}\n")
	return buf.String()
}

func panelLabel(p *layout.Panel, detailed bool) string {
	parts := []string{p.ID()}
	for _, f := range p.Forms {
		line := f.Title
		if detailed {
			line = fmt.Sprintf("%s [%s]", f.Title, f.ID)
			if f.Icon != "" {
				line += " " + f.Icon
			}
		}
		parts = append(parts, line)
	}
	if len(parts) == 1 {
		parts = append(parts, "(empty)")
	}
	return strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	return render(dot, graphviz.SVG)
}

// RenderPNG renders a DOT graph to PNG using Graphviz.
func RenderPNG(dot string) ([]byte, error) {
	return render(dot, graphviz.PNG)
}

func render(dot string, format graphviz.Format) ([]byte, error) {
	ctx := context.Background()
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
	if err := gv.Render(ctx, g, format, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
