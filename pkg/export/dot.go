package export

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/drodenkirchen/rio/pkg/component"
)

// DiagramOptions configures structure diagram rendering.
type DiagramOptions struct {
	// Detailed includes explicit constraints and alignment in node labels.
	// When false, only kind and id are shown.
	Detailed bool
}

// ToDOT converts a component tree to Graphviz DOT format for structure
// visualization. The resulting DOT string can be rendered with
// [RenderDiagram].
//
// Composite components are rendered with dashed outlines and grey fill to
// distinguish the build edge from plain parent-child containment.
func ToDOT(root component.Component, opts DiagramOptions) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=24, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.5;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	order := component.Walk(root)
	for _, c := range order {
		label := fmtLabel(c, opts.Detailed)
		attrs := fmtAttrs(c, label)
		fmt.Fprintf(&buf, "  %q [%s];\n", nodeID(c), strings.Join(attrs, ", "))
	}

	buf.WriteString("\n")
	for _, c := range order {
		for _, child := range component.TreeChildren(c) {
			fmt.Fprintf(&buf, "  %q -> %q;\n", nodeID(c), nodeID(child))
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func nodeID(c component.Component) string {
	return fmt.Sprintf("%d", c.ID())
}

func fmtLabel(c component.Component, detailed bool) string {
	head := fmt.Sprintf("%s #%d", c.Kind(), c.ID())
	if !detailed {
		return head
	}

	var parts []string
	if min, ok := c.Width().Min(); ok {
		parts = append(parts, fmt.Sprintf("width: %g", min))
	}
	if min, ok := c.Height().Min(); ok {
		parts = append(parts, fmt.Sprintf("height: %g", min))
	}
	if f, ok := c.AlignX().Fraction(); ok {
		parts = append(parts, fmt.Sprintf("align_x: %g", f))
	}
	if f, ok := c.AlignY().Fraction(); ok {
		parts = append(parts, fmt.Sprintf("align_y: %g", f))
	}
	if m := c.Margin(); m != (component.Margin{}) {
		parts = append(parts, fmt.Sprintf("margin: %g %g %g %g", m.Left, m.Top, m.Right, m.Bottom))
	}

	if len(parts) == 0 {
		return head
	}
	return head + "\n" + strings.Join(parts, "\n")
}

func fmtAttrs(c component.Component, label string) []string {
	attrs := []string{fmt.Sprintf("label=%q", label)}
	if _, ok := c.(component.Composite); ok {
		attrs = append(attrs, "style=\"rounded,filled,dashed\"", "fillcolor=lightgrey", "fontcolor=black")
	}
	return attrs
}

// RenderDiagram renders a DOT graph to SVG using Graphviz.
func RenderDiagram(dot string) ([]byte, error) {
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
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return normalizeViewBox(buf.Bytes()), nil
}

var (
	svgTagRe  = regexp.MustCompile(`<svg[^>]*>`)
	viewBoxRe = regexp.MustCompile(`viewBox="([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)\s+([0-9.]+)"`)
)

func normalizeViewBox(svg []byte) []byte {
	match := viewBoxRe.FindSubmatch(svg)
	if match == nil {
		return svg
	}

	w, _ := strconv.ParseFloat(string(match[3]), 64)
	h, _ := strconv.ParseFloat(string(match[4]), 64)
	if w == 0 || h == 0 {
		return svg
	}

	newSvg := fmt.Sprintf(`<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.2f %.2f" width="%.0f" height="%.0f">`,
		w, h, w, h)

	return svgTagRe.ReplaceAll(svg, []byte(newSvg))
}
