package export

import (
	"bytes"
	"fmt"

	"github.com/drodenkirchen/rio/pkg/component"
	"github.com/drodenkirchen/rio/pkg/layouter"
)

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	measured bool
	labels   bool
}

// WithMeasured draws the client-measured geometry instead of the computed
// one.
func WithMeasured() SVGOption { return func(r *svgRenderer) { r.measured = true } }

// WithoutLabels omits the per-component text labels.
func WithoutLabels() SVGOption { return func(r *svgRenderer) { r.labels = false } }

// RenderSVG draws the layout to scale: one rectangle per component at its
// inner position and size, painted parents-first so children stay visible.
// Fill encodes nesting depth on a grayscale ramp, dark at the root and
// light at the leaves.
func RenderSVG(ly *layouter.Layouter, opts ...SVGOption) []byte {
	r := svgRenderer{labels: true}
	for _, opt := range opts {
		opt(&r)
	}

	records := ly.Should()
	if r.measured {
		records = ly.Are()
	}

	depths := nestingDepths(ly.Root())
	maxDepth := 0
	for _, d := range depths {
		maxDepth = max(maxDepth, d)
	}

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		ly.WindowWidth, ly.WindowHeight, ly.WindowWidth, ly.WindowHeight)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="#ffffff"/>`+"\n",
		ly.WindowWidth, ly.WindowHeight)

	for _, c := range ly.Order() {
		rec := records[c.ID()]
		if rec == nil {
			continue
		}
		renderComponent(&buf, &r, c, rec, depths[c.ID()], maxDepth)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderComponent(buf *bytes.Buffer, r *svgRenderer, c component.Component, rec *layouter.Record, depth, maxDepth int) {
	x, y := rec.InnerLeft, rec.InnerTop
	w, h := rec.AllocatedInnerWidth, rec.AllocatedInnerHeight

	fmt.Fprintf(buf, `  <rect id="component-%d" x="%.1f" y="%.1f" width="%.1f" height="%.1f" fill="%s" stroke="#1a1a2e" stroke-width="1"/>`+"\n",
		c.ID(), x, y, w, h, depthFill(depth, maxDepth))

	if !r.labels {
		return
	}
	size := min(12.0, h*0.6)
	if size < 4 {
		return
	}
	fmt.Fprintf(buf, `  <text x="%.1f" y="%.1f" font-size="%.1f" font-family="monospace" fill="#1a1a2e" text-anchor="middle" dominant-baseline="central">%s #%d</text>`+"\n",
		x+w/2, y+h/2, size, c.Kind(), c.ID())
}

// depthFill maps nesting depth onto a grayscale ramp from 35% at the root
// to 92% at the deepest leaf.
func depthFill(depth, maxDepth int) string {
	frac := 1.0
	if maxDepth > 0 {
		frac = float64(depth) / float64(maxDepth)
	}
	v := int(255 * (0.35 + 0.57*frac))
	return fmt.Sprintf("#%02x%02x%02x", v, v, v)
}

// nestingDepths assigns each component its distance from the root.
func nestingDepths(root component.Component) map[component.ID]int {
	depths := map[component.ID]int{root.ID(): 0}

	type frame struct {
		c     component.Component
		depth int
	}
	stack := []frame{{root, 0}}
	for len(stack) > 0 {
		f := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		for _, child := range component.TreeChildren(f.c) {
			depths[child.ID()] = f.depth + 1
			stack = append(stack, frame{child, f.depth + 1})
		}
	}
	return depths
}
