package nodelink

import (
	"bytes"
	"context"
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/matzehuels/wordbridge/pkg/digraph"
	"github.com/matzehuels/wordbridge/pkg/render"
)

// Options configures node-link diagram rendering.
type Options struct {
	// MinWeight omits edges whose weight is below it. Values below 1 keep
	// every edge.
	MinWeight int

	// ShowWeights labels each edge with its weight.
	ShowWeights bool

	// HideIsolated drops words that have no remaining edges.
	HideIsolated bool
}

// maxPenWidth caps the stroke width of very heavy edges.
const maxPenWidth = 6

// ToDOT converts an affinity graph to Graphviz DOT format.
// The resulting DOT string can be rendered using [RenderSVG], [RenderPDF], or [RenderPNG].
func ToDOT(g *digraph.Graph[string], opts Options) string {
	var edges []digraph.Edge[string]
	linked := make(map[string]bool)
	for _, e := range g.Edges() {
		if e.Weight < opts.MinWeight {
			continue
		}
		edges = append(edges, e)
		linked[e.Source] = true
		linked[e.Target] = true
	}

	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=LR;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=18, margin=\"0.15,0.08\"];\n")
	buf.WriteString("  edge [color=\"#555555\", arrowsize=0.7];\n")
	buf.WriteString("\n")

	for _, v := range g.VertexList() {
		if opts.HideIsolated && !linked[v] {
			continue
		}
		fmt.Fprintf(&buf, "  %q [label=%q];\n", v, v)
	}

	buf.WriteString("\n")
	for _, e := range edges {
		fmt.Fprintf(&buf, "  %q -> %q [%s];\n", e.Source, e.Target, strings.Join(fmtEdgeAttrs(e, opts), ", "))
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtEdgeAttrs(e digraph.Edge[string], opts Options) []string {
	attrs := []string{fmt.Sprintf("penwidth=%d", min(e.Weight, maxPenWidth))}
	if opts.ShowWeights {
		attrs = append(attrs, fmt.Sprintf("label=\"%d\"", e.Weight))
	}
	return attrs
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
// Returns the SVG bytes ready for display or further conversion with [render.ToPDF] or [render.ToPNG].
func RenderSVG(dot string) ([]byte, error) {
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

// normalizeViewBox rewrites Graphviz's pt-sized root element into a
// viewBox-based one so browsers scale the diagram.
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

// RenderPDF renders a DOT graph as PDF via SVG conversion.
// Requires librsvg: brew install librsvg (macOS), apt install librsvg2-bin (Linux).
func RenderPDF(dot string) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPDF(svg)
}

// RenderPNG renders a DOT graph as PNG via SVG conversion.
// A scale of 2.0 produces a 2x resolution image suitable for high-DPI displays.
func RenderPNG(dot string, scale float64) ([]byte, error) {
	svg, err := RenderSVG(dot)
	if err != nil {
		return nil, err
	}
	return render.ToPNG(svg, scale)
}
