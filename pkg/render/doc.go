// Package render provides format conversion for rendered affinity graphs.
//
// # Overview
//
// The [nodelink] subpackage turns an affinity graph into Graphviz DOT and
// SVG. This package converts that SVG into other formats using the external
// rsvg-convert tool (from librsvg):
//
//	svg, err := nodelink.RenderSVG(dot)
//	pdf, err := render.ToPDF(svg)
//	png, err := render.ToPNG(svg, 2.0)  // 2x scale
//
// [nodelink]: github.com/matzehuels/wordbridge/pkg/render/nodelink
package render
