// Package nodelink renders affinity graphs as node-link diagrams.
//
// # Overview
//
// Words appear as rounded boxes and adjacency counts as arrows between them.
// Heavier edges are drawn thicker so the corpus's habitual phrases stand out.
//
// # Usage
//
// Convert a graph to DOT format, then render to SVG:
//
//	dot := nodelink.ToDOT(p.Graph(), nodelink.Options{ShowWeights: true})
//	svg, err := nodelink.RenderSVG(dot)
//
// For PDF or PNG output, use the render functions:
//
//	pdf, err := nodelink.RenderPDF(dot)
//	png, err := nodelink.RenderPNG(dot, 2.0)  // 2x scale
//
// # Options
//
// The [Options] struct controls diagram generation:
//
//   - MinWeight: edges lighter than this are omitted
//   - ShowWeights: label each edge with its weight
//   - HideIsolated: drop words left without edges after filtering
//
// # DOT Format
//
// [ToDOT] is deterministic: vertices and edges are emitted in the graph's
// insertion order, so the same corpus always yields byte-identical DOT.
//
// # Dependencies
//
// This package uses [github.com/goccy/go-graphviz] for in-process SVG
// rendering. PDF and PNG conversion requires librsvg (rsvg-convert).
package nodelink
