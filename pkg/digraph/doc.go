// Package digraph provides a mutable, weighted, directed graph with labeled
// vertices.
//
// # Overview
//
// [Graph] is generic over any comparable label type. Edges carry a strictly
// positive integer weight and there is at most one edge per ordered
// (source, target) pair. Setting an edge weight to zero deletes the edge, so
// the zero weight is never stored.
//
// Adding an edge implicitly adds both endpoints as vertices. Self-loops are
// permitted.
//
// # Basic Usage
//
//	g := digraph.New[string]()
//	g.AddVertex("hello")
//	prev, err := g.SetEdge("hello", "world", 2) // prev == 0
//	g.Targets("hello")                          // map[world:2]
//	g.Sources("world")                          // map[hello:2]
//	g.RemoveVertex("world")                     // drops the edge too
//
// # Absence Is Not An Error
//
// Queries about labels that are not in the graph return empty maps, false or
// zero. The only error any operation returns is for a negative weight passed
// to [Graph.SetEdge]; it carries the code INVALID_ARGUMENT and wraps
// [ErrNegativeWeight], and the graph is left untouched.
//
// # Snapshots
//
// Every query returns an independent copy. Mutating a map returned by
// [Graph.Targets], [Graph.Sources] or [Graph.Vertices] never affects the
// graph.
//
// # Determinism
//
// Vertices remember the order in which they were first added.
// [Graph.VertexList] and [Graph.Edges] enumerate in that order, which makes
// output and tests reproducible regardless of Go's map iteration order.
//
// # Invariants
//
// The representation keeps two mirrored adjacency maps (outgoing and
// incoming). [Graph.Validate] checks that they agree, that every weight is
// positive and that every endpoint is a vertex. It is meant for tests and
// debugging; mutations never call it.
//
// # Concurrency
//
// Graph has no internal locking. Concurrent reads are safe only while no
// goroutine mutates the graph.
package digraph
