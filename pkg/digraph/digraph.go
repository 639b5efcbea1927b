package digraph

import (
	"errors"
	"fmt"
	"maps"
	"slices"

	wberrors "github.com/matzehuels/wordbridge/pkg/errors"
)

var (
	// ErrNegativeWeight is wrapped by the error [Graph.SetEdge] returns when
	// the requested weight is below zero.
	ErrNegativeWeight = errors.New("edge weight must not be negative")

	// ErrInconsistentAdjacency is returned by [Graph.Validate] when the
	// outgoing and incoming adjacency maps disagree.
	ErrInconsistentAdjacency = errors.New("outgoing and incoming adjacency disagree")

	// ErrNonPositiveWeight is returned by [Graph.Validate] when a stored
	// edge has a weight of zero or less.
	ErrNonPositiveWeight = errors.New("stored edge weight is not positive")

	// ErrDanglingEndpoint is returned by [Graph.Validate] when an edge
	// references a label that is not in the vertex set.
	ErrDanglingEndpoint = errors.New("edge endpoint is not a vertex")
)

// Edge is a directed, weighted connection between two vertices.
// Edges returned by [Graph.Edges] always have Weight > 0.
type Edge[L comparable] struct {
	Source L
	Target L
	Weight int
}

// Graph is a mutable weighted directed graph keyed by labels of type L.
//
// The zero value is not usable - use New to create a valid Graph.
// Graph is not safe for concurrent use without external synchronization.
type Graph[L comparable] struct {
	out  map[L]map[L]int // source -> target -> weight
	in   map[L]map[L]int // target -> source -> weight
	seq  map[L]uint64    // vertex -> insertion sequence number
	next uint64
	size int
}

// New creates an empty graph.
func New[L comparable]() *Graph[L] {
	return &Graph[L]{
		out: make(map[L]map[L]int),
		in:  make(map[L]map[L]int),
		seq: make(map[L]uint64),
	}
}

// AddVertex adds v if it is not already present.
// It reports whether v was newly added.
func (g *Graph[L]) AddVertex(v L) bool {
	if _, ok := g.seq[v]; ok {
		return false
	}
	g.seq[v] = g.next
	g.next++
	g.out[v] = make(map[L]int)
	g.in[v] = make(map[L]int)
	return true
}

// SetEdge sets the weight of the directed edge source→target and returns the
// previous weight, or 0 if the edge did not exist.
//
// A positive weight creates the edge (adding both endpoints as vertices) or
// overwrites its weight. A zero weight removes the edge if present and is a
// no-op otherwise; the endpoints stay in the graph either way.
//
// A negative weight is rejected with an INVALID_ARGUMENT error wrapping
// ErrNegativeWeight. The graph is not modified in that case.
func (g *Graph[L]) SetEdge(source, target L, weight int) (int, error) {
	if weight < 0 {
		return 0, wberrors.Wrap(wberrors.ErrCodeInvalidArgument, ErrNegativeWeight,
			"set edge %v→%v to %d", source, target, weight)
	}

	prev := g.out[source][target]
	switch {
	case weight == 0 && prev == 0:
	case weight == 0:
		delete(g.out[source], target)
		delete(g.in[target], source)
		g.size--
	default:
		g.AddVertex(source)
		g.AddVertex(target)
		if prev == 0 {
			g.size++
		}
		g.out[source][target] = weight
		g.in[target][source] = weight
	}
	return prev, nil
}

// RemoveVertex removes v together with every edge that has v as its source
// or target. It reports whether v was present.
func (g *Graph[L]) RemoveVertex(v L) bool {
	if _, ok := g.seq[v]; !ok {
		return false
	}
	for t := range g.out[v] {
		if t != v {
			delete(g.in[t], v)
		}
		g.size--
	}
	for s := range g.in[v] {
		if s != v {
			delete(g.out[s], v)
			g.size--
		}
	}
	delete(g.out, v)
	delete(g.in, v)
	delete(g.seq, v)
	return true
}

// HasVertex reports whether v is in the graph.
func (g *Graph[L]) HasVertex(v L) bool {
	_, ok := g.seq[v]
	return ok
}

// Weight returns the weight of source→target, or 0 if there is no such edge.
func (g *Graph[L]) Weight(source, target L) int { return g.out[source][target] }

// Vertices returns a snapshot of the vertex set.
// The returned map is independent of the graph.
func (g *Graph[L]) Vertices() map[L]struct{} {
	vs := make(map[L]struct{}, len(g.seq))
	for v := range g.seq {
		vs[v] = struct{}{}
	}
	return vs
}

// VertexList returns the vertices in the order they were first added.
func (g *Graph[L]) VertexList() []L {
	return slices.SortedFunc(maps.Keys(g.seq), g.compare)
}

// Sources returns, for every edge s→target, s mapped to the edge weight.
// The result is empty (never nil) when target has no incoming edges or is not
// in the graph.
func (g *Graph[L]) Sources(target L) map[L]int {
	if g.in[target] == nil {
		return map[L]int{}
	}
	return maps.Clone(g.in[target])
}

// Targets returns, for every edge source→t, t mapped to the edge weight.
// The result is empty (never nil) when source has no outgoing edges or is
// not in the graph.
func (g *Graph[L]) Targets(source L) map[L]int {
	if g.out[source] == nil {
		return map[L]int{}
	}
	return maps.Clone(g.out[source])
}

// Edges returns every edge, ordered by the insertion order of the source and
// then of the target.
func (g *Graph[L]) Edges() []Edge[L] {
	edges := make([]Edge[L], 0, g.size)
	for _, s := range g.VertexList() {
		for _, t := range slices.SortedFunc(maps.Keys(g.out[s]), g.compare) {
			edges = append(edges, Edge[L]{Source: s, Target: t, Weight: g.out[s][t]})
		}
	}
	return edges
}

// VertexCount returns the number of vertices.
func (g *Graph[L]) VertexCount() int { return len(g.seq) }

// EdgeCount returns the number of edges.
func (g *Graph[L]) EdgeCount() int { return g.size }

// OutDegree returns the number of outgoing edges of v, or 0 if v is absent.
func (g *Graph[L]) OutDegree(v L) int { return len(g.out[v]) }

// InDegree returns the number of incoming edges of v, or 0 if v is absent.
func (g *Graph[L]) InDegree(v L) int { return len(g.in[v]) }

// Clone returns a deep copy of the graph, including vertex insertion order.
func (g *Graph[L]) Clone() *Graph[L] {
	c := &Graph[L]{
		out:  make(map[L]map[L]int, len(g.out)),
		in:   make(map[L]map[L]int, len(g.in)),
		seq:  maps.Clone(g.seq),
		next: g.next,
		size: g.size,
	}
	for v, adj := range g.out {
		c.out[v] = maps.Clone(adj)
	}
	for v, adj := range g.in {
		c.in[v] = maps.Clone(adj)
	}
	return c
}

// String describes the graph by its vertex and edge counts.
func (g *Graph[L]) String() string {
	return fmt.Sprintf("graph: %d vertices, %d edges", len(g.seq), g.size)
}

func (g *Graph[L]) compare(a, b L) int {
	sa, sb := g.seq[a], g.seq[b]
	switch {
	case sa < sb:
		return -1
	case sa > sb:
		return 1
	default:
		return 0
	}
}
