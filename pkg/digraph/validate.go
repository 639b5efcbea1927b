package digraph

import "fmt"

// Validate checks the graph's representation invariants and returns nil if
// they hold. It verifies that:
//
//  1. every vertex has an adjacency record in both directions, and no record
//     exists for a label outside the vertex set
//  2. every stored weight is strictly positive
//  3. outgoing and incoming adjacency mirror each other exactly
//  4. the cached edge count matches the stored edges
//
// Duplicate edges cannot occur because adjacency is keyed by label. Validate
// is O(V+E) and is intended for tests and debugging.
func (g *Graph[L]) Validate() error {
	if len(g.out) != len(g.seq) || len(g.in) != len(g.seq) {
		return fmt.Errorf("%w: %d vertices, %d outgoing records, %d incoming records",
			ErrDanglingEndpoint, len(g.seq), len(g.out), len(g.in))
	}

	count := 0
	for s, targets := range g.out {
		if _, ok := g.seq[s]; !ok {
			return fmt.Errorf("%w: source %v", ErrDanglingEndpoint, s)
		}
		for t, w := range targets {
			if _, ok := g.seq[t]; !ok {
				return fmt.Errorf("%w: target %v", ErrDanglingEndpoint, t)
			}
			if w <= 0 {
				return fmt.Errorf("%w: %v→%v has weight %d", ErrNonPositiveWeight, s, t, w)
			}
			if g.in[t][s] != w {
				return fmt.Errorf("%w: %v→%v is %d outgoing, %d incoming",
					ErrInconsistentAdjacency, s, t, w, g.in[t][s])
			}
			count++
		}
	}

	mirrored := 0
	for _, sources := range g.in {
		mirrored += len(sources)
	}
	if mirrored != count || count != g.size {
		return fmt.Errorf("%w: %d outgoing, %d incoming, %d counted",
			ErrInconsistentAdjacency, count, mirrored, g.size)
	}
	return nil
}
