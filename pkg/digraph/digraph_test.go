package digraph

import (
	"errors"
	"maps"
	"math/rand/v2"
	"slices"
	"testing"

	wberrors "github.com/matzehuels/wordbridge/pkg/errors"
)

func mustSet[L comparable](t *testing.T, g *Graph[L], s, d L, w int) int {
	t.Helper()
	prev, err := g.SetEdge(s, d, w)
	if err != nil {
		t.Fatalf("SetEdge(%v, %v, %d): %v", s, d, w, err)
	}
	return prev
}

func mustValidate[L comparable](t *testing.T, g *Graph[L]) {
	t.Helper()
	if err := g.Validate(); err != nil {
		t.Fatalf("Validate: %v", err)
	}
}

func TestEmptyGraph(t *testing.T) {
	g := New[string]()

	if got := g.Vertices(); len(got) != 0 {
		t.Errorf("Vertices() = %v, want empty", got)
	}
	if got := g.Sources("x"); got == nil || len(got) != 0 {
		t.Errorf("Sources(x) = %v, want empty non-nil map", got)
	}
	if got := g.Targets("x"); got == nil || len(got) != 0 {
		t.Errorf("Targets(x) = %v, want empty non-nil map", got)
	}
	if g.HasVertex("x") {
		t.Error("HasVertex(x) = true on empty graph")
	}
	if g.Weight("x", "y") != 0 {
		t.Error("Weight(x, y) != 0 on empty graph")
	}
	if got := g.String(); got != "graph: 0 vertices, 0 edges" {
		t.Errorf("String() = %q", got)
	}
	mustValidate(t, g)
}

func TestAddVertex(t *testing.T) {
	g := New[string]()

	if !g.AddVertex("a") {
		t.Error("AddVertex(a) = false, want true for new vertex")
	}
	if g.AddVertex("a") {
		t.Error("AddVertex(a) = true, want false for existing vertex")
	}
	if !g.AddVertex("b") {
		t.Error("AddVertex(b) = false, want true")
	}
	if g.VertexCount() != 2 {
		t.Errorf("VertexCount() = %d, want 2", g.VertexCount())
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d, want 0", g.EdgeCount())
	}
	mustValidate(t, g)
}

func TestSetEdge(t *testing.T) {
	tests := []struct {
		name     string
		ops      [][3]any // source, target, weight
		wantPrev []int
		wantW    int
		wantV    int
	}{
		{
			name:     "Create",
			ops:      [][3]any{{"a", "b", 3}},
			wantPrev: []int{0},
			wantW:    3,
			wantV:    2,
		},
		{
			name:     "Overwrite",
			ops:      [][3]any{{"a", "b", 3}, {"a", "b", 4}},
			wantPrev: []int{0, 3},
			wantW:    4,
			wantV:    2,
		},
		{
			name:     "Idempotent",
			ops:      [][3]any{{"a", "b", 5}, {"a", "b", 5}},
			wantPrev: []int{0, 5},
			wantW:    5,
			wantV:    2,
		},
		{
			name:     "RoundTrip",
			ops:      [][3]any{{"a", "b", 5}, {"a", "b", 0}},
			wantPrev: []int{0, 5},
			wantW:    0,
			wantV:    2,
		},
		{
			name:     "ZeroOnAbsentEdge",
			ops:      [][3]any{{"a", "b", 0}},
			wantPrev: []int{0},
			wantW:    0,
			wantV:    0,
		},
		{
			name:     "RemoveTwice",
			ops:      [][3]any{{"a", "b", 2}, {"a", "b", 0}, {"a", "b", 0}},
			wantPrev: []int{0, 2, 0},
			wantW:    0,
			wantV:    2,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[string]()
			for i, op := range tt.ops {
				prev := mustSet(t, g, op[0].(string), op[1].(string), op[2].(int))
				if prev != tt.wantPrev[i] {
					t.Errorf("op %d: previous weight = %d, want %d", i, prev, tt.wantPrev[i])
				}
				mustValidate(t, g)
			}
			if w := g.Weight("a", "b"); w != tt.wantW {
				t.Errorf("Weight(a, b) = %d, want %d", w, tt.wantW)
			}
			if n := g.VertexCount(); n != tt.wantV {
				t.Errorf("VertexCount() = %d, want %d", n, tt.wantV)
			}
			_, inTargets := g.Targets("a")["b"]
			if inTargets != (tt.wantW > 0) {
				t.Errorf("Targets(a) contains b = %v, want %v", inTargets, tt.wantW > 0)
			}
		})
	}
}

func TestSetEdgeNegativeWeight(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "a", "b", 2)

	prev, err := g.SetEdge("a", "b", -1)
	if err == nil {
		t.Fatal("SetEdge with negative weight returned nil error")
	}
	if prev != 0 {
		t.Errorf("previous weight = %d, want 0 on error", prev)
	}
	if !errors.Is(err, ErrNegativeWeight) {
		t.Errorf("errors.Is(err, ErrNegativeWeight) = false: %v", err)
	}
	if !wberrors.Is(err, wberrors.ErrCodeInvalidArgument) {
		t.Errorf("code = %v, want %v", wberrors.GetCode(err), wberrors.ErrCodeInvalidArgument)
	}

	// Graph must be left unmodified.
	if w := g.Weight("a", "b"); w != 2 {
		t.Errorf("Weight(a, b) = %d after rejected call, want 2", w)
	}
	if _, err := g.SetEdge("x", "y", -5); err == nil {
		t.Error("negative weight on absent edge accepted")
	}
	if g.HasVertex("x") || g.HasVertex("y") {
		t.Error("rejected SetEdge added vertices")
	}
	mustValidate(t, g)
}

func TestSelfLoop(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "a", "a", 3)

	want := map[string]int{"a": 3}
	if got := g.Targets("a"); !maps.Equal(got, want) {
		t.Errorf("Targets(a) = %v, want %v", got, want)
	}
	if got := g.Sources("a"); !maps.Equal(got, want) {
		t.Errorf("Sources(a) = %v, want %v", got, want)
	}
	if g.VertexCount() != 1 || g.EdgeCount() != 1 {
		t.Errorf("counts = %d/%d, want 1/1", g.VertexCount(), g.EdgeCount())
	}
	mustValidate(t, g)

	if !g.RemoveVertex("a") {
		t.Fatal("RemoveVertex(a) = false")
	}
	if g.EdgeCount() != 0 {
		t.Errorf("EdgeCount() = %d after removing self-loop vertex", g.EdgeCount())
	}
	mustValidate(t, g)
}

func TestRemoveVertex(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "v1", "v2", 1)
	mustSet(t, g, "v2", "v3", 1)
	mustSet(t, g, "v1", "v3", 4)

	if !g.RemoveVertex("v2") {
		t.Fatal("RemoveVertex(v2) = false, want true")
	}
	if g.RemoveVertex("v2") {
		t.Error("second RemoveVertex(v2) = true, want false")
	}
	if g.RemoveVertex("missing") {
		t.Error("RemoveVertex(missing) = true, want false")
	}

	if got, want := g.Targets("v1"), map[string]int{"v3": 4}; !maps.Equal(got, want) {
		t.Errorf("Targets(v1) = %v, want %v", got, want)
	}
	if got, want := g.Sources("v3"), map[string]int{"v1": 4}; !maps.Equal(got, want) {
		t.Errorf("Sources(v3) = %v, want %v", got, want)
	}
	if g.EdgeCount() != 1 {
		t.Errorf("EdgeCount() = %d, want 1", g.EdgeCount())
	}
	mustValidate(t, g)
}

func TestRemoveVertexDropsAllIncidentEdges(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "v1", "v2", 1)
	mustSet(t, g, "v2", "v3", 1)
	g.RemoveVertex("v2")

	if got := g.Targets("v1"); len(got) != 0 {
		t.Errorf("Targets(v1) = %v, want empty", got)
	}
	if got := g.Sources("v3"); len(got) != 0 {
		t.Errorf("Sources(v3) = %v, want empty", got)
	}
	mustValidate(t, g)
}

func TestSnapshotsAreIndependent(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "a", "b", 1)

	vs := g.Vertices()
	delete(vs, "a")
	vs["z"] = struct{}{}

	ts := g.Targets("a")
	ts["b"] = 99
	ts["c"] = 1

	ss := g.Sources("b")
	delete(ss, "a")

	if !g.HasVertex("a") || g.HasVertex("z") {
		t.Error("mutating Vertices() result changed the graph")
	}
	if g.Weight("a", "b") != 1 || g.HasVertex("c") {
		t.Error("mutating Targets() result changed the graph")
	}
	if len(g.Sources("b")) != 1 {
		t.Error("mutating Sources() result changed the graph")
	}
	mustValidate(t, g)
}

func TestDeterministicEnumeration(t *testing.T) {
	g := New[string]()
	g.AddVertex("zeta")
	mustSet(t, g, "alpha", "zeta", 2)
	mustSet(t, g, "zeta", "mid", 1)
	mustSet(t, g, "zeta", "alpha", 5)

	if got, want := g.VertexList(), []string{"zeta", "alpha", "mid"}; !slices.Equal(got, want) {
		t.Errorf("VertexList() = %v, want %v", got, want)
	}

	want := []Edge[string]{
		{Source: "zeta", Target: "alpha", Weight: 5},
		{Source: "zeta", Target: "mid", Weight: 1},
		{Source: "alpha", Target: "zeta", Weight: 2},
	}
	if got := g.Edges(); !slices.Equal(got, want) {
		t.Errorf("Edges() = %v, want %v", got, want)
	}

	// Re-adding a removed vertex moves it to the end.
	g.RemoveVertex("zeta")
	g.AddVertex("zeta")
	if got, want := g.VertexList(), []string{"alpha", "mid", "zeta"}; !slices.Equal(got, want) {
		t.Errorf("VertexList() after re-add = %v, want %v", got, want)
	}
}

func TestDegrees(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "a", "b", 1)
	mustSet(t, g, "a", "c", 1)
	mustSet(t, g, "c", "b", 1)

	if d := g.OutDegree("a"); d != 2 {
		t.Errorf("OutDegree(a) = %d, want 2", d)
	}
	if d := g.InDegree("b"); d != 2 {
		t.Errorf("InDegree(b) = %d, want 2", d)
	}
	if d := g.OutDegree("missing"); d != 0 {
		t.Errorf("OutDegree(missing) = %d, want 0", d)
	}
}

func TestClone(t *testing.T) {
	g := New[string]()
	mustSet(t, g, "a", "b", 1)
	mustSet(t, g, "b", "c", 2)

	c := g.Clone()
	mustValidate(t, c)
	mustSet(t, c, "a", "b", 7)
	c.RemoveVertex("c")

	if g.Weight("a", "b") != 1 || !g.HasVertex("c") {
		t.Error("mutating clone changed the original")
	}
	if !slices.Equal(g.Clone().Edges(), g.Edges()) {
		t.Error("clone edges differ from original")
	}
	mustValidate(t, g)
	mustValidate(t, c)
}

func TestIntegerLabels(t *testing.T) {
	g := New[int]()
	if !g.AddVertex(1) || g.AddVertex(1) {
		t.Error("AddVertex on int labels misbehaves")
	}
	if prev := mustSet(t, g, 1, 2, 3); prev != 0 {
		t.Errorf("prev = %d, want 0", prev)
	}
	if prev := mustSet(t, g, 1, 2, 4); prev != 3 {
		t.Errorf("prev = %d, want 3", prev)
	}
	if prev := mustSet(t, g, 1, 2, 0); prev != 4 {
		t.Errorf("prev = %d, want 4", prev)
	}
	if prev := mustSet(t, g, 1, 2, 0); prev != 0 {
		t.Errorf("prev = %d, want 0", prev)
	}
	if g.RemoveVertex(6) {
		t.Error("RemoveVertex(6) = true on absent vertex")
	}
}

func TestRandomMutationsPreserveInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	g := New[int]()

	// Shadow model keyed by ordered pair.
	type pair struct{ s, t int }
	model := map[pair]int{}

	for i := 0; i < 5000; i++ {
		a, b := rng.IntN(12), rng.IntN(12)
		switch rng.IntN(4) {
		case 0:
			g.AddVertex(a)
		case 1, 2:
			w := rng.IntN(4)
			prev := mustSet(t, g, a, b, w)
			if prev != model[pair{a, b}] {
				t.Fatalf("step %d: SetEdge(%d, %d, %d) prev = %d, model %d", i, a, b, w, prev, model[pair{a, b}])
			}
			if w == 0 {
				delete(model, pair{a, b})
			} else {
				model[pair{a, b}] = w
			}
		case 3:
			g.RemoveVertex(a)
			for p := range model {
				if p.s == a || p.t == a {
					delete(model, p)
				}
			}
		}
		mustValidate(t, g)
	}

	if g.EdgeCount() != len(model) {
		t.Fatalf("EdgeCount() = %d, model has %d", g.EdgeCount(), len(model))
	}
	vs := g.Vertices()
	for _, e := range g.Edges() {
		if e.Weight <= 0 {
			t.Errorf("edge %v has non-positive weight", e)
		}
		if model[pair{e.Source, e.Target}] != e.Weight {
			t.Errorf("edge %v disagrees with model", e)
		}
		if _, ok := vs[e.Source]; !ok {
			t.Errorf("source of %v missing from vertices", e)
		}
		if _, ok := vs[e.Target]; !ok {
			t.Errorf("target of %v missing from vertices", e)
		}
	}
}

func TestValidateDetectsCorruption(t *testing.T) {
	tests := []struct {
		name    string
		corrupt func(g *Graph[string])
		want    error
	}{
		{
			name:    "NonPositiveWeight",
			corrupt: func(g *Graph[string]) { g.out["a"]["b"] = 0; g.in["b"]["a"] = 0 },
			want:    ErrNonPositiveWeight,
		},
		{
			name:    "Mirror",
			corrupt: func(g *Graph[string]) { g.in["b"]["a"] = 9 },
			want:    ErrInconsistentAdjacency,
		},
		{
			name:    "Dangling",
			corrupt: func(g *Graph[string]) { g.out["a"]["ghost"] = 1 },
			want:    ErrDanglingEndpoint,
		},
		{
			name:    "Count",
			corrupt: func(g *Graph[string]) { g.size++ },
			want:    ErrInconsistentAdjacency,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := New[string]()
			mustSet(t, g, "a", "b", 1)
			tt.corrupt(g)
			if err := g.Validate(); !errors.Is(err, tt.want) {
				t.Errorf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
