package nodelink

import (
	"strings"
	"testing"

	"github.com/matzehuels/wordbridge/pkg/digraph"
)

func testGraph(t *testing.T) *digraph.Graph[string] {
	t.Helper()
	g := digraph.New[string]()
	for _, e := range []digraph.Edge[string]{
		{Source: "test", Target: "of", Weight: 1},
		{Source: "of", Target: "the", Weight: 3},
		{Source: "the", Target: "system.", Weight: 9},
	} {
		if _, err := g.SetEdge(e.Source, e.Target, e.Weight); err != nil {
			t.Fatal(err)
		}
	}
	g.AddVertex("lonely")
	return g
}

func TestToDOT_Basic(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})

	for _, want := range []string{
		"digraph G",
		`"test" [label="test"]`,
		`"lonely" [label="lonely"]`,
		`"test" -> "of" [penwidth=1]`,
		`"of" -> "the" [penwidth=3]`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("ToDOT() output missing %q", want)
		}
	}
	if strings.Contains(dot, "label=\"1\"") {
		t.Error("ToDOT() labelled edges without ShowWeights")
	}
}

func TestToDOT_PenWidthCapped(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{})
	if !strings.Contains(dot, `"the" -> "system." [penwidth=6]`) {
		t.Errorf("heavy edge not capped:\n%s", dot)
	}
}

func TestToDOT_ShowWeights(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{ShowWeights: true})
	if !strings.Contains(dot, `"of" -> "the" [penwidth=3, label="3"]`) {
		t.Errorf("ToDOT() missing weight label:\n%s", dot)
	}
}

func TestToDOT_MinWeight(t *testing.T) {
	dot := ToDOT(testGraph(t), Options{MinWeight: 2, HideIsolated: true})

	if strings.Contains(dot, `"test" -> "of"`) {
		t.Error("edge below MinWeight was emitted")
	}
	if strings.Contains(dot, `"test" [`) || strings.Contains(dot, `"lonely" [`) {
		t.Error("isolated vertices emitted with HideIsolated")
	}
	if !strings.Contains(dot, `"of" [label="of"]`) {
		t.Error("linked vertex missing")
	}
}

func TestToDOT_Deterministic(t *testing.T) {
	g := testGraph(t)
	first := ToDOT(g, Options{ShowWeights: true})
	for i := 0; i < 10; i++ {
		if got := ToDOT(g, Options{ShowWeights: true}); got != first {
			t.Fatal("ToDOT() output is not deterministic")
		}
	}
}

func TestToDOT_QuotesLabels(t *testing.T) {
	g := digraph.New[string]()
	if _, err := g.SetEdge(`say "hi"`, "ok", 1); err != nil {
		t.Fatal(err)
	}
	dot := ToDOT(g, Options{})
	if !strings.Contains(dot, `"say \"hi\"" -> "ok"`) {
		t.Errorf("label not escaped:\n%s", dot)
	}
}

func TestNormalizeViewBox(t *testing.T) {
	in := []byte(`<svg width="100pt" height="50pt" viewBox="0.00 0.00 100.00 50.00" xmlns="http://www.w3.org/2000/svg"><g/></svg>`)
	out := string(normalizeViewBox(in))
	if !strings.Contains(out, `viewBox="0 0 100.00 50.00" width="100" height="50"`) {
		t.Errorf("normalizeViewBox() = %s", out)
	}

	plain := []byte(`<svg><g/></svg>`)
	if got := normalizeViewBox(plain); string(got) != string(plain) {
		t.Error("normalizeViewBox() changed SVG without viewBox")
	}
}
