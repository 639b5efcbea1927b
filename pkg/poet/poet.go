package poet

import (
	"cmp"
	"iter"
	"slices"
	"strings"
	"time"

	"github.com/matzehuels/wordbridge/pkg/digraph"
	"github.com/matzehuels/wordbridge/pkg/observability"
)

// Poet rewrites input text using a word affinity graph.
// The zero value is not usable - use Build.
type Poet struct {
	graph *digraph.Graph[string]
}

// Candidate is a possible bridge word between two input words.
type Candidate struct {
	Word  string `json:"word"`
	In    int    `json:"in"`    // weight of prev→Word
	Out   int    `json:"out"`   // weight of Word→cur
	Total int    `json:"total"` // In + Out
}

// Build constructs a Poet from a token stream. Each token is lower-cased to
// a word; every pair of consecutive words increments the weight of the edge
// between them by one. Empty tokens are skipped.
//
// An empty stream yields a Poet over an empty graph, whose Render returns its
// input's words, single-space separated.
func Build(tokens iter.Seq[string]) *Poet {
	start := time.Now()
	g := digraph.New[string]()

	n := 0
	var prev string
	for tok := range tokens {
		if tok == "" {
			continue
		}
		word := strings.ToLower(tok)
		if n == 0 {
			g.AddVertex(word)
		} else {
			// Weights are always positive here, so SetEdge cannot fail.
			_, _ = g.SetEdge(prev, word, g.Weight(prev, word)+1)
		}
		prev = word
		n++
	}

	observability.Poet().OnBuild(n, g.VertexCount(), g.EdgeCount(), time.Since(start))
	return &Poet{graph: g}
}

// FromTokens is Build over a slice.
func FromTokens(tokens []string) *Poet {
	return Build(slices.Values(tokens))
}

// Render splits input on whitespace and inserts the best bridge word between
// every pair of adjacent words. The first word is emitted verbatim; for each
// later word, " " + bridge + " " + word is emitted when a bridge exists and
// " " + word otherwise. Empty or all-whitespace input yields "".
func (p *Poet) Render(input string) string {
	start := time.Now()
	words := strings.Fields(input)
	if len(words) == 0 {
		observability.Poet().OnRender(0, 0, time.Since(start))
		return ""
	}

	var b strings.Builder
	b.WriteString(words[0])
	bridges := 0
	for i := 1; i < len(words); i++ {
		b.WriteByte(' ')
		if word, _, ok := p.Bridge(words[i-1], words[i]); ok {
			b.WriteString(word)
			b.WriteByte(' ')
			bridges++
		}
		b.WriteString(words[i])
	}

	observability.Poet().OnRender(len(words), bridges, time.Since(start))
	return b.String()
}

// Bridge returns the best bridge word between prev and cur together with its
// combined weight. Both words are lower-cased before lookup. ok is false when
// no bridge exists.
//
// Among bridges of equal combined weight the lexicographically smallest word
// is chosen.
func (p *Poet) Bridge(prev, cur string) (word string, weight int, ok bool) {
	prevLC, curLC := strings.ToLower(prev), strings.ToLower(cur)
	incoming := p.graph.Sources(curLC)
	for b, in := range p.graph.Targets(prevLC) {
		out, found := incoming[b]
		if !found {
			continue
		}
		total := in + out
		if total > weight || (total == weight && b < word) {
			word, weight = b, total
		}
	}
	return word, weight, weight > 0
}

// Candidates returns every bridge word between prev and cur, ordered by
// combined weight (heaviest first) and then by word. The first candidate, if
// any, is the one Bridge selects.
func (p *Poet) Candidates(prev, cur string) []Candidate {
	prevLC, curLC := strings.ToLower(prev), strings.ToLower(cur)
	incoming := p.graph.Sources(curLC)

	var cs []Candidate
	for b, in := range p.graph.Targets(prevLC) {
		if out, found := incoming[b]; found {
			cs = append(cs, Candidate{Word: b, In: in, Out: out, Total: in + out})
		}
	}
	slices.SortFunc(cs, func(a, b Candidate) int {
		if c := cmp.Compare(b.Total, a.Total); c != 0 {
			return c
		}
		return strings.Compare(a.Word, b.Word)
	})
	return cs
}

// Graph returns a copy of the affinity graph. Changes to the copy do not
// affect the Poet.
func (p *Poet) Graph() *digraph.Graph[string] { return p.graph.Clone() }

// Vocabulary returns the number of distinct words in the graph.
func (p *Poet) Vocabulary() int { return p.graph.VertexCount() }

// String describes the affinity graph.
func (p *Poet) String() string { return p.graph.String() }
