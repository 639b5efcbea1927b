package cli

import (
	"cmp"
	"slices"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordbridge/pkg/digraph"
)

// statsCommand creates the stats command for summarizing the affinity graph.
func (c *CLI) statsCommand() *cobra.Command {
	var (
		corpora []string
		top     int
	)

	cmd := &cobra.Command{
		Use:   "stats",
		Short: "Summarize the affinity graph of a corpus",
		Long: `Summarize the affinity graph of a corpus.

Prints the number of distinct words and word pairs, followed by the heaviest
word pairs. Use --top 0 to skip the table.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPoet(cmd.Context(), corpora)
			if err != nil {
				return err
			}

			g := p.Graph()
			out := cmd.OutOrStdout()
			printKeyValue(out, "Words", strconv.Itoa(g.VertexCount()))
			printKeyValue(out, "Pairs", strconv.Itoa(g.EdgeCount()))

			heaviest := heaviestEdges(g, top)
			if len(heaviest) == 0 {
				return nil
			}
			rows := make([][]string, len(heaviest))
			for i, e := range heaviest {
				rows[i] = []string{e.Source, e.Target, strconv.Itoa(e.Weight)}
			}
			printTable(out, []string{"From", "To", "Weight"}, rows)
			return nil
		},
	}

	addCorpusFlag(cmd, &corpora)
	cmd.Flags().IntVar(&top, "top", defaultTop, "number of heaviest pairs to list")
	return cmd
}

// heaviestEdges returns up to n edges of g, heaviest first. Edges of equal
// weight keep the graph's enumeration order.
func heaviestEdges(g *digraph.Graph[string], n int) []digraph.Edge[string] {
	if n <= 0 {
		return nil
	}
	edges := g.Edges()
	slices.SortStableFunc(edges, func(a, b digraph.Edge[string]) int {
		return cmp.Compare(b.Weight, a.Weight)
	})
	return edges[:min(n, len(edges))]
}
