package cli

import (
	"strconv"

	"github.com/spf13/cobra"
)

// bridgeCommand creates the bridge command, which explains the bridge chosen
// between two words.
func (c *CLI) bridgeCommand() *cobra.Command {
	var corpora []string

	cmd := &cobra.Command{
		Use:   "bridge <prev> <next>",
		Short: "Show the bridge word between two words",
		Long: `Show the bridge word between two words.

Lists every candidate bridge with the weight of its incoming edge (prev → b),
its outgoing edge (b → next) and their total. The heaviest candidate wins;
ties go to the alphabetically first word.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPoet(cmd.Context(), corpora)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			prev, next := args[0], args[1]
			word, weight, ok := p.Bridge(prev, next)
			if !ok {
				printInfo(out, "No bridge between %s and %s", StyleHighlight.Render(prev), StyleHighlight.Render(next))
				return nil
			}
			printSuccess(out, "%s %s %s", prev, StyleBridge.Render(word), next)
			printDetail(out, "weight %d", weight)

			cands := p.Candidates(prev, next)
			rows := make([][]string, len(cands))
			for i, cand := range cands {
				rows[i] = []string{cand.Word, strconv.Itoa(cand.In), strconv.Itoa(cand.Out), strconv.Itoa(cand.Total)}
			}
			printTable(out, []string{"Bridge", "In", "Out", "Total"}, rows)
			return nil
		},
	}

	addCorpusFlag(cmd, &corpora)
	return cmd
}
