package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
)

// interactiveCommand creates the interactive command, a terminal session that
// renders each entered line.
func (c *CLI) interactiveCommand() *cobra.Command {
	var corpora []string

	cmd := &cobra.Command{
		Use:     "interactive",
		Aliases: []string{"i"},
		Short:   "Render sentences in an interactive session",
		Long: `Render sentences in an interactive session.

The affinity graph is built once; every line you enter is then rendered
immediately with its bridge words highlighted.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPoet(cmd.Context(), corpora)
			if err != nil {
				return err
			}

			prog := tea.NewProgram(NewPoemModel(p),
				tea.WithContext(cmd.Context()),
				tea.WithInput(cmd.InOrStdin()),
				tea.WithOutput(cmd.OutOrStdout()),
			)
			final, err := prog.Run()
			if err != nil {
				return err
			}
			if m, ok := final.(PoemModel); ok && len(m.History) > 0 {
				printDetail(cmd.OutOrStdout(), "%d line(s) rendered", len(m.History))
			}
			return nil
		},
	}

	addCorpusFlag(cmd, &corpora)
	return cmd
}
