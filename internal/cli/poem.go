package cli

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordbridge/pkg/errors"
	"github.com/matzehuels/wordbridge/pkg/poet"
)

// poemCommand creates the poem command for rendering sentences.
func (c *CLI) poemCommand() *cobra.Command {
	var corpora []string

	cmd := &cobra.Command{
		Use:   "poem [words...]",
		Short: "Insert bridge words into a sentence",
		Long: `Insert bridge words into a sentence.

Between every two adjacent words of the input, poem inserts the corpus word
that most strongly links them: the word b maximizing how often "prev b" and
"b next" occur in the corpus. Words without a link are left adjacent.

The sentence is taken from the arguments. Without arguments every line of
standard input is rendered in turn.

Example:
  wordbridge poem -c poems.txt Test the system.`,
		RunE: func(cmd *cobra.Command, args []string) error {
			p, err := c.loadPoet(cmd.Context(), corpora)
			if err != nil {
				return err
			}
			if len(args) > 0 {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), p.Render(strings.Join(args, " ")))
				return err
			}
			return renderLines(cmd.Context(), p, cmd.InOrStdin(), cmd.OutOrStdout())
		},
	}

	addCorpusFlag(cmd, &corpora)
	return cmd
}

// renderLines renders each line of r to w until r is exhausted or ctx is
// cancelled. Lines may be of any length; a final line without a trailing
// newline is rendered too.
func renderLines(ctx context.Context, p *poet.Poet, r io.Reader, w io.Writer) error {
	br := bufio.NewReader(r)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		line, err := br.ReadString('\n')
		if len(line) > 0 {
			line = strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")
			if _, werr := fmt.Fprintln(w, p.Render(line)); werr != nil {
				return werr
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return errors.Wrap(errors.ErrCodeInvalidInput, err, "read input")
		}
	}
}
