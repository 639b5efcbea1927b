package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordbridge/pkg/corpus"
	"github.com/matzehuels/wordbridge/pkg/errors"
	"github.com/matzehuels/wordbridge/pkg/poet"
)

// addCorpusFlag registers the repeatable --corpus flag on cmd.
func addCorpusFlag(cmd *cobra.Command, paths *[]string) {
	cmd.Flags().StringArrayVarP(paths, "corpus", "c", nil, "corpus text file (repeatable, default from config)")
}

// loadPoet reads every corpus file and builds a poet from their tokens.
// Files named on the command line replace those from the config file. All
// files are read before the graph is built, so a missing file fails the
// command without building anything.
func (c *CLI) loadPoet(ctx context.Context, paths []string) (*poet.Poet, error) {
	if len(paths) == 0 {
		paths = c.config.Corpus
	}
	if len(paths) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidInput, "no corpus given: pass --corpus or set corpus in the config file")
	}

	logger := loggerFromContext(ctx)

	prog := newProgress(logger)
	tokens, err := corpus.ReadFiles(paths...)
	if err != nil {
		return nil, err
	}
	prog.done(fmt.Sprintf("Read %d tokens from %d corpus file(s)", len(tokens), len(paths)))

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	prog = newProgress(logger)
	p := poet.FromTokens(tokens)
	prog.done("Built " + p.String())
	return p, nil
}
