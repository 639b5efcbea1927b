package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/wordbridge/pkg/errors"
	"github.com/matzehuels/wordbridge/pkg/render"
	"github.com/matzehuels/wordbridge/pkg/render/nodelink"
)

// pngScale is the resolution multiplier for PNG output.
const pngScale = 2.0

// visualizeCommand creates the visualize command for drawing the affinity graph.
func (c *CLI) visualizeCommand() *cobra.Command {
	var (
		corpora []string
		format  string
		output  string
		opts    nodelink.Options
	)

	cmd := &cobra.Command{
		Use:   "visualize",
		Short: "Draw the affinity graph of a corpus",
		Long: `Draw the affinity graph of a corpus.

Every distinct word becomes a node and every adjacent word pair an arrow whose
thickness grows with the number of occurrences. The graph is written as DOT
(default) or rendered with Graphviz to SVG. PDF and PNG output additionally
require rsvg-convert (librsvg).

Defaults for --format and --min-weight are read from the [visualize] table of
the config file.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			flags := cmd.Flags()
			if !flags.Changed("format") && c.config.Visualize.Format != "" {
				format = c.config.Visualize.Format
			}
			if !flags.Changed("min-weight") && c.config.Visualize.MinWeight > 0 {
				opts.MinWeight = c.config.Visualize.MinWeight
			}
			if !slices.Contains(render.Formats, format) {
				return errors.New(errors.ErrCodeInvalidFormat, "unknown format %q (want %s)", format, strings.Join(render.Formats, ", "))
			}

			p, err := c.loadPoet(cmd.Context(), corpora)
			if err != nil {
				return err
			}

			data, err := c.draw(cmd.Context(), nodelink.ToDOT(p.Graph(), opts), format, output != "", cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			return writeOutput(cmd.OutOrStdout(), output, data)
		},
	}

	addCorpusFlag(cmd, &corpora)
	cmd.Flags().StringVarP(&format, "format", "f", render.FormatDOT, "output format: "+strings.Join(render.Formats, ", "))
	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().IntVar(&opts.MinWeight, "min-weight", 0, "omit pairs seen fewer times than this")
	cmd.Flags().BoolVar(&opts.ShowWeights, "weights", false, "label arrows with their weight")
	cmd.Flags().BoolVar(&opts.HideIsolated, "hide-isolated", false, "omit words left without arrows by --min-weight")
	return cmd
}

// draw converts dot to format. Graphviz renders can take a while on large
// corpora, so a spinner runs on status while they do.
func (c *CLI) draw(ctx context.Context, dot, format string, showSpinner bool, status io.Writer) ([]byte, error) {
	if format == render.FormatDOT {
		return []byte(dot), nil
	}

	var spinner *Spinner
	if showSpinner {
		spinner = newSpinner(ctx, status, fmt.Sprintf("Rendering %s...", strings.ToUpper(format)))
		spinner.Start()
	}

	var (
		data []byte
		err  error
	)
	switch format {
	case render.FormatSVG:
		data, err = nodelink.RenderSVG(dot)
	case render.FormatPDF:
		data, err = nodelink.RenderPDF(dot)
	case render.FormatPNG:
		data, err = nodelink.RenderPNG(dot, pngScale)
	}

	if spinner != nil {
		if err != nil {
			spinner.StopWithError("Rendering failed")
		} else {
			spinner.Stop()
		}
	}
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInternal, err, "render %s", format)
	}
	return data, nil
}

// writeOutput writes data to path, or to stdout when path is empty.
func writeOutput(stdout io.Writer, path string, data []byte) error {
	if path == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", path)
	}
	printSuccess(stdout, "Wrote graph")
	printFile(stdout, path)
	return nil
}
