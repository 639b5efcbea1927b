package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordbridge/internal/server"
)

// serveCommand creates the serve command for exposing a poet over HTTP.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		corpora []string
		addr    string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Serve poems over HTTP",
		Long: `Serve poems over HTTP.

Builds the affinity graph once and answers requests until interrupted:

  POST /render   {"input": "Test the system."}
  GET  /bridge   ?prev=test&cur=the
  GET  /stats
  GET  /healthz`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if !cmd.Flags().Changed("addr") && c.config.Serve.Addr != "" {
				addr = c.config.Serve.Addr
			}
			p, err := c.loadPoet(cmd.Context(), corpora)
			if err != nil {
				return err
			}
			return server.New(p, c.Logger, c.counters).Serve(cmd.Context(), addr)
		},
	}

	addCorpusFlag(cmd, &corpora)
	cmd.Flags().StringVar(&addr, "addr", defaultAddr, "listen address")
	return cmd
}
