// Package cli implements the wordbridge command-line interface.
//
// wordbridge builds an affinity graph of word adjacencies from one or more
// text corpora and rewrites input sentences by inserting the best bridge word
// between adjacent words. The CLI is built using cobra and supports verbose
// logging via the charmbracelet/log library.
//
// # Commands
//
// The main commands are:
//   - poem: Render sentences from arguments or stdin
//   - bridge: Explain the bridge chosen between two words
//   - stats: Summarize the affinity graph
//   - visualize: Draw the affinity graph as DOT, SVG, PDF or PNG
//   - interactive: Render sentences in a terminal session
//   - serve: Expose the poet over HTTP
//
// # Configuration
//
// Defaults for every command are read from an optional TOML file at
// $XDG_CONFIG_HOME/wordbridge/config.toml (see [Config]). Flags always win.
package cli

import (
	"io"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/wordbridge/pkg/buildinfo"
	"github.com/matzehuels/wordbridge/pkg/observability"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "wordbridge"

	// defaultAddr is the listen address of the serve command.
	defaultAddr = ":8080"

	// defaultTop is the number of edges listed by the stats command.
	defaultTop = 10
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	config     *Config
	counters   *observability.Counters
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger:   newLogger(w, level),
		config:   &Config{},
		counters: &observability.Counters{},
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand creates the root cobra command with all subcommands registered.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:   appName,
		Short: "Wordbridge rewrites sentences with words learned from a corpus",
		Long: `Wordbridge learns which words follow which in a text corpus and rewrites
sentences by inserting, between every two adjacent words, the word that most
strongly links them.`,
		Version:           buildinfo.Version,
		SilenceUsage:      true,
		PersistentPreRunE: c.setup,
	}

	root.SetVersionTemplate(buildinfo.Template())
	root.PersistentFlags().StringVar(&c.configPath, "config", "", "config file (default $XDG_CONFIG_HOME/wordbridge/config.toml)")

	// Register all subcommands
	root.AddCommand(c.poemCommand())
	root.AddCommand(c.bridgeCommand())
	root.AddCommand(c.statsCommand())
	root.AddCommand(c.visualizeCommand())
	root.AddCommand(c.interactiveCommand())
	root.AddCommand(c.serveCommand())
	root.AddCommand(c.completionCommand())

	return root
}

// setup loads the config file and installs observability hooks. It runs
// before every subcommand, after main has applied --verbose.
func (c *CLI) setup(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(c.configPath)
	if err != nil {
		return err
	}
	c.config = cfg
	if cfg.Verbose {
		c.SetLogLevel(LogDebug)
	}

	observability.SetPoetHooks(c.poetHooks())
	observability.SetCorpusHooks(&logHooks{logger: c.Logger})
	observability.SetHTTPHooks(c.counters)

	cmd.SetContext(withLogger(cmd.Context(), c.Logger))
	return nil
}

// poetHooks returns the hooks the poet reports to: the shared counters, plus
// debug logging when enabled.
func (c *CLI) poetHooks() observability.PoetHooks {
	if c.Logger.GetLevel() > LogDebug {
		return c.counters
	}
	return multiPoetHooks{c.counters, &logHooks{logger: c.Logger}}
}
