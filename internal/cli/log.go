package cli

import (
	"context"
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/wordbridge/pkg/observability"
)

// newLogger creates a new logger with timestamp formatting.
// The logger writes to w and filters messages at the specified level.
// Timestamps are formatted as "HH:MM:SS.ms" (e.g., "14:32:01.45").
func newLogger(w io.Writer, level log.Level) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05.00",
		Level:           level,
	})
}

// progress tracks the start time of an operation and logs completion with elapsed duration.
// It is safe for sequential use by a single goroutine; concurrent calls to done will race.
type progress struct {
	logger *log.Logger
	start  time.Time
}

// newProgress creates a progress tracker that captures the current time as start.
func newProgress(l *log.Logger) *progress {
	return &progress{logger: l, start: time.Now()}
}

// done logs msg along with the elapsed time since progress was created.
// Example output: "Built graph: 11 vertices, 10 edges (3ms)"
func (p *progress) done(msg string) {
	p.logger.Infof("%s (%s)", msg, time.Since(p.start).Round(time.Millisecond))
}

type ctxKey int

const loggerKey ctxKey = 0

// withLogger returns a new context with the given logger attached.
func withLogger(ctx context.Context, l *log.Logger) context.Context {
	return context.WithValue(ctx, loggerKey, l)
}

// loggerFromContext retrieves the logger from ctx, or log.Default() when
// none is attached.
func loggerFromContext(ctx context.Context) *log.Logger {
	if l, ok := ctx.Value(loggerKey).(*log.Logger); ok {
		return l
	}
	return log.Default()
}

// =============================================================================
// Logging Hooks
// =============================================================================

// logHooks debug-logs poet and corpus events.
type logHooks struct {
	logger *log.Logger
}

func (h *logHooks) OnBuild(tokens, vertices, edges int, d time.Duration) {
	h.logger.Debug("Built affinity graph", "tokens", tokens, "vertices", vertices, "edges", edges, "duration", d)
}

func (h *logHooks) OnRender(words, bridges int, d time.Duration) {
	h.logger.Debug("Rendered", "words", words, "bridges", bridges, "duration", d)
}

func (h *logHooks) OnCorpusRead(path string, tokens int, d time.Duration, err error) {
	if err != nil {
		h.logger.Debug("Corpus read failed", "path", path, "err", err)
		return
	}
	h.logger.Debug("Read corpus", "path", path, "tokens", tokens, "duration", d)
}

// multiPoetHooks fans poet events out to several hooks.
type multiPoetHooks []observability.PoetHooks

func (m multiPoetHooks) OnBuild(tokens, vertices, edges int, d time.Duration) {
	for _, h := range m {
		h.OnBuild(tokens, vertices, edges, d)
	}
}

func (m multiPoetHooks) OnRender(words, bridges int, d time.Duration) {
	for _, h := range m {
		h.OnRender(words, bridges, d)
	}
}

var (
	_ observability.PoetHooks   = (*logHooks)(nil)
	_ observability.CorpusHooks = (*logHooks)(nil)
	_ observability.PoetHooks   = multiPoetHooks(nil)
)
