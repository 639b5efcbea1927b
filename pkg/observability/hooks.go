// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about corpus loading, poet construction,
// rendering and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main (or the CLI), never by libraries, so the core
// packages stay free of logging and metrics frameworks.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    counters := &observability.Counters{}
//	    observability.SetPoetHooks(counters)
//	    observability.SetHTTPHooks(counters)
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	start := time.Now()
//	// ... build the affinity graph ...
//	observability.Poet().OnBuild(tokens, vertices, edges, time.Since(start))
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Poet Hooks
// =============================================================================

// PoetHooks receives events from affinity graph construction and rendering.
// The poet performs no I/O and takes no context, so these hooks do not
// either. Implementations must be safe for concurrent use because a ready
// poet may serve many renders at once.
type PoetHooks interface {
	// OnBuild records a finished graph construction.
	OnBuild(tokens, vertices, edges int, duration time.Duration)

	// OnRender records a finished render of an input with the given number of
	// words, of which bridges gaps received a bridge word.
	OnRender(words, bridges int, duration time.Duration)
}

// =============================================================================
// Corpus Hooks
// =============================================================================

// CorpusHooks receives events from corpus loading.
type CorpusHooks interface {
	// OnCorpusRead records a corpus file read. err is nil on success.
	OnCorpusRead(path string, tokens int, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records a served HTTP request.
	OnRequest(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopPoetHooks is a no-op implementation of PoetHooks.
type NoopPoetHooks struct{}

func (NoopPoetHooks) OnBuild(int, int, int, time.Duration) {}
func (NoopPoetHooks) OnRender(int, int, time.Duration)     {}

// NoopCorpusHooks is a no-op implementation of CorpusHooks.
type NoopCorpusHooks struct{}

func (NoopCorpusHooks) OnCorpusRead(string, int, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	poetHooks   PoetHooks   = NoopPoetHooks{}
	corpusHooks CorpusHooks = NoopCorpusHooks{}
	httpHooks   HTTPHooks   = NoopHTTPHooks{}
	hooksMu     sync.RWMutex
)

// SetPoetHooks registers custom poet hooks.
// This should be called once at application startup before any poet is built.
func SetPoetHooks(h PoetHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		poetHooks = h
	}
}

// SetCorpusHooks registers custom corpus hooks.
func SetCorpusHooks(h CorpusHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		corpusHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving requests.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Poet returns the registered poet hooks.
func Poet() PoetHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return poetHooks
}

// Corpus returns the registered corpus hooks.
func Corpus() CorpusHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return corpusHooks
}

// HTTP returns the registered HTTP hooks.
func HTTP() HTTPHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return httpHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	poetHooks = NoopPoetHooks{}
	corpusHooks = NoopCorpusHooks{}
	httpHooks = NoopHTTPHooks{}
}
