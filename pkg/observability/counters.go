package observability

import (
	"context"
	"sync/atomic"
	"time"
)

// Counters is an in-memory implementation of PoetHooks and HTTPHooks that
// counts events. The zero value is ready to use and safe for concurrent use.
type Counters struct {
	builds   atomic.Int64
	renders  atomic.Int64
	bridges  atomic.Int64
	requests atomic.Int64
	failures atomic.Int64
}

// Snapshot is a point-in-time copy of Counters.
type Snapshot struct {
	Builds   int64 `json:"builds"`
	Renders  int64 `json:"renders"`
	Bridges  int64 `json:"bridges"`
	Requests int64 `json:"requests"`
	Failures int64 `json:"failures"`
}

// OnBuild implements PoetHooks.
func (c *Counters) OnBuild(int, int, int, time.Duration) { c.builds.Add(1) }

// OnRender implements PoetHooks.
func (c *Counters) OnRender(_, bridges int, _ time.Duration) {
	c.renders.Add(1)
	c.bridges.Add(int64(bridges))
}

// OnRequest implements HTTPHooks. Responses with status >= 400 count as
// failures.
func (c *Counters) OnRequest(_ context.Context, _, _ string, statusCode int, _ time.Duration) {
	c.requests.Add(1)
	if statusCode >= 400 {
		c.failures.Add(1)
	}
}

// Snapshot returns the current counter values.
func (c *Counters) Snapshot() Snapshot {
	return Snapshot{
		Builds:   c.builds.Load(),
		Renders:  c.renders.Load(),
		Bridges:  c.bridges.Load(),
		Requests: c.requests.Load(),
		Failures: c.failures.Load(),
	}
}

var (
	_ PoetHooks = (*Counters)(nil)
	_ HTTPHooks = (*Counters)(nil)
)
