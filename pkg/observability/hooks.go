// Package observability provides hooks for logging and metrics.
//
// Instrumentation is optional: the pipeline and the HTTP server emit events
// through hook interfaces whose defaults do nothing. Applications register
// real implementations once at startup.
//
// # Architecture
//
//   - Hook interfaces per event category ([MazeHooks], [HTTPHooks])
//   - No-op defaults ([NoopMazeHooks], [NoopHTTPHooks])
//   - A global registry guarded by a mutex
//
// Libraries never register hooks themselves, so the maze packages stay free of
// logging and metrics dependencies.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    hooks := observability.NewLogHooks(logger)
//	    observability.SetMazeHooks(hooks)
//	    observability.SetHTTPHooks(hooks)
//	    // ... run application
//	}
//
// The pipeline emits events around each stage:
//
//	observability.Maze().OnGenerateStart(ctx, rows, columns, seed)
//	// ... carve ...
//	observability.Maze().OnGenerateComplete(ctx, passages, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Maze Hooks
// =============================================================================

// MazeHooks receives events from the generate → solve → render pipeline.
type MazeHooks interface {
	// Generate events
	OnGenerateStart(ctx context.Context, rows, columns int, seed uint64)
	OnGenerateComplete(ctx context.Context, passages int, duration time.Duration, err error)

	// Search events
	OnSearchStart(ctx context.Context, mode string)
	OnSearchComplete(ctx context.Context, mode string, visited, pathLen int, duration time.Duration, err error)

	// Render events
	OnRenderStart(ctx context.Context, formats []string)
	OnRenderComplete(ctx context.Context, formats []string, duration time.Duration, err error)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)

	// OnError records a request that failed with an error.
	OnError(ctx context.Context, method, path string, err error)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopMazeHooks is a no-op implementation of MazeHooks.
type NoopMazeHooks struct{}

func (NoopMazeHooks) OnGenerateStart(context.Context, int, int, uint64)              {}
func (NoopMazeHooks) OnGenerateComplete(context.Context, int, time.Duration, error) {}
func (NoopMazeHooks) OnSearchStart(context.Context, string)                          {}
func (NoopMazeHooks) OnSearchComplete(context.Context, string, int, int, time.Duration, error) {
}
func (NoopMazeHooks) OnRenderStart(context.Context, []string)                          {}
func (NoopMazeHooks) OnRenderComplete(context.Context, []string, time.Duration, error) {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}
func (NoopHTTPHooks) OnError(context.Context, string, string, error)                 {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	mazeHooks MazeHooks = NoopMazeHooks{}
	httpHooks HTTPHooks = NoopHTTPHooks{}
	hooksMu   sync.RWMutex
)

// SetMazeHooks registers custom pipeline hooks.
// This should be called once at application startup before any mazes are built.
func SetMazeHooks(h MazeHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		mazeHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before the server starts.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Maze returns the registered pipeline hooks.
func Maze() MazeHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return mazeHooks
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
	mazeHooks = NoopMazeHooks{}
	httpHooks = NoopHTTPHooks{}
}
