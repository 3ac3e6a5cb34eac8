// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard
// dependencies on specific observability backends. Consumers register hooks
// at startup to receive events about layout mutations and server requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, not by libraries, which keeps the layout
// engine free of observability imports and avoids import cycles.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    // ... run application
//	}
//
// Surfaces call hooks to emit events:
//
//	start := time.Now()
//	err := tree.Split(formID, destID, dir)
//	observability.Layout().OnSplit(ctx, formID, destID, time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// LayoutHooks receives events from layout mutations.
type LayoutHooks interface {
	// OnSplit records a split operation.
	OnSplit(ctx context.Context, formID, destinationID string, duration time.Duration, err error)

	// OnStack records a stack operation.
	OnStack(ctx context.Context, formID, destinationID string, duration time.Duration, err error)

	// OnReclaim records a completed reclamation: how many panels remain
	// after collapsing emptied regions.
	OnReclaim(ctx context.Context, panels int)
}

// ServerHooks receives events from the HTTP server.
type ServerHooks interface {
	// OnRequest records an incoming request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed request.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnSplit(context.Context, string, string, time.Duration, error) {}
func (NoopLayoutHooks) OnStack(context.Context, string, string, time.Duration, error) {}
func (NoopLayoutHooks) OnReclaim(context.Context, int)                                {}

// NoopServerHooks is a no-op implementation of ServerHooks.
type NoopServerHooks struct{}

func (NoopServerHooks) OnRequest(context.Context, string, string)                      {}
func (NoopServerHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	serverHooks ServerHooks = NoopServerHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any mutations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetServerHooks registers custom server hooks.
// This should be called once at application startup before serving.
func SetServerHooks(h ServerHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		serverHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Server returns the registered server hooks.
func Server() ServerHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return serverHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	serverHooks = NoopServerHooks{}
}
