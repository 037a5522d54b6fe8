// Package observability provides hooks for logging and metrics.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers register hooks at startup to
// receive events about drags, score recomputation and HTTP requests.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// Hooks are registered by main, never by the libraries that call them, so the
// core packages stay free of logging and metrics imports.
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetInteractionHooks(&myInteractionHooks{})
//	    observability.SetHTTPHooks(&myHTTPHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Interaction().OnDragStart(id, x, y)
//	// ... drag ...
//	observability.Interaction().OnDragEnd(id, fromX, fromY, toX, toY)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Interaction Hooks
// =============================================================================

// InteractionHooks receives events from drag sessions. Calls happen
// synchronously on the goroutine driving the session and must return quickly.
type InteractionHooks interface {
	// OnDragStart records a press that started a drag of itemID.
	OnDragStart(itemID string, x, y float64)

	// OnDragEnd records a release; from and to are the item's top-left
	// corner at press and release time.
	OnDragEnd(itemID string, fromX, fromY, toX, toY float64)

	// OnScore records a score recomputation.
	OnScore(score float64, items int, duration time.Duration)
}

// =============================================================================
// HTTP Hooks
// =============================================================================

// HTTPHooks receives events from the HTTP server.
type HTTPHooks interface {
	// OnRequest records an incoming HTTP request.
	OnRequest(ctx context.Context, method, path string)

	// OnResponse records a completed HTTP response.
	OnResponse(ctx context.Context, method, path string, statusCode int, duration time.Duration)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopInteractionHooks is a no-op implementation of InteractionHooks.
type NoopInteractionHooks struct{}

func (NoopInteractionHooks) OnDragStart(string, float64, float64)                 {}
func (NoopInteractionHooks) OnDragEnd(string, float64, float64, float64, float64) {}
func (NoopInteractionHooks) OnScore(float64, int, time.Duration)                  {}

// NoopHTTPHooks is a no-op implementation of HTTPHooks.
type NoopHTTPHooks struct{}

func (NoopHTTPHooks) OnRequest(context.Context, string, string)                      {}
func (NoopHTTPHooks) OnResponse(context.Context, string, string, int, time.Duration) {}

// =============================================================================
// Fan-out
// =============================================================================

// InteractionHooksList forwards each event to every hook in order.
type InteractionHooksList []InteractionHooks

func (l InteractionHooksList) OnDragStart(itemID string, x, y float64) {
	for _, h := range l {
		h.OnDragStart(itemID, x, y)
	}
}

func (l InteractionHooksList) OnDragEnd(itemID string, fromX, fromY, toX, toY float64) {
	for _, h := range l {
		h.OnDragEnd(itemID, fromX, fromY, toX, toY)
	}
}

func (l InteractionHooksList) OnScore(score float64, items int, d time.Duration) {
	for _, h := range l {
		h.OnScore(score, items, d)
	}
}

// HTTPHooksList forwards each event to every hook in order.
type HTTPHooksList []HTTPHooks

func (l HTTPHooksList) OnRequest(ctx context.Context, method, path string) {
	for _, h := range l {
		h.OnRequest(ctx, method, path)
	}
}

func (l HTTPHooksList) OnResponse(ctx context.Context, method, path string, status int, d time.Duration) {
	for _, h := range l {
		h.OnResponse(ctx, method, path, status, d)
	}
}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	interactionHooks InteractionHooks = NoopInteractionHooks{}
	httpHooks        HTTPHooks        = NoopHTTPHooks{}
	hooksMu          sync.RWMutex
)

// SetInteractionHooks registers custom interaction hooks.
// This should be called once at application startup before any drags.
func SetInteractionHooks(h InteractionHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		interactionHooks = h
	}
}

// SetHTTPHooks registers custom HTTP hooks.
// This should be called once at application startup before serving.
func SetHTTPHooks(h HTTPHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		httpHooks = h
	}
}

// Interaction returns the registered interaction hooks.
func Interaction() InteractionHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return interactionHooks
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
	interactionHooks = NoopInteractionHooks{}
	httpHooks = NoopHTTPHooks{}
}
