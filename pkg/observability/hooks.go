// Package observability provides hooks for metrics, tracing, and logging.
//
// This package enables optional instrumentation without adding hard dependencies
// on specific observability backends. Consumers can register hooks at startup
// to receive events about layout computations, snapshot fetches, and store
// operations.
//
// # Architecture
//
// The package uses a simple hooks pattern:
//   - Define hook interfaces for different event categories
//   - Provide no-op default implementations
//   - Allow registration of custom implementations at startup
//
// This approach:
//   - Avoids import cycles (hooks are registered by main, not by libraries)
//   - Keeps the core library dependency-free from observability frameworks
//   - Allows different backends (OpenTelemetry, Prometheus, DataDog, etc.)
//
// # Usage
//
// Register hooks at application startup:
//
//	func main() {
//	    observability.SetLayoutHooks(&myLayoutHooks{})
//	    observability.SetStoreHooks(&myStoreHooks{})
//	    // ... run application
//	}
//
// Libraries call hooks to emit events:
//
//	observability.Layout().OnComputeStart(ctx, runID, componentCount)
//	// ... compute layout ...
//	observability.Layout().OnComputeComplete(ctx, runID, duration, err)
package observability

import (
	"context"
	"sync"
	"time"
)

// =============================================================================
// Layout Hooks
// =============================================================================

// LayoutHooks receives events from layout computations.
type LayoutHooks interface {
	// OnComputeStart records the beginning of a computation run.
	OnComputeStart(ctx context.Context, runID string, componentCount int)

	// OnComputeComplete records the end of a computation run.
	OnComputeComplete(ctx context.Context, runID string, duration time.Duration, err error)
}

// =============================================================================
// Fetch Hooks
// =============================================================================

// FetchHooks receives events from snapshot fetches against clients.
type FetchHooks interface {
	// OnFetchStart records an outgoing snapshot fetch.
	OnFetchStart(ctx context.Context, endpoint string)

	// OnFetchComplete records the fetch result, including the attempt count
	// when retries happened.
	OnFetchComplete(ctx context.Context, endpoint string, attempts int, duration time.Duration, err error)
}

// =============================================================================
// Store Hooks
// =============================================================================

// StoreHooks receives events from snapshot store operations.
type StoreHooks interface {
	// OnStoreHit records a replay served from the store.
	OnStoreHit(ctx context.Context, key string)

	// OnStoreMiss records a lookup that found no entry.
	OnStoreMiss(ctx context.Context, key string)

	// OnStoreSave records a snapshot write.
	OnStoreSave(ctx context.Context, key string, records int)
}

// =============================================================================
// No-op Implementations
// =============================================================================

// NoopLayoutHooks is a no-op implementation of LayoutHooks.
type NoopLayoutHooks struct{}

func (NoopLayoutHooks) OnComputeStart(context.Context, string, int)                     {}
func (NoopLayoutHooks) OnComputeComplete(context.Context, string, time.Duration, error) {}

// NoopFetchHooks is a no-op implementation of FetchHooks.
type NoopFetchHooks struct{}

func (NoopFetchHooks) OnFetchStart(context.Context, string)                               {}
func (NoopFetchHooks) OnFetchComplete(context.Context, string, int, time.Duration, error) {}

// NoopStoreHooks is a no-op implementation of StoreHooks.
type NoopStoreHooks struct{}

func (NoopStoreHooks) OnStoreHit(context.Context, string)       {}
func (NoopStoreHooks) OnStoreMiss(context.Context, string)      {}
func (NoopStoreHooks) OnStoreSave(context.Context, string, int) {}

// =============================================================================
// Global Hook Registry
// =============================================================================

var (
	layoutHooks LayoutHooks = NoopLayoutHooks{}
	fetchHooks  FetchHooks  = NoopFetchHooks{}
	storeHooks  StoreHooks  = NoopStoreHooks{}
	hooksMu     sync.RWMutex
)

// SetLayoutHooks registers custom layout hooks.
// This should be called once at application startup before any computations.
func SetLayoutHooks(h LayoutHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		layoutHooks = h
	}
}

// SetFetchHooks registers custom fetch hooks.
// This should be called once at application startup before any fetches.
func SetFetchHooks(h FetchHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		fetchHooks = h
	}
}

// SetStoreHooks registers custom store hooks.
// This should be called once at application startup before any store operations.
func SetStoreHooks(h StoreHooks) {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	if h != nil {
		storeHooks = h
	}
}

// Layout returns the registered layout hooks.
func Layout() LayoutHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return layoutHooks
}

// Fetch returns the registered fetch hooks.
func Fetch() FetchHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return fetchHooks
}

// Store returns the registered store hooks.
func Store() StoreHooks {
	hooksMu.RLock()
	defer hooksMu.RUnlock()
	return storeHooks
}

// Reset restores all hooks to their no-op defaults.
// This is primarily useful for testing.
func Reset() {
	hooksMu.Lock()
	defer hooksMu.Unlock()
	layoutHooks = NoopLayoutHooks{}
	fetchHooks = NoopFetchHooks{}
	storeHooks = NoopStoreHooks{}
}
