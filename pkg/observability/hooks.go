// Package observability provides hooks around curve generation.
//
// The generator itself is a pure function and emits nothing; callers (the
// CLI, or an embedding application) invoke hooks around it. Registering a
// custom implementation at startup is optional — the default is a no-op —
// so the library carries no dependency on any metrics backend:
//
//	func main() {
//	    observability.SetGeneratorHooks(&myHooks{})
//	    // ... run application
//	}
//
//	observability.Generator().OnGenerateStart(ctx, len(edges))
//	curves, err := curve.Generate(edges, pos, opts)
//	observability.Generator().OnGenerateComplete(ctx, len(edges), time.Since(start), err)
package observability

import (
	"context"
	"sync"
	"time"
)

// GeneratorHooks receives events around curve generation calls.
type GeneratorHooks interface {
	// OnGenerateStart records the beginning of a generation call.
	OnGenerateStart(ctx context.Context, edgeCount int)

	// OnGenerateComplete records the end of a generation call, including
	// validation failures.
	OnGenerateComplete(ctx context.Context, edgeCount int, duration time.Duration, err error)
}

// NoopGeneratorHooks is a no-op implementation of GeneratorHooks.
type NoopGeneratorHooks struct{}

func (NoopGeneratorHooks) OnGenerateStart(context.Context, int) {}

func (NoopGeneratorHooks) OnGenerateComplete(context.Context, int, time.Duration, error) {}

var (
	mu        sync.RWMutex
	generator GeneratorHooks = NoopGeneratorHooks{}
)

// SetGeneratorHooks registers the hooks implementation. Passing nil restores
// the no-op default. Intended to be called once at startup.
func SetGeneratorHooks(h GeneratorHooks) {
	mu.Lock()
	defer mu.Unlock()
	if h == nil {
		generator = NoopGeneratorHooks{}
		return
	}
	generator = h
}

// Generator returns the registered hooks implementation.
func Generator() GeneratorHooks {
	mu.RLock()
	defer mu.RUnlock()
	return generator
}
