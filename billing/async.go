package billing

import (
	"context"
	"sync"
	"time"

	"encore.dev/rlog"
)

// runAsync is an indirection over safeAsync so tests can override
// asynchronous behavior and execute operations synchronously.
// Production code uses safeAsync (goroutine) by default.
var runAsync = safeAsync

// safeAsync runs a function in a goroutine with a timeout and structured error logging.
// It prevents silent failures of background operations (signals, invalidations, etc.).
func safeAsync(op string, fn func(ctx context.Context) error) {
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := fn(ctx); err != nil {
			rlog.Error("async operation failed", "op", op, "error", err)
		} else {
			rlog.Debug("async operation succeeded", "op", op)
		}
	}()
}

// In-process invalidation: callbacks registered here fire, with no arguments,
// after any successful state change, signaling that a re-fetch is needed.
var (
	onMutateMu    sync.Mutex
	onMutateHooks []func()
)

// RegisterOnMutate registers an invalidation callback.
func RegisterOnMutate(fn func()) {
	onMutateMu.Lock()
	defer onMutateMu.Unlock()
	onMutateHooks = append(onMutateHooks, fn)
}

// notifyMutated fans the invalidation out to all registered callbacks.
func notifyMutated() {
	onMutateMu.Lock()
	hooks := make([]func(), len(onMutateHooks))
	copy(hooks, onMutateHooks)
	onMutateMu.Unlock()

	for _, hook := range hooks {
		hook := hook
		runAsync("invalidate", func(ctx context.Context) error {
			hook()
			return nil
		})
	}
}
