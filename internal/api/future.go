package api

import (
	"context"
	"sync"
)

// Future is a one-shot container for the eventual result of an
// asynchronous call. It resolves exactly once, with either a value or an
// error, and delivers that single outcome to every waiter and every
// registered callback. Use Go to run a call on its own goroutine, Wait or
// Done to await it, and Then to register a completion callback.
type Future[T any] struct {
	done chan struct{}
	once sync.Once

	mu  sync.Mutex
	cbs []func(T, error)
	val T
	err error
}

// NewFuture returns an unresolved future.
func NewFuture[T any]() *Future[T] {
	return &Future[T]{done: make(chan struct{})}
}

// Go runs fn on its own goroutine and returns a future for its result.
func Go[T any](fn func() (T, error)) *Future[T] {
	f := NewFuture[T]()
	go func() {
		f.complete(fn())
	}()
	return f
}

// complete resolves the future. Only the first call has any effect.
func (f *Future[T]) complete(val T, err error) {
	f.once.Do(func() {
		f.mu.Lock()
		f.val, f.err = val, err
		close(f.done)
		cbs := f.cbs
		f.cbs = nil
		f.mu.Unlock()
		for _, cb := range cbs {
			cb(val, err)
		}
	})
}

// Wait blocks until the future resolves or the context is done. A context
// cancellation does not resolve the future; other waiters are unaffected.
func (f *Future[T]) Wait(ctx context.Context) (T, error) {
	select {
	case <-f.done:
		return f.val, f.err
	case <-ctx.Done():
		var zero T
		return zero, ctx.Err()
	}
}

// Done returns a channel closed when the future resolves.
func (f *Future[T]) Done() <-chan struct{} {
	return f.done
}

// Then registers cb to run with the single outcome. If the future is
// already resolved, cb runs immediately on the calling goroutine;
// otherwise it runs on the resolving goroutine. Each callback fires
// exactly once.
func (f *Future[T]) Then(cb func(T, error)) {
	f.mu.Lock()
	select {
	case <-f.done:
		val, err := f.val, f.err
		f.mu.Unlock()
		cb(val, err)
	default:
		f.cbs = append(f.cbs, cb)
		f.mu.Unlock()
	}
}
