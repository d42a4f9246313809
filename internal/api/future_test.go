package api

import (
	"context"
	"errors"
	"sync/atomic"
	"testing"
	"time"
)

func TestFutureResolvesOnce(t *testing.T) {
	f := NewFuture[int]()
	f.complete(42, nil)
	f.complete(99, errors.New("ignored")) // second resolution is a no-op

	got, err := f.Wait(context.Background())
	if err != nil || got != 42 {
		t.Errorf("Wait() = %d, %v, want 42, nil", got, err)
	}
	// Repeated waits observe the same outcome.
	got, err = f.Wait(context.Background())
	if err != nil || got != 42 {
		t.Errorf("second Wait() = %d, %v, want 42, nil", got, err)
	}
}

func TestFutureGo(t *testing.T) {
	f := Go(func() (string, error) {
		return "done", nil
	})
	got, err := f.Wait(context.Background())
	if err != nil || got != "done" {
		t.Errorf("Wait() = %q, %v", got, err)
	}
}

func TestFutureRejection(t *testing.T) {
	boom := errors.New("boom")
	f := Go(func() (int, error) {
		return 0, boom
	})
	if _, err := f.Wait(context.Background()); !errors.Is(err, boom) {
		t.Errorf("Wait() err = %v, want boom", err)
	}
}

func TestFutureThen(t *testing.T) {
	var fired atomic.Int64
	f := NewFuture[int]()

	// Registered before resolution.
	done := make(chan struct{})
	f.Then(func(v int, err error) {
		if v != 7 || err != nil {
			t.Errorf("callback got %d, %v", v, err)
		}
		fired.Add(1)
		close(done)
	})

	f.complete(7, nil)
	<-done

	// Registered after resolution fires immediately.
	f.Then(func(v int, err error) {
		if v != 7 {
			t.Errorf("late callback got %d", v)
		}
		fired.Add(1)
	})

	if n := fired.Load(); n != 2 {
		t.Errorf("callbacks fired %d times, want 2", n)
	}
}

func TestFutureWaitContextCancel(t *testing.T) {
	f := NewFuture[int]()
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	if _, err := f.Wait(ctx); !errors.Is(err, context.Canceled) {
		t.Errorf("Wait() err = %v, want context.Canceled", err)
	}

	// The future itself is untouched by the cancelled wait.
	select {
	case <-f.Done():
		t.Error("cancelled Wait resolved the future")
	case <-time.After(10 * time.Millisecond):
	}
}
