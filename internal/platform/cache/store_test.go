package cache

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestStore_GetOrLoad_UsesSingleFlight(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	release := make(chan struct{})

	loader := func(context.Context) (any, error) {
		calls.Add(1)
		<-release
		return "value", nil
	}

	const workers = 16
	var started sync.WaitGroup
	var done sync.WaitGroup
	started.Add(workers)
	done.Add(workers)
	results := make(chan any, workers)

	for i := 0; i < workers; i++ {
		go func() {
			defer done.Done()
			started.Done()
			v, err := store.GetOrLoad(context.Background(), "same-key", loader)
			if err != nil {
				results <- err
				return
			}
			results <- v
		}()
	}

	started.Wait()
	time.Sleep(20 * time.Millisecond)
	close(release)
	done.Wait()
	close(results)

	for v := range results {
		if v != "value" {
			t.Fatalf("unexpected result: %v", v)
		}
	}
	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
}

func TestStore_GetOrLoad_CachesAndCounts(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	var calls atomic.Int32
	loader := func(context.Context) (any, error) {
		calls.Add(1)
		return "cached", nil
	}

	for i := 0; i < 3; i++ {
		if _, err := store.GetOrLoad(context.Background(), "k", loader); err != nil {
			t.Fatalf("GetOrLoad #%d: %v", i, err)
		}
	}

	if got := calls.Load(); got != 1 {
		t.Fatalf("loader called %d times, want 1", got)
	}
	stats := store.Stats()
	if stats.Hits != 2 || stats.Misses != 1 || stats.Entries != 1 {
		t.Fatalf("unexpected stats: %+v", stats)
	}
}

func TestStore_GetOrLoad_DoesNotCacheErrors(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	boom := errors.New("boom")
	if _, err := store.GetOrLoad(context.Background(), "k", func(context.Context) (any, error) {
		return nil, boom
	}); !errors.Is(err, boom) {
		t.Fatalf("expected loader error, got %v", err)
	}
	if _, ok := store.Get(context.Background(), "k"); ok {
		t.Fatalf("errors must not be cached")
	}
}

func TestStore_InvalidationDuringLoadSkipsWriteBack(t *testing.T) {
	t.Parallel()

	store := NewStore(time.Minute)
	loading := make(chan struct{})
	release := make(chan struct{})

	go func() {
		<-loading
		store.Delete(context.Background(), "event:id:1")
		close(release)
	}()

	v, err := store.GetOrLoad(context.Background(), "event:id:1", func(context.Context) (any, error) {
		close(loading)
		<-release
		return "stale", nil
	})
	if err != nil || v != "stale" {
		t.Fatalf("unexpected load result: %v %v", v, err)
	}
	if _, ok := store.Get(context.Background(), "event:id:1"); ok {
		t.Fatalf("value loaded across an invalidation must not be cached")
	}
}

func TestStore_DeletePrefix(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(time.Minute)
	store.Set(ctx, "score:list:1:a", 1)
	store.Set(ctx, "score:list:1:b", 2)
	store.Set(ctx, "score:list:2:a", 3)

	store.DeletePrefix(ctx, "score:list:1:")

	if _, ok := store.Get(ctx, "score:list:1:a"); ok {
		t.Fatalf("expected prefix key removed")
	}
	if _, ok := store.Get(ctx, "score:list:2:a"); !ok {
		t.Fatalf("expected other key kept")
	}
}

func TestStore_ExpiresEntries(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	store := NewStore(10 * time.Millisecond)
	store.Set(ctx, "k", "v")
	time.Sleep(25 * time.Millisecond)
	if _, ok := store.Get(ctx, "k"); ok {
		t.Fatalf("expected entry to expire")
	}
}
