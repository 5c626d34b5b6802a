package options

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

func sampleOptions() reports.FilterOptions {
	return reports.FilterOptions{
		DroneIDs: []string{"D1", "D2"},
		Dates:    []string{"2025-07-10", "2025-07-11"},
		Types:    []string{"Fire Detected", "No PPE Kit"},
	}
}

func TestCacheFetchesOnceUntilInvalidated(t *testing.T) {
	calls := 0
	cache := NewCache(NewMemory(time.Minute), func(ctx context.Context) (reports.FilterOptions, error) {
		calls++
		return sampleOptions(), nil
	})
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		opts, err := cache.Options(ctx)
		if err != nil {
			t.Fatalf("Options failed: %v", err)
		}
		if len(opts.DroneIDs) != 2 {
			t.Errorf("unexpected options: %+v", opts)
		}
	}
	if calls != 1 {
		t.Errorf("backend fetched %d times, want 1", calls)
	}

	cache.Invalidate(ctx)
	if _, err := cache.Options(ctx); err != nil {
		t.Fatalf("Options after invalidate failed: %v", err)
	}
	if calls != 2 {
		t.Errorf("backend fetched %d times after invalidate, want 2", calls)
	}
}

func TestCachePropagatesFetchError(t *testing.T) {
	wantErr := errors.New("backend down")
	cache := NewCache(NewMemory(time.Minute), func(ctx context.Context) (reports.FilterOptions, error) {
		return reports.FilterOptions{}, wantErr
	})
	if _, err := cache.Options(context.Background()); !errors.Is(err, wantErr) {
		t.Errorf("error = %v, want %v", err, wantErr)
	}
}

func TestMemoryTTLExpiry(t *testing.T) {
	now := time.Now()
	store := NewMemory(time.Minute)
	store.now = func() time.Time { return now }

	store.Put(context.Background(), sampleOptions())
	if _, ok := store.Get(context.Background()); !ok {
		t.Fatal("fresh value missing")
	}

	now = now.Add(2 * time.Minute)
	if _, ok := store.Get(context.Background()); ok {
		t.Error("expired value still served")
	}
}

func TestMemoryInvalidate(t *testing.T) {
	store := NewMemory(0)
	store.Put(context.Background(), sampleOptions())
	store.Invalidate(context.Background())
	if _, ok := store.Get(context.Background()); ok {
		t.Error("invalidated value still served")
	}
}
