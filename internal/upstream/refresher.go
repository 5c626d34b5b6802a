package upstream

import (
	"context"
	"errors"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// ErrStale marks a snapshot that finished after a newer request for a
// different filter state had already started. Its result is discarded so it
// can never overwrite newer data.
var ErrStale = errors.New("stale snapshot discarded")

// Refresher owns the filter state and the published snapshot. The filter is
// only ever changed through UpdateFilter/ClearFilter, and every change bumps
// a generation counter; whichever fetch carries the latest generation wins.
type Refresher struct {
	fetcher *Fetcher
	logger  *slog.Logger
	publish func(Snapshot)

	mu      sync.Mutex
	gen     uint64
	filter  reports.Filter
	current *Snapshot
	pending *time.Timer
}

// NewRefresher wires the joint fetcher to a publish hook invoked with every
// newly installed snapshot. publish may be nil.
func NewRefresher(fetcher *Fetcher, logger *slog.Logger, publish func(Snapshot)) *Refresher {
	return &Refresher{fetcher: fetcher, logger: logger, publish: publish}
}

// Filter returns the active filter state.
func (r *Refresher) Filter() reports.Filter {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.filter
}

// Current returns the latest published snapshot, if any exists yet. A
// failed refresh leaves the previous snapshot in place, so views keep
// rendering the last good data.
func (r *Refresher) Current() (Snapshot, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.current == nil {
		return Snapshot{}, false
	}
	return *r.current, true
}

// UpdateFilter merges the patch into the filter state and refreshes under a
// new generation.
func (r *Refresher) UpdateFilter(ctx context.Context, patch reports.FilterPatch) (Snapshot, error) {
	r.mu.Lock()
	r.filter = r.filter.Merge(patch)
	filter := r.filter
	gen := r.nextGenLocked()
	r.mu.Unlock()
	return r.refresh(ctx, filter, gen)
}

// ClearFilter resets every dimension and refreshes.
func (r *Refresher) ClearFilter(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	r.filter = reports.Filter{}
	gen := r.nextGenLocked()
	r.mu.Unlock()
	return r.refresh(ctx, reports.Filter{}, gen)
}

// Refresh re-fetches under the current filter state.
func (r *Refresher) Refresh(ctx context.Context) (Snapshot, error) {
	r.mu.Lock()
	filter := r.filter
	gen := r.nextGenLocked()
	r.mu.Unlock()
	return r.refresh(ctx, filter, gen)
}

// ScheduleRefresh arms a one-shot refresh after delay, replacing any timer
// already pending. Used for the post-upload countdown.
func (r *Refresher) ScheduleRefresh(delay time.Duration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.pending != nil {
		r.pending.Stop()
	}
	r.pending = time.AfterFunc(delay, func() {
		if _, err := r.Refresh(context.Background()); err != nil && !errors.Is(err, ErrStale) {
			r.logger.Error("scheduled refresh failed", slog.String("error", err.Error()))
		}
	})
}

// nextGenLocked bumps the generation and cancels any pending scheduled
// refresh; an explicit refresh supersedes the countdown.
func (r *Refresher) nextGenLocked() uint64 {
	if r.pending != nil {
		r.pending.Stop()
		r.pending = nil
	}
	r.gen++
	return r.gen
}

func (r *Refresher) refresh(ctx context.Context, filter reports.Filter, gen uint64) (Snapshot, error) {
	refreshID := uuid.NewString()
	r.logger.Info("refreshing snapshot",
		slog.String("refresh_id", refreshID),
		slog.Uint64("generation", gen),
		slog.String("drone_id", filter.DroneID),
		slog.String("date", filter.Date),
		slog.String("type", filter.Type))

	snap, err := r.fetcher.Fetch(ctx, filter)
	if err != nil {
		r.logger.Error("snapshot fetch failed",
			slog.String("refresh_id", refreshID),
			slog.String("error", err.Error()))
		return Snapshot{}, err
	}
	snap.Generation = gen

	r.mu.Lock()
	if gen != r.gen {
		r.mu.Unlock()
		r.logger.Info("discarding stale snapshot",
			slog.String("refresh_id", refreshID),
			slog.Uint64("generation", gen))
		return Snapshot{}, ErrStale
	}
	r.current = &snap
	r.mu.Unlock()

	if r.publish != nil {
		r.publish(snap)
	}
	return snap, nil
}
