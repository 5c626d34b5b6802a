package upstream

import (
	"context"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// API is the slice of the backend the snapshot fetch needs. The concrete
// Client satisfies it; tests substitute fakes.
type API interface {
	Violations(ctx context.Context, filter reports.Filter) ([]reports.Violation, error)
	KPIs(ctx context.Context, filter reports.Filter) (reports.KPISummary, error)
}

// Snapshot is one consistent result of the joint violations+KPI fetch. The
// table, map and dashboard views all render from the same snapshot so they
// never show data from different filter states.
type Snapshot struct {
	Filter     reports.Filter      `json:"filter"`
	Violations []reports.Violation `json:"violations"`
	KPIs       reports.KPISummary  `json:"kpis"`
	Generation uint64              `json:"generation"`
	TakenAt    time.Time           `json:"takenAt"`
}

// Fetcher issues the violation and KPI fetches together and waits for both.
type Fetcher struct {
	api API
}

func NewFetcher(api API) *Fetcher {
	return &Fetcher{api: api}
}

// Fetch runs both requests concurrently. If either fails, the whole
// snapshot fails with that one error; a partial result is never returned.
func (f *Fetcher) Fetch(ctx context.Context, filter reports.Filter) (Snapshot, error) {
	var (
		violations []reports.Violation
		summary    reports.KPISummary
	)

	g, ctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		violations, err = f.api.Violations(ctx, filter)
		return err
	})
	g.Go(func() error {
		var err error
		summary, err = f.api.KPIs(ctx, filter)
		return err
	})
	if err := g.Wait(); err != nil {
		return Snapshot{}, err
	}

	return Snapshot{
		Filter:     filter,
		Violations: violations,
		KPIs:       summary,
		TakenAt:    time.Now().UTC(),
	}, nil
}
