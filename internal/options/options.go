// Package options caches the backend's filter options. Every view needs
// the same droneIds/dates/types lists, so one shared cache serves them all
// instead of each view re-fetching; the cache expires on a TTL and can be
// invalidated explicitly after uploads.
package options

import (
	"context"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Store holds one cached FilterOptions value.
type Store interface {
	Get(ctx context.Context) (reports.FilterOptions, bool)
	Put(ctx context.Context, opts reports.FilterOptions)
	Invalidate(ctx context.Context)
}

// FetchFunc loads fresh options from the backend.
type FetchFunc func(ctx context.Context) (reports.FilterOptions, error)

// Cache answers option lookups from the store, falling back to one backend
// fetch on miss.
type Cache struct {
	store Store
	fetch FetchFunc
}

func NewCache(store Store, fetch FetchFunc) *Cache {
	return &Cache{store: store, fetch: fetch}
}

// Options returns the cached value, or fetches and caches a fresh one.
func (c *Cache) Options(ctx context.Context) (reports.FilterOptions, error) {
	if opts, ok := c.store.Get(ctx); ok {
		return opts, nil
	}
	opts, err := c.fetch(ctx)
	if err != nil {
		return reports.FilterOptions{}, err
	}
	c.store.Put(ctx, opts)
	return opts, nil
}

// Invalidate drops the cached value so the next lookup refetches. Called
// after report uploads, which can introduce new drones, dates and types.
func (c *Cache) Invalidate(ctx context.Context) {
	c.store.Invalidate(ctx)
}
