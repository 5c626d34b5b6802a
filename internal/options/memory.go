package options

import (
	"context"
	"sync"
	"time"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

// Memory is the in-process store, suitable for a single console instance.
type Memory struct {
	mu        sync.RWMutex
	opts      reports.FilterOptions
	storedAt  time.Time
	populated bool
	ttl       time.Duration
	now       func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{ttl: ttl, now: time.Now}
}

func (m *Memory) Get(_ context.Context) (reports.FilterOptions, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if !m.populated {
		return reports.FilterOptions{}, false
	}
	if m.ttl > 0 && m.now().Sub(m.storedAt) > m.ttl {
		return reports.FilterOptions{}, false
	}
	return m.opts, true
}

func (m *Memory) Put(_ context.Context, opts reports.FilterOptions) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.opts = opts
	m.storedAt = m.now()
	m.populated = true
}

func (m *Memory) Invalidate(_ context.Context) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.populated = false
	m.opts = reports.FilterOptions{}
}
