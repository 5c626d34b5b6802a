package options

import (
	"context"
	"encoding/json"
	"time"

	"github.com/go-redis/redis/v9"

	"github.com/codecraft26/aeroniva-console/internal/reports"
)

const redisKey = "aeroniva:filter-options"

// Redis is the shared store for multi-instance deployments; the TTL is
// enforced by redis key expiry.
type Redis struct {
	rdb *redis.Client
	ttl time.Duration
}

func NewRedis(opt *redis.Options, ttl time.Duration) *Redis {
	return &Redis{rdb: redis.NewClient(opt), ttl: ttl}
}

func (r *Redis) Get(ctx context.Context) (reports.FilterOptions, bool) {
	bs, err := r.rdb.Get(ctx, redisKey).Bytes()
	if err != nil {
		return reports.FilterOptions{}, false
	}
	var opts reports.FilterOptions
	if err := json.Unmarshal(bs, &opts); err != nil {
		return reports.FilterOptions{}, false
	}
	return opts, true
}

func (r *Redis) Put(ctx context.Context, opts reports.FilterOptions) {
	bs, err := json.Marshal(opts)
	if err != nil {
		return
	}
	r.rdb.Set(ctx, redisKey, bs, r.ttl)
}

func (r *Redis) Invalidate(ctx context.Context) {
	r.rdb.Del(ctx, redisKey)
}

// Close releases the redis connection.
func (r *Redis) Close() error {
	return r.rdb.Close()
}
