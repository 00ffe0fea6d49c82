// Package analytics projects the activity stream into per-entity counters.
package analytics

import (
	"context"
	"fmt"
	"strconv"
	"sync"

	"communityHub/internal/activity"

	"github.com/redis/go-redis/v9"
)

type Counters interface {
	Incr(ctx context.Context, key, field string) error
	All(ctx context.Context, key string) (map[string]int64, error)
}

func Key(subject, id string) string {
	return "stats:" + subject + ":" + id
}

type Projector struct {
	counters Counters
}

func NewProjector(counters Counters) *Projector {
	return &Projector{counters: counters}
}

// Handle counts one occurrence of a.Kind for its subject.
func (p *Projector) Handle(ctx context.Context, a activity.Activity) error {
	if a.Subject == "" || a.SubjectID == "" {
		return nil
	}
	return p.counters.Incr(ctx, Key(a.Subject, a.SubjectID), string(a.Kind))
}

func (p *Projector) Stats(ctx context.Context, subject, id string) (map[string]int64, error) {
	return p.counters.All(ctx, Key(subject, id))
}

type RedisCounters struct {
	client *redis.Client
}

func NewRedisCounters(client *redis.Client) *RedisCounters {
	return &RedisCounters{client: client}
}

func (c *RedisCounters) Incr(ctx context.Context, key, field string) error {
	const op = "analytics.RedisCounters.Incr"

	if err := c.client.HIncrBy(ctx, key, field, 1).Err(); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (c *RedisCounters) All(ctx context.Context, key string) (map[string]int64, error) {
	const op = "analytics.RedisCounters.All"

	raw, err := c.client.HGetAll(ctx, key).Result()
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	out := make(map[string]int64, len(raw))
	for field, v := range raw {
		n, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return nil, fmt.Errorf("%s: field %s: %w", op, field, err)
		}
		out[field] = n
	}

	return out, nil
}

type MemoryCounters struct {
	mu sync.Mutex
	m  map[string]map[string]int64
}

func NewMemoryCounters() *MemoryCounters {
	return &MemoryCounters{m: make(map[string]map[string]int64)}
}

func (c *MemoryCounters) Incr(_ context.Context, key, field string) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	h, ok := c.m[key]
	if !ok {
		h = make(map[string]int64)
		c.m[key] = h
	}
	h[field]++
	return nil
}

func (c *MemoryCounters) All(_ context.Context, key string) (map[string]int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	out := make(map[string]int64, len(c.m[key]))
	for k, v := range c.m[key] {
		out[k] = v
	}
	return out, nil
}
