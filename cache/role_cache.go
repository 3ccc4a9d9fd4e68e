package cache

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
)

const (
	roleKeyPrefix     = "xpsc:role:"
	roleGenerationKey = roleKeyPrefix + "gen"
)

// RoleEntry is a cached flag and the generation it was looked up under.
type RoleEntry struct {
	IsAdmin    bool
	Found      bool
	Generation int64
}

// RoleCache remembers whether an email belongs to an administrator.
//
// Entries live inside a generation. Flush starts a new one, and Store only
// writes into the generation the caller observed in Lookup, so a flag read
// from the store before a flush is never served after it.
type RoleCache interface {
	// Lookup reports the cached flag; Found is false on a miss.
	Lookup(ctx context.Context, email string) (RoleEntry, error)
	// Store records the flag under the generation returned by Lookup.
	Store(ctx context.Context, email string, generation int64, isAdmin bool) error
	// Flush invalidates every cached entry.
	Flush(ctx context.Context) error
}

type redisRoleCache struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisRoleCache(client *redis.Client, ttl time.Duration) RoleCache {
	return &redisRoleCache{client: client, ttl: ttl}
}

// NewRedisClient parses a redis:// URL and verifies the connection.
func NewRedisClient(ctx context.Context, rawURL string, timeout time.Duration) (*redis.Client, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("invalid redis url: %w", err)
	}
	client := redis.NewClient(opts)

	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("redis ping failed: %w", err)
	}
	return client, nil
}

func roleKey(generation int64, email string) string {
	return roleKeyPrefix + strconv.FormatInt(generation, 10) + ":" + email
}

func (c *redisRoleCache) generation(ctx context.Context) (int64, error) {
	gen, err := c.client.Get(ctx, roleGenerationKey).Int64()
	if errors.Is(err, redis.Nil) {
		return 0, nil
	}
	if err != nil {
		return 0, fmt.Errorf("role cache generation: %w", err)
	}
	return gen, nil
}

func (c *redisRoleCache) Lookup(ctx context.Context, email string) (RoleEntry, error) {
	gen, err := c.generation(ctx)
	if err != nil {
		return RoleEntry{}, err
	}
	entry := RoleEntry{Generation: gen}

	value, err := c.client.Get(ctx, roleKey(gen, email)).Result()
	if errors.Is(err, redis.Nil) {
		return entry, nil
	}
	if err != nil {
		return RoleEntry{}, fmt.Errorf("role cache lookup: %w", err)
	}
	entry.Found = true
	entry.IsAdmin = value == "1"
	return entry, nil
}

// Store writes under the given generation. After a flush that key is no
// longer read and simply expires.
func (c *redisRoleCache) Store(ctx context.Context, email string, generation int64, isAdmin bool) error {
	value := "0"
	if isAdmin {
		value = "1"
	}
	if err := c.client.Set(ctx, roleKey(generation, email), value, c.ttl).Err(); err != nil {
		return fmt.Errorf("role cache store: %w", err)
	}
	return nil
}

func (c *redisRoleCache) Flush(ctx context.Context) error {
	if err := c.client.Incr(ctx, roleGenerationKey).Err(); err != nil {
		return fmt.Errorf("role cache flush: %w", err)
	}
	return nil
}

type nopRoleCache struct{}

// NewNopRoleCache is used when Redis is not configured; every lookup misses.
func NewNopRoleCache() RoleCache {
	return nopRoleCache{}
}

func (nopRoleCache) Lookup(context.Context, string) (RoleEntry, error) {
	return RoleEntry{}, nil
}

func (nopRoleCache) Store(context.Context, string, int64, bool) error {
	return nil
}

func (nopRoleCache) Flush(context.Context) error {
	return nil
}
