package cache

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// TTLs per content type
const (
	TTLPost     = 5 * time.Minute // single post (changes only on admin save)
	TTLPosts    = 1 * time.Minute // post list
	TTLProjects = 5 * time.Minute // project list
	TTLDefault  = 1 * time.Minute
)

// Cache key prefixes
const (
	PrefixPost  = "post:"
	KeyPosts    = "posts:all"
	KeyProjects = "projects:all"
)

// Service is the cache facade used by the public read surface.
// All methods are safe to call with no Redis connection configured.
type Service interface {
	Get(ctx context.Context, key string, dest interface{}) error
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	Delete(ctx context.Context, keys ...string) error

	GetPost(ctx context.Context, slug string, dest interface{}) error
	SetPost(ctx context.Context, slug string, data interface{}) error
	GetPosts(ctx context.Context, dest interface{}) error
	SetPosts(ctx context.Context, data interface{}) error
	InvalidatePosts(ctx context.Context, slugs ...string) error

	GetProjects(ctx context.Context, dest interface{}) error
	SetProjects(ctx context.Context, data interface{}) error
	InvalidateProjects(ctx context.Context) error

	IsAvailable() bool
	Ping(ctx context.Context) error
}

type redisCache struct {
	client *redis.Client
}

// NewService creates a cache service. client may be nil; every
// operation then degrades to a no-op or cache miss.
func NewService(client *redis.Client) Service {
	return &redisCache{client: client}
}

func (c *redisCache) IsAvailable() bool {
	return c.client != nil
}

func (c *redisCache) Ping(ctx context.Context) error {
	if c.client == nil {
		return fmt.Errorf("redis client is nil")
	}
	return c.client.Ping(ctx).Err()
}

func (c *redisCache) Get(ctx context.Context, key string, dest interface{}) error {
	if c.client == nil {
		return redis.Nil
	}

	data, err := c.client.Get(ctx, key).Bytes()
	if err != nil {
		return err
	}

	return json.Unmarshal(data, dest)
}

func (c *redisCache) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	if c.client == nil {
		return nil
	}

	data, err := json.Marshal(value)
	if err != nil {
		return err
	}

	return c.client.Set(ctx, key, data, ttl).Err()
}

func (c *redisCache) Delete(ctx context.Context, keys ...string) error {
	if c.client == nil {
		return nil
	}
	return c.client.Del(ctx, keys...).Err()
}

func (c *redisCache) postKey(slug string) string {
	return PrefixPost + slug
}

func (c *redisCache) GetPost(ctx context.Context, slug string, dest interface{}) error {
	return c.Get(ctx, c.postKey(slug), dest)
}

func (c *redisCache) SetPost(ctx context.Context, slug string, data interface{}) error {
	return c.Set(ctx, c.postKey(slug), data, TTLPost)
}

func (c *redisCache) GetPosts(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, KeyPosts, dest)
}

func (c *redisCache) SetPosts(ctx context.Context, data interface{}) error {
	return c.Set(ctx, KeyPosts, data, TTLPosts)
}

// InvalidatePosts drops the post list plus any per-slug entries
func (c *redisCache) InvalidatePosts(ctx context.Context, slugs ...string) error {
	keys := make([]string, 0, len(slugs)+1)
	keys = append(keys, KeyPosts)
	for _, slug := range slugs {
		if slug != "" {
			keys = append(keys, c.postKey(slug))
		}
	}
	return c.Delete(ctx, keys...)
}

func (c *redisCache) GetProjects(ctx context.Context, dest interface{}) error {
	return c.Get(ctx, KeyProjects, dest)
}

func (c *redisCache) SetProjects(ctx context.Context, data interface{}) error {
	return c.Set(ctx, KeyProjects, data, TTLProjects)
}

func (c *redisCache) InvalidateProjects(ctx context.Context) error {
	return c.Delete(ctx, KeyProjects)
}
