package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/redis/go-redis/v9"
)

const defaultRedisKey = "dayclaw:users"

// RedisBackend stores the same JSON document under a single key, for
// deployments where the process has no stable disk.
type RedisBackend struct {
	client *redis.Client
	key    string
}

// NewRedisBackend connects using a redis URL (redis://[:pass@]host:port/db).
func NewRedisBackend(url, key string) (*RedisBackend, error) {
	opts, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("parse redis url: %w", err)
	}
	if key == "" {
		key = defaultRedisKey
	}
	return &RedisBackend{client: redis.NewClient(opts), key: key}, nil
}

func (r *RedisBackend) Name() string { return "redis" }

func (r *RedisBackend) Load(ctx context.Context) (*Document, error) {
	data, err := r.client.Get(ctx, r.key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, nil
		}
		return nil, err
	}
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("parse key %s: %w", r.key, err)
	}
	return &doc, nil
}

func (r *RedisBackend) Save(ctx context.Context, doc *Document) error {
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal store: %w", err)
	}
	return r.client.Set(ctx, r.key, data, 0).Err()
}

func (r *RedisBackend) Close() error { return r.client.Close() }
