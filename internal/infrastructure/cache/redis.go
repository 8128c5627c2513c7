package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	jsoniter "github.com/json-iterator/go"
	"github.com/redis/go-redis/v9"

	"margin_engine/internal/domain/entity"
)

var json = jsoniter.ConfigCompatibleWithStandardLibrary //nolint:gochecknoglobals // skip

// Redis кэш котировок, общий для нескольких экземпляров сервиса.
type Redis struct {
	client redis.Cmdable
	ttl    time.Duration
	prefix string
}

func NewRedis(client redis.Cmdable, ttl time.Duration) *Redis {
	return &Redis{
		client: client,
		ttl:    ttl,
		prefix: "margin-engine:",
	}
}

func (r *Redis) Name() string {
	return "redis"
}

func (r *Redis) Get(ctx context.Context, key string) (entity.Quote, bool, error) {
	b, err := r.client.Get(ctx, r.prefix+key).Bytes()
	if errors.Is(err, redis.Nil) {
		return entity.Quote{}, false, nil
	}

	if err != nil {
		return entity.Quote{}, false, fmt.Errorf("redis.Get: %w", err)
	}

	var q entity.Quote
	if err := json.Unmarshal(b, &q); err != nil {
		return entity.Quote{}, false, fmt.Errorf("json.Unmarshal: %w", err)
	}

	return q, true, nil
}

func (r *Redis) Set(ctx context.Context, key string, q entity.Quote) error {
	b, err := json.Marshal(q)
	if err != nil {
		return fmt.Errorf("json.Marshal: %w", err)
	}

	if err := r.client.Set(ctx, r.prefix+key, b, r.ttl).Err(); err != nil {
		return fmt.Errorf("redis.Set: %w", err)
	}

	return nil
}
