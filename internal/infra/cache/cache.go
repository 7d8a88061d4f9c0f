// Package cache stores search results in Redis. Values are JSON encoded.
// Read or write failures never fail the caller: a miss is reported instead.
package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"
)

// ErrConnect возвращается, когда Redis недоступен при старте
var ErrConnect = errors.New("cache: failed to connect to redis")

const delBatchSize = 100

// Redis кэш поверх go-redis
type Redis struct {
	client *redis.Client
}

// NewRedis подключается к Redis по URL (redis://host:port/db) и проверяет соединение
func NewRedis(ctx context.Context, url string, dialTimeout time.Duration) (*Redis, error) {
	opt, err := redis.ParseURL(url)
	if err != nil {
		return nil, fmt.Errorf("%w: parse url: %v", ErrConnect, err)
	}

	opt.PoolSize = 10
	opt.MinIdleConns = 3
	if dialTimeout > 0 {
		opt.DialTimeout = dialTimeout
	}

	client := redis.NewClient(opt)

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("%w: ping: %v", ErrConnect, err)
	}

	return &Redis{client: client}, nil
}

// NewRedisWithClient оборачивает готовый клиент
func NewRedisWithClient(client *redis.Client) *Redis {
	return &Redis{client: client}
}

// Get читает значение по ключу в dest. false - промах или ошибка
func (r *Redis) Get(ctx context.Context, key string, dest interface{}) bool {
	val, err := r.client.Get(ctx, key).Bytes()
	if err != nil {
		return false
	}
	return json.Unmarshal(val, dest) == nil
}

// Set сохраняет значение с TTL
func (r *Redis) Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error {
	data, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("cache: marshal %s: %w", key, err)
	}
	return r.client.Set(ctx, key, data, ttl).Err()
}

// DelPattern удаляет ключи по шаблону пачками через SCAN
func (r *Redis) DelPattern(ctx context.Context, pattern string) error {
	iter := r.client.Scan(ctx, 0, pattern, 0).Iterator()

	pipe := r.client.Pipeline()
	count := 0

	for iter.Next(ctx) {
		pipe.Del(ctx, iter.Val())
		count++

		if count >= delBatchSize {
			if _, err := pipe.Exec(ctx); err != nil {
				return err
			}
			count = 0
		}
	}
	if err := iter.Err(); err != nil {
		return err
	}

	if count > 0 {
		if _, err := pipe.Exec(ctx); err != nil {
			return err
		}
	}

	return nil
}

// Close закрывает соединения
func (r *Redis) Close() error {
	return r.client.Close()
}

// Cache общий интерфейс Redis и Nop
type Cache interface {
	Get(ctx context.Context, key string, dest interface{}) bool
	Set(ctx context.Context, key string, value interface{}, ttl time.Duration) error
	DelPattern(ctx context.Context, pattern string) error
	Close() error
}

// Nop кэш-заглушка, когда Redis не настроен: всегда промах
type Nop struct{}

func (Nop) Get(context.Context, string, interface{}) bool                 { return false }
func (Nop) Set(context.Context, string, interface{}, time.Duration) error { return nil }
func (Nop) DelPattern(context.Context, string) error                      { return nil }
func (Nop) Close() error                                                  { return nil }
