package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"service_documents/internal/config"
	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"
	"service_documents/internal/usecase/interfaces"

	goredis "github.com/redis/go-redis/v9"
)

const quotesKey = "service_documents:quotes:all"

type redisKV interface {
	Get(ctx context.Context, key string) *goredis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd
	Del(ctx context.Context, keys ...string) *goredis.IntCmd
}

type cachedQuote struct {
	ServiceID   string            `json:"serviceId"`
	ServiceName string            `json:"serviceName"`
	Quote       entities.Document `json:"quote"`
}

// RedisQuoteListCache keeps the cross-service quotes listing in one Redis key.
type RedisQuoteListCache struct {
	rdb    redisKV
	closer func() error
	ttl    time.Duration
	log    *logger.Logger
}

var _ interfaces.IQuoteListCache = (*RedisQuoteListCache)(nil)

func NewRedisQuoteListCache(ctx context.Context, cfg config.RedisConfig, log *logger.Logger) (*RedisQuoteListCache, error) {
	rdb := goredis.NewClient(&goredis.Options{
		Addr:        cfg.Addr,
		Password:    cfg.Password,
		DB:          cfg.DB,
		DialTimeout: 5 * time.Second,
	})

	pingCtx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()
	if err := rdb.Ping(pingCtx).Err(); err != nil {
		_ = rdb.Close()
		return nil, fmt.Errorf("redis ping: %w", err)
	}
	return &RedisQuoteListCache{
		rdb:    rdb,
		closer: rdb.Close,
		ttl:    cfg.QuotesTTL,
		log:    log.With("component", "RedisQuoteListCache"),
	}, nil
}

func (c *RedisQuoteListCache) Get(ctx context.Context) ([]entities.QuoteListing, bool, error) {
	raw, err := c.rdb.Get(ctx, quotesKey).Bytes()
	if errors.Is(err, goredis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}

	var cached []cachedQuote
	if err := json.Unmarshal(raw, &cached); err != nil {
		c.log.Warn("dropping unreadable quotes cache entry", "error", err)
		return nil, false, nil
	}
	out := make([]entities.QuoteListing, 0, len(cached))
	for _, q := range cached {
		out = append(out, entities.QuoteListing{ServiceID: q.ServiceID, ServiceName: q.ServiceName, Quote: q.Quote})
	}
	return out, true, nil
}

func (c *RedisQuoteListCache) Set(ctx context.Context, quotes []entities.QuoteListing) error {
	cached := make([]cachedQuote, 0, len(quotes))
	for _, q := range quotes {
		cached = append(cached, cachedQuote{ServiceID: q.ServiceID, ServiceName: q.ServiceName, Quote: q.Quote})
	}
	raw, err := json.Marshal(cached)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, quotesKey, raw, c.ttl).Err()
}

func (c *RedisQuoteListCache) Invalidate(ctx context.Context) error {
	return c.rdb.Del(ctx, quotesKey).Err()
}

func (c *RedisQuoteListCache) Close() error {
	if c.closer == nil {
		return nil
	}
	return c.closer()
}
