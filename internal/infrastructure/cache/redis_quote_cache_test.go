package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"service_documents/internal/domain/entities"
	"service_documents/internal/infrastructure/logger"

	goredis "github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type memKV struct {
	data map[string]string
	ttl  time.Duration
	err  error
}

func (m *memKV) Get(_ context.Context, key string) *goredis.StringCmd {
	if m.err != nil {
		return goredis.NewStringResult("", m.err)
	}
	v, ok := m.data[key]
	if !ok {
		return goredis.NewStringResult("", goredis.Nil)
	}
	return goredis.NewStringResult(v, nil)
}

func (m *memKV) Set(_ context.Context, key string, value interface{}, expiration time.Duration) *goredis.StatusCmd {
	m.data[key] = string(value.([]byte))
	m.ttl = expiration
	return goredis.NewStatusResult("OK", nil)
}

func (m *memKV) Del(_ context.Context, keys ...string) *goredis.IntCmd {
	var n int64
	for _, k := range keys {
		if _, ok := m.data[k]; ok {
			delete(m.data, k)
			n++
		}
	}
	return goredis.NewIntResult(n, nil)
}

func TestRedisQuoteListCache_RoundTrip(t *testing.T) {
	ctx := context.Background()
	kv := &memKV{data: map[string]string{}}
	c := &RedisQuoteListCache{rdb: kv, ttl: time.Minute, log: logger.NewNop()}

	_, hit, err := c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)

	number := "COT-000001"
	quotes := []entities.QuoteListing{{
		ServiceID:   "42",
		ServiceName: "Bomba",
		Quote: entities.Document{
			Kind:   entities.DocumentKindCotizacion,
			Number: &number,
			Date:   "2024-01-01",
			Client: &entities.Client{Name: "Acme"},
			Status: entities.DocumentStatusPendiente,
			Quote:  &entities.QuoteDetails{Currency: "MXN"},
		},
	}}
	require.NoError(t, c.Set(ctx, quotes))
	assert.Equal(t, time.Minute, kv.ttl)

	got, hit, err := c.Get(ctx)
	require.NoError(t, err)
	require.True(t, hit)
	require.Len(t, got, 1)
	assert.Equal(t, "Bomba", got[0].ServiceName)
	assert.Equal(t, "COT-000001", got[0].Quote.NumberValue())
	assert.Equal(t, entities.DocumentKindCotizacion, got[0].Quote.Kind)

	require.NoError(t, c.Invalidate(ctx))
	_, hit, err = c.Get(ctx)
	require.NoError(t, err)
	assert.False(t, hit)
	assert.NoError(t, c.Close())
}

func TestRedisQuoteListCache_BadEntryIsAMiss(t *testing.T) {
	kv := &memKV{data: map[string]string{quotesKey: "{"}}
	c := &RedisQuoteListCache{rdb: kv, log: logger.NewNop()}

	_, hit, err := c.Get(context.Background())
	require.NoError(t, err)
	assert.False(t, hit)
}

func TestRedisQuoteListCache_BackendError(t *testing.T) {
	kv := &memKV{data: map[string]string{}, err: errors.New("dial tcp: refused")}
	c := &RedisQuoteListCache{rdb: kv, log: logger.NewNop()}

	_, _, err := c.Get(context.Background())
	assert.Error(t, err)
}
