package configcache

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeRedis struct {
	value   string
	getErr  error
	setErr  error
	delErr  error
	setKey  string
	setTTL  time.Duration
	deleted []string
}

func (f *fakeRedis) Get(ctx context.Context, key string) *redis.StringCmd {
	return redis.NewStringResult(f.value, f.getErr)
}

func (f *fakeRedis) Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd {
	f.setKey = key
	f.setTTL = expiration
	return redis.NewStatusResult("OK", f.setErr)
}

func (f *fakeRedis) Del(ctx context.Context, keys ...string) *redis.IntCmd {
	f.deleted = append(f.deleted, keys...)
	return redis.NewIntResult(int64(len(keys)), f.delErr)
}

func TestGet(t *testing.T) {
	t.Run("returns the cached config", func(t *testing.T) {
		cfg := &domain.SchedulingConfig{ID: 1, WebsiteName: "Salon", SlotDurationMinutes: ptr.Ptr(45)}
		raw, err := json.Marshal(cfg)
		require.NoError(t, err)

		cache := New(&fakeRedis{value: string(raw)}, 0)
		got, err := cache.Get(context.Background())
		require.NoError(t, err)
		assert.Equal(t, cfg, got)
	})

	t.Run("nil reply is a miss", func(t *testing.T) {
		cache := New(&fakeRedis{getErr: redis.Nil}, 0)

		_, err := cache.Get(context.Background())
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("corrupt value is a miss", func(t *testing.T) {
		cache := New(&fakeRedis{value: "{not json"}, 0)

		_, err := cache.Get(context.Background())
		assert.ErrorIs(t, err, ErrCacheMiss)
	})

	t.Run("transport failure is unavailability", func(t *testing.T) {
		cache := New(&fakeRedis{getErr: errors.New("connection refused")}, 0)

		_, err := cache.Get(context.Background())
		assert.ErrorIs(t, err, ErrCacheUnavailable)
	})
}

func TestSet(t *testing.T) {
	t.Run("writes with the configured ttl", func(t *testing.T) {
		client := &fakeRedis{}
		cache := New(client, 10*time.Minute)

		err := cache.Set(context.Background(), &domain.SchedulingConfig{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, cacheKey, client.setKey)
		assert.Equal(t, 10*time.Minute, client.setTTL)
	})

	t.Run("zero ttl falls back to the default", func(t *testing.T) {
		client := &fakeRedis{}
		cache := New(client, 0)

		err := cache.Set(context.Background(), &domain.SchedulingConfig{ID: 1})
		require.NoError(t, err)
		assert.Equal(t, DefaultTTL, client.setTTL)
	})
}

func TestInvalidate(t *testing.T) {
	client := &fakeRedis{}
	cache := New(client, 0)

	err := cache.Invalidate(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{cacheKey}, client.deleted)
}

func TestNoop(t *testing.T) {
	noop := NewNoop()

	_, err := noop.Get(context.Background())
	assert.ErrorIs(t, err, ErrCacheMiss)
	assert.NoError(t, noop.Set(context.Background(), &domain.SchedulingConfig{}))
	assert.NoError(t, noop.Invalidate(context.Background()))
}
