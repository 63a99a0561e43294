package configcache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
)

// cacheKey конфигурация одна на всю систему, поэтому ключ фиксированный
const cacheKey = "appointment:scheduling_config"

// DefaultTTL время жизни закэшированной конфигурации
const DefaultTTL = time.Hour

var (
	// ErrCacheMiss возвращается, когда конфигурации нет в кэше
	ErrCacheMiss = errors.New("configcache: cache miss")

	// ErrCacheUnavailable возвращается при ошибке обращения к Redis
	ErrCacheUnavailable = errors.New("configcache: redis unavailable")
)

// RedisClient минимальный набор команд Redis, который нужен кэшу
type RedisClient interface {
	Get(ctx context.Context, key string) *redis.StringCmd
	Set(ctx context.Context, key string, value interface{}, expiration time.Duration) *redis.StatusCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Cache кэш синглтон-конфигурации расписания поверх Redis
type Cache struct {
	client RedisClient
	ttl    time.Duration
}

// New создает кэш конфигурации. При ttl <= 0 используется DefaultTTL.
func New(client RedisClient, ttl time.Duration) *Cache {
	if ttl <= 0 {
		ttl = DefaultTTL
	}
	return &Cache{client: client, ttl: ttl}
}

// Get возвращает конфигурацию из кэша
func (c *Cache) Get(ctx context.Context) (*domain.SchedulingConfig, error) {
	raw, err := c.client.Get(ctx, cacheKey).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrCacheMiss
	}
	if err != nil {
		return nil, fmt.Errorf("%w: Get - read key: %v", ErrCacheUnavailable, err)
	}

	var cfg domain.SchedulingConfig
	if err := json.Unmarshal(raw, &cfg); err != nil {
		// битое значение считаем промахом, чтобы оно перезаписалось
		return nil, ErrCacheMiss
	}
	return &cfg, nil
}

// Set сохраняет конфигурацию в кэш с TTL
func (c *Cache) Set(ctx context.Context, cfg *domain.SchedulingConfig) error {
	raw, err := json.Marshal(cfg)
	if err != nil {
		return fmt.Errorf("configcache: Set - marshal config: %w", err)
	}

	if err := c.client.Set(ctx, cacheKey, raw, c.ttl).Err(); err != nil {
		return fmt.Errorf("%w: Set - write key: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Invalidate удаляет конфигурацию из кэша. Вызывается после записи в БД.
func (c *Cache) Invalidate(ctx context.Context) error {
	if err := c.client.Del(ctx, cacheKey).Err(); err != nil {
		return fmt.Errorf("%w: Invalidate - delete key: %v", ErrCacheUnavailable, err)
	}
	return nil
}

// Noop кэш-заглушка для развертываний без Redis: каждый Get промах,
// запись и инвалидация ничего не делают.
type Noop struct{}

func NewNoop() *Noop {
	return &Noop{}
}

func (*Noop) Get(ctx context.Context) (*domain.SchedulingConfig, error) {
	return nil, ErrCacheMiss
}

func (*Noop) Set(ctx context.Context, cfg *domain.SchedulingConfig) error {
	return nil
}

func (*Noop) Invalidate(ctx context.Context) error {
	return nil
}
