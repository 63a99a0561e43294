package config

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache/configcache"
	configRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedulingconfig"
	"github.com/m04kA/SMC-AppointmentService/pkg/ptr"
)

type fakeRepo struct {
	cfg       *domain.SchedulingConfig
	getErr    error
	upserted  *domain.SchedulingConfig
	upsertErr error
}

func (f *fakeRepo) Get(ctx context.Context) (*domain.SchedulingConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cfg, nil
}

func (f *fakeRepo) Upsert(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	if f.upsertErr != nil {
		return nil, f.upsertErr
	}
	f.upserted = cfg
	return cfg, nil
}

type fakeCache struct {
	cfg         *domain.SchedulingConfig
	getErr      error
	setCalls    int
	invalidated int
}

func (f *fakeCache) Get(ctx context.Context) (*domain.SchedulingConfig, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.cfg, nil
}

func (f *fakeCache) Set(ctx context.Context, cfg *domain.SchedulingConfig) error {
	f.setCalls++
	f.cfg = cfg
	return nil
}

func (f *fakeCache) Invalidate(ctx context.Context) error {
	f.invalidated++
	f.cfg = nil
	return nil
}

type nopLogger struct{}

func (nopLogger) Info(format string, v ...interface{})  {}
func (nopLogger) Warn(format string, v ...interface{})  {}
func (nopLogger) Error(format string, v ...interface{}) {}

func TestCurrent(t *testing.T) {
	stored := &domain.SchedulingConfig{ID: 1, WebsiteName: "Salon"}

	t.Run("cache hit skips the repository", func(t *testing.T) {
		repo := &fakeRepo{getErr: errors.New("must not be called")}
		cache := &fakeCache{cfg: stored}
		svc := NewService(repo, cache, nopLogger{})

		cfg, err := svc.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, cfg)
	})

	t.Run("cache miss falls through and repopulates", func(t *testing.T) {
		repo := &fakeRepo{cfg: stored}
		cache := &fakeCache{getErr: configcache.ErrCacheMiss}
		svc := NewService(repo, cache, nopLogger{})

		cfg, err := svc.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, cfg)
		assert.Equal(t, 1, cache.setCalls)
	})

	t.Run("cache outage degrades to the repository", func(t *testing.T) {
		repo := &fakeRepo{cfg: stored}
		cache := &fakeCache{getErr: configcache.ErrCacheUnavailable}
		svc := NewService(repo, cache, nopLogger{})

		cfg, err := svc.Current(context.Background())
		require.NoError(t, err)
		assert.Equal(t, stored, cfg)
	})

	t.Run("missing row is not an error", func(t *testing.T) {
		repo := &fakeRepo{getErr: configRepo.ErrConfigNotFound}
		cache := &fakeCache{getErr: configcache.ErrCacheMiss}
		svc := NewService(repo, cache, nopLogger{})

		cfg, err := svc.Current(context.Background())
		require.NoError(t, err)
		assert.Nil(t, cfg)
	})
}

func TestUpdate(t *testing.T) {
	t.Run("persists and invalidates the cache", func(t *testing.T) {
		repo := &fakeRepo{}
		cache := &fakeCache{cfg: &domain.SchedulingConfig{WebsiteName: "stale"}}
		svc := NewService(repo, cache, nopLogger{})

		updated, err := svc.Update(context.Background(), &domain.SchedulingConfig{WebsiteName: "Salon"})
		require.NoError(t, err)
		assert.Equal(t, "Salon", updated.WebsiteName)
		assert.Equal(t, 1, cache.invalidated)
	})

	t.Run("rejects an inverted window", func(t *testing.T) {
		repo := &fakeRepo{}
		svc := NewService(repo, &fakeCache{}, nopLogger{})

		lead := clockValue(18, 0)
		finish := clockValue(9, 0)
		_, err := svc.Update(context.Background(), &domain.SchedulingConfig{
			LeadTime:   &lead,
			FinishTime: &finish,
		})
		assert.ErrorIs(t, err, ErrInvalidConfig)
		assert.Nil(t, repo.upserted)
	})
}

func TestWebsiteName(t *testing.T) {
	t.Run("default without a config row", func(t *testing.T) {
		repo := &fakeRepo{getErr: configRepo.ErrConfigNotFound}
		svc := NewService(repo, &fakeCache{getErr: configcache.ErrCacheMiss}, nopLogger{})

		name, err := svc.WebsiteName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, domain.DefaultWebsiteName, name)
	})

	t.Run("configured name", func(t *testing.T) {
		repo := &fakeRepo{cfg: &domain.SchedulingConfig{WebsiteName: "Salon", SlotDurationMinutes: ptr.Ptr(30)}}
		svc := NewService(repo, &fakeCache{getErr: configcache.ErrCacheMiss}, nopLogger{})

		name, err := svc.WebsiteName(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "Salon", name)
	})
}

func clockValue(hour, minute int) time.Time {
	return time.Date(0, 1, 1, hour, minute, 0, 0, time.UTC)
}
