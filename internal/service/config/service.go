package config

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-AppointmentService/internal/domain"
	"github.com/m04kA/SMC-AppointmentService/internal/infra/cache/configcache"
	configRepo "github.com/m04kA/SMC-AppointmentService/internal/infra/storage/schedulingconfig"
)

// Service сервис конфигурации расписания. Читает через кэш,
// при записи инвалидирует его.
type Service struct {
	repo   ConfigRepository
	cache  ConfigCache
	logger Logger
}

// NewService создает новый экземпляр сервиса конфигурации
func NewService(repo ConfigRepository, cache ConfigCache, logger Logger) *Service {
	return &Service{
		repo:   repo,
		cache:  cache,
		logger: logger,
	}
}

// Current возвращает актуальный снимок конфигурации. Отсутствие строки
// в БД не ошибка: возвращается nil, и действуют значения по умолчанию.
func (s *Service) Current(ctx context.Context) (*domain.SchedulingConfig, error) {
	cached, err := s.cache.Get(ctx)
	if err == nil {
		return cached, nil
	}
	if !errors.Is(err, configcache.ErrCacheMiss) {
		// кэш недоступен - идем в БД, но не падаем
		s.logger.Warn("Current: config cache unavailable: %v", err)
	}

	cfg, err := s.repo.Get(ctx)
	if errors.Is(err, configRepo.ErrConfigNotFound) {
		return nil, nil
	}
	if err != nil {
		s.logger.Error("Current: repository error: %v", err)
		return nil, fmt.Errorf("%w: Current - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Set(ctx, cfg); err != nil {
		s.logger.Warn("Current: failed to cache config: %v", err)
	}
	return cfg, nil
}

// Update сохраняет конфигурацию и сбрасывает кэш
func (s *Service) Update(ctx context.Context, cfg *domain.SchedulingConfig) (*domain.SchedulingConfig, error) {
	if err := cfg.Validate(); err != nil {
		s.logger.Warn("Update: invalid config: %v", err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidConfig, err)
	}

	updated, err := s.repo.Upsert(ctx, cfg)
	if err != nil {
		s.logger.Error("Update: repository error: %v", err)
		return nil, fmt.Errorf("%w: Update - repository error: %v", ErrInternal, err)
	}

	if err := s.cache.Invalidate(ctx); err != nil {
		s.logger.Warn("Update: failed to invalidate config cache: %v", err)
	}

	s.logger.Info("Update: scheduling config updated")
	return updated, nil
}

// WebsiteName возвращает отображаемое имя сайта из конфигурации
func (s *Service) WebsiteName(ctx context.Context) (string, error) {
	cfg, err := s.Current(ctx)
	if err != nil {
		return "", err
	}
	return cfg.EffectiveWebsiteName(), nil
}
