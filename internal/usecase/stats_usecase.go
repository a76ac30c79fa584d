package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	apperrors "github.com/freight-estimator/internal/pkg/errors"
	"go.uber.org/zap"
)

// DefaultTopRoutes - сколько популярных маршрутов попадает в статистику
const DefaultTopRoutes = 5

// StatsUseCase обрабатывает бизнес-логику для статистики журнала котировок
type StatsUseCase struct {
	journalRepo repository.QuoteJournalRepository
	cacheRepo   repository.CacheRepository
	logger      *zap.Logger
	cacheTTL    time.Duration
	topRoutes   int
}

// NewStatsUseCase создает новый экземпляр StatsUseCase.
// journalRepo может быть nil, если журнал отключён.
func NewStatsUseCase(
	journalRepo repository.QuoteJournalRepository,
	cacheRepo repository.CacheRepository,
	logger *zap.Logger,
	cacheTTL time.Duration,
) *StatsUseCase {
	return &StatsUseCase{
		journalRepo: journalRepo,
		cacheRepo:   cacheRepo,
		logger:      logger,
		cacheTTL:    cacheTTL,
		topRoutes:   DefaultTopRoutes,
	}
}

// GetStatistics возвращает статистику, используя кеш когда возможно
func (uc *StatsUseCase) GetStatistics(ctx context.Context) (*domain.QuoteStatistics, error) {
	if uc.journalRepo == nil {
		return nil, apperrors.ErrStatsUnavailable
	}

	// 1. Проверяем кеш
	cached, err := uc.cacheRepo.GetStats(ctx)
	if err == nil && cached != nil {
		uc.logger.Debug("Statistics fetched from cache")
		return cached, nil
	}

	if err != nil {
		uc.logger.Warn("Failed to get stats from cache", zap.Error(err))
	}

	// 2. Получаем из БД
	stats, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	// 3. Кешируем
	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache stats", zap.Error(err))
		// Не возвращаем ошибку, т.к. данные уже получены
	}

	return stats, nil
}

// RefreshStatistics принудительно обновляет статистику
func (uc *StatsUseCase) RefreshStatistics(ctx context.Context) (*domain.QuoteStatistics, error) {
	if uc.journalRepo == nil {
		return nil, apperrors.ErrStatsUnavailable
	}

	uc.logger.Info("Refreshing statistics")

	stats, err := uc.fetch(ctx)
	if err != nil {
		return nil, err
	}

	if err := uc.cacheRepo.SetStats(ctx, stats, uc.cacheTTL); err != nil {
		uc.logger.Warn("Failed to cache refreshed stats", zap.Error(err))
	}
	return stats, nil
}

func (uc *StatsUseCase) fetch(ctx context.Context) (*domain.QuoteStatistics, error) {
	uc.logger.Debug("Fetching statistics from database")
	stats, err := uc.journalRepo.GetStatistics(ctx, uc.topRoutes)
	if err != nil {
		uc.logger.Error("Failed to get statistics", zap.Error(err))
		return nil, apperrors.ErrDatabaseError.WithDetails(map[string]interface{}{
			"operation": fmt.Sprintf("get statistics (top %d routes)", uc.topRoutes),
		})
	}
	return stats, nil
}
