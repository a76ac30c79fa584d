package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freight-estimator/internal/domain"
	apperrors "github.com/freight-estimator/internal/pkg/errors"
	"github.com/freight-estimator/internal/usecase"
)

func TestStatsUseCase_GetStatistics(t *testing.T) {
	ctx := context.Background()
	ttl := 5 * time.Minute

	stats := &domain.QuoteStatistics{
		TotalQuotes: 3,
		ByVehicle:   map[domain.VehicleClass]int{domain.VehicleLight: 2, domain.VehicleHeavy: 1},
		LastUpdated: time.Now(),
	}

	t.Run("cache hit", func(t *testing.T) {
		journal := &MockQuoteJournalRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(journal, cache, zap.NewNop(), ttl)

		cache.On("GetStats", ctx).Return(stats, nil)

		got, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
		journal.AssertNotCalled(t, "GetStatistics", mock.Anything, mock.Anything)
	})

	t.Run("cache miss reads journal and caches", func(t *testing.T) {
		journal := &MockQuoteJournalRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(journal, cache, zap.NewNop(), ttl)

		cache.On("GetStats", ctx).Return(nil, nil)
		journal.On("GetStatistics", ctx, usecase.DefaultTopRoutes).Return(stats, nil)
		cache.On("SetStats", ctx, stats, ttl).Return(nil)

		got, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, 3, got.TotalQuotes)
		journal.AssertExpectations(t)
		cache.AssertExpectations(t)
	})

	t.Run("cache errors are tolerated", func(t *testing.T) {
		journal := &MockQuoteJournalRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(journal, cache, zap.NewNop(), ttl)

		cache.On("GetStats", ctx).Return(nil, errors.New("redis down"))
		journal.On("GetStatistics", ctx, usecase.DefaultTopRoutes).Return(stats, nil)
		cache.On("SetStats", ctx, stats, ttl).Return(errors.New("redis down"))

		got, err := uc.GetStatistics(ctx)
		require.NoError(t, err)
		assert.Equal(t, stats, got)
	})

	t.Run("database error", func(t *testing.T) {
		journal := &MockQuoteJournalRepository{}
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(journal, cache, zap.NewNop(), ttl)

		cache.On("GetStats", ctx).Return(nil, nil)
		journal.On("GetStatistics", ctx, usecase.DefaultTopRoutes).Return(nil, errors.New("connection reset"))

		got, err := uc.GetStatistics(ctx)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrDatabaseError)
		cache.AssertNotCalled(t, "SetStats", mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("journal disabled", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc := usecase.NewStatsUseCase(nil, cache, zap.NewNop(), ttl)

		got, err := uc.GetStatistics(ctx)
		assert.Nil(t, got)
		assert.ErrorIs(t, err, apperrors.ErrStatsUnavailable)
	})
}

func TestStatsUseCase_RefreshStatistics(t *testing.T) {
	ctx := context.Background()
	journal := &MockQuoteJournalRepository{}
	cache := &MockCacheRepository{}
	uc := usecase.NewStatsUseCase(journal, cache, zap.NewNop(), time.Minute)

	stats := &domain.QuoteStatistics{TotalQuotes: 10}
	journal.On("GetStatistics", ctx, usecase.DefaultTopRoutes).Return(stats, nil)
	cache.On("SetStats", ctx, stats, time.Minute).Return(nil)

	got, err := uc.RefreshStatistics(ctx)
	require.NoError(t, err)
	assert.Equal(t, 10, got.TotalQuotes)
	cache.AssertNotCalled(t, "GetStats", mock.Anything)
}
