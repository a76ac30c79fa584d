package usecase_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/estimator"
	apperrors "github.com/freight-estimator/internal/pkg/errors"
	"github.com/freight-estimator/internal/pkg/metrics"
	"github.com/freight-estimator/internal/pkg/quotefmt"
	"github.com/freight-estimator/internal/usecase"
	"github.com/freight-estimator/internal/usecase/dto"
)

const quoteTTL = 24 * time.Hour

func newQuoteUseCase(t *testing.T, cache *MockCacheRepository, stream repository.StreamRepository) (*usecase.QuoteUseCase, *metrics.Collector) {
	t.Helper()
	collector, err := metrics.NewCollector(prometheus.NewRegistry())
	require.NoError(t, err)

	return usecase.NewQuoteUseCase(estimator.New(nil), cache, stream, collector, zap.NewNop(), quoteTTL), collector
}

func TestQuoteUseCase_CreateQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("success caches and publishes", func(t *testing.T) {
		cache := &MockCacheRepository{}
		stream := &MockStreamRepository{}
		uc, collector := newQuoteUseCase(t, cache, stream)

		cache.On("SetQuote", ctx, mock.AnythingOfType("*domain.Quote"), quoteTTL).Return(nil)
		stream.On("PublishToStream", ctx, domain.StreamQuoteIssued, mock.MatchedBy(func(e domain.QuoteIssuedEvent) bool {
			return e.TotalPrice == 38950 && e.DistanceKm == 710 && e.Vehicle == domain.VehicleLight
		})).Return(nil)

		resp, err := uc.CreateQuote(ctx, dto.QuoteRequest{
			Origin:      "Москва",
			Destination: "Санкт-Петербург",
			Volume:      "2",
			Vehicle:     "gazelle",
		})

		require.NoError(t, err)
		require.NotNil(t, resp)
		_, parseErr := uuid.Parse(resp.ID)
		assert.NoError(t, parseErr)
		assert.Equal(t, 710, resp.DistanceKm)
		assert.Equal(t, int64(38950), resp.TotalPrice)
		assert.Equal(t, domain.VehicleLight, resp.Vehicle)
		assert.Equal(t, "Газель", resp.VehicleTitle)
		assert.Equal(t, 7000.0, resp.Breakdown.BasePrice)
		assert.Equal(t, 31950, resp.Breakdown.KmPrice)
		assert.Equal(t, quotefmt.Disclaimer, resp.Disclaimer)
		assert.Contains(t, resp.Summary, "Расстояние: 710 км.")
		assert.False(t, resp.IssuedAt.IsZero())

		assert.Equal(t, 1.0, testutil.ToFloat64(collector.Quotes.WithLabelValues("gazelle", metrics.OutcomeIssued)))
		cache.AssertExpectations(t)
		stream.AssertExpectations(t)
	})

	t.Run("heavy vehicle with numeric volume", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc, _ := newQuoteUseCase(t, cache, nil)
		cache.On("SetQuote", ctx, mock.Anything, quoteTTL).Return(nil)

		resp, err := uc.CreateQuote(ctx, dto.QuoteRequest{
			Origin:      "Москва",
			Destination: "Нижний Новгород",
			Volume:      "1",
			Vehicle:     "kamaz",
		})

		require.NoError(t, err)
		assert.Equal(t, int64(32900), resp.TotalPrice)
		assert.Equal(t, 420, resp.DistanceKm)
	})

	t.Run("comma decimal separator", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc, _ := newQuoteUseCase(t, cache, nil)
		cache.On("SetQuote", ctx, mock.Anything, quoteTTL).Return(nil)

		resp, err := uc.CreateQuote(ctx, dto.QuoteRequest{
			Origin:      "Москва",
			Destination: "Санкт-Петербург",
			Volume:      "2,5",
			Vehicle:     "light",
		})

		require.NoError(t, err)
		assert.Equal(t, 2.5, resp.VolumeM3)
		assert.Equal(t, int64(40700), resp.TotalPrice)
	})

	t.Run("cache and stream failures do not fail the quote", func(t *testing.T) {
		cache := &MockCacheRepository{}
		stream := &MockStreamRepository{}
		uc, _ := newQuoteUseCase(t, cache, stream)

		cache.On("SetQuote", ctx, mock.Anything, quoteTTL).Return(errors.New("redis down"))
		stream.On("PublishToStream", ctx, domain.StreamQuoteIssued, mock.Anything).Return(errors.New("redis down"))

		resp, err := uc.CreateQuote(ctx, dto.QuoteRequest{
			Origin:      "Казань",
			Destination: "Пермь",
			Volume:      "3",
			Vehicle:     "gazelle",
		})

		require.NoError(t, err)
		assert.NotEmpty(t, resp.ID)
		cache.AssertExpectations(t)
		stream.AssertExpectations(t)
	})
}

func TestQuoteUseCase_CreateQuote_Errors(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name    string
		req     dto.QuoteRequest
		want    *apperrors.AppError
		message string
	}{
		{
			name:    "missing origin",
			req:     dto.QuoteRequest{Destination: "Москва", Volume: "1", Vehicle: "gazelle"},
			want:    apperrors.ErrMissingSelection,
			message: quotefmt.MsgMissingSelection,
		},
		{
			name:    "same city",
			req:     dto.QuoteRequest{Origin: "Казань", Destination: "Казань", Volume: "1", Vehicle: "gazelle"},
			want:    apperrors.ErrSameCity,
			message: quotefmt.MsgSameCity,
		},
		{
			name:    "unknown city",
			req:     dto.QuoteRequest{Origin: "Москва", Destination: "Сочи", Volume: "1", Vehicle: "gazelle"},
			want:    apperrors.ErrNoRouteData,
			message: quotefmt.MsgNoRouteData,
		},
		{
			name:    "zero volume",
			req:     dto.QuoteRequest{Origin: "Москва", Destination: "Санкт-Петербург", Volume: "0", Vehicle: "gazelle"},
			want:    apperrors.ErrInvalidVolume,
			message: quotefmt.MsgInvalidVolume,
		},
		{
			name:    "missing volume",
			req:     dto.QuoteRequest{Origin: "Москва", Destination: "Санкт-Петербург", Vehicle: "gazelle"},
			want:    apperrors.ErrInvalidVolume,
			message: quotefmt.MsgInvalidVolume,
		},
		{
			name:    "same city wins over bad volume",
			req:     dto.QuoteRequest{Origin: "Пермь", Destination: "Пермь", Volume: "abc", Vehicle: "gazelle"},
			want:    apperrors.ErrSameCity,
			message: quotefmt.MsgSameCity,
		},
		{
			name:    "unknown vehicle",
			req:     dto.QuoteRequest{Origin: "Москва", Destination: "Казань", Volume: "1", Vehicle: "truck"},
			want:    apperrors.ErrInvalidVehicle,
			message: quotefmt.MsgUnknownVehicle,
		},
		{
			name:    "no route wins over unknown vehicle",
			req:     dto.QuoteRequest{Origin: "Москва", Destination: "Сочи", Volume: "1", Vehicle: "truck"},
			want:    apperrors.ErrNoRouteData,
			message: quotefmt.MsgNoRouteData,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cache := &MockCacheRepository{}
			stream := &MockStreamRepository{}
			uc, collector := newQuoteUseCase(t, cache, stream)

			resp, err := uc.CreateQuote(ctx, tt.req)

			assert.Nil(t, resp)
			require.Error(t, err)
			assert.ErrorIs(t, err, tt.want)

			var appErr *apperrors.AppError
			require.True(t, errors.As(err, &appErr))
			assert.Equal(t, 400, appErr.StatusCode)
			assert.Equal(t, tt.message, appErr.Details["user_message"])

			// Отклонённая котировка не кешируется и не публикуется
			cache.AssertNotCalled(t, "SetQuote", mock.Anything, mock.Anything, mock.Anything)
			stream.AssertNotCalled(t, "PublishToStream", mock.Anything, mock.Anything, mock.Anything)
			assert.Equal(t, 1, testutil.CollectAndCount(collector.Quotes))
		})
	}
}

func TestQuoteUseCase_GetQuote(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc, _ := newQuoteUseCase(t, cache, nil)

		id := uuid.New()
		quote := &domain.Quote{
			ID: id,
			Request: domain.EstimateRequest{
				Origin:      domain.CityMoscow,
				Destination: domain.CityNizhnyNovgorod,
				VolumeM3:    1,
				Vehicle:     domain.VehicleHeavy,
			},
			Result: domain.EstimateResult{
				DistanceKm: 420,
				TotalPrice: 32900,
				Vehicle:    domain.VehicleHeavy,
				VolumeM3:   1,
			},
			IssuedAt: time.Now(),
		}
		cache.On("GetQuote", ctx, id).Return(quote, nil)

		resp, err := uc.GetQuote(ctx, id.String())
		require.NoError(t, err)
		assert.Equal(t, id.String(), resp.ID)
		assert.Equal(t, int64(32900), resp.TotalPrice)
		assert.Equal(t, "Камаз", resp.VehicleTitle)
	})

	t.Run("not found", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc, _ := newQuoteUseCase(t, cache, nil)

		id := uuid.New()
		cache.On("GetQuote", ctx, id).Return(nil, nil)

		resp, err := uc.GetQuote(ctx, id.String())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrQuoteNotFound)
	})

	t.Run("invalid id", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc, _ := newQuoteUseCase(t, cache, nil)

		resp, err := uc.GetQuote(ctx, "not-a-uuid")
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrInvalidQuoteID)
		cache.AssertNotCalled(t, "GetQuote", mock.Anything, mock.Anything)
	})

	t.Run("cache error", func(t *testing.T) {
		cache := &MockCacheRepository{}
		uc, _ := newQuoteUseCase(t, cache, nil)

		id := uuid.New()
		cache.On("GetQuote", ctx, id).Return(nil, errors.New("connection refused"))

		resp, err := uc.GetQuote(ctx, id.String())
		assert.Nil(t, resp)
		assert.ErrorIs(t, err, apperrors.ErrCacheError)
	})
}
