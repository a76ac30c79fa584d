package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/estimator"
	apperrors "github.com/freight-estimator/internal/pkg/errors"
	"github.com/freight-estimator/internal/pkg/metrics"
	"github.com/freight-estimator/internal/pkg/quotefmt"
	"github.com/freight-estimator/internal/usecase/dto"
)

// QuoteUseCase выдаёт котировки: расчёт, кеш, публикация в журнал
type QuoteUseCase struct {
	estimator  *estimator.Estimator
	cacheRepo  repository.CacheRepository
	streamRepo repository.StreamRepository
	metrics    *metrics.Collector
	logger     *zap.Logger
	quoteTTL   time.Duration
	now        func() time.Time
}

// NewQuoteUseCase создает новый экземпляр QuoteUseCase.
// streamRepo может быть nil: тогда котировки не журналируются.
func NewQuoteUseCase(
	est *estimator.Estimator,
	cacheRepo repository.CacheRepository,
	streamRepo repository.StreamRepository,
	collector *metrics.Collector,
	logger *zap.Logger,
	quoteTTL time.Duration,
) *QuoteUseCase {
	return &QuoteUseCase{
		estimator:  est,
		cacheRepo:  cacheRepo,
		streamRepo: streamRepo,
		metrics:    collector,
		logger:     logger,
		quoteTTL:   quoteTTL,
		now:        time.Now,
	}
}

// CreateQuote рассчитывает и выдаёт котировку
func (uc *QuoteUseCase) CreateQuote(ctx context.Context, req dto.QuoteRequest) (*dto.QuoteResponse, error) {
	estReq, err := uc.parseRequest(req)
	if err != nil {
		return nil, uc.reject(req.Vehicle, err)
	}

	result, err := uc.estimator.Estimate(estReq)
	if err != nil {
		return nil, uc.reject(req.Vehicle, err)
	}

	quote := &domain.Quote{
		ID:       uuid.New(),
		Request:  estReq,
		Result:   result,
		IssuedAt: uc.now().UTC(),
	}

	// Ошибки кеша и стрима не влияют на выдачу котировки
	if uc.cacheRepo != nil {
		if err := uc.cacheRepo.SetQuote(ctx, quote, uc.quoteTTL); err != nil {
			uc.logger.Warn("Failed to cache quote",
				zap.String("quote_id", quote.ID.String()),
				zap.Error(err))
		}
	}

	if uc.streamRepo != nil {
		event := domain.NewQuoteIssuedEvent(quote)
		if err := uc.streamRepo.PublishToStream(ctx, domain.StreamQuoteIssued, event); err != nil {
			uc.logger.Warn("Failed to publish quote event",
				zap.String("quote_id", quote.ID.String()),
				zap.Error(err))
		}
	}

	uc.metrics.ObserveQuote(result.Vehicle.String(), metrics.OutcomeIssued, result.TotalPrice)

	uc.logger.Debug("Quote issued",
		zap.String("quote_id", quote.ID.String()),
		zap.String("origin", estReq.Origin.String()),
		zap.String("destination", estReq.Destination.String()),
		zap.String("vehicle", result.Vehicle.String()),
		zap.Int64("total_price", result.TotalPrice),
	)

	return dto.NewQuoteResponse(quote), nil
}

// GetQuote возвращает ранее выданную котировку из кеша
func (uc *QuoteUseCase) GetQuote(ctx context.Context, rawID string) (*dto.QuoteResponse, error) {
	id, err := uuid.Parse(strings.TrimSpace(rawID))
	if err != nil {
		return nil, apperrors.ErrInvalidQuoteID
	}

	quote, err := uc.cacheRepo.GetQuote(ctx, id)
	if err != nil {
		uc.logger.Error("Failed to get quote from cache",
			zap.String("quote_id", id.String()),
			zap.Error(err))
		return nil, apperrors.ErrCacheError
	}
	if quote == nil {
		return nil, apperrors.ErrQuoteNotFound
	}

	return dto.NewQuoteResponse(quote), nil
}

// parseRequest переводит сырые поля запроса в типизированный запрос расчёта.
// Неизвестный транспорт остаётся пустым: расчёт сообщит о нём после остальных проверок.
func (uc *QuoteUseCase) parseRequest(req dto.QuoteRequest) (domain.EstimateRequest, error) {
	estReq := domain.EstimateRequest{
		Origin:      domain.City(strings.TrimSpace(req.Origin)),
		Destination: domain.City(strings.TrimSpace(req.Destination)),
	}
	estReq.Vehicle, _ = domain.ParseVehicleClass(req.Vehicle)

	volume, err := estimator.ParseVolume(req.Volume.String())
	if err != nil {
		// Ошибки выбора и маршрута приоритетнее ошибки объёма
		if _, routeErr := uc.estimator.CheckRoute(estReq.Origin, estReq.Destination); routeErr != nil {
			return estReq, routeErr
		}
		return estReq, err
	}
	estReq.VolumeM3 = volume
	return estReq, nil
}

func (uc *QuoteUseCase) reject(vehicle string, err error) error {
	appErr := mapEstimateError(err)
	outcome := metrics.OutcomeRejected
	if appErr.StatusCode >= 500 {
		outcome = metrics.OutcomeError
		uc.logger.Error("Quote calculation failed", zap.Error(err))
	}
	uc.metrics.ObserveQuote(vehicleLabel(vehicle), outcome, 0)
	return appErr
}

// mapEstimateError переводит ошибку расчёта в ошибку API с текстом для пользователя
func mapEstimateError(err error) *apperrors.AppError {
	var base *apperrors.AppError
	switch {
	case errors.Is(err, estimator.ErrMissingSelection):
		base = apperrors.ErrMissingSelection
	case errors.Is(err, estimator.ErrSameCity):
		base = apperrors.ErrSameCity
	case errors.Is(err, estimator.ErrNoRouteData):
		base = apperrors.ErrNoRouteData
	case errors.Is(err, estimator.ErrInvalidVolume):
		base = apperrors.ErrInvalidVolume
	case errors.Is(err, domain.ErrUnknownVehicle):
		base = apperrors.ErrInvalidVehicle
	default:
		return apperrors.ErrInternalServer
	}
	return base.WithDetails(map[string]interface{}{
		"user_message": quotefmt.ErrorMessage(err),
	})
}

func vehicleLabel(raw string) string {
	v, err := domain.ParseVehicleClass(raw)
	if err != nil {
		return "unknown"
	}
	return v.String()
}
