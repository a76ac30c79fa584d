package repository

import (
	"context"
	"time"

	"github.com/freight-estimator/internal/domain"
	"github.com/google/uuid"
)

// CacheRepository - Redis кеш котировок и статистики
type CacheRepository interface {
	// Get получает значение из кеша по ключу; nil, nil при промахе
	Get(ctx context.Context, key string) ([]byte, error)

	// Set сохраняет значение в кеше с TTL
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error

	// GetQuote получает выданную котировку; nil, nil при промахе
	GetQuote(ctx context.Context, id uuid.UUID) (*domain.Quote, error)

	// SetQuote сохраняет котировку
	SetQuote(ctx context.Context, quote *domain.Quote, ttl time.Duration) error

	// GetStats получает статистику из кеша
	GetStats(ctx context.Context) (*domain.QuoteStatistics, error)

	// SetStats сохраняет статистику в кеше
	SetStats(ctx context.Context, stats *domain.QuoteStatistics, ttl time.Duration) error
}
