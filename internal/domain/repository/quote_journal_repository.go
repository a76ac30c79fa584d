package repository

import (
	"context"

	"github.com/freight-estimator/internal/domain"
)

// QuoteJournalRepository - журнал выданных котировок
type QuoteJournalRepository interface {
	// InsertBatch сохраняет события; повторная запись той же котировки игнорируется.
	// Возвращает количество новых строк.
	InsertBatch(ctx context.Context, events []domain.QuoteIssuedEvent) (int, error)

	// GetStatistics возвращает агрегаты по журналу
	GetStatistics(ctx context.Context, topRoutes int) (*domain.QuoteStatistics, error)
}
