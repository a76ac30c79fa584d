package postgres

import (
	"context"
	"fmt"
	"time"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"go.uber.org/zap"
)

type quoteJournalRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewQuoteJournalRepository создает репозиторий журнала котировок
func NewQuoteJournalRepository(db *DB, logger *zap.Logger) repository.QuoteJournalRepository {
	return &quoteJournalRepository{
		db:     db,
		logger: logger,
	}
}

// InsertBatch записывает batch событий, дубликаты по quote_id пропускаются
func (r *quoteJournalRepository) InsertBatch(ctx context.Context, events []domain.QuoteIssuedEvent) (int, error) {
	if len(events) == 0 {
		return 0, nil
	}

	query := `
		INSERT INTO quote_journal (
			quote_id, origin, destination, vehicle,
			volume_m3, distance_km, total_price, issued_at
		) VALUES (
			:quote_id, :origin, :destination, :vehicle,
			:volume_m3, :distance_km, :total_price, :issued_at
		)
		ON CONFLICT (quote_id) DO NOTHING
	`

	res, err := r.db.NamedExecContext(ctx, query, events)
	if err != nil {
		return 0, fmt.Errorf("insert quote journal: %w", err)
	}

	inserted, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("rows affected: %w", err)
	}

	if int(inserted) < len(events) {
		r.logger.Debug("Duplicate quotes skipped",
			zap.Int("batch", len(events)),
			zap.Int64("inserted", inserted))
	}

	return int(inserted), nil
}

// GetStatistics возвращает агрегированную статистику по журналу
func (r *quoteJournalRepository) GetStatistics(ctx context.Context, topRoutes int) (*domain.QuoteStatistics, error) {
	stats := &domain.QuoteStatistics{
		ByVehicle:   make(map[domain.VehicleClass]int),
		TopRoutes:   []domain.RouteCount{},
		LastUpdated: time.Now(),
	}

	if err := r.getTotals(ctx, stats); err != nil {
		r.logger.Error("failed to get journal totals", zap.Error(err))
		return nil, fmt.Errorf("get journal totals: %w", err)
	}

	if err := r.getVehicleStats(ctx, stats); err != nil {
		r.logger.Error("failed to get vehicle stats", zap.Error(err))
		return nil, fmt.Errorf("get vehicle stats: %w", err)
	}

	if topRoutes > 0 {
		query := `
			SELECT origin, destination, COUNT(*) AS count
			FROM quote_journal
			GROUP BY origin, destination
			ORDER BY count DESC, origin, destination
			LIMIT $1
		`
		if err := r.db.SelectContext(ctx, &stats.TopRoutes, query, topRoutes); err != nil {
			r.logger.Error("failed to get top routes", zap.Error(err))
			return nil, fmt.Errorf("get top routes: %w", err)
		}
	}

	return stats, nil
}

// getTotals - количество, средняя цена и суммарный объём
func (r *quoteJournalRepository) getTotals(ctx context.Context, stats *domain.QuoteStatistics) error {
	query := `
		SELECT
			COUNT(*),
			COALESCE(AVG(total_price), 0)::float8,
			COALESCE(SUM(volume_m3), 0)::float8
		FROM quote_journal
	`

	return r.db.QueryRowContext(ctx, query).Scan(
		&stats.TotalQuotes,
		&stats.AverageTotalPrice,
		&stats.TotalVolumeM3,
	)
}

func (r *quoteJournalRepository) getVehicleStats(ctx context.Context, stats *domain.QuoteStatistics) error {
	query := `
		SELECT vehicle, COUNT(*) AS count
		FROM quote_journal
		GROUP BY vehicle
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return fmt.Errorf("query vehicle stats: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var vehicle string
		var count int
		if err := rows.Scan(&vehicle, &count); err != nil {
			return fmt.Errorf("scan vehicle stats: %w", err)
		}
		stats.ByVehicle[domain.VehicleClass(vehicle)] = count
	}

	if err := rows.Err(); err != nil {
		return fmt.Errorf("vehicle stats rows error: %w", err)
	}
	return nil
}
