package postgres

import (
	"context"
	"fmt"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/jmoiron/sqlx"
	"go.uber.org/zap"
)

type routeRepository struct {
	db     *DB
	logger *zap.Logger
}

// NewRouteRepository создает репозиторий таблицы расстояний
func NewRouteRepository(db *DB, logger *zap.Logger) repository.RouteRepository {
	return &routeRepository{
		db:     db,
		logger: logger,
	}
}

// LoadDistances читает все маршруты в порядке добавления
func (r *routeRepository) LoadDistances(ctx context.Context) ([]domain.RouteDistance, error) {
	query := `
		SELECT origin, destination, distance_km
		FROM route_distances
		ORDER BY id
	`

	var routes []domain.RouteDistance
	if err := r.db.SelectContext(ctx, &routes, query); err != nil {
		return nil, fmt.Errorf("select route distances: %w", err)
	}

	r.logger.Debug("Route distances loaded", zap.Int("count", len(routes)))
	return routes, nil
}

// ReplaceDistances очищает таблицу и записывает маршруты заново в одной транзакции
func (r *routeRepository) ReplaceDistances(ctx context.Context, routes []domain.RouteDistance) error {
	err := r.db.withTx(ctx, func(tx *sqlx.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM route_distances`); err != nil {
			return fmt.Errorf("clear route distances: %w", err)
		}
		if len(routes) == 0 {
			return nil
		}

		query := `
			INSERT INTO route_distances (origin, destination, distance_km)
			VALUES (:origin, :destination, :distance_km)
		`
		if _, err := tx.NamedExecContext(ctx, query, routes); err != nil {
			return fmt.Errorf("insert route distances: %w", err)
		}
		return nil
	})
	if err != nil {
		r.logger.Error("Failed to replace route distances", zap.Error(err))
		return err
	}

	r.logger.Info("Route distances replaced", zap.Int("count", len(routes)))
	return nil
}
