package repository

import (
	"context"

	"github.com/freight-estimator/internal/domain"
)

// RouteRepository - таблица расстояний в базе данных
type RouteRepository interface {
	// LoadDistances читает все направленные маршруты
	LoadDistances(ctx context.Context) ([]domain.RouteDistance, error)

	// ReplaceDistances атомарно заменяет таблицу расстояний
	ReplaceDistances(ctx context.Context, routes []domain.RouteDistance) error
}
