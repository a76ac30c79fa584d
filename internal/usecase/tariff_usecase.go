package usecase

import (
	"context"
	"fmt"

	"github.com/freight-estimator/internal/config"
	"github.com/freight-estimator/internal/domain/repository"
	"github.com/freight-estimator/internal/tariff"
	"go.uber.org/zap"
)

// LoadTariff загружает тариф из источника, указанного в конфигурации.
// routeRepo нужен только для источника postgres.
func LoadTariff(
	ctx context.Context,
	cfg config.TariffConfig,
	routeRepo repository.RouteRepository,
	logger *zap.Logger,
) (*tariff.Tariff, error) {
	var (
		t   *tariff.Tariff
		err error
	)

	switch cfg.Source {
	case config.TariffSourceBuiltin, "":
		t = tariff.Default()
	case config.TariffSourceFile:
		t, err = tariff.LoadFile(cfg.File)
	case config.TariffSourcePostgres:
		if routeRepo == nil {
			return nil, fmt.Errorf("tariff source %q requires a route repository", cfg.Source)
		}
		t, err = loadTariffFromRepo(ctx, routeRepo)
	default:
		return nil, fmt.Errorf("unknown tariff source %q", cfg.Source)
	}
	if err != nil {
		return nil, fmt.Errorf("load tariff from %s: %w", cfg.Source, err)
	}

	if missing := t.MissingReverse(); len(missing) > 0 {
		logger.Warn("Tariff has one-way routes", zap.Int("count", len(missing)))
	}

	logger.Info("Tariff loaded",
		zap.String("source", cfg.Source),
		zap.Int("cities", len(t.Cities())),
		zap.Int("routes", t.RouteCount()),
	)
	return t, nil
}

func loadTariffFromRepo(ctx context.Context, routeRepo repository.RouteRepository) (*tariff.Tariff, error) {
	routes, err := routeRepo.LoadDistances(ctx)
	if err != nil {
		return nil, err
	}
	return tariff.New(nil, routes, tariff.DefaultVehicleRates(), tariff.DefaultPerCubicMeterRate)
}

// PushTariff записывает таблицу расстояний тарифа в базу данных
func PushTariff(ctx context.Context, t *tariff.Tariff, routeRepo repository.RouteRepository) error {
	if err := routeRepo.ReplaceDistances(ctx, t.Routes()); err != nil {
		return fmt.Errorf("push tariff: %w", err)
	}
	return nil
}
