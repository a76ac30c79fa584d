package usecase

import (
	"strings"

	"go.uber.org/zap"

	"github.com/freight-estimator/internal/domain"
	apperrors "github.com/freight-estimator/internal/pkg/errors"
	"github.com/freight-estimator/internal/tariff"
	"github.com/freight-estimator/internal/usecase/dto"
)

// RouteUseCase отдаёт справочники загруженного тарифа
type RouteUseCase struct {
	tariff *tariff.Tariff
	logger *zap.Logger
}

// NewRouteUseCase создает новый экземпляр RouteUseCase
func NewRouteUseCase(t *tariff.Tariff, logger *zap.Logger) *RouteUseCase {
	return &RouteUseCase{
		tariff: t,
		logger: logger,
	}
}

// ListCities возвращает города в порядке отображения
func (uc *RouteUseCase) ListCities() *dto.CitiesResponse {
	cities := uc.tariff.Cities()
	resp := &dto.CitiesResponse{
		Cities: make([]dto.CityInfo, 0, len(cities)),
		Total:  len(cities),
	}
	for _, c := range cities {
		resp.Cities = append(resp.Cities, dto.CityInfo{
			Name:   c,
			Routes: len(uc.tariff.RoutesFrom(c)),
		})
	}
	return resp
}

// ListRoutes возвращает маршруты; при пустом origin - все
func (uc *RouteUseCase) ListRoutes(req dto.RoutesRequest) (*dto.RoutesResponse, error) {
	var routes []domain.RouteDistance

	origin := domain.City(strings.TrimSpace(req.Origin))
	if origin.IsZero() {
		routes = uc.tariff.Routes()
	} else {
		if !uc.tariff.HasCity(origin) {
			return nil, apperrors.ErrUnknownCity.WithDetails(map[string]interface{}{
				"origin": origin.String(),
			})
		}
		routes = uc.tariff.RoutesFrom(origin)
	}

	resp := &dto.RoutesResponse{
		Routes: make([]dto.RouteInfo, 0, len(routes)),
		Total:  len(routes),
	}
	for _, r := range routes {
		resp.Routes = append(resp.Routes, dto.RouteInfo{
			Origin:      r.Origin,
			Destination: r.Destination,
			DistanceKm:  r.DistanceKm,
		})
	}
	return resp, nil
}

// GetTariff возвращает сводку тарифа: ставки и размер справочников
func (uc *RouteUseCase) GetTariff() *dto.TariffResponse {
	rates := uc.tariff.VehicleRates()
	resp := &dto.TariffResponse{
		PerCubicMeterRate: uc.tariff.PerCubicMeterRate(),
		Vehicles:          make([]dto.VehicleRate, 0, len(domain.VehicleClasses)),
		Cities:            len(uc.tariff.Cities()),
		Routes:            uc.tariff.RouteCount(),
		Symmetric:         len(uc.tariff.MissingReverse()) == 0 && len(uc.tariff.Asymmetric()) == 0,
	}
	for _, v := range domain.VehicleClasses {
		resp.Vehicles = append(resp.Vehicles, dto.VehicleRate{
			Class:     v,
			Title:     v.Title(),
			PerKmRate: rates[v],
		})
	}
	return resp
}
