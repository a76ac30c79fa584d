package dto

import (
	"time"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/pkg/quotefmt"
)

// QuoteResponse - выданная котировка
type QuoteResponse struct {
	ID                  string              `json:"id"`
	Origin              domain.City         `json:"origin"`
	Destination         domain.City         `json:"destination"`
	Vehicle             domain.VehicleClass `json:"vehicle"`
	VehicleTitle        string              `json:"vehicle_title"`
	VolumeM3            float64             `json:"volume_m3"`
	DistanceKm          int                 `json:"distance_km"`
	TotalPrice          int64               `json:"total_price"`
	TotalPriceFormatted string              `json:"total_price_formatted"`
	Breakdown           domain.Breakdown    `json:"breakdown"`
	Summary             string              `json:"summary"`
	Disclaimer          string              `json:"disclaimer"`
	IssuedAt            time.Time           `json:"issued_at"`
}

// NewQuoteResponse собирает ответ из котировки
func NewQuoteResponse(q *domain.Quote) *QuoteResponse {
	return &QuoteResponse{
		ID:                  q.ID.String(),
		Origin:              q.Request.Origin,
		Destination:         q.Request.Destination,
		Vehicle:             q.Result.Vehicle,
		VehicleTitle:        q.Result.Vehicle.Title(),
		VolumeM3:            q.Result.VolumeM3,
		DistanceKm:          q.Result.DistanceKm,
		TotalPrice:          q.Result.TotalPrice,
		TotalPriceFormatted: quotefmt.Price(q.Result.TotalPrice),
		Breakdown:           q.Result.Breakdown,
		Summary:             quotefmt.Summary(q.Result),
		Disclaimer:          quotefmt.Disclaimer,
		IssuedAt:            q.IssuedAt,
	}
}

// CityInfo - город тарифа
type CityInfo struct {
	Name   domain.City `json:"name"`
	Routes int         `json:"routes"`
}

// CitiesResponse - список городов в порядке отображения
type CitiesResponse struct {
	Cities []CityInfo `json:"cities"`
	Total  int        `json:"total"`
}

// RouteInfo - направленный маршрут тарифа
type RouteInfo struct {
	Origin      domain.City `json:"origin"`
	Destination domain.City `json:"destination"`
	DistanceKm  int         `json:"distance_km"`
}

// RoutesResponse - список маршрутов
type RoutesResponse struct {
	Routes []RouteInfo `json:"routes"`
	Total  int         `json:"total"`
}

// VehicleRate - ставка класса транспорта
type VehicleRate struct {
	Class     domain.VehicleClass `json:"class"`
	Title     string              `json:"title"`
	PerKmRate int                 `json:"per_km_rate"`
}

// TariffResponse - сводка загруженного тарифа
type TariffResponse struct {
	PerCubicMeterRate int           `json:"per_cubic_meter_rate"`
	Vehicles          []VehicleRate `json:"vehicles"`
	Cities            int           `json:"cities"`
	Routes            int           `json:"routes"`
	Symmetric         bool          `json:"symmetric"`
}
