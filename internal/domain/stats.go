package domain

import "time"

// QuoteStatistics - агрегированная статистика журнала котировок
type QuoteStatistics struct {
	TotalQuotes       int                  `json:"total_quotes"`
	ByVehicle         map[VehicleClass]int `json:"by_vehicle"`
	TopRoutes         []RouteCount         `json:"top_routes"`
	AverageTotalPrice float64              `json:"average_total_price"`
	TotalVolumeM3     float64              `json:"total_volume_m3"`
	LastUpdated       time.Time            `json:"last_updated"`
}

// RouteCount - количество котировок по маршруту
type RouteCount struct {
	Origin      City `json:"origin" db:"origin"`
	Destination City `json:"destination" db:"destination"`
	Count       int  `json:"count" db:"count"`
}
