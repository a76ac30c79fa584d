package domain

import (
	"time"

	"github.com/google/uuid"
)

// EstimateRequest - входные данные расчёта
type EstimateRequest struct {
	Origin      City         `json:"origin"`
	Destination City         `json:"destination"`
	VolumeM3    float64      `json:"volume_m3"`
	Vehicle     VehicleClass `json:"vehicle"`
}

// Route возвращает маршрут запроса
func (r EstimateRequest) Route() Route {
	return Route{Origin: r.Origin, Destination: r.Destination}
}

// Breakdown - составляющие цены
type Breakdown struct {
	BasePrice         float64 `json:"base_price"`
	PerCubicMeterRate int     `json:"per_cubic_meter_rate"`
	PerKmRate         int     `json:"per_km_rate"`
	KmPrice           int     `json:"km_price"`
}

// EstimateResult - результат расчёта стоимости
type EstimateResult struct {
	DistanceKm int          `json:"distance_km"`
	TotalPrice int64        `json:"total_price"`
	Vehicle    VehicleClass `json:"vehicle"`
	VolumeM3   float64      `json:"volume_m3"`
	Breakdown  Breakdown    `json:"breakdown"`
}

// Quote - выданная котировка
type Quote struct {
	ID       uuid.UUID       `json:"id"`
	Request  EstimateRequest `json:"request"`
	Result   EstimateResult  `json:"result"`
	IssuedAt time.Time       `json:"issued_at"`
}
