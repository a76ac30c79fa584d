package domain

import (
	"time"

	"github.com/google/uuid"
)

// Stream names
const (
	StreamQuoteIssued = "stream:quote:issued"
)

// QuoteIssuedEvent - событие о выданной котировке, уходит в журнал
type QuoteIssuedEvent struct {
	QuoteID     uuid.UUID    `json:"quote_id" db:"quote_id"`
	Origin      City         `json:"origin" db:"origin"`
	Destination City         `json:"destination" db:"destination"`
	Vehicle     VehicleClass `json:"vehicle" db:"vehicle"`
	VolumeM3    float64      `json:"volume_m3" db:"volume_m3"`
	DistanceKm  int          `json:"distance_km" db:"distance_km"`
	TotalPrice  int64        `json:"total_price" db:"total_price"`
	IssuedAt    time.Time    `json:"issued_at" db:"issued_at"`
}

// NewQuoteIssuedEvent собирает событие из котировки
func NewQuoteIssuedEvent(q *Quote) QuoteIssuedEvent {
	return QuoteIssuedEvent{
		QuoteID:     q.ID,
		Origin:      q.Request.Origin,
		Destination: q.Request.Destination,
		Vehicle:     q.Result.Vehicle,
		VolumeM3:    q.Result.VolumeM3,
		DistanceKm:  q.Result.DistanceKm,
		TotalPrice:  q.Result.TotalPrice,
		IssuedAt:    q.IssuedAt,
	}
}

// Validate проверяет минимальную целостность события перед записью
func (e *QuoteIssuedEvent) Validate() bool {
	return e.QuoteID != uuid.Nil &&
		!e.Origin.IsZero() && !e.Destination.IsZero() &&
		e.Vehicle.IsValid() && e.DistanceKm > 0 && e.TotalPrice > 0
}

// StreamMessage - сообщение из Redis Stream
type StreamMessage struct {
	ID   string
	Data string
}
