package testhelpers

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/repository/postgres"
)

// NewEvent builds a journal event for tests
func NewEvent(origin, destination domain.City, vehicle domain.VehicleClass, volume float64, price int64) domain.QuoteIssuedEvent {
	return domain.QuoteIssuedEvent{
		QuoteID:     uuid.New(),
		Origin:      origin,
		Destination: destination,
		Vehicle:     vehicle,
		VolumeM3:    volume,
		DistanceKm:  100,
		TotalPrice:  price,
		IssuedAt:    time.Now().UTC(),
	}
}

// CountRows returns the number of rows in a table
func CountRows(db *postgres.DB, table string) (int, error) {
	var n int
	err := db.GetContext(context.Background(), &n, fmt.Sprintf("SELECT COUNT(*) FROM %s", table))
	if err != nil {
		return 0, fmt.Errorf("count rows in %s: %w", table, err)
	}
	return n, nil
}
