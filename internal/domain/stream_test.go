package domain

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestNewQuoteIssuedEvent(t *testing.T) {
	q := &Quote{
		ID: uuid.New(),
		Request: EstimateRequest{
			Origin:      CityMoscow,
			Destination: CitySaintPeterburg,
			VolumeM3:    2,
			Vehicle:     VehicleLight,
		},
		Result: EstimateResult{
			DistanceKm: 710,
			TotalPrice: 38950,
			Vehicle:    VehicleLight,
			VolumeM3:   2,
		},
		IssuedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}

	e := NewQuoteIssuedEvent(q)

	assert.Equal(t, q.ID, e.QuoteID)
	assert.Equal(t, CityMoscow, e.Origin)
	assert.Equal(t, CitySaintPeterburg, e.Destination)
	assert.Equal(t, VehicleLight, e.Vehicle)
	assert.Equal(t, 710, e.DistanceKm)
	assert.Equal(t, int64(38950), e.TotalPrice)
	assert.Equal(t, q.IssuedAt, e.IssuedAt)
	assert.True(t, e.Validate())
}

func TestQuoteIssuedEvent_Validate(t *testing.T) {
	valid := QuoteIssuedEvent{
		QuoteID:     uuid.New(),
		Origin:      CityKazan,
		Destination: CityPerm,
		Vehicle:     VehicleHeavy,
		VolumeM3:    1,
		DistanceKm:  630,
		TotalPrice:  47600,
	}

	tests := []struct {
		name     string
		mutate   func(e *QuoteIssuedEvent)
		expected bool
	}{
		{name: "valid event", mutate: func(e *QuoteIssuedEvent) {}, expected: true},
		{name: "nil quote id", mutate: func(e *QuoteIssuedEvent) { e.QuoteID = uuid.Nil }, expected: false},
		{name: "missing origin", mutate: func(e *QuoteIssuedEvent) { e.Origin = "" }, expected: false},
		{name: "unknown vehicle", mutate: func(e *QuoteIssuedEvent) { e.Vehicle = "truck" }, expected: false},
		{name: "zero distance", mutate: func(e *QuoteIssuedEvent) { e.DistanceKm = 0 }, expected: false},
		{name: "zero price", mutate: func(e *QuoteIssuedEvent) { e.TotalPrice = 0 }, expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e := valid
			tt.mutate(&e)
			assert.Equal(t, tt.expected, e.Validate())
		})
	}
}

func TestParseVehicleClass(t *testing.T) {
	tests := []struct {
		raw      string
		expected VehicleClass
		wantErr  bool
	}{
		{raw: "gazelle", expected: VehicleLight},
		{raw: " Kamaz ", expected: VehicleHeavy},
		{raw: "light", expected: VehicleLight},
		{raw: "HEAVY", expected: VehicleHeavy},
		{raw: "Газель", expected: VehicleLight},
		{raw: "", wantErr: true},
		{raw: "truck", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.raw, func(t *testing.T) {
			v, err := ParseVehicleClass(tt.raw)
			if tt.wantErr {
				assert.ErrorIs(t, err, ErrUnknownVehicle)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.expected, v)
		})
	}
}

func TestRoute_Reverse(t *testing.T) {
	r := Route{Origin: CityMoscow, Destination: CityKazan}
	assert.Equal(t, Route{Origin: CityKazan, Destination: CityMoscow}, r.Reverse())
	assert.Equal(t, r, r.Reverse().Reverse())
}
