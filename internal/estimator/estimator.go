// Package estimator рассчитывает стоимость перевозки по маршруту, объёму груза
// и классу транспорта. Расчёт чистый: без ввода-вывода и изменяемого состояния.
package estimator

import (
	"errors"
	"math"
	"regexp"
	"strconv"
	"strings"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/tariff"
)

// Ошибки валидации входных данных. Все восстановимые и возвращаются вызывающему.
var (
	ErrMissingSelection = errors.New("origin and destination must be selected")
	ErrSameCity         = errors.New("origin and destination must differ")
	ErrNoRouteData      = errors.New("no distance data for route")
	ErrInvalidVolume    = errors.New("volume must be a positive number")
)

// Estimator считает котировки по тарифу
type Estimator struct {
	tariff *tariff.Tariff
}

// New создает калькулятор; nil означает встроенный тариф
func New(t *tariff.Tariff) *Estimator {
	if t == nil {
		t = tariff.Default()
	}
	return &Estimator{tariff: t}
}

// Tariff возвращает тариф калькулятора
func (e *Estimator) Tariff() *tariff.Tariff {
	return e.tariff
}

// Estimate рассчитывает стоимость доставки.
// Проверки выполняются в порядке: выбор городов, совпадение городов,
// наличие расстояния, объём.
func (e *Estimator) Estimate(req domain.EstimateRequest) (domain.EstimateResult, error) {
	distance, err := e.CheckRoute(req.Origin, req.Destination)
	if err != nil {
		return domain.EstimateResult{}, err
	}

	if !validVolume(req.VolumeM3) {
		return domain.EstimateResult{}, ErrInvalidVolume
	}

	perKm, ok := e.tariff.VehicleRate(req.Vehicle)
	if !ok {
		return domain.EstimateResult{}, domain.ErrUnknownVehicle
	}
	perM3 := e.tariff.PerCubicMeterRate()

	basePrice := req.VolumeM3 * float64(perM3)
	kmPrice := distance * perKm

	// Тариф ограничивает kmPrice, поэтому выйти за MaxPrice может только объём
	total := basePrice + float64(kmPrice)
	if total >= tariff.MaxPrice {
		return domain.EstimateResult{}, ErrInvalidVolume
	}

	return domain.EstimateResult{
		DistanceKm: distance,
		TotalPrice: roundHalfUp(total),
		Vehicle:    req.Vehicle,
		VolumeM3:   req.VolumeM3,
		Breakdown: domain.Breakdown{
			BasePrice:         basePrice,
			PerCubicMeterRate: perM3,
			PerKmRate:         perKm,
			KmPrice:           kmPrice,
		},
	}, nil
}

// CheckRoute выполняет проверки маршрута и возвращает расстояние
func (e *Estimator) CheckRoute(origin, destination domain.City) (int, error) {
	if origin.IsZero() || destination.IsZero() {
		return 0, ErrMissingSelection
	}
	if origin == destination {
		return 0, ErrSameCity
	}

	distance, ok := e.tariff.Distance(origin, destination)
	if !ok {
		return 0, ErrNoRouteData
	}
	return distance, nil
}

// volumePattern - десятичное число: цифры, необязательная дробная часть через точку
// или запятую, необязательный показатель степени. Синтаксис Go (0x.., 1_000) не принимается.
var volumePattern = regexp.MustCompile(`^\+?(\d+([.,]\d*)?|[.,]\d+)([eE][+-]?\d+)?$`)

// ParseVolume разбирает объём из пользовательского ввода.
// Допускается запятая как десятичный разделитель.
func ParseVolume(raw string) (float64, error) {
	s := strings.TrimSpace(raw)
	if !volumePattern.MatchString(s) {
		return 0, ErrInvalidVolume
	}
	s = strings.Replace(s, ",", ".", 1)

	v, err := strconv.ParseFloat(s, 64)
	if err != nil || !validVolume(v) {
		return 0, ErrInvalidVolume
	}
	return v, nil
}

func validVolume(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0) && v > 0
}

// roundHalfUp округляет до целого, половины в большую сторону
func roundHalfUp(v float64) int64 {
	return int64(math.Floor(v + 0.5))
}
