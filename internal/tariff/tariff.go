// Package tariff содержит неизменяемую конфигурацию ценообразования:
// справочник городов, ориентированную таблицу расстояний и ставки.
// Тариф загружается один раз при старте и после этого только читается,
// поэтому безопасен для конкурентного использования без блокировок.
package tariff

import (
	"errors"
	"fmt"
	"sort"

	"github.com/freight-estimator/internal/domain"
)

// ErrInvalidTariff - тариф не прошёл валидацию
var ErrInvalidTariff = errors.New("invalid tariff")

// MaxPrice - верхняя граница цены в рублях: до 2^53 целые значения float64 точны
// и гарантированно помещаются в int64
const MaxPrice = 1 << 53

// Tariff - таблица расстояний и ставки
type Tariff struct {
	cities            []domain.City
	cityIndex         map[domain.City]int
	distances         map[domain.Route]int
	vehicleRates      map[domain.VehicleClass]int
	perCubicMeterRate int
}

// New валидирует входные данные и строит тариф.
// Если список городов пуст, он выводится из маршрутов в порядке появления.
func New(
	cities []domain.City,
	routes []domain.RouteDistance,
	vehicleRates map[domain.VehicleClass]int,
	perCubicMeterRate int,
) (*Tariff, error) {
	t := &Tariff{
		cityIndex:         make(map[domain.City]int),
		distances:         make(map[domain.Route]int, len(routes)),
		vehicleRates:      make(map[domain.VehicleClass]int, len(vehicleRates)),
		perCubicMeterRate: perCubicMeterRate,
	}

	if perCubicMeterRate <= 0 {
		return nil, fmt.Errorf("%w: per cubic meter rate must be positive, got %d", ErrInvalidTariff, perCubicMeterRate)
	}
	if int64(perCubicMeterRate) >= MaxPrice {
		return nil, fmt.Errorf("%w: per cubic meter rate %d is too large", ErrInvalidTariff, perCubicMeterRate)
	}

	var maxRate int
	for _, v := range domain.VehicleClasses {
		rate, ok := vehicleRates[v]
		if !ok {
			return nil, fmt.Errorf("%w: no rate for vehicle %q", ErrInvalidTariff, v)
		}
		if rate <= 0 {
			return nil, fmt.Errorf("%w: rate for vehicle %q must be positive, got %d", ErrInvalidTariff, v, rate)
		}
		if rate > maxRate {
			maxRate = rate
		}
		t.vehicleRates[v] = rate
	}
	for v := range vehicleRates {
		if !v.IsValid() {
			return nil, fmt.Errorf("%w: unknown vehicle %q", ErrInvalidTariff, v)
		}
	}

	for _, c := range cities {
		if c.IsZero() {
			return nil, fmt.Errorf("%w: empty city name", ErrInvalidTariff)
		}
		if _, dup := t.cityIndex[c]; dup {
			return nil, fmt.Errorf("%w: duplicate city %q", ErrInvalidTariff, c)
		}
		t.cityIndex[c] = len(t.cities)
		t.cities = append(t.cities, c)
	}
	deriveCities := len(cities) == 0

	for _, rd := range routes {
		if rd.Origin.IsZero() || rd.Destination.IsZero() {
			return nil, fmt.Errorf("%w: route with empty city", ErrInvalidTariff)
		}
		if rd.Origin == rd.Destination {
			return nil, fmt.Errorf("%w: self route for %q", ErrInvalidTariff, rd.Origin)
		}
		if rd.DistanceKm <= 0 {
			return nil, fmt.Errorf("%w: distance %s -> %s must be positive, got %d",
				ErrInvalidTariff, rd.Origin, rd.Destination, rd.DistanceKm)
		}
		// distance * rate не должно выходить за MaxPrice ни для одного класса транспорта
		if int64(rd.DistanceKm) >= MaxPrice/int64(maxRate) {
			return nil, fmt.Errorf("%w: distance %s -> %s (%d km) overflows price at rate %d",
				ErrInvalidTariff, rd.Origin, rd.Destination, rd.DistanceKm, maxRate)
		}
		if _, dup := t.distances[rd.Route]; dup {
			return nil, fmt.Errorf("%w: duplicate route %s -> %s", ErrInvalidTariff, rd.Origin, rd.Destination)
		}
		for _, c := range []domain.City{rd.Origin, rd.Destination} {
			if _, known := t.cityIndex[c]; known {
				continue
			}
			if !deriveCities {
				return nil, fmt.Errorf("%w: route references unknown city %q", ErrInvalidTariff, c)
			}
			t.cityIndex[c] = len(t.cities)
			t.cities = append(t.cities, c)
		}
		t.distances[rd.Route] = rd.DistanceKm
	}

	if len(t.cities) == 0 {
		return nil, fmt.Errorf("%w: no cities", ErrInvalidTariff)
	}

	return t, nil
}

// Distance возвращает расстояние по направленному маршруту
func (t *Tariff) Distance(origin, destination domain.City) (int, bool) {
	km, ok := t.distances[domain.Route{Origin: origin, Destination: destination}]
	return km, ok
}

// VehicleRate возвращает ставку за километр для класса транспорта
func (t *Tariff) VehicleRate(v domain.VehicleClass) (int, bool) {
	rate, ok := t.vehicleRates[v]
	return rate, ok
}

// VehicleRates возвращает копию ставок
func (t *Tariff) VehicleRates() map[domain.VehicleClass]int {
	rates := make(map[domain.VehicleClass]int, len(t.vehicleRates))
	for k, v := range t.vehicleRates {
		rates[k] = v
	}
	return rates
}

// PerCubicMeterRate - ставка за кубометр
func (t *Tariff) PerCubicMeterRate() int {
	return t.perCubicMeterRate
}

// Cities возвращает копию справочника городов в порядке отображения
func (t *Tariff) Cities() []domain.City {
	out := make([]domain.City, len(t.cities))
	copy(out, t.cities)
	return out
}

// HasCity проверяет наличие города в справочнике
func (t *Tariff) HasCity(c domain.City) bool {
	_, ok := t.cityIndex[c]
	return ok
}

// RouteCount - количество направленных маршрутов
func (t *Tariff) RouteCount() int {
	return len(t.distances)
}

// Routes возвращает все маршруты, отсортированные по порядку городов отправления,
// затем по расстоянию
func (t *Tariff) Routes() []domain.RouteDistance {
	out := make([]domain.RouteDistance, 0, len(t.distances))
	for r, km := range t.distances {
		out = append(out, domain.RouteDistance{Route: r, DistanceKm: km})
	}
	t.sortRoutes(out)
	return out
}

// RoutesFrom возвращает маршруты из указанного города
func (t *Tariff) RoutesFrom(origin domain.City) []domain.RouteDistance {
	out := make([]domain.RouteDistance, 0, len(t.cities))
	for r, km := range t.distances {
		if r.Origin == origin {
			out = append(out, domain.RouteDistance{Route: r, DistanceKm: km})
		}
	}
	t.sortRoutes(out)
	return out
}

// MissingReverse возвращает маршруты, для которых нет обратной записи
func (t *Tariff) MissingReverse() []domain.Route {
	var out []domain.Route
	for _, rd := range t.Routes() {
		if _, ok := t.distances[rd.Route.Reverse()]; !ok {
			out = append(out, rd.Route.Reverse())
		}
	}
	return out
}

// Asymmetric возвращает маршруты, у которых расстояние туда и обратно различается
func (t *Tariff) Asymmetric() []domain.Route {
	var out []domain.Route
	for _, rd := range t.Routes() {
		back, ok := t.distances[rd.Route.Reverse()]
		if ok && back != rd.DistanceKm {
			out = append(out, rd.Route)
		}
	}
	return out
}

func (t *Tariff) sortRoutes(routes []domain.RouteDistance) {
	sort.Slice(routes, func(i, j int) bool {
		a, b := routes[i], routes[j]
		if a.Origin != b.Origin {
			return t.cityIndex[a.Origin] < t.cityIndex[b.Origin]
		}
		if a.DistanceKm != b.DistanceKm {
			return a.DistanceKm < b.DistanceKm
		}
		return t.cityIndex[a.Destination] < t.cityIndex[b.Destination]
	})
}
