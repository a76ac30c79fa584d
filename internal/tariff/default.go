package tariff

import "github.com/freight-estimator/internal/domain"

// Ставки встроенного тарифа
const (
	DefaultPerCubicMeterRate = 3500
	DefaultLightRate         = 45
	DefaultHeavyRate         = 70
)

// DefaultVehicleRates - ставки за километр встроенного тарифа
func DefaultVehicleRates() map[domain.VehicleClass]int {
	return map[domain.VehicleClass]int{
		domain.VehicleLight: DefaultLightRate,
		domain.VehicleHeavy: DefaultHeavyRate,
	}
}

var defaultCities = []domain.City{
	domain.CityMoscow,
	domain.CitySaintPeterburg,
	domain.CityYekaterinburg,
	domain.CityPerm,
	domain.CityKazan,
	domain.CityKrasnodar,
	domain.CityNizhnyNovgorod,
}

// Каждое направление хранится отдельной записью
var defaultDistances = map[domain.City]map[domain.City]int{
	domain.CityMoscow: {
		domain.CitySaintPeterburg: 710,
		domain.CityYekaterinburg:  1800,
		domain.CityPerm:           1400,
		domain.CityKazan:          820,
		domain.CityKrasnodar:      1350,
		domain.CityNizhnyNovgorod: 420,
	},
	domain.CitySaintPeterburg: {
		domain.CityMoscow:         710,
		domain.CityYekaterinburg:  2200,
		domain.CityPerm:           1800,
		domain.CityKazan:          1500,
		domain.CityKrasnodar:      1920,
		domain.CityNizhnyNovgorod: 1100,
	},
	domain.CityYekaterinburg: {
		domain.CityMoscow:         1800,
		domain.CitySaintPeterburg: 2200,
		domain.CityPerm:           360,
		domain.CityKazan:          900,
		domain.CityKrasnodar:      2600,
		domain.CityNizhnyNovgorod: 1400,
	},
	domain.CityPerm: {
		domain.CityMoscow:         1400,
		domain.CitySaintPeterburg: 1800,
		domain.CityYekaterinburg:  360,
		domain.CityKazan:          630,
		domain.CityKrasnodar:      2100,
		domain.CityNizhnyNovgorod: 950,
	},
	domain.CityKazan: {
		domain.CityMoscow:         820,
		domain.CitySaintPeterburg: 1500,
		domain.CityYekaterinburg:  900,
		domain.CityPerm:           630,
		domain.CityKrasnodar:      1700,
		domain.CityNizhnyNovgorod: 390,
	},
	domain.CityKrasnodar: {
		domain.CityMoscow:         1350,
		domain.CitySaintPeterburg: 1920,
		domain.CityYekaterinburg:  2600,
		domain.CityPerm:           2100,
		domain.CityKazan:          1700,
		domain.CityNizhnyNovgorod: 1600,
	},
	domain.CityNizhnyNovgorod: {
		domain.CityMoscow:         420,
		domain.CitySaintPeterburg: 1100,
		domain.CityYekaterinburg:  1400,
		domain.CityPerm:           950,
		domain.CityKazan:          390,
		domain.CityKrasnodar:      1600,
	},
}

// DefaultRoutes возвращает маршруты встроенного тарифа
func DefaultRoutes() []domain.RouteDistance {
	routes := make([]domain.RouteDistance, 0, len(defaultCities)*(len(defaultCities)-1))
	for _, from := range defaultCities {
		for _, to := range defaultCities {
			km, ok := defaultDistances[from][to]
			if !ok {
				continue
			}
			routes = append(routes, domain.RouteDistance{
				Route:      domain.Route{Origin: from, Destination: to},
				DistanceKm: km,
			})
		}
	}
	return routes
}

// DefaultCities возвращает справочник городов встроенного тарифа
func DefaultCities() []domain.City {
	out := make([]domain.City, len(defaultCities))
	copy(out, defaultCities)
	return out
}

// Default строит встроенный тариф. Данные статичны, поэтому ошибка валидации здесь
// означает поломку самой таблицы.
func Default() *Tariff {
	t, err := New(DefaultCities(), DefaultRoutes(), DefaultVehicleRates(), DefaultPerCubicMeterRate)
	if err != nil {
		panic(err)
	}
	return t
}
