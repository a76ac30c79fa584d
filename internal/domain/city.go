package domain

// City - город из справочника тарифа, используется только как ключ поиска
type City string

// Города, присутствующие во встроенном тарифе
const (
	CityMoscow         City = "Москва"
	CitySaintPeterburg City = "Санкт-Петербург"
	CityYekaterinburg  City = "Екатеринбург"
	CityPerm           City = "Пермь"
	CityKazan          City = "Казань"
	CityKrasnodar      City = "Краснодар"
	CityNizhnyNovgorod City = "Нижний Новгород"
)

// String возвращает название города
func (c City) String() string {
	return string(c)
}

// IsZero - город не выбран
func (c City) IsZero() bool {
	return c == ""
}

// Route - упорядоченная пара (откуда, куда)
type Route struct {
	Origin      City `json:"origin" db:"origin" yaml:"from"`
	Destination City `json:"destination" db:"destination" yaml:"to"`
}

// Reverse возвращает обратный маршрут
func (r Route) Reverse() Route {
	return Route{Origin: r.Destination, Destination: r.Origin}
}

// RouteDistance - маршрут с расстоянием в километрах
type RouteDistance struct {
	Route
	DistanceKm int `json:"distance_km" db:"distance_km" yaml:"km"`
}
