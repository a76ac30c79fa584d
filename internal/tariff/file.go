package tariff

import (
	"bytes"
	"fmt"
	"io"
	"os"

	"github.com/freight-estimator/internal/domain"
	"gopkg.in/yaml.v3"
)

// Document - представление тарифа в YAML файле
type Document struct {
	PerCubicMeter int            `yaml:"per_cubic_meter"`
	Vehicles      map[string]int `yaml:"vehicles"`
	Cities        []string       `yaml:"cities,omitempty"`
	// Mirror дополняет отсутствующие обратные направления, не перезаписывая явные
	Mirror bool            `yaml:"mirror,omitempty"`
	Routes []DocumentRoute `yaml:"routes"`
}

// DocumentRoute - запись маршрута в файле
type DocumentRoute struct {
	From string `yaml:"from"`
	To   string `yaml:"to"`
	Km   int    `yaml:"km"`
}

// LoadFile читает тариф из YAML файла
func LoadFile(path string) (*Tariff, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read tariff file: %w", err)
	}

	t, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("tariff file %s: %w", path, err)
	}
	return t, nil
}

// Parse разбирает YAML документ тарифа
func Parse(data []byte) (*Tariff, error) {
	var doc Document
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("%w: decode yaml: %v", ErrInvalidTariff, err)
	}
	return FromDocument(&doc)
}

// FromDocument строит тариф из документа
func FromDocument(doc *Document) (*Tariff, error) {
	rates := make(map[domain.VehicleClass]int, len(doc.Vehicles))
	for label, rate := range doc.Vehicles {
		v, err := domain.ParseVehicleClass(label)
		if err != nil {
			return nil, fmt.Errorf("%w: vehicle %q: %v", ErrInvalidTariff, label, err)
		}
		if _, dup := rates[v]; dup {
			return nil, fmt.Errorf("%w: vehicle %q priced twice", ErrInvalidTariff, v)
		}
		rates[v] = rate
	}

	cities := make([]domain.City, 0, len(doc.Cities))
	for _, c := range doc.Cities {
		cities = append(cities, domain.City(c))
	}

	routes := make([]domain.RouteDistance, 0, len(doc.Routes)*2)
	explicit := make(map[domain.Route]struct{}, len(doc.Routes))
	for _, r := range doc.Routes {
		rd := domain.RouteDistance{
			Route:      domain.Route{Origin: domain.City(r.From), Destination: domain.City(r.To)},
			DistanceKm: r.Km,
		}
		explicit[rd.Route] = struct{}{}
		routes = append(routes, rd)
	}

	if doc.Mirror {
		n := len(routes)
		for i := 0; i < n; i++ {
			rd := routes[i]
			back := rd.Route.Reverse()
			if _, ok := explicit[back]; ok {
				continue
			}
			explicit[back] = struct{}{}
			routes = append(routes, domain.RouteDistance{Route: back, DistanceKm: rd.DistanceKm})
		}
	}

	return New(cities, routes, rates, doc.PerCubicMeter)
}

// Document возвращает представление тарифа для сохранения в файл
func (t *Tariff) Document() *Document {
	doc := &Document{
		PerCubicMeter: t.perCubicMeterRate,
		Vehicles:      make(map[string]int, len(t.vehicleRates)),
		Cities:        make([]string, 0, len(t.cities)),
	}
	for v, rate := range t.vehicleRates {
		doc.Vehicles[string(v)] = rate
	}
	for _, c := range t.cities {
		doc.Cities = append(doc.Cities, string(c))
	}
	for _, rd := range t.Routes() {
		doc.Routes = append(doc.Routes, DocumentRoute{
			From: string(rd.Origin),
			To:   string(rd.Destination),
			Km:   rd.DistanceKm,
		})
	}
	return doc
}

// WriteYAML сериализует тариф в YAML
func (t *Tariff) WriteYAML(w io.Writer) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(t.Document()); err != nil {
		return fmt.Errorf("encode tariff: %w", err)
	}
	return enc.Close()
}
