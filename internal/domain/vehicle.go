package domain

import (
	"errors"
	"strings"
)

// VehicleClass - тарифная категория транспорта
type VehicleClass string

const (
	// VehicleLight - Газель
	VehicleLight VehicleClass = "gazelle"
	// VehicleHeavy - Камаз
	VehicleHeavy VehicleClass = "kamaz"
)

// ErrUnknownVehicle возвращается при разборе неизвестного класса транспорта
var ErrUnknownVehicle = errors.New("unknown vehicle class")

// VehicleClasses - все классы в порядке отображения
var VehicleClasses = []VehicleClass{VehicleLight, VehicleHeavy}

// ParseVehicleClass разбирает метку класса транспорта.
// Принимаются исходные метки (gazelle, kamaz) и синонимы (light, heavy).
func ParseVehicleClass(raw string) (VehicleClass, error) {
	switch strings.ToLower(strings.TrimSpace(raw)) {
	case "gazelle", "light", "газель":
		return VehicleLight, nil
	case "kamaz", "heavy", "камаз":
		return VehicleHeavy, nil
	default:
		return "", ErrUnknownVehicle
	}
}

// IsValid проверяет, что класс входит в перечисление
func (v VehicleClass) IsValid() bool {
	return v == VehicleLight || v == VehicleHeavy
}

// Title - название для пользователя
func (v VehicleClass) Title() string {
	switch v {
	case VehicleLight:
		return "Газель"
	case VehicleHeavy:
		return "Камаз"
	default:
		return string(v)
	}
}

func (v VehicleClass) String() string {
	return string(v)
}
