package dto

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strconv"
)

// QuoteRequest - запрос на расчёт стоимости доставки.
// Смысловые проверки (пустые города, объём, тип транспорта) выполняет расчёт,
// чтобы клиент получил типизированный код ошибки.
type QuoteRequest struct {
	Origin      string `json:"origin" validate:"max=100"`
	Destination string `json:"destination" validate:"max=100"`
	Volume      Volume `json:"volume" swaggertype:"string" example:"2.5"`
	Vehicle     string `json:"vehicle" validate:"max=32" example:"gazelle"`
}

// RoutesRequest - фильтр списка маршрутов
type RoutesRequest struct {
	Origin string `query:"origin" validate:"omitempty,max=100"`
}

// Volume - объём в том виде, как его прислал клиент: число или строка.
// Разбор и проверка выполняются при расчёте.
type Volume string

// UnmarshalJSON принимает JSON число, строку или null
func (v *Volume) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*v = ""
		return nil
	}

	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*v = Volume(s)
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return fmt.Errorf("volume must be a number or a string: %w", err)
	}
	*v = Volume(n.String())
	return nil
}

// MarshalJSON отдаёт числовой объём числом, остальное строкой
func (v Volume) MarshalJSON() ([]byte, error) {
	raw := []byte(v)
	if _, err := strconv.ParseFloat(string(v), 64); err == nil && json.Valid(raw) {
		return raw, nil
	}
	return json.Marshal(string(v))
}

// String returns the raw value
func (v Volume) String() string {
	return string(v)
}
