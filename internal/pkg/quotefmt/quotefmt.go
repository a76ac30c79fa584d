// Package quotefmt отвечает только за представление котировок пользователю:
// русская локаль, разделители разрядов, дисклеймер и тексты ошибок.
package quotefmt

import (
	"errors"
	"fmt"
	"strconv"

	"github.com/freight-estimator/internal/domain"
	"github.com/freight-estimator/internal/estimator"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Disclaimer выводится под каждой котировкой
const Disclaimer = "*Цена указана с учетом НДС 20%, конечная стоимость может отличаться от заявленной " +
	"в зависимости от дополнительных услуг и условий перевозки, а также от объёма и веса груза. " +
	"Также возможны скидки при больших объемах перевозок."

// Тексты ошибок для пользователя
const (
	MsgMissingSelection = "Пожалуйста, выберите оба города и укажите объем."
	MsgSameCity         = "Города отправления и назначения должны отличаться."
	MsgNoRouteData      = "Нет данных о расстоянии между выбранными городами."
	MsgInvalidVolume    = "Объем должен быть положительным числом."
	MsgUnknownVehicle   = "Выберите тип транспорта: Газель или Камаз."
	MsgUnknown          = "Не удалось рассчитать стоимость доставки."
)

var printer = message.NewPrinter(language.Russian)

// Summary - однострочное описание котировки
func Summary(res domain.EstimateResult) string {
	return fmt.Sprintf(
		"Расстояние: %d км. Стоимость доставки (%s): %s руб. (Объем: %s м³, %d руб/км, 1 м³ = %d руб)",
		res.DistanceKm,
		res.Vehicle.Title(),
		Price(res.TotalPrice),
		Volume(res.VolumeM3),
		res.Breakdown.PerKmRate,
		res.Breakdown.PerCubicMeterRate,
	)
}

// Price форматирует сумму с разделителями разрядов русской локали
func Price(v int64) string {
	return printer.Sprintf("%d", v)
}

// Volume форматирует объём без лишних нулей
func Volume(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// ErrorMessage возвращает текст ошибки расчёта для пользователя
func ErrorMessage(err error) string {
	switch {
	case errors.Is(err, estimator.ErrMissingSelection):
		return MsgMissingSelection
	case errors.Is(err, estimator.ErrSameCity):
		return MsgSameCity
	case errors.Is(err, estimator.ErrNoRouteData):
		return MsgNoRouteData
	case errors.Is(err, estimator.ErrInvalidVolume):
		return MsgInvalidVolume
	case errors.Is(err, domain.ErrUnknownVehicle):
		return MsgUnknownVehicle
	default:
		return MsgUnknown
	}
}
