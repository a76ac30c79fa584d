package handler

import (
	"github.com/freight-estimator/internal/pkg/utils"
	"github.com/freight-estimator/internal/pkg/validator"
	"github.com/freight-estimator/internal/usecase"
	"github.com/freight-estimator/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// RouteHandler - справочники тарифа: города, маршруты, ставки
type RouteHandler struct {
	routeUC *usecase.RouteUseCase
	logger  *zap.Logger
}

// NewRouteHandler - создание нового RouteHandler
func NewRouteHandler(routeUC *usecase.RouteUseCase, logger *zap.Logger) *RouteHandler {
	return &RouteHandler{
		routeUC: routeUC,
		logger:  logger,
	}
}

// ListCities godoc
// @Summary Список городов
// @Description Города тарифа в порядке отображения и количество маршрутов из каждого
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.CitiesResponse}
// @Router /api/v1/cities [get]
func (h *RouteHandler) ListCities(c *fiber.Ctx) error {
	result := h.routeUC.ListCities()
	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// ListRoutes godoc
// @Summary Список маршрутов
// @Description Направленные маршруты с расстояниями. Сортировка по городу отправления, затем по расстоянию.
// @Tags Routes
// @Produce json
// @Param origin query string false "Город отправления"
// @Success 200 {object} utils.SuccessResponse{data=dto.RoutesResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /api/v1/routes [get]
func (h *RouteHandler) ListRoutes(c *fiber.Ctx) error {
	var req dto.RoutesRequest
	if err := c.QueryParser(&req); err != nil {
		return utils.SendError(c, err)
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.routeUC.ListRoutes(req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, &utils.Meta{
		Total: result.Total,
	})
}

// GetTariff godoc
// @Summary Ставки тарифа
// @Description Ставка за кубометр, ставки за километр по типам транспорта и размер справочников
// @Tags Routes
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.TariffResponse}
// @Router /api/v1/tariff [get]
func (h *RouteHandler) GetTariff(c *fiber.Ctx) error {
	return utils.SendSuccess(c, h.routeUC.GetTariff(), nil)
}
