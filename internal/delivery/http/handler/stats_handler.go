package handler

import (
	"github.com/freight-estimator/internal/pkg/utils"
	"github.com/freight-estimator/internal/usecase"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// StatsHandler - статистика журнала котировок
type StatsHandler struct {
	statsUC *usecase.StatsUseCase
	logger  *zap.Logger
}

func NewStatsHandler(statsUC *usecase.StatsUseCase, logger *zap.Logger) *StatsHandler {
	return &StatsHandler{
		statsUC: statsUC,
		logger:  logger,
	}
}

// GetStatistics godoc
// @Summary Статистика котировок
// @Description Агрегаты по журналу выданных котировок: всего, по типу транспорта, популярные маршруты.
// @Description refresh=true пересчитывает статистику в обход кеша.
// @Tags Statistics
// @Produce json
// @Param refresh query bool false "Пересчитать в обход кеша"
// @Success 200 {object} utils.SuccessResponse{data=domain.QuoteStatistics}
// @Failure 500 {object} utils.ErrorResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /api/v1/stats [get]
func (h *StatsHandler) GetStatistics(c *fiber.Ctx) error {
	get := h.statsUC.GetStatistics
	if c.QueryBool("refresh") {
		get = h.statsUC.RefreshStatistics
	}

	stats, err := get(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, stats, nil)
}
