package handler

import (
	"github.com/freight-estimator/internal/pkg/errors"
	"github.com/freight-estimator/internal/pkg/utils"
	"github.com/freight-estimator/internal/pkg/validator"
	"github.com/freight-estimator/internal/usecase"
	"github.com/freight-estimator/internal/usecase/dto"
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"
)

// QuoteHandler - обработчик расчёта стоимости доставки
type QuoteHandler struct {
	quoteUC *usecase.QuoteUseCase
	logger  *zap.Logger
}

// NewQuoteHandler - создание нового QuoteHandler
func NewQuoteHandler(quoteUC *usecase.QuoteUseCase, logger *zap.Logger) *QuoteHandler {
	return &QuoteHandler{
		quoteUC: quoteUC,
		logger:  logger,
	}
}

// CreateQuote godoc
// @Summary Расчёт стоимости доставки
// @Description Рассчитывает стоимость перевозки между городами по объёму груза и типу транспорта (gazelle, kamaz). Объём можно передать числом или строкой, допускается запятая.
// @Tags Quotes
// @Accept json
// @Produce json
// @Param request body dto.QuoteRequest true "Маршрут, объём и транспорт"
// @Success 201 {object} utils.SuccessResponse{data=dto.QuoteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/quotes [post]
func (h *QuoteHandler) CreateQuote(c *fiber.Ctx) error {
	var req dto.QuoteRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithDetails(map[string]interface{}{
			"body": err.Error(),
		}))
	}

	if err := validator.Validate(&req); err != nil {
		return utils.SendError(c, err)
	}

	result, err := h.quoteUC.CreateQuote(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendCreated(c, result)
}

// GetQuote godoc
// @Summary Получение выданной котировки
// @Description Возвращает ранее рассчитанную котировку по ID, пока она хранится в кеше
// @Tags Quotes
// @Produce json
// @Param id path string true "ID котировки (UUID)"
// @Success 200 {object} utils.SuccessResponse{data=dto.QuoteResponse}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Failure 500 {object} utils.ErrorResponse
// @Router /api/v1/quotes/{id} [get]
func (h *QuoteHandler) GetQuote(c *fiber.Ctx) error {
	result, err := h.quoteUC.GetQuote(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}

	return utils.SendSuccess(c, result, nil)
}
