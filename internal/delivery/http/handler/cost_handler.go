package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
)

// CostHandler - чтение рассчитанных стоимостей
type CostHandler struct {
	costUC *usecase.CostUseCase
	logger *zap.Logger
}

func NewCostHandler(costUC *usecase.CostUseCase, logger *zap.Logger) *CostHandler {
	return &CostHandler{
		costUC: costUC,
		logger: logger,
	}
}

func (h *CostHandler) List(c *fiber.Ctx) error {
	costs, err := h.costUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, costs)
}

// GetByID godoc
// @Summary Стоимость по строковому ключу
// @Description Ключ вида tugboatId-orderId делится по первому дефису.
// @Description Для ID буксира с дефисом используйте /v1/costs/tugboat/{tugboatId}/order/{orderId}
// @Tags Costs
// @Produce json
// @Param id path string true "tugboatId-orderId"
// @Success 200 {object} domain.Cost
// @Failure 400 {object} utils.ErrorResponse
// @Failure 404 {object} utils.ErrorResponse
// @Router /v1/costs/{id} [get]
func (h *CostHandler) GetByID(c *fiber.Ctx) error {
	cost, err := h.costUC.GetByLegacyID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, cost)
}

func (h *CostHandler) GetByKey(c *fiber.Ctx) error {
	cost, err := h.costUC.GetByKey(c.Context(), c.Params("tugboatId"), c.Params("orderId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, cost)
}

func (h *CostHandler) ByTugboat(c *fiber.Ctx) error {
	costs, err := h.costUC.ByTugboat(c.Context(), c.Params("tugboatId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, costs)
}

func (h *CostHandler) ByOrder(c *fiber.Ctx) error {
	costs, err := h.costUC.ByOrder(c.Context(), c.Params("orderId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, costs)
}
