package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// BargeHandler обрабатывает запросы для барж
type BargeHandler struct {
	bargeUC *usecase.BargeUseCase
	logger  *zap.Logger
}

func NewBargeHandler(bargeUC *usecase.BargeUseCase, logger *zap.Logger) *BargeHandler {
	return &BargeHandler{
		bargeUC: bargeUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Список барж
// @Tags Barges
// @Produce json
// @Param stationId query string false "ID станции"
// @Param type query string false "Тип акватории (SEA, RIVER)"
// @Param search query string false "Подстрока имени"
// @Success 200 {array} domain.Barge
// @Router /v1/barges [get]
func (h *BargeHandler) List(c *fiber.Ctx) error {
	filter, err := listFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	barges, err := h.bargeUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, barges)
}

func (h *BargeHandler) GetByID(c *fiber.Ctx) error {
	barge, err := h.bargeUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, barge)
}

func (h *BargeHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateBargeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	barge, err := h.bargeUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Barge created successfully", barge)
}

func (h *BargeHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateBargeRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	barge, err := h.bargeUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Barge updated successfully", barge)
}

func (h *BargeHandler) Delete(c *fiber.Ctx) error {
	if err := h.bargeUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Barge deleted successfully", nil)
}

func (h *BargeHandler) DeleteMany(c *fiber.Ctx) error {
	ids, err := deleteManyIDs(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.bargeUC.DeleteMany(c.Context(), ids); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Barges deleted successfully", nil)
}

// AssignStation godoc
// @Summary Привязать баржу к станции
// @Tags Barges
// @Accept json
// @Produce json
// @Param id path string true "ID баржи"
// @Param request body dto.AssignStationRequest true "Станция"
// @Success 200 {object} utils.Envelope{data=domain.Barge}
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse "Баржа уже на этой станции"
// @Router /v1/barges/{id}/stations [post]
func (h *BargeHandler) AssignStation(c *fiber.Ctx) error {
	stationID, err := assignRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	barge, err := h.bargeUC.Assign(c.Context(), c.Params("id"), stationID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station assigned to barge successfully", barge)
}

func (h *BargeHandler) UnassignStation(c *fiber.Ctx) error {
	barge, err := h.bargeUC.Unassign(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station removed from barge successfully", barge)
}
