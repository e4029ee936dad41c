package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// TugboatHandler обрабатывает запросы для буксиров
type TugboatHandler struct {
	tugboatUC *usecase.TugboatUseCase
	logger    *zap.Logger
}

func NewTugboatHandler(tugboatUC *usecase.TugboatUseCase, logger *zap.Logger) *TugboatHandler {
	return &TugboatHandler{
		tugboatUC: tugboatUC,
		logger:    logger,
	}
}

func (h *TugboatHandler) List(c *fiber.Ctx) error {
	filter, err := listFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	tugboats, err := h.tugboatUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, tugboats)
}

func (h *TugboatHandler) GetByID(c *fiber.Ctx) error {
	tugboat, err := h.tugboatUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, tugboat)
}

// Create godoc
// @Summary Создать буксир
// @Description minSpeed должна быть меньше maxSpeed, мощностные поля больше нуля
// @Tags Tugboats
// @Accept json
// @Produce json
// @Param request body dto.CreateTugboatRequest true "Буксир"
// @Success 201 {object} utils.Envelope{data=domain.Tugboat}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /v1/tugboats [post]
func (h *TugboatHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateTugboatRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	tugboat, err := h.tugboatUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Tugboat created successfully", tugboat)
}

func (h *TugboatHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateTugboatRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	tugboat, err := h.tugboatUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Tugboat updated successfully", tugboat)
}

func (h *TugboatHandler) Delete(c *fiber.Ctx) error {
	if err := h.tugboatUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Tugboat deleted successfully", nil)
}

func (h *TugboatHandler) DeleteMany(c *fiber.Ctx) error {
	ids, err := deleteManyIDs(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.tugboatUC.DeleteMany(c.Context(), ids); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Tugboats deleted successfully", nil)
}

func (h *TugboatHandler) AssignStation(c *fiber.Ctx) error {
	stationID, err := assignRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	tugboat, err := h.tugboatUC.Assign(c.Context(), c.Params("id"), stationID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station assigned to tugboat successfully", tugboat)
}

func (h *TugboatHandler) UnassignStation(c *fiber.Ctx) error {
	tugboat, err := h.tugboatUC.Unassign(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station removed from tugboat successfully", tugboat)
}

// Upload godoc
// @Summary Загрузить буксиры из CSV
// @Tags Tugboats
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV с колонками Id, Name, MaxCapacity, ..."
// @Success 201 {object} utils.Envelope{data=dto.ImportResponse[domain.Tugboat]}
// @Failure 400 {object} utils.ErrorResponse
// @Router /v1/tugboats/upload [post]
func (h *TugboatHandler) Upload(c *fiber.Ctx) error {
	file, err := openUpload(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer file.Close()

	result, err := h.tugboatUC.Import(c.Context(), file)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Tugboats uploaded successfully", result)
}
