package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// CarrierHandler обрабатывает запросы для судов-перевозчиков
type CarrierHandler struct {
	carrierUC *usecase.CarrierUseCase
	logger    *zap.Logger
}

func NewCarrierHandler(carrierUC *usecase.CarrierUseCase, logger *zap.Logger) *CarrierHandler {
	return &CarrierHandler{
		carrierUC: carrierUC,
		logger:    logger,
	}
}

func (h *CarrierHandler) List(c *fiber.Ctx) error {
	filter, err := listFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	carriers, err := h.carrierUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, carriers)
}

func (h *CarrierHandler) GetByID(c *fiber.Ctx) error {
	carrier, err := h.carrierUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, carrier)
}

func (h *CarrierHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCarrierRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	carrier, err := h.carrierUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Carrier created successfully", carrier)
}

func (h *CarrierHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCarrierRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	carrier, err := h.carrierUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Carrier updated successfully", carrier)
}

func (h *CarrierHandler) Delete(c *fiber.Ctx) error {
	if err := h.carrierUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Carrier deleted successfully", nil)
}

func (h *CarrierHandler) DeleteMany(c *fiber.Ctx) error {
	ids, err := deleteManyIDs(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.carrierUC.DeleteMany(c.Context(), ids); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Carriers deleted successfully", nil)
}
