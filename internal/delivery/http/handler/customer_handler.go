package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// CustomerHandler обрабатывает запросы для клиентов
type CustomerHandler struct {
	customerUC *usecase.CustomerUseCase
	logger     *zap.Logger
}

func NewCustomerHandler(customerUC *usecase.CustomerUseCase, logger *zap.Logger) *CustomerHandler {
	return &CustomerHandler{
		customerUC: customerUC,
		logger:     logger,
	}
}

func (h *CustomerHandler) List(c *fiber.Ctx) error {
	filter, err := listFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	customers, err := h.customerUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, customers)
}

func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	customer, err := h.customerUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, customer)
}

// Create godoc
// @Summary Создать клиента
// @Description Email проверяется по формату и уникален без учёта регистра
// @Tags Customers
// @Accept json
// @Produce json
// @Param request body dto.CreateCustomerRequest true "Клиент"
// @Success 201 {object} utils.Envelope{data=domain.Customer}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /v1/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateCustomerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	customer, err := h.customerUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Customer created successfully", customer)
}

func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateCustomerRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	customer, err := h.customerUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Customer updated successfully", customer)
}

func (h *CustomerHandler) Delete(c *fiber.Ctx) error {
	if err := h.customerUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Customer deleted successfully", nil)
}

func (h *CustomerHandler) DeleteMany(c *fiber.Ctx) error {
	ids, err := deleteManyIDs(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.customerUC.DeleteMany(c.Context(), ids); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Customers deleted successfully", nil)
}

func (h *CustomerHandler) AssignStation(c *fiber.Ctx) error {
	stationID, err := assignRequest(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	customer, err := h.customerUC.Assign(c.Context(), c.Params("id"), stationID)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station added to customer successfully", customer)
}

func (h *CustomerHandler) UnassignStation(c *fiber.Ctx) error {
	customer, err := h.customerUC.Unassign(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station removed from customer successfully", customer)
}

// LinkedStations - станции клиента из таблицы связей
func (h *CustomerHandler) LinkedStations(c *fiber.Ctx) error {
	stations, err := h.customerUC.ListStations(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, stations)
}

func (h *CustomerHandler) LinkStation(c *fiber.Ctx) error {
	stations, err := h.customerUC.LinkStation(c.Context(), c.Params("id"), c.Params("stationId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station linked to customer successfully", stations)
}

func (h *CustomerHandler) UnlinkStation(c *fiber.Ctx) error {
	stations, err := h.customerUC.UnlinkStation(c.Context(), c.Params("id"), c.Params("stationId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station unlinked from customer successfully", stations)
}
