package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// ScheduleHandler - чтение расписаний буксиров
type ScheduleHandler struct {
	scheduleUC *usecase.ScheduleUseCase
	logger     *zap.Logger
}

func NewScheduleHandler(scheduleUC *usecase.ScheduleUseCase, logger *zap.Logger) *ScheduleHandler {
	return &ScheduleHandler{
		scheduleUC: scheduleUC,
		logger:     logger,
	}
}

func (h *ScheduleHandler) List(c *fiber.Ctx) error {
	schedules, err := h.scheduleUC.List(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, schedules)
}

func (h *ScheduleHandler) ByTugboat(c *fiber.Ctx) error {
	schedules, err := h.scheduleUC.ByTugboat(c.Context(), c.Params("tugboatId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendSchedules(c, "Tugboat schedules retrieved successfully", nil, schedules, false)
}

func (h *ScheduleHandler) ByOrder(c *fiber.Ctx) error {
	schedules, err := h.scheduleUC.ByOrder(c.Context(), c.Params("orderId"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return sendSchedules(c, "Order schedules retrieved successfully", nil, schedules, false)
}

// ByTugboatAndOrder godoc
// @Summary Расписание буксира по заказу
// @Description Точные фильтры type_point, enter_datetime и exit_datetime (RFC3339)
// @Tags Schedules
// @Produce json
// @Param tugboatId path string true "ID буксира"
// @Param orderId path string true "ID заказа"
// @Param type_point query string false "Тип отрезка"
// @Param enter_datetime query string false "Время входа, RFC3339"
// @Param exit_datetime query string false "Время выхода, RFC3339"
// @Success 200 {object} utils.ScheduleEnvelope{data=[]domain.Schedule}
// @Failure 400 {object} utils.ErrorResponse
// @Router /v1/schedules/tugboat/{tugboatId}/order/{orderId} [get]
func (h *ScheduleHandler) ByTugboatAndOrder(c *fiber.Ctx) error {
	var q dto.ScheduleQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters").Wrap(err))
	}

	tugboatID, orderID := c.Params("tugboatId"), c.Params("orderId")
	schedules, err := h.scheduleUC.ByTugboatAndOrder(c.Context(), tugboatID, orderID, q)
	if err != nil {
		return utils.SendError(c, err)
	}

	parameter := dto.ScheduleParameter{
		TugboatID:     tugboatID,
		OrderID:       orderID,
		TypePoint:     q.TypePoint,
		EnterDatetime: q.EnterDatetime,
		ExitDatetime:  q.ExitDatetime,
	}
	return sendSchedules(c, "Schedules for tugboat and order retrieved successfully", parameter, schedules, true)
}

// Timeline godoc
// @Summary Таймлайн буксиров
// @Description Только основные отрезки рейсов (type_point = main_point), по возрастанию enter_datetime
// @Tags Schedules
// @Produce json
// @Param tugboatId query string false "ID буксира"
// @Param orderId query string false "ID заказа"
// @Success 200 {array} domain.Schedule
// @Router /v1/schedules/timeline [get]
func (h *ScheduleHandler) Timeline(c *fiber.Ctx) error {
	var q dto.TimelineQuery
	if err := c.QueryParser(&q); err != nil {
		return utils.SendError(c, errors.ErrInvalidRequest.WithMessage("Invalid query parameters").Wrap(err))
	}

	schedules, err := h.scheduleUC.Timeline(c.Context(), q)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, schedules)
}

func (h *ScheduleHandler) TypePoints(c *fiber.Ctx) error {
	points, err := h.scheduleUC.TypePoints(c.Context())
	if err != nil {
		return utils.SendError(c, err)
	}
	return c.JSON(utils.ScheduleEnvelope{
		Success: true,
		Message: "View schedule type point data retrieved successfully",
		Status:  fiber.StatusOK,
		Data:    points,
	})
}

func sendSchedules(c *fiber.Ctx, message string, parameter interface{}, schedules []domain.Schedule, withLength bool) error {
	env := utils.ScheduleEnvelope{
		Success:   true,
		Message:   message,
		Status:    fiber.StatusOK,
		Parameter: parameter,
		Data:      schedules,
	}
	if withLength {
		n := len(schedules)
		env.DataLength = &n
	}
	return c.JSON(env)
}
