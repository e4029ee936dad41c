package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// OrderHandler обрабатывает запросы для заказов
type OrderHandler struct {
	orderUC *usecase.OrderUseCase
	logger  *zap.Logger
}

func NewOrderHandler(orderUC *usecase.OrderUseCase, logger *zap.Logger) *OrderHandler {
	return &OrderHandler{
		orderUC: orderUC,
		logger:  logger,
	}
}

// List godoc
// @Summary Список заказов
// @Description stationId совпадает со станцией отправления или назначения, search - с названием груза
// @Tags Orders
// @Produce json
// @Param stationId query string false "ID станции"
// @Param type query string false "import или export"
// @Param search query string false "Подстрока названия груза"
// @Success 200 {array} domain.Order
// @Router /v1/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	filter, err := listFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	orders, err := h.orderUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, orders)
}

func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	order, err := h.orderUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, order)
}

func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.orderUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Order created successfully", order)
}

func (h *OrderHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateOrderRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	order, err := h.orderUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Order updated successfully", order)
}

func (h *OrderHandler) Delete(c *fiber.Ctx) error {
	if err := h.orderUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Successfully deleted", nil)
}

func (h *OrderHandler) DeleteMany(c *fiber.Ctx) error {
	ids, err := deleteManyIDs(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.orderUC.DeleteMany(c.Context(), ids); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Successfully deleted", nil)
}

// Upload godoc
// @Summary Загрузить заказы из CSV
// @Description Нераспознанные значения по умолчанию приводятся к нулю и возвращаются в issues.
// @Description При IMPORT_STRICT=true любая проблема отклоняет всю загрузку
// @Tags Orders
// @Accept multipart/form-data
// @Produce json
// @Param file formData file true "CSV с колонками Id, Type, FromPoint, DestPoint, ..."
// @Success 201 {object} utils.Envelope{data=dto.ImportResponse[domain.Order]}
// @Failure 400 {object} utils.ErrorResponse
// @Router /v1/orders/upload [post]
func (h *OrderHandler) Upload(c *fiber.Ctx) error {
	file, err := openUpload(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	defer file.Close()

	result, err := h.orderUC.Import(c.Context(), file)
	if err != nil {
		return utils.SendError(c, err)
	}

	if len(result.Issues) > 0 {
		h.logger.Warn("Order upload accepted with coerced values", zap.Int("issues", len(result.Issues)))
	}
	return created(c, "Orders uploaded successfully", result)
}
