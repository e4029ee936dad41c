package handler

import (
	"github.com/gofiber/fiber/v2"
	"go.uber.org/zap"

	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// StationHandler обрабатывает запросы для станций
type StationHandler struct {
	stationUC *usecase.StationUseCase
	logger    *zap.Logger
}

// NewStationHandler создает новый экземпляр StationHandler
func NewStationHandler(stationUC *usecase.StationUseCase, logger *zap.Logger) *StationHandler {
	return &StationHandler{
		stationUC: stationUC,
		logger:    logger,
	}
}

// List godoc
// @Summary Список станций
// @Description Возвращает станции с фильтрами по типу акватории, имени и расстоянию
// @Tags Stations
// @Produce json
// @Param type query string false "SEA или RIVER"
// @Param search query string false "Подстрока имени"
// @Param maxDistance query number false "Максимальное расстояние, км"
// @Success 200 {array} domain.Station
// @Failure 400 {object} utils.ErrorResponse
// @Router /v1/stations [get]
func (h *StationHandler) List(c *fiber.Ctx) error {
	filter, err := listFilter(c)
	if err != nil {
		return utils.SendError(c, err)
	}

	stations, err := h.stationUC.List(c.Context(), filter)
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, stations)
}

// ListByType - станции одного типа акватории
func (h *StationHandler) ListByType(c *fiber.Ctx) error {
	stations, err := h.stationUC.ListByType(c.Context(), c.Params("type"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, stations)
}

// GetByID godoc
// @Summary Станция по ID
// @Tags Stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} domain.Station
// @Failure 404 {object} utils.ErrorResponse
// @Router /v1/stations/{id} [get]
func (h *StationHandler) GetByID(c *fiber.Ctx) error {
	station, err := h.stationUC.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, station)
}

// GetStatistics godoc
// @Summary Статистика станций
// @Description Количество станций по типам и агрегаты расстояний, кешируется в Redis
// @Tags Stations
// @Produce json
// @Success 200 {object} domain.StationStatistics
// @Failure 500 {object} utils.ErrorResponse
// @Router /v1/stations/statistics [get]
func (h *StationHandler) GetStatistics(c *fiber.Ctx) error {
	stats, err := h.stationUC.GetStatistics(c.Context())
	if err != nil {
		h.logger.Error("Failed to get station statistics", zap.Error(err))
		return utils.SendError(c, err)
	}
	return utils.SendJSON(c, stats)
}

// Create godoc
// @Summary Создать станцию
// @Tags Stations
// @Accept json
// @Produce json
// @Param request body dto.CreateStationRequest true "Станция"
// @Success 201 {object} utils.Envelope{data=domain.Station}
// @Failure 400 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /v1/stations [post]
func (h *StationHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateStationRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Create(c.Context(), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return created(c, "Station created successfully", station)
}

func (h *StationHandler) Update(c *fiber.Ctx) error {
	var req dto.UpdateStationRequest
	if err := parseBody(c, &req); err != nil {
		return utils.SendError(c, err)
	}

	station, err := h.stationUC.Update(c.Context(), c.Params("id"), req)
	if err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station updated successfully", station)
}

// Delete godoc
// @Summary Удалить станцию
// @Description 409, если на станцию ссылаются баржи, буксиры, клиенты или заказы
// @Tags Stations
// @Produce json
// @Param id path string true "ID станции"
// @Success 200 {object} utils.Envelope
// @Failure 404 {object} utils.ErrorResponse
// @Failure 409 {object} utils.ErrorResponse
// @Router /v1/stations/{id} [delete]
func (h *StationHandler) Delete(c *fiber.Ctx) error {
	if err := h.stationUC.Delete(c.Context(), c.Params("id")); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Station deleted successfully", nil)
}

func (h *StationHandler) DeleteMany(c *fiber.Ctx) error {
	ids, err := deleteManyIDs(c)
	if err != nil {
		return utils.SendError(c, err)
	}
	if err := h.stationUC.DeleteMany(c.Context(), ids); err != nil {
		return utils.SendError(c, err)
	}
	return ok(c, "Stations deleted successfully", nil)
}
