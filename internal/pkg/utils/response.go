package utils

import (
	"github.com/gofiber/fiber/v2"

	"github.com/fleet-logistics-service/internal/pkg/errors"
)

// Envelope - ответ на изменяющие запросы
type Envelope struct {
	Message string      `json:"message"`
	Status  int         `json:"status"`
	Data    interface{} `json:"data,omitempty"`
}

// ScheduleEnvelope - ответ эндпоинтов расписания
type ScheduleEnvelope struct {
	Success    bool        `json:"success"`
	Message    string      `json:"message"`
	Status     int         `json:"status"`
	Parameter  interface{} `json:"parameter,omitempty"`
	DataLength *int        `json:"dataLength,omitempty"`
	Data       interface{} `json:"data"`
}

type ErrorResponse struct {
	Status   int                    `json:"status"`
	Response string                 `json:"response"`
	Error    string                 `json:"error,omitempty"`
	Details  map[string]interface{} `json:"details,omitempty"`
}

// SendJSON - отдаёт сущность или список без конверта
func SendJSON(c *fiber.Ctx, data interface{}) error {
	return c.JSON(data)
}

func SendSuccess(c *fiber.Ctx, status int, message string, data interface{}) error {
	return c.Status(status).JSON(Envelope{
		Message: message,
		Status:  status,
		Data:    data,
	})
}

func SendError(c *fiber.Ctx, err error) error {
	if appErr, ok := errors.As(err); ok {
		resp := ErrorResponse{
			Status:   appErr.StatusCode,
			Response: appErr.Message,
			Error:    appErr.Code,
		}
		if len(appErr.Details) > 0 {
			resp.Details = appErr.Details
		}
		return c.Status(appErr.StatusCode).JSON(resp)
	}

	// Unknown error - return 500
	return c.Status(fiber.StatusInternalServerError).JSON(ErrorResponse{
		Status:   fiber.StatusInternalServerError,
		Response: errors.ErrInternalServer.Message,
		Error:    errors.ErrInternalServer.Code,
	})
}
