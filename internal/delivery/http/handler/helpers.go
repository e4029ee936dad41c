package handler

import (
	"io"
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/fleet-logistics-service/internal/domain"
	"github.com/fleet-logistics-service/internal/pkg/errors"
	"github.com/fleet-logistics-service/internal/pkg/utils"
	"github.com/fleet-logistics-service/internal/usecase/dto"
)

// uploadField - имя multipart-поля с файлом загрузки
const uploadField = "file"

// parseBody разбирает JSON тела запроса в req
func parseBody(c *fiber.Ctx, req interface{}) error {
	if err := c.BodyParser(req); err != nil {
		return errors.ErrInvalidRequest.WithMessage("Invalid request body").Wrap(err)
	}
	return nil
}

// listFilter собирает общий фильтр списков из query string
func listFilter(c *fiber.Ctx) (domain.ListFilter, error) {
	var q dto.ListQuery
	if err := c.QueryParser(&q); err != nil {
		return domain.ListFilter{}, errors.ErrInvalidRequest.WithMessage("Invalid query parameters").Wrap(err)
	}
	if q.MaxDistance != nil && *q.MaxDistance < 0 {
		return domain.ListFilter{}, errors.Validation("maxDistance must be at least 0")
	}
	return domain.ListFilter{
		StationID:   strings.TrimSpace(q.StationID),
		Type:        strings.TrimSpace(q.Type),
		Search:      strings.TrimSpace(q.Search),
		MaxDistance: q.MaxDistance,
	}, nil
}

// deleteManyIDs читает тело {"id": [...]}
func deleteManyIDs(c *fiber.Ctx) ([]string, error) {
	var req dto.DeleteManyRequest
	if err := parseBody(c, &req); err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(req.IDs))
	for _, id := range req.IDs {
		if id = strings.TrimSpace(id); id != "" {
			ids = append(ids, id)
		}
	}
	if len(ids) == 0 {
		return nil, errors.ErrNoIDsProvided
	}
	return ids, nil
}

// assignRequest читает тело {"stationId": "..."}
func assignRequest(c *fiber.Ctx) (string, error) {
	var req dto.AssignStationRequest
	if err := parseBody(c, &req); err != nil {
		return "", err
	}
	req.Normalize()
	if req.StationID == "" {
		return "", errors.Validation("stationId is required")
	}
	return req.StationID, nil
}

// openUpload открывает файл из multipart-поля file
func openUpload(c *fiber.Ctx) (io.ReadCloser, error) {
	header, err := c.FormFile(uploadField)
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("multipart field %q with a CSV file is required", uploadField).Wrap(err)
	}
	f, err := header.Open()
	if err != nil {
		return nil, errors.ErrInvalidRequest.WithMessage("failed to open uploaded file").Wrap(err)
	}
	return f, nil
}

func created(c *fiber.Ctx, message string, data interface{}) error {
	return utils.SendSuccess(c, fiber.StatusCreated, message, data)
}

func ok(c *fiber.Ctx, message string, data interface{}) error {
	return utils.SendSuccess(c, fiber.StatusOK, message, data)
}
