package controllers

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	"equipment-api/internal/dto"
	"equipment-api/internal/services"
	"equipment-api/pkg/utils"
)

const (
	msgInvalidJSON = "Invalid JSON data"
	xlsxMIME       = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
)

type EquipmentController struct {
	equipmentService services.EquipmentServiceInterface
	logger           *zap.Logger
}

func NewEquipmentController(
	service services.EquipmentServiceInterface,
	logger *zap.Logger,
) *EquipmentController {
	return &EquipmentController{
		equipmentService: service,
		logger:           logger,
	}
}

// ----- РАБОЧИЕ МЕТОДЫ КОНТРОЛЛЕРА -----

func (c *EquipmentController) GetEquipments(ctx echo.Context) error {
	filter, err := c.bindFilter(ctx)
	if err != nil {
		return utils.MessageResponse(ctx, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	}

	outcome := c.equipmentService.GetEquipments(ctx.Request().Context(), filter)
	return c.respond(ctx, outcome)
}

func (c *EquipmentController) ExportEquipments(ctx echo.Context) error {
	filter, err := c.bindFilter(ctx)
	if err != nil {
		return utils.MessageResponse(ctx, http.StatusBadRequest, http.StatusText(http.StatusBadRequest))
	}

	outcome := c.equipmentService.ExportEquipments(ctx.Request().Context(), filter)
	if outcome.Kind != services.OutcomeOK {
		return c.respond(ctx, outcome)
	}

	fileName := fmt.Sprintf("equipments_%s.xlsx", time.Now().Format("2006-01-02"))
	ctx.Response().Header().Set("Content-Disposition", "attachment; filename="+fileName)
	return ctx.Blob(http.StatusOK, xlsxMIME, outcome.Document)
}

func (c *EquipmentController) CreateEquipment(ctx echo.Context) error {
	payload, ok := c.decodePayload(ctx)
	if !ok {
		return utils.MessageResponse(ctx, http.StatusBadRequest, msgInvalidJSON)
	}

	outcome := c.equipmentService.CreateEquipment(ctx.Request().Context(), payload)
	return c.respond(ctx, outcome)
}

func (c *EquipmentController) UpdateEquipment(ctx echo.Context) error {
	id, ok := c.parseID(ctx)
	if !ok {
		return utils.MessageResponse(ctx, http.StatusNotFound, services.MsgEquipmentNotFound)
	}

	payload, ok := c.decodePayload(ctx)
	if !ok {
		return utils.MessageResponse(ctx, http.StatusBadRequest, msgInvalidJSON)
	}

	outcome := c.equipmentService.UpdateEquipment(ctx.Request().Context(), id, payload)
	return c.respond(ctx, outcome)
}

func (c *EquipmentController) DeleteEquipment(ctx echo.Context) error {
	id, ok := c.parseID(ctx)
	if !ok {
		return utils.MessageResponse(ctx, http.StatusNotFound, services.MsgEquipmentNotFound)
	}

	outcome := c.equipmentService.DeleteEquipment(ctx.Request().Context(), id)
	return c.respond(ctx, outcome)
}

// ----- ВСПОМОГАТЕЛЬНЫЕ -----

// parseID - id, который не является целым числом, не может совпасть ни с одной записью.
func (c *EquipmentController) parseID(ctx echo.Context) (uint64, bool) {
	id, err := utils.ParseID(ctx.Param("id"))
	if err != nil {
		c.logger.Debug("некорректный ID оборудования", zap.String("id", ctx.Param("id")), zap.Error(err))
		return 0, false
	}
	return id, true
}

// decodePayload принимает только JSON-объект; пустое тело, null, массив
// или скаляр считаются невалидным JSON.
func (c *EquipmentController) decodePayload(ctx echo.Context) (dto.EquipmentPayload, bool) {
	var payload dto.EquipmentPayload

	body, err := io.ReadAll(ctx.Request().Body)
	if err != nil {
		c.logger.Warn("не удалось прочитать тело запроса", zap.Error(err))
		return payload, false
	}

	body = bytes.TrimSpace(body)
	if len(body) == 0 || body[0] != '{' {
		return payload, false
	}
	if err := json.Unmarshal(body, &payload); err != nil {
		c.logger.Debug("ошибка разбора JSON", zap.Error(err))
		return payload, false
	}
	return payload, true
}

func (c *EquipmentController) bindFilter(ctx echo.Context) (dto.EquipmentFilterDTO, error) {
	var filter dto.EquipmentFilterDTO
	if err := (&echo.DefaultBinder{}).BindQueryParams(ctx, &filter); err != nil {
		c.logger.Debug("ошибка разбора query-параметров", zap.Error(err))
		return filter, err
	}
	return filter, nil
}

// respond - единственное место, где результат сервиса превращается в HTTP-ответ.
func (c *EquipmentController) respond(ctx echo.Context, outcome services.Outcome) error {
	switch outcome.Kind {
	case services.OutcomeOK:
		items := outcome.Items
		if items == nil {
			items = []dto.EquipmentListItemDTO{}
		}
		return ctx.JSON(http.StatusOK, items)
	case services.OutcomeCreated:
		return utils.MessageResponse(ctx, http.StatusCreated, outcome.Message)
	case services.OutcomeUpdated:
		return utils.MessageResponse(ctx, http.StatusOK, outcome.Message)
	case services.OutcomeNoContent:
		return ctx.NoContent(http.StatusNoContent)
	case services.OutcomeInvalid:
		return utils.ErrorsResponse(ctx, http.StatusBadRequest, outcome.Errors)
	case services.OutcomeNotFound:
		return utils.MessageResponse(ctx, http.StatusNotFound, outcome.Message)
	default:
		return utils.MessageResponse(ctx, http.StatusInternalServerError, outcome.Message)
	}
}
