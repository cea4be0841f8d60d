package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// ManufacturerHandler endpoints de fabricantes.
type ManufacturerHandler struct {
	uc  *usecase.ManufacturerUseCase
	log *logger.Logger
}

// NewManufacturerHandler construye el handler.
func NewManufacturerHandler(uc *usecase.ManufacturerUseCase, log *logger.Logger) *ManufacturerHandler {
	return &ManufacturerHandler{uc: uc, log: log}
}

// Create maneja POST /api/manufacturers.
func (h *ManufacturerHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateManufacturerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	manufacturer, err := h.uc.Create(c.UserContext(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	h.log.Info().Str("manufacturer_id", manufacturer.ID).Msg("fabricante creado")
	return c.Status(fiber.StatusCreated).JSON(manufacturer)
}

// GetByID maneja GET /api/manufacturers/:id.
func (h *ManufacturerHandler) GetByID(c *fiber.Ctx) error {
	manufacturer, err := h.uc.GetByID(c.UserContext(), c.Params("id"))
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(manufacturer)
}

// Update maneja PUT /api/manufacturers/:id.
func (h *ManufacturerHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateManufacturerRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	manufacturer, err := h.uc.Update(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(manufacturer)
}

// List maneja GET /api/manufacturers.
func (h *ManufacturerHandler) List(c *fiber.Ctx) error {
	items, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(items)
}

// Delete maneja DELETE /api/manufacturers/:id.
func (h *ManufacturerHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.Delete(c.UserContext(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *ManufacturerHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno en fabricantes")
		return internalError(c)
	}
}
