package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/usecase"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// UnitHandler endpoints de unidades y sus sectores.
type UnitHandler struct {
	uc  *usecase.UnitUseCase
	log *logger.Logger
}

// NewUnitHandler construye el handler.
func NewUnitHandler(uc *usecase.UnitUseCase, log *logger.Logger) *UnitHandler {
	return &UnitHandler{uc: uc, log: log}
}

// List maneja GET /api/units.
func (h *UnitHandler) List(c *fiber.Ctx) error {
	units, err := h.uc.List(c.UserContext())
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(units)
}

// Create maneja POST /api/units.
func (h *UnitHandler) Create(c *fiber.Ctx) error {
	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	unit, err := h.uc.CreateUnit(c.UserContext(), req)
	if err != nil {
		return h.mapError(c, err)
	}
	h.log.Info().Str("unit_id", unit.ID).Str("name", unit.Name).Msg("unidad creada")
	return c.Status(fiber.StatusCreated).JSON(unit)
}

// Update maneja PUT /api/units/:id.
func (h *UnitHandler) Update(c *fiber.Ctx) error {
	var req dto.CreateUnitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	unit, err := h.uc.UpdateUnit(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(unit)
}

// Delete maneja DELETE /api/units/:id.
func (h *UnitHandler) Delete(c *fiber.Ctx) error {
	if err := h.uc.DeleteUnit(c.UserContext(), c.Params("id")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateSector maneja POST /api/units/:id/sectors.
func (h *UnitHandler) CreateSector(c *fiber.Ctx) error {
	var req dto.CreateSectorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	sector, err := h.uc.CreateSector(c.UserContext(), c.Params("id"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(sector)
}

// UpdateSector maneja PUT /api/units/:id/sectors/:sectorId.
func (h *UnitHandler) UpdateSector(c *fiber.Ctx) error {
	var req dto.CreateSectorRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	sector, err := h.uc.UpdateSector(c.UserContext(), c.Params("id"), c.Params("sectorId"), req)
	if err != nil {
		return h.mapError(c, err)
	}
	return c.JSON(sector)
}

// DeleteSector maneja DELETE /api/units/:id/sectors/:sectorId.
func (h *UnitHandler) DeleteSector(c *fiber.Ctx) error {
	if err := h.uc.DeleteSector(c.UserContext(), c.Params("id"), c.Params("sectorId")); err != nil {
		return h.mapError(c, err)
	}
	return c.SendStatus(fiber.StatusNoContent)
}

func (h *UnitHandler) mapError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrSectorNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrDuplicate),
		errors.Is(err, domain.ErrUnitHasSectors),
		errors.Is(err, domain.ErrConflict):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno en unidades")
		return internalError(c)
	}
}
