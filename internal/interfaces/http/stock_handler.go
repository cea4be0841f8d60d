package http

import (
	"errors"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jhoicas/Almacen-api/internal/application/dto"
	"github.com/jhoicas/Almacen-api/internal/application/stock"
	"github.com/jhoicas/Almacen-api/internal/domain"
	"github.com/jhoicas/Almacen-api/pkg/logger"
)

// MovementsReportGenerator genera el reporte PDF del listado de movimientos.
type MovementsReportGenerator interface {
	MovementsReport(items []dto.MovementListItemDTO, generatedAt time.Time) ([]byte, error)
}

// StockHandler endpoints del motor de stock: entradas, salidas, listado,
// resumen y reporte PDF.
type StockHandler struct {
	registerUC *stock.RegisterMovementUseCase
	listUC     *stock.ListMovementsUseCase
	summaryUC  *stock.SummaryUseCase
	reportGen  MovementsReportGenerator
	log        *logger.Logger
}

// NewStockHandler construye el handler.
func NewStockHandler(
	registerUC *stock.RegisterMovementUseCase,
	listUC *stock.ListMovementsUseCase,
	summaryUC *stock.SummaryUseCase,
	reportGen MovementsReportGenerator,
	log *logger.Logger,
) *StockHandler {
	return &StockHandler{
		registerUC: registerUC,
		listUC:     listUC,
		summaryUC:  summaryUC,
		reportGen:  reportGen,
		log:        log,
	}
}

// Entry maneja POST /api/stock/entry.
func (h *StockHandler) Entry(c *fiber.Ctx) error {
	var req dto.EntryRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	product, movement, err := h.registerUC.Entry(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return h.stockError(c, err)
	}
	h.log.Info().Str("product_id", product.ID).Int("quantity", movement.Quantity).Msg("entrada registrada")
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Product:  dto.FromProduct(product),
		Movement: dto.FromMovement(movement),
	})
}

// EntryNewItem maneja POST /api/stock/entry/new.
func (h *StockHandler) EntryNewItem(c *fiber.Ctx) error {
	var req dto.EntryNewItemRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	product, movement, err := h.registerUC.EntryNewItem(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return h.stockError(c, err)
	}
	h.log.Info().Str("product_id", product.ID).Int("code", product.Code).Msg("producto nuevo con entrada inicial")
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Product:  dto.FromProduct(product),
		Movement: dto.FromMovement(movement),
	})
}

// Exit maneja POST /api/stock/exit.
func (h *StockHandler) Exit(c *fiber.Ctx) error {
	var req dto.ExitRequest
	if err := c.BodyParser(&req); err != nil {
		return badRequest(c, "body inválido")
	}
	product, movement, err := h.registerUC.Exit(c.UserContext(), GetUserID(c), req)
	if err != nil {
		return h.stockError(c, err)
	}
	h.log.Info().Str("product_id", product.ID).Int("quantity", movement.Quantity).Msg("salida registrada")
	return c.Status(fiber.StatusCreated).JSON(dto.MovementResponse{
		Product:  dto.FromProduct(product),
		Movement: dto.FromMovement(movement),
	})
}

// ListMovements maneja GET /api/stock/movements.
// Query params: limit, type (IN|OUT), from, to (ISO o RFC 3339).
func (h *StockHandler) ListMovements(c *fiber.Ctx) error {
	q, err := parseMovementsQuery(c)
	if err != nil {
		return badRequest(c, "filtros inválidos")
	}
	items, err := h.listUC.List(c.UserContext(), q)
	if err != nil {
		return h.stockError(c, err)
	}
	out := make([]dto.MovementListItemDTO, 0, len(items))
	for _, item := range items {
		out = append(out, dto.FromMovementWithRefs(item))
	}
	return c.JSON(out)
}

// MovementsReport maneja GET /api/stock/movements/report: mismo listado que
// ListMovements pero renderizado a PDF descargable.
func (h *StockHandler) MovementsReport(c *fiber.Ctx) error {
	q, err := parseMovementsQuery(c)
	if err != nil {
		return badRequest(c, "filtros inválidos")
	}
	items, err := h.listUC.List(c.UserContext(), q)
	if err != nil {
		return h.stockError(c, err)
	}
	rows := make([]dto.MovementListItemDTO, 0, len(items))
	for _, item := range items {
		rows = append(rows, dto.FromMovementWithRefs(item))
	}
	now := time.Now()
	pdfBytes, err := h.reportGen.MovementsReport(rows, now)
	if err != nil {
		h.log.Error().Err(err).Msg("error generando reporte de movimientos")
		return internalError(c)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="movimientos_`+now.Format("20060102_1504")+`.pdf"`)
	return c.Send(pdfBytes)
}

// Summary maneja GET /api/stock/summary.
// Query params: period (day|week|month|year), from, to.
func (h *StockHandler) Summary(c *fiber.Ctx) error {
	from, err := parseOptionalTime(c.Query("from"))
	if err != nil {
		return badRequest(c, "from inválido")
	}
	to, err := parseOptionalTime(c.Query("to"))
	if err != nil {
		return badRequest(c, "to inválido")
	}
	buckets, err := h.summaryUC.Summarize(c.UserContext(), c.Query("period"), from, to)
	if err != nil {
		return h.stockError(c, err)
	}
	return c.JSON(buckets)
}

// stockError mapea los errores de dominio del motor de stock a HTTP.
func (h *StockHandler) stockError(c *fiber.Ctx, err error) error {
	switch {
	case errors.Is(err, domain.ErrProductNotFound),
		errors.Is(err, domain.ErrUnitNotFound),
		errors.Is(err, domain.ErrSectorNotFound),
		errors.Is(err, domain.ErrNotFound):
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: err.Error()})
	case errors.Is(err, domain.ErrInvalidInput):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: err.Error()})
	case errors.Is(err, domain.ErrMaxExitQuantity):
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "MAX_EXIT_QUANTITY", Message: err.Error()})
	case errors.Is(err, domain.ErrInsufficientStock):
		return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: err.Error()})
	default:
		h.log.Error().Err(err).Str("path", c.Path()).Msg("error interno en stock")
		return internalError(c)
	}
}

func parseMovementsQuery(c *fiber.Ctx) (dto.ListMovementsQuery, error) {
	from, err := parseOptionalTime(c.Query("from"))
	if err != nil {
		return dto.ListMovementsQuery{}, err
	}
	to, err := parseOptionalTime(c.Query("to"))
	if err != nil {
		return dto.ListMovementsQuery{}, err
	}
	return dto.ListMovementsQuery{
		Limit: c.QueryInt("limit"),
		Type:  c.Query("type"),
		From:  from,
		To:    to,
	}, nil
}

// parseOptionalTime acepta "2006-01-02" o RFC 3339; vacío devuelve nil.
func parseOptionalTime(s string) (*time.Time, error) {
	if s == "" {
		return nil, nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return &t, nil
	}
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func badRequest(c *fiber.Ctx, msg string) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_INPUT", Message: msg})
}

func internalError(c *fiber.Ctx) error {
	return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: "error interno"})
}
