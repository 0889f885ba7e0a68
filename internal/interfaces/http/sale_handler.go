package http

import (
	"context"
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/pkg/logger"
	"github.com/tiendadbii/tienda-api/pkg/validation"
)

// SaleCreator registra ventas (sales.CreateSaleUseCase).
type SaleCreator interface {
	Create(ctx context.Context, employeeID int, in dto.CreateSaleRequest) (*dto.SaleResponse, error)
}

// SaleQuerier consultas de ventas (sales.QueryUseCase).
type SaleQuerier interface {
	GetByNumber(ctx context.Context, number int) (*dto.SaleResponse, error)
	List(ctx context.Context) ([]dto.SaleSummaryResponse, error)
	ListBetween(ctx context.Context, start, end string) ([]dto.SaleSummaryResponse, error)
	SummaryBetween(ctx context.Context, start, end string) ([]dto.SaleDailySummaryResponse, error)
}

// ReceiptDownloader comprobante PDF (sales.ReceiptUseCase).
type ReceiptDownloader interface {
	Download(ctx context.Context, number int) ([]byte, string, error)
}

// SaleHandler maneja las peticiones HTTP de /api/venta.
type SaleHandler struct {
	create  SaleCreator
	query   SaleQuerier
	receipt ReceiptDownloader
	val     *validation.Validator
	log     *logger.Logger
}

// NewSaleHandler construye el handler.
func NewSaleHandler(create SaleCreator, query SaleQuerier, receipt ReceiptDownloader, val *validation.Validator, log *logger.Logger) *SaleHandler {
	return &SaleHandler{create: create, query: query, receipt: receipt, val: val, log: log}
}

// Create godoc
// @Summary      Registrar venta
// @Description  Registra la venta del empleado con sus líneas de detalle; descuenta stock y crea el cliente si no existe.
// @Tags         venta
// @Accept       json
// @Produce      json
// @Param        idEmpleado  path  int                    true  "ID del empleado"
// @Param        body        body  dto.CreateSaleRequest  true  "Venta"
// @Success      201  {object}  dto.SaleResponse
// @Header       201  {string}  Location  "/api/venta/{nroVenta}"
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/venta/empleado/{idEmpleado} [post]
func (h *SaleHandler) Create(c *fiber.Ctx) error {
	employeeID, err := c.ParamsInt("idEmpleado")
	if err != nil {
		return writeError(c, h.log, domain.Invalid(`El parámetro "idEmpleado" debe ser numérico`))
	}
	var in dto.CreateSaleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.val.Struct(in); err != nil {
		return writeError(c, h.log, domain.Invalid("%s", err.Error()))
	}
	out, err := h.create.Create(c.UserContext(), employeeID, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Location(fmt.Sprintf("/api/venta/%d", out.NroVenta))
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByNumber godoc
// @Summary      Obtener venta
// @Tags         venta
// @Produce      json
// @Param        nroVenta  path  int  true  "Número de venta"
// @Success      200  {object}  dto.SaleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/venta/{nroVenta} [get]
func (h *SaleHandler) GetByNumber(c *fiber.Ctx) error {
	number, err := c.ParamsInt("nroVenta")
	if err != nil {
		return writeError(c, h.log, domain.Invalid(`El parámetro "nroVenta" debe ser numérico`))
	}
	out, err := h.query.GetByNumber(c.UserContext(), number)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ventas
// @Description  Vista resumida (sin líneas de detalle), la más reciente primero.
// @Tags         venta
// @Produce      json
// @Success      200  {array}  dto.SaleSummaryResponse
// @Router       /api/venta [get]
func (h *SaleHandler) List(c *fiber.Ctx) error {
	out, err := h.query.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// ListBetween godoc
// @Summary      Ventas entre fechas
// @Tags         venta
// @Produce      json
// @Param        start  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.SaleSummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/venta/entre-fechas [get]
func (h *SaleHandler) ListBetween(c *fiber.Ctx) error {
	q, err := h.dateRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.query.ListBetween(c.UserContext(), q.Start, q.End)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// SummaryBetween godoc
// @Summary      Resumen diario de ventas entre fechas
// @Tags         venta
// @Produce      json
// @Param        start  query  string  true  "Fecha inicial (YYYY-MM-DD)"
// @Param        end    query  string  true  "Fecha final (YYYY-MM-DD)"
// @Success      200  {array}   dto.SaleDailySummaryResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Router       /api/venta/resumen/entre-fechas [get]
func (h *SaleHandler) SummaryBetween(c *fiber.Ctx) error {
	q, err := h.dateRange(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.query.SummaryBetween(c.UserContext(), q.Start, q.End)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Receipt godoc
// @Summary      Descargar comprobante PDF
// @Tags         venta
// @Produce      application/pdf
// @Param        nroVenta  path  int  true  "Número de venta"
// @Success      200  {file}    binary
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/venta/{nroVenta}/comprobante [get]
func (h *SaleHandler) Receipt(c *fiber.Ctx) error {
	number, err := c.ParamsInt("nroVenta")
	if err != nil {
		return writeError(c, h.log, domain.Invalid(`El parámetro "nroVenta" debe ser numérico`))
	}
	pdf, filename, err := h.receipt.Download(c.UserContext(), number)
	if err != nil {
		return writeError(c, h.log, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename="%s"`, filename))
	return c.Send(pdf)
}

func (h *SaleHandler) dateRange(c *fiber.Ctx) (dto.DateRangeQuery, error) {
	var q dto.DateRangeQuery
	if err := c.QueryParser(&q); err != nil {
		return q, domain.Invalid("parámetros de consulta inválidos")
	}
	if err := h.val.Struct(q); err != nil {
		return q, domain.Invalid("%s", err.Error())
	}
	return q, nil
}
