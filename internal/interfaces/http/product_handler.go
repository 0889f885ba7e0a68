package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/application/usecase"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/pkg/logger"
	"github.com/tiendadbii/tienda-api/pkg/validation"
)

// ProductHandler maneja las peticiones HTTP para Product.
type ProductHandler struct {
	uc  *usecase.ProductUseCase
	val *validation.Validator
	log *logger.Logger
}

// NewProductHandler construye el handler.
func NewProductHandler(uc *usecase.ProductUseCase, val *validation.Validator, log *logger.Logger) *ProductHandler {
	return &ProductHandler{uc: uc, val: val, log: log}
}

// Create godoc
// @Summary      Crear producto
// @Tags         producto
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateProductRequest  true  "Datos del producto"
// @Success      201   {object}  dto.ProductResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/producto [post]
func (h *ProductHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.val.Struct(in); err != nil {
		return writeError(c, h.log, domain.Invalid("%s", err.Error()))
	}
	out, err := h.uc.Create(c.UserContext(), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByCode godoc
// @Summary      Obtener producto por código
// @Description  Si se envía ?barcode=true el parámetro se interpreta como código de barras.
// @Tags         producto
// @Produce      json
// @Param        codigoProducto  path   string  true   "Código del producto"
// @Param        barcode         query  bool    false  "Buscar por código de barras"
// @Success      200  {object}  dto.ProductResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/producto/{codigoProducto} [get]
func (h *ProductHandler) GetByCode(c *fiber.Ctx) error {
	code := c.Params("codigoProducto")
	var (
		out *dto.ProductResponse
		err error
	)
	if c.QueryBool("barcode") {
		out, err = h.uc.GetByBarcode(c.UserContext(), code)
	} else {
		out, err = h.uc.GetByCode(c.UserContext(), code)
	}
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar productos
// @Tags         producto
// @Produce      json
// @Success      200  {array}  dto.ProductResponse
// @Router       /api/producto [get]
func (h *ProductHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar producto
// @Tags         producto
// @Accept       json
// @Produce      json
// @Param        codigoProducto  path  string                    true  "Código del producto"
// @Param        body            body  dto.UpdateProductRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.ProductResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/producto/{codigoProducto} [put]
func (h *ProductHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateProductRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.val.Struct(in); err != nil {
		return writeError(c, h.log, domain.Invalid("%s", err.Error()))
	}
	out, err := h.uc.Update(c.UserContext(), c.Params("codigoProducto"), in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}
