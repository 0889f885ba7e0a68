package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/application/usecase"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/pkg/logger"
	"github.com/tiendadbii/tienda-api/pkg/validation"
)

// EmployeeHandler maneja las peticiones HTTP para empleados y horarios.
type EmployeeHandler struct {
	uc  *usecase.EmployeeUseCase
	val *validation.Validator
	log *logger.Logger
}

// NewEmployeeHandler construye el handler.
func NewEmployeeHandler(uc *usecase.EmployeeUseCase, val *validation.Validator, log *logger.Logger) *EmployeeHandler {
	return &EmployeeHandler{uc: uc, val: val, log: log}
}

// Create godoc
// @Summary      Registrar empleado
// @Tags         empleado
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateEmployeeRequest  true  "Datos del empleado"
// @Success      201   {object}  dto.EmployeeResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/empleado [post]
func (h *EmployeeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateEmployeeRequest
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

// GetByID godoc
// @Summary      Obtener empleado
// @Tags         empleado
// @Produce      json
// @Param        idEmpleado  path  int  true  "ID del empleado"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleado/{idEmpleado} [get]
func (h *EmployeeHandler) GetByID(c *fiber.Ctx) error {
	id, err := h.employeeID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.GetByID(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar empleados
// @Tags         empleado
// @Produce      json
// @Success      200  {array}  dto.EmployeeResponse
// @Router       /api/empleado [get]
func (h *EmployeeHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.List(c.UserContext())
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// Update godoc
// @Summary      Actualizar empleado
// @Tags         empleado
// @Accept       json
// @Produce      json
// @Param        idEmpleado  path  int                        true  "ID del empleado"
// @Param        body        body  dto.UpdateEmployeeRequest  true  "Datos a actualizar"
// @Success      200  {object}  dto.EmployeeResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleado/{idEmpleado} [put]
func (h *EmployeeHandler) Update(c *fiber.Ctx) error {
	id, err := h.employeeID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.UpdateEmployeeRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.val.Struct(in); err != nil {
		return writeError(c, h.log, domain.Invalid("%s", err.Error()))
	}
	out, err := h.uc.Update(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

// AddSchedule godoc
// @Summary      Registrar horario del empleado
// @Tags         empleado
// @Accept       json
// @Produce      json
// @Param        idEmpleado  path  int                        true  "ID del empleado"
// @Param        body        body  dto.CreateScheduleRequest  true  "Horario"
// @Success      201  {object}  dto.ScheduleResponse
// @Failure      400  {object}  dto.ErrorResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleado/{idEmpleado}/horario [post]
func (h *EmployeeHandler) AddSchedule(c *fiber.Ctx) error {
	id, err := h.employeeID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	var in dto.CreateScheduleRequest
	if err := c.BodyParser(&in); err != nil {
		return badBody(c)
	}
	if err := h.val.Struct(in); err != nil {
		return writeError(c, h.log, domain.Invalid("%s", err.Error()))
	}
	out, err := h.uc.AddSchedule(c.UserContext(), id, in)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// ListSchedules godoc
// @Summary      Listar horarios del empleado
// @Tags         empleado
// @Produce      json
// @Param        idEmpleado  path  int  true  "ID del empleado"
// @Success      200  {array}   dto.ScheduleResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/empleado/{idEmpleado}/horario [get]
func (h *EmployeeHandler) ListSchedules(c *fiber.Ctx) error {
	id, err := h.employeeID(c)
	if err != nil {
		return writeError(c, h.log, err)
	}
	out, err := h.uc.ListSchedules(c.UserContext(), id)
	if err != nil {
		return writeError(c, h.log, err)
	}
	return c.JSON(out)
}

func (h *EmployeeHandler) employeeID(c *fiber.Ctx) (int, error) {
	id, err := c.ParamsInt("idEmpleado")
	if err != nil {
		return 0, domain.Invalid(`El parámetro "idEmpleado" debe ser numérico`)
	}
	return id, nil
}
