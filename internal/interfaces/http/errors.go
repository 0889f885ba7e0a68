package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/pkg/logger"
)

// writeError traduce un error de dominio a su status HTTP y cuerpo dto.ErrorResponse.
// Los errores no reconocidos se registran y se responden como 500 sin detalle.
func writeError(c *fiber.Ctx, log *logger.Logger, err error) error {
	status, code := classify(err)
	if status == fiber.StatusInternalServerError {
		log.Error().Err(err).
			Str("request_id", RequestID(c)).
			Str("method", c.Method()).
			Str("path", c.Path()).
			Msg("error no controlado")
		return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: "error interno del servidor"})
	}
	return c.Status(status).JSON(dto.ErrorResponse{Code: code, Message: messageOf(err)})
}

func classify(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput):
		return fiber.StatusBadRequest, "VALIDATION"
	case errors.Is(err, domain.ErrNotFound):
		return fiber.StatusNotFound, "NOT_FOUND"
	case errors.Is(err, domain.ErrDuplicate):
		return fiber.StatusConflict, "DUPLICATE"
	case errors.Is(err, domain.ErrInsufficientStock):
		return fiber.StatusConflict, "INSUFFICIENT_STOCK"
	case errors.Is(err, domain.ErrConflict):
		return fiber.StatusConflict, "CONFLICT"
	default:
		return fiber.StatusInternalServerError, "INTERNAL"
	}
}

// messageOf devuelve el mensaje de negocio del *domain.Error, o el del sentinel.
func messageOf(err error) string {
	var derr *domain.Error
	if errors.As(err, &derr) {
		return derr.Msg
	}
	return err.Error()
}

func badBody(c *fiber.Ctx) error {
	return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
}
