package domain

import (
	"errors"
	"fmt"
)

// Errores de dominio (sin dependencias externas).
var (
	ErrNotFound          = errors.New("recurso no encontrado")
	ErrInvalidInput      = errors.New("entrada inválida")
	ErrDuplicate         = errors.New("recurso duplicado")
	ErrConflict          = errors.New("conflicto con el estado actual")
	ErrInsufficientStock = errors.New("stock insuficiente")
)

// Error asocia un mensaje legible para el cliente a uno de los errores de dominio.
// errors.Is(err, ErrNotFound) sigue funcionando porque Unwrap devuelve Kind.
type Error struct {
	Kind error
	Msg  string
}

func (e *Error) Error() string { return e.Msg }

func (e *Error) Unwrap() error { return e.Kind }

// Errorf construye un *Error del tipo kind con el mensaje formateado.
func Errorf(kind error, format string, args ...any) error {
	return &Error{Kind: kind, Msg: fmt.Sprintf(format, args...)}
}

// NotFound: referencia inexistente (empleado, producto, venta...).
func NotFound(format string, args ...any) error {
	return Errorf(ErrNotFound, format, args...)
}

// Invalid: petición incompleta o con valores fuera de rango.
func Invalid(format string, args ...any) error {
	return Errorf(ErrInvalidInput, format, args...)
}
