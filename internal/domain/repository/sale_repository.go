package repository

import (
	"context"
	"time"

	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

// SaleRepository define el puerto de persistencia para Sale y sus detalles.
type SaleRepository interface {
	// Create inserta cabecera y detalles; asigna Number a la venta e ID a cada detalle.
	Create(ctx context.Context, sale *entity.Sale) error
	// GetByNumber devuelve la venta con detalles, productos, empleado y cliente; (nil, nil) si no existe.
	GetByNumber(ctx context.Context, number int) (*entity.Sale, error)
	// List devuelve solo cabeceras, sin detalles.
	List(ctx context.Context) ([]*entity.Sale, error)
	// ListBetween devuelve cabeceras cuya fecha cae en [start, end] (días completos).
	ListBetween(ctx context.Context, start, end time.Time) ([]*entity.Sale, error)
}
