package repository

import (
	"context"

	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

// ProductRepository define el puerto de persistencia para Product.
type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByCode(ctx context.Context, code string) (*entity.Product, error)
	GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error)
	List(ctx context.Context) ([]*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	// DecrementStock descuenta qty solo si hay stock suficiente; si no, devuelve domain.ErrInsufficientStock.
	DecrementStock(ctx context.Context, code string, qty int) error
}
