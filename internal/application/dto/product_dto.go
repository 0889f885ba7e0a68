package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateProductRequest entrada para crear un producto.
type CreateProductRequest struct {
	CodigoProducto string          `json:"codigoProducto" validate:"required,max=30"`
	CodigoBarra    string          `json:"codigoBarra" validate:"max=50"`
	Nombre         string          `json:"nombre" validate:"required,max=120"`
	Descripcion    string          `json:"descripcion" validate:"max=255"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"`
	Stock          int             `json:"stock" validate:"min=0"`
}

// UpdateProductRequest entrada para actualizar un producto; los campos nulos no se modifican.
type UpdateProductRequest struct {
	CodigoBarra *string          `json:"codigoBarra" validate:"omitempty,max=50"`
	Nombre      *string          `json:"nombre" validate:"omitempty,min=1,max=120"`
	Descripcion *string          `json:"descripcion" validate:"omitempty,max=255"`
	PrecioVenta *decimal.Decimal `json:"precioVenta"`
	Stock       *int             `json:"stock" validate:"omitempty,min=0"`
}

// ProductResponse salida de un producto.
type ProductResponse struct {
	CodigoProducto string          `json:"codigoProducto"`
	CodigoBarra    string          `json:"codigoBarra,omitempty"`
	Nombre         string          `json:"nombre"`
	Descripcion    string          `json:"descripcion,omitempty"`
	PrecioVenta    decimal.Decimal `json:"precioVenta"`
	Stock          int             `json:"stock"`
	Revision       int             `json:"revision"`
	UpdatedAt      time.Time       `json:"updatedAt"`
}
