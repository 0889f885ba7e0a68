package entity

import "github.com/shopspring/decimal"

// SaleDetail representa una línea de detalle (producto, cantidad) de una venta.
// SaleNumber es la referencia al padre y solo sirve para persistencia.
type SaleDetail struct {
	ID          int
	SaleNumber  int
	Position    int // orden de la línea dentro de la venta
	ProductCode string
	Product     *Product
	Quantity    int
	Subtotal    decimal.Decimal // UnitPrice × Quantity al momento de la venta
}
