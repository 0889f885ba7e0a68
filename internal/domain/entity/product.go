package entity

import "github.com/shopspring/decimal"

// Product representa un producto vendible.
// Code es el código interno (clave); Barcode es el código de barras y nunca se usa como referencia de venta.
type Product struct {
	Code        string
	Barcode     string
	Name        string
	Description string
	UnitPrice   decimal.Decimal // precio de venta
	Stock       int
	Audit
}

// HasStock indica si hay unidades suficientes para vender qty.
func (p *Product) HasStock(qty int) bool {
	return p.Stock >= qty
}
