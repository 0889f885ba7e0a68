package entity

import (
	"time"

	"github.com/shopspring/decimal"
)

// Sale representa la cabecera de una venta con sus líneas de detalle.
// Total es la suma de los subtotales de Details en el último cálculo.
type Sale struct {
	Number     int // nroVenta, generado por la base de datos
	Date       time.Time
	Total      decimal.Decimal
	Discount   decimal.Decimal
	EmployeeID int
	Employee   *Employee
	CustomerID *int
	Customer   *Customer
	Details    []SaleDetail
	Audit
}

// Net devuelve el total de la venta con el descuento aplicado.
func (s *Sale) Net() decimal.Decimal {
	return s.Total.Sub(s.Discount)
}
