package dto

import (
	"time"

	"github.com/shopspring/decimal"
)

// CreateSaleRequest body para POST /api/venta/empleado/{idEmpleado}.
// FechaVenta es opcional (por defecto, la hora del servidor).
type CreateSaleRequest struct {
	FechaVenta        *time.Time                `json:"fechaVenta,omitempty"`
	Descuento         decimal.Decimal           `json:"descuento"`
	Cliente           *CreateCustomerRequest    `json:"cliente,omitempty"`
	ListaDetalleVenta []CreateSaleDetailRequest `json:"listaDetalleVenta" validate:"required,min=1,dive"`
}

// CreateSaleDetailRequest línea de la venta: producto y cantidad.
// CodigoProducto se valida en el caso de uso (después de resolver el empleado).
type CreateSaleDetailRequest struct {
	CodigoProducto string `json:"codigoProducto"`
	Cantidad       int    `json:"cantidad" validate:"min=1"`
}

// SaleHeader campos de cabecera comunes a la vista completa y a la vista resumida.
type SaleHeader struct {
	NroVenta   int              `json:"nroVenta"`
	FechaVenta time.Time        `json:"fechaVenta"`
	TotalVenta decimal.Decimal  `json:"totalVenta"`
	Descuento  decimal.Decimal  `json:"descuento"`
	TotalNeto  decimal.Decimal  `json:"totalNeto"`
	IdEmpleado int              `json:"idEmpleado"`
	Empleado   string           `json:"empleado,omitempty"`
	Cliente    *CustomerSummary `json:"cliente,omitempty"`
}

// SaleResponse vista completa de una venta (con líneas de detalle).
type SaleResponse struct {
	SaleHeader
	ListaDetalleVenta []SaleDetailResponse `json:"listaDetalleVenta"`
}

// SaleSummaryResponse vista resumida: no tiene campo de detalle.
type SaleSummaryResponse struct {
	SaleHeader
}

// SaleDetailResponse línea de detalle en la vista completa.
type SaleDetailResponse struct {
	CodigoProducto  string          `json:"codigoProducto"`
	NombreProducto  string          `json:"nombreProducto,omitempty"`
	Cantidad        int             `json:"cantidad"`
	PrecioUnitario  decimal.Decimal `json:"precioUnitario"`
	SubtotalDetalle decimal.Decimal `json:"subtotalDetalle"`
}

// SaleDailySummaryResponse un día del resumen de ventas entre fechas.
type SaleDailySummaryResponse struct {
	Fecha           string          `json:"fecha"` // YYYY-MM-DD
	VentaTotalBruto decimal.Decimal `json:"ventaTotalBruto"`
	DescuentoTotal  decimal.Decimal `json:"descuentoTotal"`
	VentaTotalNeto  decimal.Decimal `json:"ventaTotalNeto"`
}

// DateRangeQuery parámetros ?start=YYYY-MM-DD&end=YYYY-MM-DD.
type DateRangeQuery struct {
	Start string `query:"start" validate:"required,datetime=2006-01-02"`
	End   string `query:"end" validate:"required,datetime=2006-01-02"`
}
