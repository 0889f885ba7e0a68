package sales

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/pricing"
)

// ToSaleResponse vista completa: cabecera y líneas en orden. El total se recalcula desde las líneas.
func ToSaleResponse(s *entity.Sale) *dto.SaleResponse {
	if s == nil {
		return nil
	}
	header := toSaleHeader(s)
	details := make([]dto.SaleDetailResponse, 0, len(s.Details))
	for _, d := range s.Details {
		details = append(details, ToSaleDetailResponse(d))
	}
	if len(s.Details) > 0 {
		header.TotalVenta = pricing.SaleTotal(s.Details)
		header.TotalNeto = pricing.NetTotal(header.TotalVenta, s.Discount)
	}
	return &dto.SaleResponse{SaleHeader: header, ListaDetalleVenta: details}
}

// ToSaleSummaryResponse vista resumida: solo cabecera.
func ToSaleSummaryResponse(s *entity.Sale) dto.SaleSummaryResponse {
	return dto.SaleSummaryResponse{SaleHeader: toSaleHeader(s)}
}

// ToSaleSummaryList convierte una lista de ventas a su vista resumida.
func ToSaleSummaryList(list []*entity.Sale) []dto.SaleSummaryResponse {
	out := make([]dto.SaleSummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, ToSaleSummaryResponse(s))
	}
	return out
}

// ToSaleDetailResponse convierte una línea sin la referencia a la venta.
// codigoProducto sale de Product.Code (nunca del código de barras).
func ToSaleDetailResponse(d entity.SaleDetail) dto.SaleDetailResponse {
	out := dto.SaleDetailResponse{
		CodigoProducto:  d.ProductCode,
		Cantidad:        d.Quantity,
		SubtotalDetalle: d.Subtotal,
	}
	if d.Product != nil {
		out.CodigoProducto = d.Product.Code
		out.NombreProducto = d.Product.Name
		out.PrecioUnitario = d.Product.UnitPrice
	}
	if d.Quantity > 0 && d.Product == nil {
		out.PrecioUnitario = d.Subtotal.Div(decimal.NewFromInt(int64(d.Quantity)))
	}
	return out
}

// ToDailySummaryResponse convierte el resumen diario del calculador.
func ToDailySummaryResponse(list []pricing.DailySummary) []dto.SaleDailySummaryResponse {
	out := make([]dto.SaleDailySummaryResponse, 0, len(list))
	for _, s := range list {
		out = append(out, dto.SaleDailySummaryResponse{
			Fecha:           s.Date.Format(time.DateOnly),
			VentaTotalBruto: s.Gross,
			DescuentoTotal:  s.Discount,
			VentaTotalNeto:  s.Net,
		})
	}
	return out
}

func toSaleHeader(s *entity.Sale) dto.SaleHeader {
	h := dto.SaleHeader{
		NroVenta:   s.Number,
		FechaVenta: s.Date,
		TotalVenta: s.Total,
		Descuento:  s.Discount,
		TotalNeto:  s.Net(),
		IdEmpleado: s.EmployeeID,
	}
	if s.Employee != nil {
		h.Empleado = s.Employee.FullName()
	}
	if s.Customer != nil {
		h.Cliente = &dto.CustomerSummary{
			IdCliente: s.Customer.ID,
			CI:        s.Customer.CI,
			Nombre:    s.Customer.FullName(),
		}
	}
	return h
}
