package pricing

import (
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

// LineSubtotal subtotal de una línea: precio unitario × cantidad.
func LineSubtotal(unitPrice decimal.Decimal, quantity int) decimal.Decimal {
	return unitPrice.Mul(decimal.NewFromInt(int64(quantity)))
}

// SaleTotal suma los subtotales de las líneas.
func SaleTotal(details []entity.SaleDetail) decimal.Decimal {
	total := decimal.Zero
	for _, d := range details {
		total = total.Add(d.Subtotal)
	}
	return total
}

// NetTotal total bruto menos descuento.
func NetTotal(gross, discount decimal.Decimal) decimal.Decimal {
	return gross.Sub(discount)
}

// PriceDetails calcula el subtotal de cada línea con el precio de su producto y devuelve el total.
// Las líneas sin producto resuelto quedan con subtotal cero.
func PriceDetails(details []entity.SaleDetail) decimal.Decimal {
	for i := range details {
		if details[i].Product == nil {
			details[i].Subtotal = decimal.Zero
			continue
		}
		details[i].Subtotal = LineSubtotal(details[i].Product.UnitPrice, details[i].Quantity)
	}
	return SaleTotal(details)
}

// DailySummary resumen de ventas de un día.
type DailySummary struct {
	Date     time.Time // medianoche del día, en la zona horaria de la venta
	Gross    decimal.Decimal
	Discount decimal.Decimal
	Net      decimal.Decimal
}

// SummarizeByDate agrupa por fecha calendario las ventas cuya fecha cae en [start, end] (días completos).
// Solo aparecen los días con ventas; el resultado va ordenado por fecha ascendente.
func SummarizeByDate(sales []*entity.Sale, start, end time.Time) []DailySummary {
	from := truncateDay(start)
	to := truncateDay(end)

	byDay := make(map[string]*DailySummary)
	for _, s := range sales {
		if s == nil {
			continue
		}
		day := truncateDay(s.Date)
		if day.Before(from) || day.After(to) {
			continue
		}
		key := day.Format(time.DateOnly)
		sum, ok := byDay[key]
		if !ok {
			sum = &DailySummary{Date: day, Gross: decimal.Zero, Discount: decimal.Zero}
			byDay[key] = sum
		}
		sum.Gross = sum.Gross.Add(s.Total)
		sum.Discount = sum.Discount.Add(s.Discount)
	}

	out := make([]DailySummary, 0, len(byDay))
	for _, sum := range byDay {
		sum.Net = NetTotal(sum.Gross, sum.Discount)
		out = append(out, *sum)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Date.Before(out[j].Date) })
	return out
}

func truncateDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
