package sales

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

func TestToSaleResponse_RecalculaTotalDesdeLineas(t *testing.T) {
	prod := &entity.Product{Code: "P1", Barcode: "7790001", Name: "Arroz", UnitPrice: decimal.NewFromInt(10)}
	sale := &entity.Sale{
		Number:   7,
		Date:     time.Date(2024, 2, 5, 0, 0, 0, 0, time.UTC),
		Total:    decimal.NewFromInt(999), // valor desactualizado
		Discount: decimal.NewFromInt(2),
		Details: []entity.SaleDetail{
			{SaleNumber: 7, Position: 1, ProductCode: "P1", Product: prod, Quantity: 3, Subtotal: decimal.NewFromInt(30)},
		},
	}

	out := ToSaleResponse(sale)
	require.NotNil(t, out)
	assert.True(t, decimal.NewFromInt(30).Equal(out.TotalVenta))
	assert.True(t, decimal.NewFromInt(28).Equal(out.TotalNeto))
	assert.Equal(t, "P1", out.ListaDetalleVenta[0].CodigoProducto)
	assert.True(t, decimal.NewFromInt(10).Equal(out.ListaDetalleVenta[0].PrecioUnitario))

	raw, err := json.Marshal(out)
	require.NoError(t, err)
	assert.NotContains(t, string(raw), "7790001")
}

func TestToSaleDetailResponse_SinProductoUsaSubtotal(t *testing.T) {
	d := entity.SaleDetail{ProductCode: "P9", Quantity: 4, Subtotal: decimal.NewFromInt(20)}

	out := ToSaleDetailResponse(d)
	assert.Equal(t, "P9", out.CodigoProducto)
	assert.True(t, decimal.NewFromInt(5).Equal(out.PrecioUnitario))
}

func TestToSaleResponse_Nil(t *testing.T) {
	assert.Nil(t, ToSaleResponse(nil))
}
