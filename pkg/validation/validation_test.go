package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
)

func TestStruct_VentaSinLineas(t *testing.T) {
	err := New().Struct(dto.CreateSaleRequest{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listaDetalleVenta")
}

func TestStruct_CantidadCero(t *testing.T) {
	in := dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{
			{CodigoProducto: "P1", Cantidad: 2},
			{CodigoProducto: "P2", Cantidad: 0},
		},
	}
	err := New().Struct(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listaDetalleVenta[1].cantidad")
}

func TestStruct_CodigoProductoVacioNoFallaAqui(t *testing.T) {
	// la falta de codigoProducto se reporta en el caso de uso, después de resolver el empleado
	in := dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{{Cantidad: 1}},
	}
	assert.NoError(t, New().Struct(in))
}

func TestStruct_ClienteAnidado(t *testing.T) {
	in := dto.CreateSaleRequest{
		Cliente:           &dto.CreateCustomerRequest{PersonRequest: dto.PersonRequest{CI: "123"}},
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{{CodigoProducto: "P1", Cantidad: 1}},
	}
	err := New().Struct(in)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "nombres")
}

func TestStruct_RangoDeFechas(t *testing.T) {
	v := New()
	assert.NoError(t, v.Struct(dto.DateRangeQuery{Start: "2024-02-01", End: "2024-02-28"}))

	err := v.Struct(dto.DateRangeQuery{Start: "01/02/2024", End: "2024-02-28"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "start")
}
