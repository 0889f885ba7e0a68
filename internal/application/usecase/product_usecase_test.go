package usecase

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
)

func TestProductUseCase_CreateYObtener(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())
	ctx := context.Background()

	out, err := uc.Create(ctx, dto.CreateProductRequest{
		CodigoProducto: "P1", CodigoBarra: "7790001", Nombre: "Arroz 1kg",
		PrecioVenta: decimal.RequireFromString("10.50"), Stock: 20,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, out.Revision)

	byCode, err := uc.GetByCode(ctx, "P1")
	require.NoError(t, err)
	assert.Equal(t, "Arroz 1kg", byCode.Nombre)

	byBarcode, err := uc.GetByBarcode(ctx, "7790001")
	require.NoError(t, err)
	assert.Equal(t, "P1", byBarcode.CodigoProducto)

	_, err = uc.GetByCode(ctx, "7790001")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProductUseCase_CreateDuplicado(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())
	in := dto.CreateProductRequest{CodigoProducto: "P1", Nombre: "Arroz", PrecioVenta: decimal.NewFromInt(1)}

	_, err := uc.Create(context.Background(), in)
	require.NoError(t, err)
	_, err = uc.Create(context.Background(), in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)
}

func TestProductUseCase_PrecioNegativo(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())

	_, err := uc.Create(context.Background(), dto.CreateProductRequest{
		CodigoProducto: "P1", Nombre: "Arroz", PrecioVenta: decimal.NewFromInt(-1),
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestProductUseCase_UpdateIncrementaRevision(t *testing.T) {
	uc := NewProductUseCase(newMemProductRepo())
	ctx := context.Background()
	_, err := uc.Create(ctx, dto.CreateProductRequest{CodigoProducto: "P1", Nombre: "Arroz", PrecioVenta: decimal.NewFromInt(10), Stock: 3})
	require.NoError(t, err)

	nombre := "Arroz grano largo"
	stock := 8
	out, err := uc.Update(ctx, "P1", dto.UpdateProductRequest{Nombre: &nombre, Stock: &stock})
	require.NoError(t, err)
	assert.Equal(t, "Arroz grano largo", out.Nombre)
	assert.Equal(t, 8, out.Stock)
	assert.True(t, decimal.NewFromInt(10).Equal(out.PrecioVenta))
	assert.Equal(t, 2, out.Revision)

	_, err = uc.Update(ctx, "NOPE", dto.UpdateProductRequest{Nombre: &nombre})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}
