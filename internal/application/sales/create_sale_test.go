package sales

import (
	"context"
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/pkg/logger"
)

func newTestUseCase(s *store, opts ...Option) (*CreateSaleUseCase, *fakeTxRunner) {
	tx := &fakeTxRunner{s: s}
	uc := NewCreateSaleUseCase(tx, fakeEmployeeRepo{s}, fakeProductRepo{s}, logger.Nop(), opts...)
	return uc, tx
}

func seededStore() *store {
	s := newStore()
	s.addEmployee(1, "Ana", "Quispe")
	s.addProduct("P1", "7790001", "Arroz 1kg", "10.50", 20)
	s.addProduct("P2", "7790002", "Aceite 1L", "25.00", 5)
	s.addProduct("P3", "7790003", "Azúcar 1kg", "8.00", 0)
	return s
}

func line(code string, qty int) dto.CreateSaleDetailRequest {
	return dto.CreateSaleDetailRequest{CodigoProducto: code, Cantidad: qty}
}

func TestCreate_RegistraVentaConTodasLasLineas(t *testing.T) {
	s := seededStore()
	fecha := time.Date(2024, 2, 5, 10, 0, 0, 0, time.UTC)
	rec := &countingRecorder{}
	uc, _ := newTestUseCase(s, WithRecorder(rec))

	out, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		FechaVenta:        &fecha,
		Descuento:         decimal.NewFromInt(5),
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 2), line("P2", 1)},
	})
	require.NoError(t, err)

	assert.Equal(t, 1, out.NroVenta)
	assert.Equal(t, fecha, out.FechaVenta)
	assert.Equal(t, "Ana Quispe", out.Empleado)
	require.Len(t, out.ListaDetalleVenta, 2)
	assert.Equal(t, "P1", out.ListaDetalleVenta[0].CodigoProducto)
	assert.True(t, decimal.RequireFromString("21").Equal(out.ListaDetalleVenta[0].SubtotalDetalle))
	assert.Equal(t, "P2", out.ListaDetalleVenta[1].CodigoProducto)
	assert.True(t, decimal.RequireFromString("46").Equal(out.TotalVenta))
	assert.True(t, decimal.RequireFromString("41").Equal(out.TotalNeto))

	assert.Equal(t, 18, s.products["P1"].Stock)
	assert.Equal(t, 4, s.products["P2"].Stock)
	assert.Equal(t, 1, rec.sales)

	saved := s.sales[1]
	require.NotNil(t, saved)
	for i, d := range saved.Details {
		assert.Equal(t, 1, d.SaleNumber)
		assert.Equal(t, i+1, d.Position)
	}
}

func TestCreate_SinFechaUsaReloj(t *testing.T) {
	s := seededStore()
	fixed := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)
	uc, _ := newTestUseCase(s, WithClock(func() time.Time { return fixed }))

	out, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, fixed, out.FechaVenta)
}

func TestCreate_ListaVacia(t *testing.T) {
	uc, tx := newTestUseCase(seededStore())

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.calls)
}

func TestCreate_EmpleadoInexistente(t *testing.T) {
	s := seededStore()
	uc, tx := newTestUseCase(s)

	_, err := uc.Create(context.Background(), 99, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Empleado no encontrado con el idEmpleado: 99")
	assert.Empty(t, s.lookups)
	assert.Zero(t, tx.calls)
}

func TestCreate_CodigoFaltanteAntesDeBuscarProductos(t *testing.T) {
	s := seededStore()
	uc, tx := newTestUseCase(s)

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1), line("", 2)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.EqualError(t, err, msgMissingProductCode)
	assert.Empty(t, s.lookups, "no debe consultar productos")
	assert.Zero(t, tx.calls)
}

func TestCreate_ProductoInexistenteNoEscribe(t *testing.T) {
	s := seededStore()
	uc, tx := newTestUseCase(s)

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1), line("NOPE", 1), line("OTRO", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
	assert.EqualError(t, err, "Producto no encontrado con el codigoProducto: NOPE")
	assert.Equal(t, []string{"P1", "NOPE"}, s.lookups)
	assert.Zero(t, tx.calls)
	assert.Empty(t, s.sales)
	assert.Equal(t, 20, s.products["P1"].Stock)
}

func TestCreate_CodigoDeBarrasNoEsCodigoProducto(t *testing.T) {
	s := seededStore()
	uc, _ := newTestUseCase(s)

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("7790001", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCreate_CantidadInvalida(t *testing.T) {
	uc, _ := newTestUseCase(seededStore())

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 0)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_DescuentoMayorAlTotal(t *testing.T) {
	s := seededStore()
	uc, tx := newTestUseCase(s)

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		Descuento:         decimal.NewFromInt(100),
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, tx.calls)

	_, err = uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		Descuento:         decimal.NewFromInt(-1),
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestCreate_StockInsuficienteHaceRollback(t *testing.T) {
	s := seededStore()
	rec := &countingRecorder{}
	uc, tx := newTestUseCase(s, WithRecorder(rec))

	_, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		Cliente: &dto.CreateCustomerRequest{PersonRequest: dto.PersonRequest{CI: "123", Nombres: "Luis"}},
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{
			line("P1", 3),
			line("P2", 6),
		},
	})
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrInsufficientStock))
	assert.Equal(t, 1, tx.calls)

	assert.Equal(t, 20, s.products["P1"].Stock, "el descuento de la primera línea se revierte")
	assert.Empty(t, s.sales)
	assert.Empty(t, s.customers)
	assert.Equal(t, 1, rec.conflicts)
	assert.Zero(t, rec.sales)
}

func TestCreate_ClienteSeCreaSiNoExiste(t *testing.T) {
	s := seededStore()
	uc, _ := newTestUseCase(s)
	cliente := &dto.CreateCustomerRequest{
		PersonRequest: dto.PersonRequest{CI: "4455667", Nombres: "María", Apellidos: "Mamani", Celular: "70000000", PrefijoCelular: "+591"},
		Email:         "maria@example.com",
	}

	first, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		Cliente:           cliente,
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	require.NoError(t, err)
	require.NotNil(t, first.Cliente)
	assert.Equal(t, "4455667", first.Cliente.CI)
	assert.Equal(t, "María Mamani", first.Cliente.Nombre)

	second, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		Cliente:           cliente,
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	require.NoError(t, err)
	assert.Equal(t, first.Cliente.IdCliente, second.Cliente.IdCliente)
	assert.Len(t, s.customers, 1)
}

func TestCreate_MismoProductoEnVariasLineas(t *testing.T) {
	s := seededStore()
	uc, _ := newTestUseCase(s)

	out, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P2", 2), line("P2", 3)},
	})
	require.NoError(t, err)
	assert.Len(t, out.ListaDetalleVenta, 2)
	assert.Equal(t, 0, s.products["P2"].Stock)
}

func TestCreate_FechaConZonaHorariaConservaElInstante(t *testing.T) {
	s := seededStore()
	laPaz := time.FixedZone("BOT", -4*60*60)
	fecha := time.Date(2024, 2, 5, 22, 30, 0, 0, laPaz)
	uc, _ := newTestUseCase(s)

	out, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		FechaVenta:        &fecha,
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	require.NoError(t, err)
	assert.True(t, fecha.Equal(out.FechaVenta))
	assert.Equal(t, time.UTC, out.FechaVenta.Location())

	got, err := NewQueryUseCase(fakeSaleRepo{s}).GetByNumber(context.Background(), out.NroVenta)
	require.NoError(t, err)
	assert.Equal(t, out.FechaVenta, got.FechaVenta)

	posted, err := json.Marshal(out.FechaVenta)
	require.NoError(t, err)
	read, err := json.Marshal(got.FechaVenta)
	require.NoError(t, err)
	assert.JSONEq(t, `"2024-02-06T02:30:00Z"`, string(posted))
	assert.Equal(t, string(posted), string(read))
}

func TestCreate_RelojLocalSeGuardaEnUTC(t *testing.T) {
	s := seededStore()
	local := time.Date(2024, 3, 1, 20, 0, 0, 0, time.FixedZone("BOT", -4*60*60))
	uc, _ := newTestUseCase(s, WithClock(func() time.Time { return local }))

	out, err := uc.Create(context.Background(), 1, dto.CreateSaleRequest{
		ListaDetalleVenta: []dto.CreateSaleDetailRequest{line("P1", 1)},
	})
	require.NoError(t, err)
	assert.True(t, local.Equal(out.FechaVenta))
	assert.Equal(t, time.UTC, s.sales[out.NroVenta].Date.Location())
}

func TestResolveCustomer_ReutilizaClienteRegistradoEnParalelo(t *testing.T) {
	s := seededStore()
	repo := fakeCustomerRepo{s}
	previo := &entity.Customer{Person: entity.Person{CI: "4455667", FirstNames: "María", LastNames: "Mamani"}}
	require.NoError(t, repo.Create(context.Background(), previo))

	got, err := resolveCustomer(context.Background(), staleCustomerRepo{repo}, &dto.CreateCustomerRequest{
		PersonRequest: dto.PersonRequest{CI: "4455667", Nombres: "María", Apellidos: "Mamani"},
	}, time.Now())
	require.NoError(t, err)
	assert.Equal(t, previo.ID, got.ID)
	assert.Len(t, s.customers, 1)
}
