package sales

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/pricing"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
	"github.com/tiendadbii/tienda-api/pkg/logger"
)

const msgMissingProductCode = `Cada item del campo "listaDetalleVenta" debe tener un valor para el campo "codigoProducto"`

// CreateSaleUseCase registra una venta: resuelve empleado y productos, calcula totales y
// persiste cabecera, detalles, cliente y stock en una sola transacción.
type CreateSaleUseCase struct {
	txRunner     TxRunner
	employeeRepo repository.EmployeeRepository
	productRepo  repository.ProductRepository
	log          *logger.Logger
	recorder     Recorder
	now          func() time.Time
}

// Option configura dependencias opcionales del caso de uso.
type Option func(*CreateSaleUseCase)

// WithRecorder registra métricas de negocio.
func WithRecorder(r Recorder) Option {
	return func(uc *CreateSaleUseCase) {
		if r != nil {
			uc.recorder = r
		}
	}
}

// WithClock reemplaza el reloj usado cuando la venta no trae fecha.
func WithClock(now func() time.Time) Option {
	return func(uc *CreateSaleUseCase) { uc.now = now }
}

// NewCreateSaleUseCase construye el caso de uso.
func NewCreateSaleUseCase(
	txRunner TxRunner,
	employeeRepo repository.EmployeeRepository,
	productRepo repository.ProductRepository,
	log *logger.Logger,
	opts ...Option,
) *CreateSaleUseCase {
	if log == nil {
		log = logger.Nop()
	}
	uc := &CreateSaleUseCase{
		txRunner:     txRunner,
		employeeRepo: employeeRepo,
		productRepo:  productRepo,
		log:          log,
		recorder:     nopRecorder{},
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// Create registra la venta del empleado employeeID y devuelve su vista completa.
//
// Orden de validación: lista vacía, empleado, códigos de producto faltantes,
// cantidades y descuento, y por último la búsqueda de cada producto en orden.
// Nada se escribe si alguna validación falla.
func (uc *CreateSaleUseCase) Create(ctx context.Context, employeeID int, in dto.CreateSaleRequest) (*dto.SaleResponse, error) {
	if len(in.ListaDetalleVenta) == 0 {
		return nil, domain.Invalid(`El campo "listaDetalleVenta" debe tener al menos un item`)
	}

	employee, err := uc.employeeRepo.GetByID(ctx, employeeID)
	if err != nil {
		return nil, fmt.Errorf("venta: obtener empleado: %w", err)
	}
	if employee == nil {
		return nil, domain.NotFound("Empleado no encontrado con el idEmpleado: %d", employeeID)
	}

	for _, item := range in.ListaDetalleVenta {
		if item.CodigoProducto == "" {
			return nil, domain.Invalid(msgMissingProductCode)
		}
	}
	for _, item := range in.ListaDetalleVenta {
		if item.Cantidad <= 0 {
			return nil, domain.Invalid("La cantidad del codigoProducto %s debe ser mayor a cero", item.CodigoProducto)
		}
	}
	if in.Descuento.IsNegative() {
		return nil, domain.Invalid(`El campo "descuento" no puede ser negativo`)
	}

	details := make([]entity.SaleDetail, 0, len(in.ListaDetalleVenta))
	for i, item := range in.ListaDetalleVenta {
		product, err := uc.productRepo.GetByCode(ctx, item.CodigoProducto)
		if err != nil {
			return nil, fmt.Errorf("venta: obtener producto %s: %w", item.CodigoProducto, err)
		}
		if product == nil {
			return nil, domain.NotFound("Producto no encontrado con el codigoProducto: %s", item.CodigoProducto)
		}
		details = append(details, entity.SaleDetail{
			Position:    i + 1,
			ProductCode: product.Code,
			Product:     product,
			Quantity:    item.Cantidad,
		})
	}

	// fechaVenta se guarda y se devuelve en UTC: el mismo instante en POST y en GET.
	now := uc.now().UTC()
	date := now
	if in.FechaVenta != nil && !in.FechaVenta.IsZero() {
		date = in.FechaVenta.UTC()
	}
	sale := &entity.Sale{
		Date:       date,
		Discount:   in.Descuento,
		EmployeeID: employee.ID,
		Employee:   employee,
		Details:    details,
		Audit:      entity.NewAudit(now),
	}
	sale.Total = pricing.PriceDetails(sale.Details)
	if sale.Discount.GreaterThan(sale.Total) {
		return nil, domain.Invalid(`El campo "descuento" (%s) no puede ser mayor al total de la venta (%s)`,
			sale.Discount.StringFixed(2), sale.Total.StringFixed(2))
	}

	err = uc.txRunner.RunSale(ctx, func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error {
		if in.Cliente != nil {
			customer, err := resolveCustomer(ctx, customerRepo, in.Cliente, now)
			if err != nil {
				return err
			}
			sale.CustomerID = &customer.ID
			sale.Customer = customer
		}
		if err := saleRepo.Create(ctx, sale); err != nil {
			return fmt.Errorf("venta: guardar: %w", err)
		}
		// Descuento condicional: dos ventas concurrentes no pueden dejar stock negativo.
		for _, d := range sale.Details {
			if err := productRepo.DecrementStock(ctx, d.ProductCode, d.Quantity); err != nil {
				if errors.Is(err, domain.ErrInsufficientStock) {
					uc.recorder.StockConflict()
					uc.log.Warn().
						Str("codigo_producto", d.ProductCode).
						Int("cantidad", d.Quantity).
						Msg("venta rechazada por stock insuficiente")
				}
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	uc.recorder.SaleRegistered(sale.Total, len(sale.Details))
	uc.log.Info().
		Int("nro_venta", sale.Number).
		Int("id_empleado", sale.EmployeeID).
		Int("lineas", len(sale.Details)).
		Str("total", sale.Total.StringFixed(2)).
		Msg("venta registrada")

	return ToSaleResponse(sale), nil
}

// resolveCustomer busca el cliente por CI y lo crea si no existe. Si otra venta lo
// registra entre la búsqueda y la inserción, se reutiliza ese registro.
func resolveCustomer(ctx context.Context, repo repository.CustomerRepository, in *dto.CreateCustomerRequest, now time.Time) (*entity.Customer, error) {
	if in.CI == "" {
		return nil, domain.Invalid(`El campo "cliente.ci" es obligatorio`)
	}
	existing, err := repo.GetByCI(ctx, in.CI)
	if err != nil {
		return nil, fmt.Errorf("venta: buscar cliente: %w", err)
	}
	if existing != nil {
		return existing, nil
	}
	customer := &entity.Customer{
		Email: in.Email,
		Person: entity.Person{
			CI:          in.CI,
			FirstNames:  in.Nombres,
			LastNames:   in.Apellidos,
			Address:     in.Direccion,
			Phone:       in.Celular,
			PhonePrefix: in.PrefijoCelular,
		},
		Audit: entity.NewAudit(now),
	}
	if _, err := repo.CreateIfAbsent(ctx, customer); err != nil {
		return nil, fmt.Errorf("venta: crear cliente: %w", err)
	}
	return customer, nil
}
