package sales

import (
	"context"

	"github.com/shopspring/decimal"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

// TxRunner ejecuta fn dentro de una transacción con repos atados a ella.
// Si fn devuelve error se hace rollback de todo (cabecera, detalles, stock y cliente).
type TxRunner interface {
	RunSale(ctx context.Context, fn func(
		saleRepo repository.SaleRepository,
		productRepo repository.ProductRepository,
		customerRepo repository.CustomerRepository,
	) error) error
}

// Recorder recibe los eventos de negocio de las ventas (métricas).
type Recorder interface {
	SaleRegistered(total decimal.Decimal, lines int)
	StockConflict()
}

// ReceiptGenerator genera el comprobante (PDF) de una venta persistida.
type ReceiptGenerator interface {
	GenerateSaleReceipt(ctx context.Context, sale *entity.Sale) ([]byte, error)
}

type nopRecorder struct{}

func (nopRecorder) SaleRegistered(decimal.Decimal, int) {}
func (nopRecorder) StockConflict()                      {}
