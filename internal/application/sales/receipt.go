package sales

import (
	"context"
	"fmt"

	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

// ReceiptUseCase genera el comprobante PDF de una venta registrada.
type ReceiptUseCase struct {
	saleRepo  repository.SaleRepository
	generator ReceiptGenerator
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(saleRepo repository.SaleRepository, generator ReceiptGenerator) *ReceiptUseCase {
	return &ReceiptUseCase{saleRepo: saleRepo, generator: generator}
}

// Download devuelve el PDF y el nombre de archivo sugerido; domain.ErrNotFound si la venta no existe.
func (uc *ReceiptUseCase) Download(ctx context.Context, number int) (pdfBytes []byte, filename string, err error) {
	sale, err := uc.saleRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: obtener venta: %w", err)
	}
	if sale == nil {
		return nil, "", notFoundSale(number)
	}
	pdfBytes, err = uc.generator.GenerateSaleReceipt(ctx, sale)
	if err != nil {
		return nil, "", fmt.Errorf("comprobante: generar pdf: %w", err)
	}
	return pdfBytes, fmt.Sprintf("venta_%d.pdf", sale.Number), nil
}
