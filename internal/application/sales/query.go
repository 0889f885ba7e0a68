package sales

import (
	"context"
	"fmt"
	"time"

	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/pricing"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

// QueryUseCase consultas de solo lectura sobre ventas.
type QueryUseCase struct {
	saleRepo repository.SaleRepository
}

// NewQueryUseCase construye el caso de uso.
func NewQueryUseCase(saleRepo repository.SaleRepository) *QueryUseCase {
	return &QueryUseCase{saleRepo: saleRepo}
}

// GetByNumber devuelve la vista completa de la venta o domain.ErrNotFound.
func (uc *QueryUseCase) GetByNumber(ctx context.Context, number int) (*dto.SaleResponse, error) {
	sale, err := uc.saleRepo.GetByNumber(ctx, number)
	if err != nil {
		return nil, fmt.Errorf("venta: obtener %d: %w", number, err)
	}
	if sale == nil {
		return nil, notFoundSale(number)
	}
	return ToSaleResponse(sale), nil
}

// List devuelve todas las ventas en vista resumida, la más reciente primero.
func (uc *QueryUseCase) List(ctx context.Context) ([]dto.SaleSummaryResponse, error) {
	list, err := uc.saleRepo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("venta: listar: %w", err)
	}
	return ToSaleSummaryList(list), nil
}

// ListBetween devuelve en vista resumida las ventas con fecha en [start, end].
func (uc *QueryUseCase) ListBetween(ctx context.Context, start, end string) ([]dto.SaleSummaryResponse, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("venta: listar entre fechas: %w", err)
	}
	return ToSaleSummaryList(list), nil
}

// SummaryBetween agrupa por día las ventas con fecha en [start, end].
func (uc *QueryUseCase) SummaryBetween(ctx context.Context, start, end string) ([]dto.SaleDailySummaryResponse, error) {
	from, to, err := parseRange(start, end)
	if err != nil {
		return nil, err
	}
	list, err := uc.saleRepo.ListBetween(ctx, from, to)
	if err != nil {
		return nil, fmt.Errorf("venta: resumen entre fechas: %w", err)
	}
	return ToDailySummaryResponse(pricing.SummarizeByDate(list, from, to)), nil
}

func notFoundSale(number int) error {
	return domain.NotFound("Venta no encontrada con el nroVenta: %d", number)
}

func parseRange(start, end string) (time.Time, time.Time, error) {
	from, err := time.Parse(time.DateOnly, start)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid(`El parámetro "start" debe tener formato YYYY-MM-DD`)
	}
	to, err := time.Parse(time.DateOnly, end)
	if err != nil {
		return time.Time{}, time.Time{}, domain.Invalid(`El parámetro "end" debe tener formato YYYY-MM-DD`)
	}
	if from.After(to) {
		return time.Time{}, time.Time{}, domain.Invalid(`El parámetro "start" (%s) no puede ser posterior a "end" (%s)`, start, end)
	}
	return from, to, nil
}
