package usecase

import (
	"context"
	"time"

	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

// ProductUseCase casos de uso CRUD para productos. El stock baja con cada venta registrada.
type ProductUseCase struct {
	repo repository.ProductRepository
	now  func() time.Time
}

// NewProductUseCase construye el caso de uso.
func NewProductUseCase(repo repository.ProductRepository) *ProductUseCase {
	return &ProductUseCase{repo: repo, now: time.Now}
}

// Create crea un nuevo producto; el código interno no puede repetirse.
func (uc *ProductUseCase) Create(ctx context.Context, in dto.CreateProductRequest) (*dto.ProductResponse, error) {
	if in.PrecioVenta.IsNegative() {
		return nil, domain.Invalid(`El campo "precioVenta" no puede ser negativo`)
	}
	existing, err := uc.repo.GetByCode(ctx, in.CodigoProducto)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, domain.Errorf(domain.ErrDuplicate, "Ya existe un producto con el codigoProducto: %s", in.CodigoProducto)
	}
	product := &entity.Product{
		Code:        in.CodigoProducto,
		Barcode:     in.CodigoBarra,
		Name:        in.Nombre,
		Description: in.Descripcion,
		UnitPrice:   in.PrecioVenta,
		Stock:       in.Stock,
		Audit:       entity.NewAudit(uc.now()),
	}
	if err := uc.repo.Create(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// GetByCode obtiene un producto por su código interno.
func (uc *ProductUseCase) GetByCode(ctx context.Context, code string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Producto no encontrado con el codigoProducto: %s", code)
	}
	return toProductResponse(product), nil
}

// GetByBarcode obtiene un producto por su código de barras.
func (uc *ProductUseCase) GetByBarcode(ctx context.Context, barcode string) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByBarcode(ctx, barcode)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Producto no encontrado con el codigoBarra: %s", barcode)
	}
	return toProductResponse(product), nil
}

// Update actualiza un producto; los campos nulos no se modifican.
func (uc *ProductUseCase) Update(ctx context.Context, code string, in dto.UpdateProductRequest) (*dto.ProductResponse, error) {
	product, err := uc.repo.GetByCode(ctx, code)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, domain.NotFound("Producto no encontrado con el codigoProducto: %s", code)
	}
	if in.CodigoBarra != nil {
		product.Barcode = *in.CodigoBarra
	}
	if in.Nombre != nil {
		product.Name = *in.Nombre
	}
	if in.Descripcion != nil {
		product.Description = *in.Descripcion
	}
	if in.PrecioVenta != nil {
		if in.PrecioVenta.IsNegative() {
			return nil, domain.Invalid(`El campo "precioVenta" no puede ser negativo`)
		}
		product.UnitPrice = *in.PrecioVenta
	}
	if in.Stock != nil {
		product.Stock = *in.Stock
	}
	product.Touch(uc.now())
	if err := uc.repo.Update(ctx, product); err != nil {
		return nil, err
	}
	return toProductResponse(product), nil
}

// List lista todos los productos.
func (uc *ProductUseCase) List(ctx context.Context) ([]dto.ProductResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	items := make([]dto.ProductResponse, 0, len(list))
	for _, p := range list {
		items = append(items, *toProductResponse(p))
	}
	return items, nil
}

func toProductResponse(p *entity.Product) *dto.ProductResponse {
	if p == nil {
		return nil
	}
	return &dto.ProductResponse{
		CodigoProducto: p.Code,
		CodigoBarra:    p.Barcode,
		Nombre:         p.Name,
		Descripcion:    p.Description,
		PrecioVenta:    p.UnitPrice,
		Stock:          p.Stock,
		Revision:       p.Revision,
		UpdatedAt:      p.UpdatedAt,
	}
}
