package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

var _ repository.ProductRepository = (*ProductRepo)(nil)

// ProductRepo implementación del puerto ProductRepository sobre PostgreSQL (usable con pool o tx).
type ProductRepo struct {
	q Querier
}

// NewProductRepository construye el adaptador de persistencia para productos. Pasar pool o tx (Querier).
func NewProductRepository(q Querier) *ProductRepo {
	return &ProductRepo{q: q}
}

const productColumns = `codigo_producto, codigo_barra, nombre, descripcion, precio_venta, stock, created_at, updated_at, revision`

// Create persiste un nuevo producto.
func (r *ProductRepo) Create(ctx context.Context, p *entity.Product) error {
	query := `INSERT INTO producto (` + productColumns + `) VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`
	_, err := r.q.Exec(ctx, query,
		p.Code, nullIfEmpty(p.Barcode), p.Name, nullIfEmpty(p.Description), p.UnitPrice, p.Stock,
		p.CreatedAt, p.UpdatedAt, p.Revision,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert producto: %w", err)
	}
	return nil
}

// GetByCode obtiene un producto por su código interno.
func (r *ProductRepo) GetByCode(ctx context.Context, code string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE codigo_producto = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, code))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto: %w", err)
	}
	return p, nil
}

// GetByBarcode obtiene un producto por su código de barras.
func (r *ProductRepo) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	query := `SELECT ` + productColumns + ` FROM producto WHERE codigo_barra = $1`
	p, err := scanProduct(r.q.QueryRow(ctx, query, barcode))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get producto por codigo_barra: %w", err)
	}
	return p, nil
}

// List lista todos los productos ordenados por código.
func (r *ProductRepo) List(ctx context.Context) ([]*entity.Product, error) {
	rows, err := r.q.Query(ctx, `SELECT `+productColumns+` FROM producto ORDER BY codigo_producto`)
	if err != nil {
		return nil, fmt.Errorf("list productos: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("scan producto: %w", err)
		}
		list = append(list, p)
	}
	return list, rows.Err()
}

// Update actualiza un producto existente; incrementa la revisión.
func (r *ProductRepo) Update(ctx context.Context, p *entity.Product) error {
	query := `
		UPDATE producto
		SET codigo_barra = $2, nombre = $3, descripcion = $4, precio_venta = $5, stock = $6,
		    updated_at = $7, revision = $8
		WHERE codigo_producto = $1`
	cmd, err := r.q.Exec(ctx, query,
		p.Code, nullIfEmpty(p.Barcode), p.Name, nullIfEmpty(p.Description), p.UnitPrice, p.Stock,
		p.UpdatedAt, p.Revision,
	)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("update producto: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

// DecrementStock descuenta qty unidades en una sola sentencia condicional.
// La fila queda bloqueada hasta el fin de la transacción, así que dos ventas del mismo producto se serializan.
func (r *ProductRepo) DecrementStock(ctx context.Context, code string, qty int) error {
	cmd, err := r.q.Exec(ctx, `
		UPDATE producto
		SET stock = stock - $2, updated_at = now(), revision = revision + 1
		WHERE codigo_producto = $1 AND stock >= $2`,
		code, qty,
	)
	if err != nil {
		return fmt.Errorf("descontar stock: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.Errorf(domain.ErrInsufficientStock,
			"Stock insuficiente para el codigoProducto: %s (cantidad solicitada: %d)", code, qty)
	}
	return nil
}

func scanProduct(row pgx.Row) (*entity.Product, error) {
	var p entity.Product
	var barcode, description *string
	if err := row.Scan(
		&p.Code, &barcode, &p.Name, &description, &p.UnitPrice, &p.Stock,
		&p.CreatedAt, &p.UpdatedAt, &p.Revision,
	); err != nil {
		return nil, err
	}
	p.Barcode = derefStr(barcode)
	p.Description = derefStr(description)
	return &p, nil
}
