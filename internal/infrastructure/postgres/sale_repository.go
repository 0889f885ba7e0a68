package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

var _ repository.SaleRepository = (*SaleRepo)(nil)

// SaleRepo implementación de SaleRepository (usable con pool o tx).
type SaleRepo struct {
	q Querier
}

// NewSaleRepository construye el adaptador. Pasar pool o tx (Querier).
func NewSaleRepository(q Querier) *SaleRepo {
	return &SaleRepo{q: q}
}

const saleHeaderSelect = `
	SELECT v.nro_venta, v.fecha_venta, v.total_venta, v.descuento, v.fk_id_empleado, v.fk_id_cliente,
	       v.created_at, v.updated_at, v.revision,
	       e.ci, e.nombres, e.apellidos,
	       c.ci, c.nombres, c.apellidos
	FROM venta v
	JOIN empleado e     ON e.id_empleado = v.fk_id_empleado
	LEFT JOIN cliente c ON c.id_cliente  = v.fk_id_cliente`

// Create inserta la cabecera y luego cada detalle en orden; asigna nro_venta e IDs.
// Debe llamarse dentro de una transacción para que cabecera y detalles sean atómicos.
func (r *SaleRepo) Create(ctx context.Context, sale *entity.Sale) error {
	err := r.q.QueryRow(ctx, `
		INSERT INTO venta (fecha_venta, total_venta, descuento, fk_id_empleado, fk_id_cliente, created_at, updated_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING nro_venta`,
		sale.Date, sale.Total, sale.Discount, sale.EmployeeID, sale.CustomerID,
		sale.CreatedAt, sale.UpdatedAt, sale.Revision,
	).Scan(&sale.Number)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("Empleado no encontrado con el idEmpleado: %d", sale.EmployeeID)
		}
		return fmt.Errorf("insert venta: %w", err)
	}

	for i := range sale.Details {
		d := &sale.Details[i]
		d.SaleNumber = sale.Number
		d.Position = i + 1
		err := r.q.QueryRow(ctx, `
			INSERT INTO detalle_venta (fk_nro_venta, posicion, fk_codigo_producto, cantidad, subtotal_detalle)
			VALUES ($1, $2, $3, $4, $5)
			RETURNING id_detalle_venta`,
			d.SaleNumber, d.Position, d.ProductCode, d.Quantity, d.Subtotal,
		).Scan(&d.ID)
		if err != nil {
			if isForeignKeyViolation(err) {
				return domain.NotFound("Producto no encontrado con el codigoProducto: %s", d.ProductCode)
			}
			return fmt.Errorf("insert detalle_venta: %w", err)
		}
	}
	return nil
}

// GetByNumber obtiene la venta completa: cabecera, empleado, cliente y detalles con su producto.
func (r *SaleRepo) GetByNumber(ctx context.Context, number int) (*entity.Sale, error) {
	sale, err := scanSaleHeader(r.q.QueryRow(ctx, saleHeaderSelect+` WHERE v.nro_venta = $1`, number))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get venta: %w", err)
	}

	rows, err := r.q.Query(ctx, `
		SELECT d.id_detalle_venta, d.fk_nro_venta, d.posicion, d.fk_codigo_producto, d.cantidad, d.subtotal_detalle,
		       `+prefixed("p", productColumns)+`
		FROM detalle_venta d
		JOIN producto p ON p.codigo_producto = d.fk_codigo_producto
		WHERE d.fk_nro_venta = $1
		ORDER BY d.posicion`, number)
	if err != nil {
		return nil, fmt.Errorf("list detalle_venta: %w", err)
	}
	defer rows.Close()
	for rows.Next() {
		var d entity.SaleDetail
		var p entity.Product
		var barcode, description *string
		if err := rows.Scan(
			&d.ID, &d.SaleNumber, &d.Position, &d.ProductCode, &d.Quantity, &d.Subtotal,
			&p.Code, &barcode, &p.Name, &description, &p.UnitPrice, &p.Stock,
			&p.CreatedAt, &p.UpdatedAt, &p.Revision,
		); err != nil {
			return nil, fmt.Errorf("scan detalle_venta: %w", err)
		}
		p.Barcode = derefStr(barcode)
		p.Description = derefStr(description)
		d.Product = &p
		sale.Details = append(sale.Details, d)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("list detalle_venta: %w", err)
	}
	return sale, nil
}

// List devuelve las cabeceras de todas las ventas (sin detalles), de la más reciente a la más antigua.
func (r *SaleRepo) List(ctx context.Context) ([]*entity.Sale, error) {
	return r.listHeaders(ctx, saleHeaderSelect+` ORDER BY v.fecha_venta DESC, v.nro_venta DESC`)
}

// ListBetween devuelve las cabeceras con fecha_venta en [start 00:00, end+1 00:00), por fecha ascendente.
func (r *SaleRepo) ListBetween(ctx context.Context, start, end time.Time) ([]*entity.Sale, error) {
	from := time.Date(start.Year(), start.Month(), start.Day(), 0, 0, 0, 0, time.UTC)
	to := time.Date(end.Year(), end.Month(), end.Day(), 0, 0, 0, 0, time.UTC).AddDate(0, 0, 1)
	return r.listHeaders(ctx,
		saleHeaderSelect+` WHERE v.fecha_venta >= $1 AND v.fecha_venta < $2 ORDER BY v.fecha_venta, v.nro_venta`,
		from, to)
}

func (r *SaleRepo) listHeaders(ctx context.Context, query string, args ...any) ([]*entity.Sale, error) {
	rows, err := r.q.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("list ventas: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Sale, 0)
	for rows.Next() {
		s, err := scanSaleHeader(rows)
		if err != nil {
			return nil, fmt.Errorf("scan venta: %w", err)
		}
		list = append(list, s)
	}
	return list, rows.Err()
}

func scanSaleHeader(row pgx.Row) (*entity.Sale, error) {
	var s entity.Sale
	var emp entity.Employee
	var customerCI, customerNames, customerLastNames *string
	if err := row.Scan(
		&s.Number, &s.Date, &s.Total, &s.Discount, &s.EmployeeID, &s.CustomerID,
		&s.CreatedAt, &s.UpdatedAt, &s.Revision,
		&emp.CI, &emp.FirstNames, &emp.LastNames,
		&customerCI, &customerNames, &customerLastNames,
	); err != nil {
		return nil, err
	}
	emp.ID = s.EmployeeID
	s.Employee = &emp
	if s.CustomerID != nil {
		s.Customer = &entity.Customer{
			ID: *s.CustomerID,
			Person: entity.Person{
				CI:         derefStr(customerCI),
				FirstNames: derefStr(customerNames),
				LastNames:  derefStr(customerLastNames),
			},
		}
	}
	return &s, nil
}
