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

var _ repository.CustomerRepository = (*CustomerRepo)(nil)

// CustomerRepo implementación de CustomerRepository (usable con pool o tx).
type CustomerRepo struct {
	q Querier
}

// NewCustomerRepository construye el adaptador. Pasar pool o tx (Querier).
func NewCustomerRepository(q Querier) *CustomerRepo {
	return &CustomerRepo{q: q}
}

const customerColumns = `id_cliente, ci, nombres, apellidos, direccion, celular, prefijo_celular, email, created_at, updated_at, revision`

// Create persiste un nuevo cliente y asigna su ID.
func (r *CustomerRepo) Create(ctx context.Context, c *entity.Customer) error {
	query := `
		INSERT INTO cliente (ci, nombres, apellidos, direccion, celular, prefijo_celular, email, created_at, updated_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id_cliente`
	err := r.q.QueryRow(ctx, query,
		c.CI, c.FirstNames, c.LastNames, nullIfEmpty(c.Address), c.Phone, c.PhonePrefix, nullIfEmpty(c.Email),
		c.CreatedAt, c.UpdatedAt, c.Revision,
	).Scan(&c.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert cliente: %w", err)
	}
	return nil
}

// CreateIfAbsent inserta el cliente o, si su CI ya está registrado (incluso por una
// transacción concurrente), carga el existente en c sin abortar la transacción.
func (r *CustomerRepo) CreateIfAbsent(ctx context.Context, c *entity.Customer) (bool, error) {
	query := `
		INSERT INTO cliente (ci, nombres, apellidos, direccion, celular, prefijo_celular, email, created_at, updated_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		ON CONFLICT (ci) DO NOTHING
		RETURNING id_cliente`
	err := r.q.QueryRow(ctx, query,
		c.CI, c.FirstNames, c.LastNames, nullIfEmpty(c.Address), c.Phone, c.PhonePrefix, nullIfEmpty(c.Email),
		c.CreatedAt, c.UpdatedAt, c.Revision,
	).Scan(&c.ID)
	if err == nil {
		return true, nil
	}
	if !errors.Is(err, pgx.ErrNoRows) {
		return false, fmt.Errorf("insert cliente: %w", err)
	}

	existing, err := r.GetByCI(ctx, c.CI)
	if err != nil {
		return false, err
	}
	if existing == nil {
		return false, fmt.Errorf("cliente con ci %s: conflicto sin registro visible", c.CI)
	}
	*c = *existing
	return false, nil
}

// GetByID obtiene un cliente por ID.
func (r *CustomerRepo) GetByID(ctx context.Context, id int) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM cliente WHERE id_cliente = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente: %w", err)
	}
	return c, nil
}

// GetByCI obtiene un cliente por su cédula de identidad.
func (r *CustomerRepo) GetByCI(ctx context.Context, ci string) (*entity.Customer, error) {
	c, err := scanCustomer(r.q.QueryRow(ctx, `SELECT `+customerColumns+` FROM cliente WHERE ci = $1`, ci))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get cliente por ci: %w", err)
	}
	return c, nil
}

// List lista los clientes ordenados por ID.
func (r *CustomerRepo) List(ctx context.Context) ([]*entity.Customer, error) {
	rows, err := r.q.Query(ctx, `SELECT `+customerColumns+` FROM cliente ORDER BY id_cliente`)
	if err != nil {
		return nil, fmt.Errorf("list clientes: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Customer, 0)
	for rows.Next() {
		c, err := scanCustomer(rows)
		if err != nil {
			return nil, fmt.Errorf("scan cliente: %w", err)
		}
		list = append(list, c)
	}
	return list, rows.Err()
}

func scanCustomer(row pgx.Row) (*entity.Customer, error) {
	var c entity.Customer
	var address, email *string
	if err := row.Scan(
		&c.ID, &c.CI, &c.FirstNames, &c.LastNames, &address, &c.Phone, &c.PhonePrefix, &email,
		&c.CreatedAt, &c.UpdatedAt, &c.Revision,
	); err != nil {
		return nil, err
	}
	c.Address = derefStr(address)
	c.Email = derefStr(email)
	return &c, nil
}
