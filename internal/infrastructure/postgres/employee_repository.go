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

var (
	_ repository.EmployeeRepository = (*EmployeeRepo)(nil)
	_ repository.ScheduleRepository = (*ScheduleRepo)(nil)
)

// EmployeeRepo implementación de EmployeeRepository (usable con pool o tx).
type EmployeeRepo struct {
	q Querier
}

// NewEmployeeRepository construye el adaptador. Pasar pool o tx (Querier).
func NewEmployeeRepository(q Querier) *EmployeeRepo {
	return &EmployeeRepo{q: q}
}

const employeeColumns = `id_empleado, ci, nombres, apellidos, direccion, celular, prefijo_celular, cargo, activo, created_at, updated_at, revision`

// Create persiste un nuevo empleado y asigna su ID.
func (r *EmployeeRepo) Create(ctx context.Context, e *entity.Employee) error {
	query := `
		INSERT INTO empleado (ci, nombres, apellidos, direccion, celular, prefijo_celular, cargo, activo, created_at, updated_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
		RETURNING id_empleado`
	err := r.q.QueryRow(ctx, query,
		e.CI, e.FirstNames, e.LastNames, nullIfEmpty(e.Address), e.Phone, e.PhonePrefix, e.Position, e.Active,
		e.CreatedAt, e.UpdatedAt, e.Revision,
	).Scan(&e.ID)
	if err != nil {
		if isUniqueViolation(err) {
			return domain.ErrDuplicate
		}
		return fmt.Errorf("insert empleado: %w", err)
	}
	return nil
}

// GetByID obtiene un empleado por ID.
func (r *EmployeeRepo) GetByID(ctx context.Context, id int) (*entity.Employee, error) {
	e, err := scanEmployee(r.q.QueryRow(ctx, `SELECT `+employeeColumns+` FROM empleado WHERE id_empleado = $1`, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("get empleado: %w", err)
	}
	return e, nil
}

// List lista los empleados ordenados por ID.
func (r *EmployeeRepo) List(ctx context.Context) ([]*entity.Employee, error) {
	rows, err := r.q.Query(ctx, `SELECT `+employeeColumns+` FROM empleado ORDER BY id_empleado`)
	if err != nil {
		return nil, fmt.Errorf("list empleados: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Employee, 0)
	for rows.Next() {
		e, err := scanEmployee(rows)
		if err != nil {
			return nil, fmt.Errorf("scan empleado: %w", err)
		}
		list = append(list, e)
	}
	return list, rows.Err()
}

// Update actualiza datos de contacto, cargo y estado. La CI no se modifica.
func (r *EmployeeRepo) Update(ctx context.Context, e *entity.Employee) error {
	query := `
		UPDATE empleado
		SET nombres = $2, apellidos = $3, direccion = $4, celular = $5, prefijo_celular = $6,
		    cargo = $7, activo = $8, updated_at = $9, revision = $10
		WHERE id_empleado = $1`
	cmd, err := r.q.Exec(ctx, query,
		e.ID, e.FirstNames, e.LastNames, nullIfEmpty(e.Address), e.Phone, e.PhonePrefix,
		e.Position, e.Active, e.UpdatedAt, e.Revision,
	)
	if err != nil {
		return fmt.Errorf("update empleado: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	return nil
}

func scanEmployee(row pgx.Row) (*entity.Employee, error) {
	var e entity.Employee
	var address *string
	if err := row.Scan(
		&e.ID, &e.CI, &e.FirstNames, &e.LastNames, &address, &e.Phone, &e.PhonePrefix, &e.Position, &e.Active,
		&e.CreatedAt, &e.UpdatedAt, &e.Revision,
	); err != nil {
		return nil, err
	}
	e.Address = derefStr(address)
	return &e, nil
}

// ScheduleRepo implementación de ScheduleRepository.
type ScheduleRepo struct {
	q Querier
}

// NewScheduleRepository construye el adaptador de horarios.
func NewScheduleRepository(q Querier) *ScheduleRepo {
	return &ScheduleRepo{q: q}
}

// Create persiste un horario y asigna su ID.
func (r *ScheduleRepo) Create(ctx context.Context, s *entity.Schedule) error {
	query := `
		INSERT INTO horario (fk_id_empleado, dia, hora_ingreso, hora_salida, created_at, updated_at, revision)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id_horario`
	err := r.q.QueryRow(ctx, query,
		s.EmployeeID, s.Day, s.StartsAt, s.EndsAt, s.CreatedAt, s.UpdatedAt, s.Revision,
	).Scan(&s.ID)
	if err != nil {
		if isForeignKeyViolation(err) {
			return domain.NotFound("Empleado no encontrado con el idEmpleado: %d", s.EmployeeID)
		}
		return fmt.Errorf("insert horario: %w", err)
	}
	return nil
}

// ListByEmployee lista los horarios de un empleado por hora de ingreso.
func (r *ScheduleRepo) ListByEmployee(ctx context.Context, employeeID int) ([]*entity.Schedule, error) {
	rows, err := r.q.Query(ctx, `
		SELECT id_horario, fk_id_empleado, dia, hora_ingreso, hora_salida, created_at, updated_at, revision
		FROM horario WHERE fk_id_empleado = $1 ORDER BY hora_ingreso`, employeeID)
	if err != nil {
		return nil, fmt.Errorf("list horarios: %w", err)
	}
	defer rows.Close()
	list := make([]*entity.Schedule, 0)
	for rows.Next() {
		var s entity.Schedule
		if err := rows.Scan(&s.ID, &s.EmployeeID, &s.Day, &s.StartsAt, &s.EndsAt,
			&s.CreatedAt, &s.UpdatedAt, &s.Revision); err != nil {
			return nil, fmt.Errorf("scan horario: %w", err)
		}
		list = append(list, &s)
	}
	return list, rows.Err()
}
