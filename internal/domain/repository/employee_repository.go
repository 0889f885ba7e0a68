package repository

import (
	"context"

	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

// EmployeeRepository define el puerto de persistencia para Employee.
type EmployeeRepository interface {
	Create(ctx context.Context, employee *entity.Employee) error
	GetByID(ctx context.Context, id int) (*entity.Employee, error)
	List(ctx context.Context) ([]*entity.Employee, error)
	Update(ctx context.Context, employee *entity.Employee) error
}

// ScheduleRepository define el puerto de persistencia para los horarios de un empleado.
type ScheduleRepository interface {
	Create(ctx context.Context, schedule *entity.Schedule) error
	ListByEmployee(ctx context.Context, employeeID int) ([]*entity.Schedule, error)
}
