package usecase

import (
	"context"
	"errors"
	"time"

	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

// EmployeeUseCase casos de uso para empleados y sus horarios.
type EmployeeUseCase struct {
	repo         repository.EmployeeRepository
	scheduleRepo repository.ScheduleRepository
	now          func() time.Time
}

// NewEmployeeUseCase construye el caso de uso.
func NewEmployeeUseCase(repo repository.EmployeeRepository, scheduleRepo repository.ScheduleRepository) *EmployeeUseCase {
	return &EmployeeUseCase{repo: repo, scheduleRepo: scheduleRepo, now: time.Now}
}

// Create registra un empleado activo.
func (uc *EmployeeUseCase) Create(ctx context.Context, in dto.CreateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee := &entity.Employee{
		Position: in.Cargo,
		Active:   true,
		Person:   toPerson(in.PersonRequest),
		Audit:    entity.NewAudit(uc.now()),
	}
	if err := uc.repo.Create(ctx, employee); err != nil {
		if errors.Is(err, domain.ErrDuplicate) {
			return nil, domain.Errorf(domain.ErrDuplicate, "Ya existe un empleado con el ci: %s", in.CI)
		}
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// GetByID obtiene un empleado por ID.
func (uc *EmployeeUseCase) GetByID(ctx context.Context, id int) (*dto.EmployeeResponse, error) {
	employee, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// List lista todos los empleados.
func (uc *EmployeeUseCase) List(ctx context.Context) ([]dto.EmployeeResponse, error) {
	list, err := uc.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]dto.EmployeeResponse, 0, len(list))
	for _, e := range list {
		out = append(out, *toEmployeeResponse(e))
	}
	return out, nil
}

// Update actualiza un empleado; los campos nulos no se modifican.
func (uc *EmployeeUseCase) Update(ctx context.Context, id int, in dto.UpdateEmployeeRequest) (*dto.EmployeeResponse, error) {
	employee, err := uc.get(ctx, id)
	if err != nil {
		return nil, err
	}
	if in.Nombres != nil {
		employee.FirstNames = *in.Nombres
	}
	if in.Apellidos != nil {
		employee.LastNames = *in.Apellidos
	}
	if in.Direccion != nil {
		employee.Address = *in.Direccion
	}
	if in.Celular != nil {
		employee.Phone = *in.Celular
	}
	if in.PrefijoCelular != nil {
		employee.PhonePrefix = *in.PrefijoCelular
	}
	if in.Cargo != nil {
		employee.Position = *in.Cargo
	}
	if in.Activo != nil {
		employee.Active = *in.Activo
	}
	employee.Touch(uc.now())
	if err := uc.repo.Update(ctx, employee); err != nil {
		return nil, err
	}
	return toEmployeeResponse(employee), nil
}

// AddSchedule registra un horario del empleado; la salida debe ser posterior al ingreso.
func (uc *EmployeeUseCase) AddSchedule(ctx context.Context, employeeID int, in dto.CreateScheduleRequest) (*dto.ScheduleResponse, error) {
	if _, err := uc.get(ctx, employeeID); err != nil {
		return nil, err
	}
	schedule := &entity.Schedule{
		EmployeeID: employeeID,
		Day:        in.Dia,
		StartsAt:   in.HoraIngreso.UTC(),
		EndsAt:     in.HoraSalida.UTC(),
		Audit:      entity.NewAudit(uc.now()),
	}
	if in.HoraIngreso.IsZero() || in.HoraSalida.IsZero() || !schedule.Valid() {
		return nil, domain.Invalid(`El campo "horaSalida" debe ser posterior a "horaIngreso"`)
	}
	if err := uc.scheduleRepo.Create(ctx, schedule); err != nil {
		return nil, err
	}
	return toScheduleResponse(schedule), nil
}

// ListSchedules lista los horarios del empleado.
func (uc *EmployeeUseCase) ListSchedules(ctx context.Context, employeeID int) ([]dto.ScheduleResponse, error) {
	if _, err := uc.get(ctx, employeeID); err != nil {
		return nil, err
	}
	list, err := uc.scheduleRepo.ListByEmployee(ctx, employeeID)
	if err != nil {
		return nil, err
	}
	out := make([]dto.ScheduleResponse, 0, len(list))
	for _, s := range list {
		out = append(out, *toScheduleResponse(s))
	}
	return out, nil
}

func (uc *EmployeeUseCase) get(ctx context.Context, id int) (*entity.Employee, error) {
	employee, err := uc.repo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if employee == nil {
		return nil, domain.NotFound("Empleado no encontrado con el idEmpleado: %d", id)
	}
	return employee, nil
}

func toEmployeeResponse(e *entity.Employee) *dto.EmployeeResponse {
	return &dto.EmployeeResponse{
		IdEmpleado:     e.ID,
		PersonResponse: toPersonResponse(e.Person),
		Cargo:          e.Position,
		Activo:         e.Active,
		Revision:       e.Revision,
	}
}

func toScheduleResponse(s *entity.Schedule) *dto.ScheduleResponse {
	return &dto.ScheduleResponse{
		IdHorario:   s.ID,
		IdEmpleado:  s.EmployeeID,
		Dia:         s.Day,
		HoraIngreso: s.StartsAt,
		HoraSalida:  s.EndsAt,
	}
}

func toPerson(in dto.PersonRequest) entity.Person {
	return entity.Person{
		CI:          in.CI,
		FirstNames:  in.Nombres,
		LastNames:   in.Apellidos,
		Address:     in.Direccion,
		Phone:       in.Celular,
		PhonePrefix: in.PrefijoCelular,
	}
}

func toPersonResponse(p entity.Person) dto.PersonResponse {
	return dto.PersonResponse{
		CI:             p.CI,
		Nombres:        p.FirstNames,
		Apellidos:      p.LastNames,
		Direccion:      p.Address,
		Celular:        p.Phone,
		PrefijoCelular: p.PhonePrefix,
	}
}
