package dto

import "time"

// CreateEmployeeRequest entrada para registrar un empleado.
type CreateEmployeeRequest struct {
	PersonRequest
	Cargo string `json:"cargo" validate:"required,max=60"`
}

// UpdateEmployeeRequest entrada para actualizar un empleado; los campos nulos no se modifican.
type UpdateEmployeeRequest struct {
	Nombres        *string `json:"nombres" validate:"omitempty,min=1,max=40"`
	Apellidos      *string `json:"apellidos" validate:"omitempty,min=1,max=55"`
	Direccion      *string `json:"direccion" validate:"omitempty,max=55"`
	Celular        *string `json:"celular" validate:"omitempty,min=1,max=14"`
	PrefijoCelular *string `json:"prefijoCelular" validate:"omitempty,min=1,max=6"`
	Cargo          *string `json:"cargo" validate:"omitempty,min=1,max=60"`
	Activo         *bool   `json:"activo"`
}

// EmployeeResponse salida de un empleado.
type EmployeeResponse struct {
	IdEmpleado int `json:"idEmpleado"`
	PersonResponse
	Cargo    string `json:"cargo"`
	Activo   bool   `json:"activo"`
	Revision int    `json:"revision"`
}

// CreateScheduleRequest entrada para registrar un horario del empleado.
type CreateScheduleRequest struct {
	Dia         string    `json:"dia" validate:"required,max=155"`
	HoraIngreso time.Time `json:"horaIngreso" validate:"required"`
	HoraSalida  time.Time `json:"horaSalida" validate:"required"`
}

// ScheduleResponse horario en respuestas.
type ScheduleResponse struct {
	IdHorario   int       `json:"idHorario"`
	IdEmpleado  int       `json:"idEmpleado"`
	Dia         string    `json:"dia"`
	HoraIngreso time.Time `json:"horaIngreso"`
	HoraSalida  time.Time `json:"horaSalida"`
}
