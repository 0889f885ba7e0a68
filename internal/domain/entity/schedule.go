package entity

import "time"

// Schedule horario de trabajo de un empleado para un día.
type Schedule struct {
	ID         int
	EmployeeID int
	Day        string
	StartsAt   time.Time
	EndsAt     time.Time
	Audit
}

// Valid indica si la hora de salida es posterior a la de ingreso.
func (s Schedule) Valid() bool {
	return s.EndsAt.After(s.StartsAt)
}
