package entity

import "time"

// Audit datos de auditoría compartidos por las entidades persistidas.
// Revision inicia en 1 y se incrementa en cada actualización.
type Audit struct {
	CreatedAt time.Time
	UpdatedAt time.Time
	Revision  int
}

// NewAudit crea la auditoría de un registro recién creado.
func NewAudit(now time.Time) Audit {
	return Audit{CreatedAt: now, UpdatedAt: now, Revision: 1}
}

// Touch marca una modificación del registro.
func (a *Audit) Touch(now time.Time) {
	a.UpdatedAt = now
	a.Revision++
}
