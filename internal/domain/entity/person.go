package entity

import "strings"

// Person datos de identificación y contacto de una persona (empleado, cliente).
type Person struct {
	CI          string // cédula de identidad, única por persona
	FirstNames  string
	LastNames   string
	Address     string // opcional
	Phone       string
	PhonePrefix string // prefijo de país, ej. "+591"
}

// FullName devuelve nombres y apellidos separados por un espacio.
func (p Person) FullName() string {
	return strings.TrimSpace(p.FirstNames + " " + p.LastNames)
}

// FullPhone devuelve el celular con su prefijo de país.
func (p Person) FullPhone() string {
	if p.PhonePrefix == "" {
		return p.Phone
	}
	return p.PhonePrefix + " " + p.Phone
}
