package entity

// Customer representa un cliente; se crea en el registro de una venta si aún no existe (por CI).
type Customer struct {
	ID    int
	Email string
	Person
	Audit
}
