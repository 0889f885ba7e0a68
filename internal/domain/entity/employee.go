package entity

// Employee representa a un empleado de la tienda; registra ventas pero nunca se crea desde ellas.
type Employee struct {
	ID       int
	Position string // cargo
	Active   bool
	Person
	Audit
}
