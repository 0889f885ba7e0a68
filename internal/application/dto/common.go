package dto

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// PersonRequest datos personales comunes a empleados y clientes.
type PersonRequest struct {
	CI             string `json:"ci" validate:"required,max=30"`
	Nombres        string `json:"nombres" validate:"required,max=40"`
	Apellidos      string `json:"apellidos" validate:"required,max=55"`
	Direccion      string `json:"direccion" validate:"max=55"`
	Celular        string `json:"celular" validate:"required,max=14"`
	PrefijoCelular string `json:"prefijoCelular" validate:"required,max=6"`
}

// PersonResponse datos personales en respuestas.
type PersonResponse struct {
	CI             string `json:"ci"`
	Nombres        string `json:"nombres"`
	Apellidos      string `json:"apellidos"`
	Direccion      string `json:"direccion,omitempty"`
	Celular        string `json:"celular"`
	PrefijoCelular string `json:"prefijoCelular"`
}
