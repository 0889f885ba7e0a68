package dto

import "time"

// CreateCustomerRequest datos del cliente (bloque "cliente" de la venta).
type CreateCustomerRequest struct {
	PersonRequest
	Email string `json:"email,omitempty" validate:"omitempty,email"`
}

// CustomerResponse cliente en respuestas.
type CustomerResponse struct {
	IdCliente int `json:"idCliente"`
	PersonResponse
	Email     string    `json:"email,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}

// CustomerSummary cliente embebido en la cabecera de una venta.
type CustomerSummary struct {
	IdCliente int    `json:"idCliente"`
	CI        string `json:"ci"`
	Nombre    string `json:"nombre"`
}
