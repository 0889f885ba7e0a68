package repository

import (
	"context"

	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

// CustomerRepository define el puerto de persistencia para Customer.
type CustomerRepository interface {
	Create(ctx context.Context, customer *entity.Customer) error
	// CreateIfAbsent inserta customer salvo que ya exista uno con su CI; en ese caso
	// carga el registro existente en customer. Devuelve true si lo insertó.
	CreateIfAbsent(ctx context.Context, customer *entity.Customer) (bool, error)
	GetByID(ctx context.Context, id int) (*entity.Customer, error)
	GetByCI(ctx context.Context, ci string) (*entity.Customer, error)
	List(ctx context.Context) ([]*entity.Customer, error)
}
