package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

func TestCustomerUseCase(t *testing.T) {
	uc := NewCustomerUseCase(&memCustomerRepo{items: map[int]*entity.Customer{}})
	ctx := context.Background()
	in := dto.CreateCustomerRequest{
		PersonRequest: dto.PersonRequest{CI: "4455667", Nombres: "María", Apellidos: "Mamani", Celular: "70000000", PrefijoCelular: "+591"},
		Email:         "maria@example.com",
	}

	created, err := uc.Create(ctx, in)
	require.NoError(t, err)
	assert.Equal(t, "4455667", created.CI)

	_, err = uc.Create(ctx, in)
	assert.ErrorIs(t, err, domain.ErrDuplicate)

	got, err := uc.GetByID(ctx, created.IdCliente)
	require.NoError(t, err)
	assert.Equal(t, "maria@example.com", got.Email)

	_, err = uc.GetByID(ctx, 99)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	list, err := uc.List(ctx)
	require.NoError(t, err)
	assert.Len(t, list, 1)
}
