package http_test

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tiendadbii/tienda-api/internal/application/dto"
	"github.com/tiendadbii/tienda-api/internal/application/usecase"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	apphttp "github.com/tiendadbii/tienda-api/internal/interfaces/http"
)

type memCustomers struct{ items []*entity.Customer }

func (r *memCustomers) Create(_ context.Context, c *entity.Customer) error {
	c.ID = len(r.items) + 1
	r.items = append(r.items, c)
	return nil
}
func (r *memCustomers) CreateIfAbsent(ctx context.Context, c *entity.Customer) (bool, error) {
	if existing, _ := r.GetByCI(ctx, c.CI); existing != nil {
		*c = *existing
		return false, nil
	}
	return true, r.Create(ctx, c)
}
func (r *memCustomers) GetByID(_ context.Context, id int) (*entity.Customer, error) {
	if id < 1 || id > len(r.items) {
		return nil, nil
	}
	return r.items[id-1], nil
}
func (r *memCustomers) GetByCI(_ context.Context, ci string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.CI == ci {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCustomers) List(context.Context) ([]*entity.Customer, error) { return r.items, nil }

func buildCustomerApp() *fiber.App {
	app := fiber.New()
	apphttp.Router(app, apphttp.RouterDeps{CustomerUC: usecase.NewCustomerUseCase(&memCustomers{})})
	return app
}

func TestCustomerHandler_Flujo(t *testing.T) {
	app := buildCustomerApp()
	body := `{"ci":"4455667","nombres":"María","apellidos":"Mamani","celular":"70000000","prefijoCelular":"+591","email":"maria@example.com"}`

	resp := doJSON(t, app, "POST", "/api/cliente", body)
	require.Equal(t, fiber.StatusCreated, resp.StatusCode)
	var created dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&created))
	assert.Equal(t, 1, created.IdCliente)
	assert.Equal(t, "maria@example.com", created.Email)

	resp = doJSON(t, app, "POST", "/api/cliente", body)
	assert.Equal(t, fiber.StatusConflict, resp.StatusCode)
	assert.Equal(t, "Ya existe un cliente con el ci: 4455667", decodeError(t, resp).Message)

	resp = doJSON(t, app, "GET", "/api/cliente/1", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var got dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&got))
	assert.Equal(t, "4455667", got.CI)
	assert.Equal(t, "Mamani", got.Apellidos)

	resp = doJSON(t, app, "GET", "/api/cliente", "")
	require.Equal(t, fiber.StatusOK, resp.StatusCode)
	var list []dto.CustomerResponse
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&list))
	assert.Len(t, list, 1)
}

func TestCustomerHandler_Errores(t *testing.T) {
	app := buildCustomerApp()

	resp := doJSON(t, app, "GET", "/api/cliente/42", "")
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "NOT_FOUND", decodeError(t, resp).Code)

	resp = doJSON(t, app, "GET", "/api/cliente/xyz", "")
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Message, "idCliente")

	resp = doJSON(t, app, "POST", "/api/cliente",
		`{"ci":"1","nombres":"Ana","apellidos":"Q","celular":"7","prefijoCelular":"+591","email":"no-es-email"}`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Contains(t, decodeError(t, resp).Message, "email")

	resp = doJSON(t, app, "POST", "/api/cliente", `{"ci":`)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "INVALID_BODY", decodeError(t, resp).Code)
}
