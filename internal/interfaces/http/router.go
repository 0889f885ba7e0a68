package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/tiendadbii/tienda-api/internal/application/usecase"
	"github.com/tiendadbii/tienda-api/pkg/logger"
	"github.com/tiendadbii/tienda-api/pkg/validation"
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	CreateSale SaleCreator
	SaleQuery  SaleQuerier
	Receipt    ReceiptDownloader
	ProductUC  *usecase.ProductUseCase
	EmployeeUC *usecase.EmployeeUseCase
	CustomerUC *usecase.CustomerUseCase
	Validator  *validation.Validator
	Logger     *logger.Logger
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	if deps.Validator == nil {
		deps.Validator = validation.New()
	}
	if deps.Logger == nil {
		deps.Logger = logger.Nop()
	}
	api := app.Group("/api")

	// Ventas: las rutas fijas van antes de /:nroVenta
	sales := api.Group("/venta")
	saleHandler := NewSaleHandler(deps.CreateSale, deps.SaleQuery, deps.Receipt, deps.Validator, deps.Logger)
	sales.Get("/", saleHandler.List)
	sales.Get("/entre-fechas", saleHandler.ListBetween)
	sales.Get("/resumen/entre-fechas", saleHandler.SummaryBetween)
	sales.Post("/empleado/:idEmpleado", saleHandler.Create)
	sales.Get("/:nroVenta", saleHandler.GetByNumber)
	sales.Get("/:nroVenta/comprobante", saleHandler.Receipt)

	if deps.ProductUC != nil {
		products := api.Group("/producto")
		productHandler := NewProductHandler(deps.ProductUC, deps.Validator, deps.Logger)
		products.Post("/", productHandler.Create)
		products.Get("/", productHandler.List)
		products.Get("/:codigoProducto", productHandler.GetByCode)
		products.Put("/:codigoProducto", productHandler.Update)
	}

	if deps.EmployeeUC != nil {
		employees := api.Group("/empleado")
		employeeHandler := NewEmployeeHandler(deps.EmployeeUC, deps.Validator, deps.Logger)
		employees.Post("/", employeeHandler.Create)
		employees.Get("/", employeeHandler.List)
		employees.Get("/:idEmpleado", employeeHandler.GetByID)
		employees.Put("/:idEmpleado", employeeHandler.Update)
		employees.Get("/:idEmpleado/horario", employeeHandler.ListSchedules)
		employees.Post("/:idEmpleado/horario", employeeHandler.AddSchedule)
	}

	if deps.CustomerUC != nil {
		customers := api.Group("/cliente")
		customerHandler := NewCustomerHandler(deps.CustomerUC, deps.Validator, deps.Logger)
		customers.Post("/", customerHandler.Create)
		customers.Get("/", customerHandler.List)
		customers.Get("/:idCliente", customerHandler.GetByID)
	}
}
