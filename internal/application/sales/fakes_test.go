package sales

import (
	"context"
	"sort"
	"time"

	"github.com/shopspring/decimal"
	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
	"github.com/tiendadbii/tienda-api/internal/domain/repository"
)

// store estado en memoria compartido por los repos falsos.
type store struct {
	employees    map[int]*entity.Employee
	products     map[string]*entity.Product
	customers    map[int]*entity.Customer
	sales        map[int]*entity.Sale
	nextSale     int
	nextCustomer int
	lookups      []string // códigos consultados con GetByCode
}

func newStore() *store {
	return &store{
		employees: map[int]*entity.Employee{},
		products:  map[string]*entity.Product{},
		customers: map[int]*entity.Customer{},
		sales:     map[int]*entity.Sale{},
	}
}

func (s *store) addEmployee(id int, first, last string) {
	s.employees[id] = &entity.Employee{ID: id, Active: true, Person: entity.Person{FirstNames: first, LastNames: last}}
}

func (s *store) addProduct(code, barcode, name, price string, stock int) {
	s.products[code] = &entity.Product{
		Code: code, Barcode: barcode, Name: name,
		UnitPrice: decimal.RequireFromString(price), Stock: stock,
	}
}

// clone copia profunda de productos, clientes y ventas (para rollback).
func (s *store) clone() *store {
	c := newStore()
	c.employees = s.employees
	for k, p := range s.products {
		cp := *p
		c.products[k] = &cp
	}
	for k, v := range s.customers {
		cv := *v
		c.customers[k] = &cv
	}
	for k, v := range s.sales {
		c.sales[k] = v
	}
	c.nextSale, c.nextCustomer = s.nextSale, s.nextCustomer
	c.lookups = s.lookups
	return c
}

type fakeEmployeeRepo struct{ s *store }

func (r fakeEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	r.s.employees[e.ID] = e
	return nil
}
func (r fakeEmployeeRepo) GetByID(_ context.Context, id int) (*entity.Employee, error) {
	return r.s.employees[id], nil
}
func (r fakeEmployeeRepo) List(context.Context) ([]*entity.Employee, error) { return nil, nil }
func (r fakeEmployeeRepo) Update(context.Context, *entity.Employee) error   { return nil }

type fakeProductRepo struct{ s *store }

func (r fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.s.products[p.Code] = p
	return nil
}
func (r fakeProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	r.s.lookups = append(r.s.lookups, code)
	p, ok := r.s.products[code]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}
func (r fakeProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.s.products {
		if p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}
func (r fakeProductRepo) List(context.Context) ([]*entity.Product, error) { return nil, nil }
func (r fakeProductRepo) Update(context.Context, *entity.Product) error   { return nil }
func (r fakeProductRepo) DecrementStock(_ context.Context, code string, qty int) error {
	p, ok := r.s.products[code]
	if !ok || p.Stock < qty {
		return domain.Errorf(domain.ErrInsufficientStock, "Stock insuficiente para el codigoProducto: %s", code)
	}
	p.Stock -= qty
	return nil
}

type fakeCustomerRepo struct{ s *store }

func (r fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.s.nextCustomer++
	c.ID = r.s.nextCustomer
	r.s.customers[c.ID] = c
	return nil
}
func (r fakeCustomerRepo) CreateIfAbsent(ctx context.Context, c *entity.Customer) (bool, error) {
	for _, existing := range r.s.customers {
		if existing.CI == c.CI {
			*c = *existing
			return false, nil
		}
	}
	return true, r.Create(ctx, c)
}
func (r fakeCustomerRepo) GetByID(_ context.Context, id int) (*entity.Customer, error) {
	return r.s.customers[id], nil
}
func (r fakeCustomerRepo) GetByCI(_ context.Context, ci string) (*entity.Customer, error) {
	for _, c := range r.s.customers {
		if c.CI == ci {
			return c, nil
		}
	}
	return nil, nil
}
func (r fakeCustomerRepo) List(context.Context) ([]*entity.Customer, error) { return nil, nil }

type fakeSaleRepo struct{ s *store }

func (r fakeSaleRepo) Create(_ context.Context, sale *entity.Sale) error {
	r.s.nextSale++
	sale.Number = r.s.nextSale
	for i := range sale.Details {
		sale.Details[i].ID = sale.Number*100 + i + 1
		sale.Details[i].SaleNumber = sale.Number
	}
	r.s.sales[sale.Number] = sale
	return nil
}
func (r fakeSaleRepo) GetByNumber(_ context.Context, number int) (*entity.Sale, error) {
	return r.s.sales[number], nil
}
func (r fakeSaleRepo) List(context.Context) ([]*entity.Sale, error) {
	out := make([]*entity.Sale, 0, len(r.s.sales))
	for _, s := range r.s.sales {
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Number > out[j].Number })
	return out, nil
}
func (r fakeSaleRepo) ListBetween(_ context.Context, start, end time.Time) ([]*entity.Sale, error) {
	out := []*entity.Sale{}
	for _, s := range r.s.sales {
		if !s.Date.Before(start) && s.Date.Before(end.AddDate(0, 0, 1)) {
			out = append(out, s)
		}
	}
	return out, nil
}

// fakeTxRunner trabaja sobre una copia y solo la publica si fn no falla.
type fakeTxRunner struct {
	s     *store
	calls int
}

func (t *fakeTxRunner) RunSale(ctx context.Context, fn func(
	saleRepo repository.SaleRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
) error) error {
	t.calls++
	work := t.s.clone()
	if err := fn(fakeSaleRepo{work}, fakeProductRepo{work}, fakeCustomerRepo{work}); err != nil {
		return err
	}
	*t.s = *work
	return nil
}

type countingRecorder struct {
	sales     int
	conflicts int
}

func (r *countingRecorder) SaleRegistered(decimal.Decimal, int) { r.sales++ }
func (r *countingRecorder) StockConflict()                      { r.conflicts++ }

// staleCustomerRepo no ve los clientes registrados por otra transacción todavía no visible.
type staleCustomerRepo struct{ fakeCustomerRepo }

func (staleCustomerRepo) GetByCI(context.Context, string) (*entity.Customer, error) { return nil, nil }
