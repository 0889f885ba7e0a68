package usecase

import (
	"context"

	"github.com/tiendadbii/tienda-api/internal/domain"
	"github.com/tiendadbii/tienda-api/internal/domain/entity"
)

type memProductRepo struct{ items map[string]*entity.Product }

func newMemProductRepo() *memProductRepo {
	return &memProductRepo{items: map[string]*entity.Product{}}
}

func (r *memProductRepo) Create(_ context.Context, p *entity.Product) error {
	r.items[p.Code] = p
	return nil
}
func (r *memProductRepo) GetByCode(_ context.Context, code string) (*entity.Product, error) {
	return r.items[code], nil
}
func (r *memProductRepo) GetByBarcode(_ context.Context, barcode string) (*entity.Product, error) {
	for _, p := range r.items {
		if p.Barcode != "" && p.Barcode == barcode {
			return p, nil
		}
	}
	return nil, nil
}
func (r *memProductRepo) List(context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(r.items))
	for _, p := range r.items {
		out = append(out, p)
	}
	return out, nil
}
func (r *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	if _, ok := r.items[p.Code]; !ok {
		return domain.ErrNotFound
	}
	r.items[p.Code] = p
	return nil
}
func (r *memProductRepo) DecrementStock(context.Context, string, int) error { return nil }

type memEmployeeRepo struct {
	items map[int]*entity.Employee
	next  int
}

func (r *memEmployeeRepo) Create(_ context.Context, e *entity.Employee) error {
	for _, x := range r.items {
		if x.CI == e.CI {
			return domain.ErrDuplicate
		}
	}
	r.next++
	e.ID = r.next
	r.items[e.ID] = e
	return nil
}
func (r *memEmployeeRepo) GetByID(_ context.Context, id int) (*entity.Employee, error) {
	return r.items[id], nil
}
func (r *memEmployeeRepo) List(context.Context) ([]*entity.Employee, error) {
	out := make([]*entity.Employee, 0, len(r.items))
	for i := 1; i <= r.next; i++ {
		if e, ok := r.items[i]; ok {
			out = append(out, e)
		}
	}
	return out, nil
}
func (r *memEmployeeRepo) Update(_ context.Context, e *entity.Employee) error {
	r.items[e.ID] = e
	return nil
}

type memScheduleRepo struct{ items []*entity.Schedule }

func (r *memScheduleRepo) Create(_ context.Context, s *entity.Schedule) error {
	s.ID = len(r.items) + 1
	r.items = append(r.items, s)
	return nil
}
func (r *memScheduleRepo) ListByEmployee(_ context.Context, employeeID int) ([]*entity.Schedule, error) {
	var out []*entity.Schedule
	for _, s := range r.items {
		if s.EmployeeID == employeeID {
			out = append(out, s)
		}
	}
	return out, nil
}

type memCustomerRepo struct {
	items map[int]*entity.Customer
	next  int
}

func (r *memCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	r.next++
	c.ID = r.next
	r.items[c.ID] = c
	return nil
}
func (r *memCustomerRepo) CreateIfAbsent(ctx context.Context, c *entity.Customer) (bool, error) {
	if existing, _ := r.GetByCI(ctx, c.CI); existing != nil {
		*c = *existing
		return false, nil
	}
	return true, r.Create(ctx, c)
}
func (r *memCustomerRepo) GetByID(_ context.Context, id int) (*entity.Customer, error) {
	return r.items[id], nil
}
func (r *memCustomerRepo) GetByCI(_ context.Context, ci string) (*entity.Customer, error) {
	for _, c := range r.items {
		if c.CI == ci {
			return c, nil
		}
	}
	return nil, nil
}
func (r *memCustomerRepo) List(context.Context) ([]*entity.Customer, error) {
	out := make([]*entity.Customer, 0, len(r.items))
	for _, c := range r.items {
		out = append(out, c)
	}
	return out, nil
}
