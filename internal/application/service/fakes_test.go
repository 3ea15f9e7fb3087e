package service

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/medipos/pharmapos-api/internal/domain/entity"
	"github.com/medipos/pharmapos-api/internal/domain/enum"
	"github.com/medipos/pharmapos-api/internal/domain/repository"
	"github.com/medipos/pharmapos-api/pkg/pagination"
)

// In-memory repository fakes backing the service tests. They implement
// only the behavior the services rely on.

type fakeProductRepo struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeProductRepo) Create(_ context.Context, p *entity.Product) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	if p.Status == "" {
		p.Status = enum.ProductActive
	}
	clone := *p
	f.products[p.ID] = &clone
	return nil
}

func (f *fakeProductRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Product, error) {
	p, ok := f.products[id]
	if !ok {
		return nil, nil
	}
	clone := *p
	return &clone, nil
}

func (f *fakeProductRepo) GetBySKU(_ context.Context, sku string) (*entity.Product, error) {
	for _, p := range f.products {
		if p.SKU == sku {
			clone := *p
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeProductRepo) GetByIDs(_ context.Context, ids []uuid.UUID) ([]entity.Product, error) {
	var out []entity.Product
	for _, id := range ids {
		if p, ok := f.products[id]; ok {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) Update(_ context.Context, p *entity.Product) error {
	clone := *p
	f.products[p.ID] = &clone
	return nil
}

func (f *fakeProductRepo) Archive(_ context.Context, id uuid.UUID) error {
	if p, ok := f.products[id]; ok {
		p.Status = enum.ProductArchived
	}
	return nil
}

func (f *fakeProductRepo) List(_ context.Context, params *repository.ProductFilterParams) ([]entity.Product, int64, error) {
	var out []entity.Product
	for _, p := range f.products {
		if !params.IncludeArchived && p.Status != enum.ProductActive {
			continue
		}
		out = append(out, *p)
	}
	return out, int64(len(out)), nil
}

func (f *fakeProductRepo) GetLowStock(_ context.Context) ([]entity.Product, error) {
	var out []entity.Product
	for _, p := range f.products {
		if p.Status == enum.ProductActive && p.IsLowStock() {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) GetExpiringBefore(_ context.Context, cutoff time.Time) ([]entity.Product, error) {
	now := time.Now()
	var out []entity.Product
	for _, p := range f.products {
		if p.Status == enum.ProductActive && p.ExpiryDate.After(now) && !p.ExpiryDate.After(cutoff) {
			out = append(out, *p)
		}
	}
	return out, nil
}

func (f *fakeProductRepo) DecrementStockBatch(_ context.Context, decrements map[uuid.UUID]int) ([]uuid.UUID, error) {
	var failed []uuid.UUID
	for id, qty := range decrements {
		p, ok := f.products[id]
		if !ok || p.Stock < qty {
			failed = append(failed, id)
		}
	}
	if len(failed) > 0 {
		return failed, nil
	}
	for id, qty := range decrements {
		f.products[id].Stock -= qty
	}
	return nil, nil
}

func (f *fakeProductRepo) IncrementStockBatch(_ context.Context, increments map[uuid.UUID]int) error {
	for id, qty := range increments {
		if p, ok := f.products[id]; ok {
			p.Stock += qty
		}
	}
	return nil
}

type fakeSaleRepo struct {
	sales    []entity.Sale
	failNext error
}

func (f *fakeSaleRepo) CreateBatch(_ context.Context, sales []entity.Sale) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	for i := range sales {
		if sales[i].ID == uuid.Nil {
			sales[i].ID = uuid.New()
		}
		if sales[i].Timestamp.IsZero() {
			sales[i].Timestamp = time.Now()
		}
	}
	f.sales = append(f.sales, sales...)
	return nil
}

func (f *fakeSaleRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Sale, error) {
	for i := range f.sales {
		if f.sales[i].ID == id {
			clone := f.sales[i]
			return &clone, nil
		}
	}
	return nil, nil
}

func (f *fakeSaleRepo) List(_ context.Context, params *repository.SaleFilterParams) ([]entity.Sale, int64, error) {
	out := make([]entity.Sale, len(f.sales))
	copy(out, f.sales)
	return out, int64(len(out)), nil
}

func (f *fakeSaleRepo) ListRange(_ context.Context, params *repository.SaleRangeParams) ([]entity.Sale, error) {
	var out []entity.Sale
	for i := range f.sales {
		s := f.sales[i]
		if params.From != nil && s.Timestamp.Before(*params.From) {
			continue
		}
		if params.To != nil && !s.Timestamp.Before(*params.To) {
			continue
		}
		if params.EmployeeID != nil && s.EmployeeID != *params.EmployeeID {
			continue
		}
		if params.PaymentMethod != nil && s.PaymentMethod != *params.PaymentMethod {
			continue
		}
		if params.Search != "" &&
			!strings.Contains(s.ProductName, params.Search) &&
			!strings.Contains(s.EmployeeName, params.Search) &&
			!strings.Contains(s.CustomerName, params.Search) &&
			!strings.Contains(s.PrescriptionNumber, params.Search) {
			continue
		}
		out = append(out, s)
	}
	return out, nil
}

type fakeCustomerRepo struct {
	customers map[uuid.UUID]*entity.Customer
}

func newFakeCustomerRepo() *fakeCustomerRepo {
	return &fakeCustomerRepo{customers: make(map[uuid.UUID]*entity.Customer)}
}

func (f *fakeCustomerRepo) Create(_ context.Context, c *entity.Customer) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	clone := *c
	f.customers[c.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) GetByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	c, ok := f.customers[id]
	if !ok {
		return nil, nil
	}
	clone := *c
	return &clone, nil
}

func (f *fakeCustomerRepo) Update(_ context.Context, c *entity.Customer) error {
	clone := *c
	f.customers[c.ID] = &clone
	return nil
}

func (f *fakeCustomerRepo) List(_ context.Context, params *pagination.PaginationParams, search string) ([]entity.Customer, int64, error) {
	var out []entity.Customer
	for _, c := range f.customers {
		out = append(out, *c)
	}
	return out, int64(len(out)), nil
}

type fakeAuditRepo struct {
	logs     []entity.AuditLog
	failNext error
}

func (f *fakeAuditRepo) Create(_ context.Context, log *entity.AuditLog) error {
	if f.failNext != nil {
		err := f.failNext
		f.failNext = nil
		return err
	}
	if log.ID == uuid.Nil {
		log.ID = uuid.New()
	}
	if log.Timestamp.IsZero() {
		log.Timestamp = time.Now()
	}
	f.logs = append(f.logs, *log)
	return nil
}

func (f *fakeAuditRepo) List(_ context.Context, params *repository.AuditLogFilterParams) ([]entity.AuditLog, int64, error) {
	out := make([]entity.AuditLog, len(f.logs))
	copy(out, f.logs)
	return out, int64(len(out)), nil
}

func (f *fakeAuditRepo) ListRange(_ context.Context, from, to *time.Time, action *enum.AuditAction, userID *uuid.UUID) ([]entity.AuditLog, error) {
	var out []entity.AuditLog
	for i := range f.logs {
		l := f.logs[i]
		if from != nil && l.Timestamp.Before(*from) {
			continue
		}
		if to != nil && !l.Timestamp.Before(*to) {
			continue
		}
		if action != nil && l.Action != *action {
			continue
		}
		if userID != nil && l.UserID != *userID {
			continue
		}
		out = append(out, l)
	}
	return out, nil
}

func (f *fakeAuditRepo) lastAction(action enum.AuditAction) *entity.AuditLog {
	for i := len(f.logs) - 1; i >= 0; i-- {
		if f.logs[i].Action == action {
			return &f.logs[i]
		}
	}
	return nil
}
