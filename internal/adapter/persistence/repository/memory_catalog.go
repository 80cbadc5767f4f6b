package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

// In-memory catalog stores for customers, packages and invoices. Same shape
// as MemoryPaymentLedger: mutex-guarded map keyed by id, insertion order
// preserved, ids issued from an owned sequence counter.

type MemoryCustomerRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Customer
	order []string
	seq   int64
}

var _ interfaces.ICustomerRepository = (*MemoryCustomerRepository)(nil)

func NewMemoryCustomerRepository() *MemoryCustomerRepository {
	return &MemoryCustomerRepository{byID: make(map[string]entities.Customer)}
}

func (r *MemoryCustomerRepository) Create(_ context.Context, c entities.Customer) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[c.ID]; exists {
		return entities.Customer{}, fmt.Errorf("customer %s already exists", c.ID)
	}
	r.byID[c.ID] = c
	r.order = append(r.order, c.ID)
	return c, nil
}

func (r *MemoryCustomerRepository) GetByID(_ context.Context, id string) (entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *MemoryCustomerRepository) List(_ context.Context) ([]entities.Customer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Customer, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryCustomerRepository) UpdateStatus(_ context.Context, id string, status entities.CustomerStatus) (entities.Customer, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	c, exists := r.byID[id]
	if !exists {
		return entities.Customer{}, nil
	}
	c.Status = status
	r.byID[id] = c
	return c, nil
}

func (r *MemoryCustomerRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

type MemoryPackageRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Package
	order []string
	seq   int64
}

var _ interfaces.IPackageRepository = (*MemoryPackageRepository)(nil)

func NewMemoryPackageRepository() *MemoryPackageRepository {
	return &MemoryPackageRepository{byID: make(map[string]entities.Package)}
}

func (r *MemoryPackageRepository) Create(_ context.Context, p entities.Package) (entities.Package, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[p.ID]; exists {
		return entities.Package{}, fmt.Errorf("package %s already exists", p.ID)
	}
	r.byID[p.ID] = p
	r.order = append(r.order, p.ID)
	return p, nil
}

func (r *MemoryPackageRepository) GetByID(_ context.Context, id string) (entities.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *MemoryPackageRepository) List(_ context.Context) ([]entities.Package, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Package, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryPackageRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}

type MemoryInvoiceRepository struct {
	mu    sync.RWMutex
	byID  map[string]entities.Invoice
	order []string
	seq   int64
}

var _ interfaces.IInvoiceRepository = (*MemoryInvoiceRepository)(nil)

func NewMemoryInvoiceRepository() *MemoryInvoiceRepository {
	return &MemoryInvoiceRepository{byID: make(map[string]entities.Invoice)}
}

func (r *MemoryInvoiceRepository) Create(_ context.Context, inv entities.Invoice) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.byID[inv.ID]; exists {
		return entities.Invoice{}, fmt.Errorf("invoice %s already exists", inv.ID)
	}
	r.byID[inv.ID] = inv
	r.order = append(r.order, inv.ID)
	return inv, nil
}

func (r *MemoryInvoiceRepository) GetByID(_ context.Context, id string) (entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.byID[id], nil
}

func (r *MemoryInvoiceRepository) List(_ context.Context) ([]entities.Invoice, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]entities.Invoice, 0, len(r.order))
	for _, id := range r.order {
		out = append(out, r.byID[id])
	}
	return out, nil
}

func (r *MemoryInvoiceRepository) UpdateStatus(_ context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	inv, exists := r.byID[id]
	if !exists {
		return entities.Invoice{}, nil
	}
	inv.Status = status
	r.byID[id] = inv
	return inv, nil
}

func (r *MemoryInvoiceRepository) NextSequence(_ context.Context) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.seq++
	return r.seq, nil
}
