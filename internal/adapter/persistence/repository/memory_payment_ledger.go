package repository

import (
	"context"
	"fmt"
	"sync"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

// MemoryPaymentLedger is the default, process-local ledger: a mutex-guarded
// map plus an authoritative sequence counter. Ids come from the counter, not
// from the record count, so deletions or failed prompts can never cause
// collisions.

type MemoryPaymentLedger struct {
	mu    sync.RWMutex
	byID  map[string]entities.Payment
	order []string
	seq   int64
}

var _ interfaces.IPaymentLedger = (*MemoryPaymentLedger)(nil)

func NewMemoryPaymentLedger() *MemoryPaymentLedger {
	return &MemoryPaymentLedger{byID: make(map[string]entities.Payment)}
}

func (l *MemoryPaymentLedger) Create(_ context.Context, p entities.Payment) (entities.Payment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	if _, exists := l.byID[p.ID]; exists {
		return entities.Payment{}, fmt.Errorf("payment %s already exists", p.ID)
	}
	l.byID[p.ID] = p
	l.order = append(l.order, p.ID)
	return p, nil
}

func (l *MemoryPaymentLedger) GetByID(_ context.Context, id string) (entities.Payment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.byID[id], nil
}

func (l *MemoryPaymentLedger) List(_ context.Context) ([]entities.Payment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]entities.Payment, 0, len(l.order))
	for _, id := range l.order {
		out = append(out, l.byID[id])
	}
	return out, nil
}

func (l *MemoryPaymentLedger) ListByInvoiceID(_ context.Context, invoiceID string) ([]entities.Payment, error) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	var out []entities.Payment
	for _, id := range l.order {
		if p := l.byID[id]; p.InvoiceID == invoiceID {
			out = append(out, p)
		}
	}
	return out, nil
}

func (l *MemoryPaymentLedger) UpdateStatus(_ context.Context, id string, status entities.PaymentStatus) (entities.Payment, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	p, exists := l.byID[id]
	if !exists {
		return entities.Payment{}, nil
	}
	p.Status = status
	l.byID[id] = p
	return p, nil
}

func (l *MemoryPaymentLedger) NextSequence(_ context.Context) (int64, error) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.seq++
	return l.seq, nil
}

// Len reports the number of stored records; used by tests and seeding.
func (l *MemoryPaymentLedger) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.byID)
}
