package interfaces

import (
	"context"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

// IPaymentLedger is the system of record for collected, pending and failed
// payments.
//
// NextSequence owns id numbering: it must hand out each value exactly once,
// independent of how many records currently exist. Implementations never
// mutate a stored record except through UpdateStatus.

type IPaymentLedger interface {
	Create(ctx context.Context, p entities.Payment) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
	ListByInvoiceID(ctx context.Context, invoiceID string) ([]entities.Payment, error)
	UpdateStatus(ctx context.Context, id string, status entities.PaymentStatus) (entities.Payment, error)
	NextSequence(ctx context.Context) (int64, error)
}
