package interfaces

import (
	"context"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

// IInvoiceRepository is the invoice side of the catalog. The payment core
// reads it to validate supplied invoice references and updates an invoice to
// paid when a linked payment completes.

type IInvoiceRepository interface {
	Create(ctx context.Context, inv entities.Invoice) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
	NextSequence(ctx context.Context) (int64, error)
}
