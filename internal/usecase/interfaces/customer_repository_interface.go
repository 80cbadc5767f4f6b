package interfaces

import (
	"context"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

// ICustomerRepository is the customer side of the catalog. The payment core
// only reads it (GetByID) to resolve typed customer references.

type ICustomerRepository interface {
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
	GetByID(ctx context.Context, id string) (entities.Customer, error)
	List(ctx context.Context) ([]entities.Customer, error)
	UpdateStatus(ctx context.Context, id string, status entities.CustomerStatus) (entities.Customer, error)
	NextSequence(ctx context.Context) (int64, error)
}
