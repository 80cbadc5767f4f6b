package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
)

var (
	ErrInvoiceNotFound      = errors.New("invoice not found")
	ErrInvalidInvoiceStatus = errors.New("invalid invoice status")
)

// CreateInvoiceCommand bills a customer for a package over a billing period.
// The amount defaults to the package price when not supplied.
type CreateInvoiceCommand struct {
	CustomerID    string
	PackageID     string
	Amount        int64
	DueDate       time.Time
	BillingPeriod string
}

type IInvoiceUseCase interface {
	Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error)
	GetByID(ctx context.Context, id string) (entities.Invoice, error)
	List(ctx context.Context) ([]entities.Invoice, error)
	UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error)
}

type InvoiceUseCase struct {
	repo      interfaces.IInvoiceRepository
	customers interfaces.ICustomerRepository
	packages  interfaces.IPackageRepository
}

var _ IInvoiceUseCase = (*InvoiceUseCase)(nil)

func NewInvoiceUseCase(repo interfaces.IInvoiceRepository, customers interfaces.ICustomerRepository, packages interfaces.IPackageRepository) *InvoiceUseCase {
	return &InvoiceUseCase{repo: repo, customers: customers, packages: packages}
}

func (u *InvoiceUseCase) Create(ctx context.Context, cmd CreateInvoiceCommand) (entities.Invoice, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.PackageID = strings.TrimSpace(cmd.PackageID)
	cmd.BillingPeriod = strings.TrimSpace(cmd.BillingPeriod)
	if cmd.CustomerID == "" {
		return entities.Invoice{}, fmt.Errorf("%w: customer_id", ErrMissingField)
	}
	if cmd.PackageID == "" {
		return entities.Invoice{}, fmt.Errorf("%w: package_id", ErrMissingField)
	}
	if cmd.BillingPeriod == "" {
		return entities.Invoice{}, fmt.Errorf("%w: billing_period", ErrMissingField)
	}
	if cmd.Amount < 0 {
		return entities.Invoice{}, ErrInvalidAmount
	}

	customer, err := u.customers.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if customer.ID == "" {
		return entities.Invoice{}, ErrCustomerNotFound
	}

	pkg, err := u.packages.GetByID(ctx, cmd.PackageID)
	if err != nil {
		return entities.Invoice{}, err
	}
	if pkg.ID == "" {
		return entities.Invoice{}, ErrPackageNotFound
	}

	amount := cmd.Amount
	if amount == 0 {
		amount = pkg.Price
	}

	now := time.Now().UTC()
	dueDate := cmd.DueDate
	if dueDate.IsZero() {
		dueDate = now.AddDate(0, 1, 0)
	}

	seq, err := u.repo.NextSequence(ctx)
	if err != nil {
		return entities.Invoice{}, err
	}

	inv := entities.Invoice{
		ID:            FormatInvoiceID(seq),
		CustomerID:    customer.ID,
		CustomerName:  customer.Name,
		Amount:        amount,
		DueDate:       dueDate,
		Status:        entities.InvoiceStatusPending,
		BillingPeriod: cmd.BillingPeriod,
		Package:       pkg.Name,
		Generated:     now,
	}
	return u.repo.Create(ctx, inv)
}

func (u *InvoiceUseCase) GetByID(ctx context.Context, id string) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, fmt.Errorf("%w: invoice_id", ErrMissingField)
	}

	inv, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Invoice{}, err
	}
	if inv.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return inv, nil
}

func (u *InvoiceUseCase) List(ctx context.Context) ([]entities.Invoice, error) {
	return u.repo.List(ctx)
}

func (u *InvoiceUseCase) UpdateStatus(ctx context.Context, id string, status entities.InvoiceStatus) (entities.Invoice, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Invoice{}, fmt.Errorf("%w: invoice_id", ErrMissingField)
	}
	if !status.Valid() {
		return entities.Invoice{}, ErrInvalidInvoiceStatus
	}

	updated, err := u.repo.UpdateStatus(ctx, id, status)
	if err != nil {
		return entities.Invoice{}, err
	}
	if updated.ID == "" {
		return entities.Invoice{}, ErrInvoiceNotFound
	}
	return updated, nil
}
