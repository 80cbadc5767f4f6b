package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	mock_interfaces "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestInvoiceUseCase_Create(t *testing.T) {
	t.Run("missing fields", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.Create(context.Background(), CreateInvoiceCommand{})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("package not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		packages := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewInvoiceUseCase(repo, customers, packages)

		customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
		packages.EXPECT().GetByID(gomock.Any(), "PKG-404").Return(entities.Package{}, nil)

		_, err := uc.Create(context.Background(), CreateInvoiceCommand{
			CustomerID: "CUST-001", PackageID: "PKG-404", BillingPeriod: "February 2024",
		})
		if !errors.Is(err, ErrPackageNotFound) {
			t.Fatalf("expected ErrPackageNotFound, got %v", err)
		}
	})

	t.Run("amount defaults to package price", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		customers := mock_interfaces.NewMockICustomerRepository(ctrl)
		packages := mock_interfaces.NewMockIPackageRepository(ctrl)
		uc := NewInvoiceUseCase(repo, customers, packages)

		customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
		packages.EXPECT().GetByID(gomock.Any(), "PKG-002").Return(entities.Package{ID: "PKG-002", Name: "Premium Home", Price: 2500}, nil)
		repo.EXPECT().NextSequence(gomock.Any()).Return(int64(4), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, inv entities.Invoice) (entities.Invoice, error) { return inv, nil })

		created, err := uc.Create(context.Background(), CreateInvoiceCommand{
			CustomerID: "CUST-001", PackageID: "PKG-002", BillingPeriod: "February 2024",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "INV-004" {
			t.Fatalf("expected INV-004, got %s", created.ID)
		}
		if created.Amount != 2500 {
			t.Fatalf("expected package price 2500, got %d", created.Amount)
		}
		if created.Status != entities.InvoiceStatusPending {
			t.Fatalf("expected pending status, got %s", created.Status)
		}
		if created.Package != "Premium Home" {
			t.Fatalf("expected package name on invoice, got %s", created.Package)
		}
		if created.DueDate.Before(time.Now().UTC()) {
			t.Fatalf("expected default due date in the future, got %s", created.DueDate)
		}
	})
}

func TestInvoiceUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewInvoiceUseCase(nil, nil, nil)
		_, err := uc.UpdateStatus(context.Background(), "INV-001", "void")
		if !errors.Is(err, ErrInvalidInvoiceStatus) {
			t.Fatalf("expected ErrInvalidInvoiceStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockIInvoiceRepository(ctrl)
		uc := NewInvoiceUseCase(repo, nil, nil)

		repo.EXPECT().UpdateStatus(gomock.Any(), "INV-404", entities.InvoiceStatusPaid).Return(entities.Invoice{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "INV-404", entities.InvoiceStatusPaid)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}
