package usecase

import (
	"context"
	"errors"
	"testing"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	mock_interfaces "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestCustomerUseCase_Create(t *testing.T) {
	t.Run("missing name", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), CreateCustomerCommand{Phone: "0712345678", Package: "10Mbps Premium"})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("bad phone", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), CreateCustomerCommand{Name: "Jane", Phone: "12345", Package: "10Mbps Premium"})
		if !errors.Is(err, ErrInvalidPhoneNumber) {
			t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
		}
	})

	t.Run("bad connection type", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.Create(context.Background(), CreateCustomerCommand{
			Name: "Jane", Phone: "0712345678", Package: "10Mbps Premium", ConnectionType: "satellite",
		})
		if !errors.Is(err, ErrInvalidConnectionType) {
			t.Fatalf("expected ErrInvalidConnectionType, got %v", err)
		}
	})

	t.Run("success assigns id and active status", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().NextSequence(gomock.Any()).Return(int64(4), nil)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, c entities.Customer) (entities.Customer, error) { return c, nil })

		created, err := uc.Create(context.Background(), CreateCustomerCommand{
			Name:           "Jane Njeri",
			Location:       "Nakuru - Town",
			Phone:          "0712345678",
			Package:        "10Mbps Premium",
			ConnectionType: entities.ConnectionTypeFiber,
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "CUST-004" {
			t.Fatalf("expected CUST-004, got %s", created.ID)
		}
		if created.Status != entities.CustomerStatusActive {
			t.Fatalf("expected active status, got %s", created.Status)
		}
		if created.Phone != "254712345678" {
			t.Fatalf("expected normalized phone, got %s", created.Phone)
		}
	})
}

func TestCustomerUseCase_UpdateStatus(t *testing.T) {
	t.Run("invalid status", func(t *testing.T) {
		uc := NewCustomerUseCase(nil)
		_, err := uc.UpdateStatus(context.Background(), "CUST-001", "paused")
		if !errors.Is(err, ErrInvalidCustomerStatus) {
			t.Fatalf("expected ErrInvalidCustomerStatus, got %v", err)
		}
	})

	t.Run("not found", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "CUST-404", entities.CustomerStatusSuspended).Return(entities.Customer{}, nil)

		_, err := uc.UpdateStatus(context.Background(), "CUST-404", entities.CustomerStatusSuspended)
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		repo := mock_interfaces.NewMockICustomerRepository(ctrl)
		uc := NewCustomerUseCase(repo)

		repo.EXPECT().UpdateStatus(gomock.Any(), "CUST-003", entities.CustomerStatusActive).
			Return(entities.Customer{ID: "CUST-003", Status: entities.CustomerStatusActive}, nil)

		got, err := uc.UpdateStatus(context.Background(), "CUST-003", entities.CustomerStatusActive)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.CustomerStatusActive {
			t.Fatalf("expected active, got %s", got.Status)
		}
	})
}
