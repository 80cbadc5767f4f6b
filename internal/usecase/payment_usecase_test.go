package usecase

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"
	mock_interfaces "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

type promptFixture struct {
	ledger    *mock_interfaces.MockIPaymentLedger
	customers *mock_interfaces.MockICustomerRepository
	invoices  *mock_interfaces.MockIInvoiceRepository
	gateway   *mock_interfaces.MockIPromptGateway
	notifier  *mock_interfaces.MockINotifier
}

func newPromptFixture(t *testing.T, policy PaymentPolicy) (*PaymentUseCase, *promptFixture) {
	t.Helper()
	ctrl := gomock.NewController(t)
	f := &promptFixture{
		ledger:    mock_interfaces.NewMockIPaymentLedger(ctrl),
		customers: mock_interfaces.NewMockICustomerRepository(ctrl),
		invoices:  mock_interfaces.NewMockIInvoiceRepository(ctrl),
		gateway:   mock_interfaces.NewMockIPromptGateway(ctrl),
		notifier:  mock_interfaces.NewMockINotifier(ctrl),
	}
	gateways := map[entities.PaymentMethod]interfaces.IPromptGateway{
		entities.PaymentMethodMpesa:  f.gateway,
		entities.PaymentMethodAirtel: f.gateway,
	}
	uc := NewPaymentUseCase(f.ledger, f.customers, f.invoices, gateways, f.notifier, policy)
	return uc, f
}

func (f *promptFixture) expectNotification(t *testing.T, severity entities.Severity) {
	t.Helper()
	f.notifier.EXPECT().Notify(gomock.Any(), gomock.Any()).Do(
		func(_ context.Context, n entities.Notification) {
			if n.Severity != severity {
				t.Fatalf("expected %s notification, got %s (%s)", severity, n.Severity, n.Title)
			}
		})
}

func validPromptCommand() SendPromptCommand {
	return SendPromptCommand{
		CustomerID:  "CUST-001",
		PhoneNumber: "0712345678",
		Amount:      2500,
		Method:      entities.PaymentMethodMpesa,
	}
}

func TestPaymentUseCase_SendPrompt_Validations(t *testing.T) {
	uc := NewPaymentUseCase(nil, nil, nil, nil, nil, PaymentPolicy{})

	t.Run("missing customer id", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.CustomerID = "  "
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("missing phone number", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.PhoneNumber = ""
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("missing amount", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.Amount = 0
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("negative amount", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.Amount = -100
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidAmount) {
			t.Fatalf("expected ErrInvalidAmount, got %v", err)
		}
	})

	t.Run("unknown method", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.Method = "paypal"
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidPaymentMethod) {
			t.Fatalf("expected ErrInvalidPaymentMethod, got %v", err)
		}
	})

	t.Run("cash is not promptable", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.Method = entities.PaymentMethodCash
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrMethodNotPromptable) {
			t.Fatalf("expected ErrMethodNotPromptable, got %v", err)
		}
	})

	t.Run("bad phone number", func(t *testing.T) {
		cmd := validPromptCommand()
		cmd.PhoneNumber = "12345"
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrInvalidPhoneNumber) {
			t.Fatalf("expected ErrInvalidPhoneNumber, got %v", err)
		}
	})

	t.Run("gateway not configured", func(t *testing.T) {
		_, _, err := uc.SendPrompt(context.Background(), validPromptCommand())
		if err == nil || !strings.Contains(err.Error(), "not configured") {
			t.Fatalf("expected gateway not configured error, got %v", err)
		}
	})
}

func TestPaymentUseCase_SendPrompt_CustomerAndInvoiceLookups(t *testing.T) {
	t.Run("customer not found", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		f.customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{}, nil)

		_, _, err := uc.SendPrompt(context.Background(), validPromptCommand())
		if !errors.Is(err, ErrCustomerNotFound) {
			t.Fatalf("expected ErrCustomerNotFound, got %v", err)
		}
	})

	t.Run("invoice not found", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		f.customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
		f.invoices.EXPECT().GetByID(gomock.Any(), "INV-099").Return(entities.Invoice{}, nil)

		cmd := validPromptCommand()
		cmd.InvoiceID = "INV-099"
		_, _, err := uc.SendPrompt(context.Background(), cmd)
		if !errors.Is(err, ErrInvoiceNotFound) {
			t.Fatalf("expected ErrInvoiceNotFound, got %v", err)
		}
	})
}

func TestPaymentUseCase_SendPrompt_Success(t *testing.T) {
	uc, f := newPromptFixture(t, PaymentPolicy{})

	f.customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
	f.ledger.EXPECT().NextSequence(gomock.Any()).Return(int64(4), nil)
	f.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(7), nil)
	f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, req interfaces.PromptInitiation) (interfaces.PromptReceipt, error) {
			if req.PhoneNumber != "254712345678" {
				t.Fatalf("expected normalized phone, got %s", req.PhoneNumber)
			}
			if req.AccountReference != "INV-007" {
				t.Fatalf("expected default invoice reference INV-007, got %s", req.AccountReference)
			}
			return interfaces.PromptReceipt{CorrelationID: "ws_CO_191220191020363925", CustomerMessage: "Check your phone"}, nil
		})
	f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
		func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
	f.expectNotification(t, entities.SeveritySuccess)

	created, message, err := uc.SendPrompt(context.Background(), validPromptCommand())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if created.ID != "PAY-004" {
		t.Fatalf("expected PAY-004, got %s", created.ID)
	}
	if created.Status != entities.PaymentStatusPending {
		t.Fatalf("expected pending status, got %s", created.Status)
	}
	if created.Reference != "ws_CO_191220191020363925" {
		t.Fatalf("expected correlation id as reference, got %s", created.Reference)
	}
	if created.InvoiceID != "INV-007" {
		t.Fatalf("expected default invoice id from the invoice counter, got %s", created.InvoiceID)
	}
	if message != "Check your phone" {
		t.Fatalf("expected provider customer message, got %q", message)
	}
}

func TestPaymentUseCase_SendPrompt_ProviderFailure(t *testing.T) {
	t.Run("default leaves no record", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})

		f.customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
		f.ledger.EXPECT().NextSequence(gomock.Any()).Return(int64(7), nil)
		f.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(7), nil)
		f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(interfaces.PromptReceipt{}, errors.New("timeout"))
		f.expectNotification(t, entities.SeverityError)

		_, _, err := uc.SendPrompt(context.Background(), validPromptCommand())
		var delivery *PromptDeliveryError
		if !errors.As(err, &delivery) {
			t.Fatalf("expected PromptDeliveryError, got %v", err)
		}
		if delivery.PhoneNumber != "254712345678" || delivery.Amount != 2500 {
			t.Fatalf("unexpected delivery error context: %+v", delivery)
		}
	})

	t.Run("record failed attempts policy", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{RecordFailedAttempts: true})

		f.customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
		f.ledger.EXPECT().NextSequence(gomock.Any()).Return(int64(7), nil)
		f.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(7), nil)
		f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).Return(interfaces.PromptReceipt{}, errors.New("timeout"))
		f.expectNotification(t, entities.SeverityError)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) {
				if p.Status != entities.PaymentStatusFailed {
					t.Fatalf("expected failed status, got %s", p.Status)
				}
				if !strings.HasPrefix(p.Reference, "MPESA-FAILED-") {
					t.Fatalf("unexpected failed reference %s", p.Reference)
				}
				return p, nil
			})

		_, _, err := uc.SendPrompt(context.Background(), validPromptCommand())
		var delivery *PromptDeliveryError
		if !errors.As(err, &delivery) {
			t.Fatalf("expected PromptDeliveryError, got %v", err)
		}
	})
}

func TestPaymentUseCase_SendPrompt_InFlightGuard(t *testing.T) {
	uc, _ := newPromptFixture(t, PaymentPolicy{})

	release, err := uc.acquirePrompt("CUST-001", "INV-002")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := uc.acquirePrompt("CUST-001", "INV-002"); !errors.Is(err, ErrPromptInFlight) {
		t.Fatalf("expected ErrPromptInFlight, got %v", err)
	}
	if _, err := uc.acquirePrompt("CUST-001", "INV-003"); err != nil {
		t.Fatalf("different invoice should not collide, got %v", err)
	}

	release()
	if _, err := uc.acquirePrompt("CUST-001", "INV-002"); err != nil {
		t.Fatalf("expected release to free the slot, got %v", err)
	}
}

func TestPaymentUseCase_RecordPayment(t *testing.T) {
	t.Run("missing reference", func(t *testing.T) {
		uc := NewPaymentUseCase(nil, nil, nil, nil, nil, PaymentPolicy{})
		_, err := uc.RecordPayment(context.Background(), RecordPaymentCommand{
			CustomerID: "CUST-003", Amount: 4000, Method: entities.PaymentMethodCash,
		})
		if !errors.Is(err, ErrMissingField) {
			t.Fatalf("expected ErrMissingField, got %v", err)
		}
	})

	t.Run("success", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})

		f.customers.EXPECT().GetByID(gomock.Any(), "CUST-003").Return(entities.Customer{ID: "CUST-003", Name: "Peter Otieno"}, nil)
		f.invoices.EXPECT().GetByID(gomock.Any(), "INV-003").Return(entities.Invoice{ID: "INV-003"}, nil)
		f.ledger.EXPECT().NextSequence(gomock.Any()).Return(int64(9), nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		f.expectNotification(t, entities.SeveritySuccess)

		created, err := uc.RecordPayment(context.Background(), RecordPaymentCommand{
			CustomerID: "CUST-003",
			Amount:     4000,
			Method:     entities.PaymentMethodCash,
			Reference:  "CASH-001",
			InvoiceID:  "INV-003",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "PAY-009" {
			t.Fatalf("expected PAY-009, got %s", created.ID)
		}
		if created.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", created.Status)
		}
		if created.Reference != "CASH-001" {
			t.Fatalf("expected CASH-001 reference, got %s", created.Reference)
		}
	})

	t.Run("default invoice id comes from the invoice counter", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})

		f.customers.EXPECT().GetByID(gomock.Any(), "CUST-003").Return(entities.Customer{ID: "CUST-003", Name: "Peter Otieno"}, nil)
		f.ledger.EXPECT().NextSequence(gomock.Any()).Return(int64(9), nil)
		f.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(12), nil)
		f.ledger.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Payment) (entities.Payment, error) { return p, nil })
		f.expectNotification(t, entities.SeveritySuccess)

		created, err := uc.RecordPayment(context.Background(), RecordPaymentCommand{
			CustomerID: "CUST-003",
			Amount:     4000,
			Method:     entities.PaymentMethodCash,
			Reference:  "CASH-002",
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if created.ID != "PAY-009" {
			t.Fatalf("expected PAY-009, got %s", created.ID)
		}
		if created.InvoiceID != "INV-012" {
			t.Fatalf("expected default invoice id from the invoice counter, got %s", created.InvoiceID)
		}
	})
}

func TestPaymentUseCase_ReconcilePayment(t *testing.T) {
	pending := entities.Payment{
		ID:           "PAY-005",
		CustomerID:   "CUST-001",
		CustomerName: "John Kamau",
		Amount:       2500,
		Method:       entities.PaymentMethodMpesa,
		Reference:    "ws_CO_191220191020363925",
		InvoiceID:    "INV-002",
		Status:       entities.PaymentStatusPending,
	}

	t.Run("not found", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		f.ledger.EXPECT().GetByID(gomock.Any(), "PAY-404").Return(entities.Payment{}, nil)

		_, err := uc.ReconcilePayment(context.Background(), "PAY-404")
		if !errors.Is(err, ErrPaymentNotFound) {
			t.Fatalf("expected ErrPaymentNotFound, got %v", err)
		}
	})

	t.Run("not pending", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		done := pending
		done.Status = entities.PaymentStatusCompleted
		f.ledger.EXPECT().GetByID(gomock.Any(), "PAY-005").Return(done, nil)

		_, err := uc.ReconcilePayment(context.Background(), "PAY-005")
		if !errors.Is(err, ErrPaymentNotPending) {
			t.Fatalf("expected ErrPaymentNotPending, got %v", err)
		}
	})

	t.Run("still pending returns unchanged", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		f.ledger.EXPECT().GetByID(gomock.Any(), "PAY-005").Return(pending, nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), pending.Reference).Return(entities.PaymentStatusPending, nil)

		got, err := uc.ReconcilePayment(context.Background(), "PAY-005")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusPending {
			t.Fatalf("expected pending, got %s", got.Status)
		}
	})

	t.Run("completed marks invoice paid", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		completed := pending
		completed.Status = entities.PaymentStatusCompleted

		f.ledger.EXPECT().GetByID(gomock.Any(), "PAY-005").Return(pending, nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), pending.Reference).Return(entities.PaymentStatusCompleted, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "PAY-005", entities.PaymentStatusCompleted).Return(completed, nil)
		f.invoices.EXPECT().GetByID(gomock.Any(), "INV-002").Return(entities.Invoice{ID: "INV-002", Status: entities.InvoiceStatusPending}, nil)
		f.invoices.EXPECT().UpdateStatus(gomock.Any(), "INV-002", entities.InvoiceStatusPaid).Return(entities.Invoice{ID: "INV-002", Status: entities.InvoiceStatusPaid}, nil)
		f.expectNotification(t, entities.SeveritySuccess)

		got, err := uc.ReconcilePayment(context.Background(), "PAY-005")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", got.Status)
		}
	})

	t.Run("completed with defaulted invoice id touches no invoice", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		defaulted := pending
		defaulted.InvoiceID = "INV-009"
		completed := defaulted
		completed.Status = entities.PaymentStatusCompleted

		f.ledger.EXPECT().GetByID(gomock.Any(), "PAY-005").Return(defaulted, nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), defaulted.Reference).Return(entities.PaymentStatusCompleted, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "PAY-005", entities.PaymentStatusCompleted).Return(completed, nil)
		f.invoices.EXPECT().GetByID(gomock.Any(), "INV-009").Return(entities.Invoice{}, nil)
		f.expectNotification(t, entities.SeveritySuccess)

		got, err := uc.ReconcilePayment(context.Background(), "PAY-005")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusCompleted {
			t.Fatalf("expected completed, got %s", got.Status)
		}
	})

	t.Run("failed outcome", func(t *testing.T) {
		uc, f := newPromptFixture(t, PaymentPolicy{})
		failed := pending
		failed.Status = entities.PaymentStatusFailed

		f.ledger.EXPECT().GetByID(gomock.Any(), "PAY-005").Return(pending, nil)
		f.gateway.EXPECT().QueryStatus(gomock.Any(), pending.Reference).Return(entities.PaymentStatusFailed, nil)
		f.ledger.EXPECT().UpdateStatus(gomock.Any(), "PAY-005", entities.PaymentStatusFailed).Return(failed, nil)
		f.expectNotification(t, entities.SeverityError)

		got, err := uc.ReconcilePayment(context.Background(), "PAY-005")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Status != entities.PaymentStatusFailed {
			t.Fatalf("expected failed, got %s", got.Status)
		}
	})
}

func TestPaymentUseCase_SendPrompt_Timeout(t *testing.T) {
	uc, f := newPromptFixture(t, PaymentPolicy{PromptTimeout: 10 * time.Millisecond})

	f.customers.EXPECT().GetByID(gomock.Any(), "CUST-001").Return(entities.Customer{ID: "CUST-001", Name: "John Kamau"}, nil)
	f.ledger.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
	f.invoices.EXPECT().NextSequence(gomock.Any()).Return(int64(1), nil)
	f.expectNotification(t, entities.SeverityError)
	f.gateway.EXPECT().Initiate(gomock.Any(), gomock.Any()).DoAndReturn(
		func(ctx context.Context, _ interfaces.PromptInitiation) (interfaces.PromptReceipt, error) {
			select {
			case <-ctx.Done():
				return interfaces.PromptReceipt{}, ctx.Err()
			case <-time.After(time.Second):
				return interfaces.PromptReceipt{CorrelationID: "late"}, nil
			}
		})

	_, _, err := uc.SendPrompt(context.Background(), validPromptCommand())
	var delivery *PromptDeliveryError
	if !errors.As(err, &delivery) {
		t.Fatalf("expected PromptDeliveryError, got %v", err)
	}
	if !errors.Is(err, context.DeadlineExceeded) {
		t.Fatalf("expected deadline exceeded cause, got %v", err)
	}
}

func TestNormalizePhoneNumber(t *testing.T) {
	cases := []struct {
		in      string
		want    string
		wantErr bool
	}{
		{"254712345678", "254712345678", false},
		{"+254712345678", "254712345678", false},
		{"0712345678", "254712345678", false},
		{"0112345678", "254112345678", false},
		{"254 712 345 678", "254712345678", false},
		{"254-712-345-678", "254712345678", false},
		{"0812345678", "", true},
		{"712345678", "", true},
		{"25471234567", "", true},
		{"", "", true},
	}

	for _, tc := range cases {
		got, err := NormalizePhoneNumber(tc.in)
		if tc.wantErr {
			if !errors.Is(err, ErrInvalidPhoneNumber) {
				t.Fatalf("for %q expected ErrInvalidPhoneNumber, got %v", tc.in, err)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("for %q expected %s, got %s err=%v", tc.in, tc.want, got, err)
		}
	}
}

func TestFormatIDs(t *testing.T) {
	if got := FormatPaymentID(4); got != "PAY-004" {
		t.Fatalf("expected PAY-004, got %s", got)
	}
	if got := FormatPaymentID(1234); got != "PAY-1234" {
		t.Fatalf("expected PAY-1234, got %s", got)
	}
	if got := FormatInvoiceID(7); got != "INV-007" {
		t.Fatalf("expected INV-007, got %s", got)
	}
}
