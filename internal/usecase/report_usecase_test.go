package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	mock_interfaces "github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func reportLedgerPayments() []entities.Payment {
	jan := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	feb := time.Date(2024, 2, 10, 0, 0, 0, 0, time.UTC)
	return []entities.Payment{
		{ID: "PAY-001", Amount: 2500, Method: entities.PaymentMethodMpesa, Date: jan, Status: entities.PaymentStatusCompleted},
		{ID: "PAY-002", Amount: 1500, Method: entities.PaymentMethodBank, Date: jan, Status: entities.PaymentStatusCompleted},
		{ID: "PAY-003", Amount: 4000, Method: entities.PaymentMethodMpesa, Date: feb, Status: entities.PaymentStatusCompleted},
		{ID: "PAY-004", Amount: 2500, Method: entities.PaymentMethodMpesa, Date: feb, Status: entities.PaymentStatusPending},
		{ID: "PAY-005", Amount: 1500, Method: entities.PaymentMethodAirtel, Date: feb, Status: entities.PaymentStatusFailed},
	}
}

func TestReportUseCase_PaymentStats(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock_interfaces.NewMockIPaymentLedger(ctrl)
	uc := NewReportUseCase(ledger, nil)

	ledger.EXPECT().List(gomock.Any()).Return(reportLedgerPayments(), nil)

	stats, err := uc.PaymentStats(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if stats.TotalCollected != 8000 {
		t.Fatalf("expected 8000 collected, got %d", stats.TotalCollected)
	}
	if stats.ByMethod[entities.PaymentMethodMpesa] != 6500 {
		t.Fatalf("expected 6500 via mpesa, got %d", stats.ByMethod[entities.PaymentMethodMpesa])
	}
	if stats.PendingCount != 1 || stats.FailedCount != 1 {
		t.Fatalf("unexpected counts: %+v", stats)
	}
}

func TestReportUseCase_MonthlyRevenue(t *testing.T) {
	ctrl := gomock.NewController(t)
	ledger := mock_interfaces.NewMockIPaymentLedger(ctrl)
	uc := NewReportUseCase(ledger, nil)

	ledger.EXPECT().List(gomock.Any()).Return(reportLedgerPayments(), nil)

	points, err := uc.MonthlyRevenue(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(points) != 2 {
		t.Fatalf("expected 2 months, got %d", len(points))
	}
	if points[0].Month != "2024-01" || points[0].Revenue != 4000 || points[0].Payments != 2 {
		t.Fatalf("unexpected january point: %+v", points[0])
	}
	if points[1].Month != "2024-02" || points[1].Revenue != 4000 || points[1].Payments != 1 {
		t.Fatalf("unexpected february point: %+v", points[1])
	}
}

func TestReportUseCase_OutstandingInvoices(t *testing.T) {
	ctrl := gomock.NewController(t)
	invoices := mock_interfaces.NewMockIInvoiceRepository(ctrl)
	uc := NewReportUseCase(nil, invoices)

	invoices.EXPECT().List(gomock.Any()).Return([]entities.Invoice{
		{ID: "INV-001", Status: entities.InvoiceStatusPaid},
		{ID: "INV-002", Status: entities.InvoiceStatusPending},
		{ID: "INV-003", Status: entities.InvoiceStatusOverdue},
	}, nil)

	outstanding, err := uc.OutstandingInvoices(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(outstanding) != 2 {
		t.Fatalf("expected 2 outstanding, got %d", len(outstanding))
	}
	if outstanding[0].ID != "INV-002" || outstanding[1].ID != "INV-003" {
		t.Fatalf("unexpected outstanding invoices: %+v", outstanding)
	}
}
