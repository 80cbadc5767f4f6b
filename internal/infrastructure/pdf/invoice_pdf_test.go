package pdf

import (
	"bytes"
	"testing"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

func TestRenderInvoice(t *testing.T) {
	raw, err := RenderInvoice(entities.Invoice{
		ID:            "INV-002",
		CustomerID:    "CUST-001",
		CustomerName:  "John Kamau",
		Amount:        1500,
		DueDate:       time.Date(2024, 1, 31, 0, 0, 0, 0, time.UTC),
		Status:        entities.InvoiceStatusPending,
		BillingPeriod: "January 2024",
		Package:       "Basic Home",
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(raw, []byte("%PDF")) {
		t.Fatalf("expected a PDF document, got %q", raw[:min(len(raw), 8)])
	}
}

func TestRenderInvoiceWithoutPackage(t *testing.T) {
	raw, err := RenderInvoice(entities.Invoice{
		ID:           "INV-005",
		CustomerID:   "CUST-002",
		CustomerName: "Mary Wanjiku",
		Amount:       2500,
		DueDate:      time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC),
		Status:       entities.InvoiceStatusOverdue,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(raw) == 0 {
		t.Fatalf("expected non-empty output")
	}
}
