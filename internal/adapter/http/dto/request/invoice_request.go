package request

import (
	"encoding/json"
	"strings"
	"time"
)

type CreateInvoiceRequest struct {
	CustomerID    string          `json:"customer_id" binding:"required"`
	PackageID     string          `json:"package_id"`
	Amount        json.RawMessage `json:"amount"`
	DueDate       string          `json:"due_date"`
	BillingPeriod string          `json:"billing_period"`
}

func (r CreateInvoiceRequest) ResolveAmount() (int64, error) {
	return resolveAmount(r.Amount)
}

func (r CreateInvoiceRequest) ResolveDueDate() (time.Time, error) {
	v := strings.TrimSpace(r.DueDate)
	if v == "" {
		return time.Time{}, nil
	}
	if t, err := time.Parse("2006-01-02", v); err == nil {
		return t, nil
	}
	if t, err := time.Parse(time.RFC3339, v); err == nil {
		return t, nil
	}
	return time.Time{}, ErrInvalidPaymentDate
}

type UpdateInvoiceStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
