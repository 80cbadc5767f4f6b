package entities

import "time"

type InvoiceStatus string

const (
	InvoiceStatusPaid    InvoiceStatus = "paid"
	InvoiceStatusPending InvoiceStatus = "pending"
	InvoiceStatusOverdue InvoiceStatus = "overdue"
)

func (s InvoiceStatus) Valid() bool {
	switch s {
	case InvoiceStatusPaid, InvoiceStatusPending, InvoiceStatusOverdue:
		return true
	}
	return false
}

// Invoice is a monthly bill issued to a customer. Amount is whole Kenyan
// shillings.
type Invoice struct {
	ID            string        `json:"id"`
	CustomerID    string        `json:"customer_id"`
	CustomerName  string        `json:"customer_name"`
	Amount        int64         `json:"amount"`
	DueDate       time.Time     `json:"due_date"`
	Status        InvoiceStatus `json:"status"`
	BillingPeriod string        `json:"billing_period"`
	Package       string        `json:"package"`
	Generated     time.Time     `json:"generated"`
}
