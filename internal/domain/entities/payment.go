package entities

import "time"

// PaymentMethod is the closed set of ways a customer can settle an invoice.
//
// The three mobile-money methods are "promptable": the service can push a
// payment-confirmation dialog to the customer's phone. Bank and cash entries
// are only ever recorded manually by an operator.

type PaymentMethod string

const (
	PaymentMethodMpesa  PaymentMethod = "mpesa"
	PaymentMethodAirtel PaymentMethod = "airtel"
	PaymentMethodTkash  PaymentMethod = "tkash"
	PaymentMethodBank   PaymentMethod = "bank"
	PaymentMethodCash   PaymentMethod = "cash"
)

func (m PaymentMethod) Valid() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodAirtel, PaymentMethodTkash, PaymentMethodBank, PaymentMethodCash:
		return true
	}
	return false
}

func (m PaymentMethod) Promptable() bool {
	switch m {
	case PaymentMethodMpesa, PaymentMethodAirtel, PaymentMethodTkash:
		return true
	}
	return false
}

// PaymentStatus is a payment's lifecycle state.
//
// Records created through the prompt flow start pending and are later
// reconciled to completed or failed; manual entries are completed on creation.

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "pending"
	PaymentStatusCompleted PaymentStatus = "completed"
	PaymentStatusFailed    PaymentStatus = "failed"
)

// Payment is a ledger entry for money collected (or being collected) from a
// customer.
//
// Amount is whole Kenyan shillings. Reference is the provider correlation id
// for initiated prompts, the operator-supplied transaction token for manual
// entries, or a locally synthesized placeholder for methods without a real
// gateway. InvoiceID is synthesized from the ledger sequence when the operator
// does not supply one.

type Payment struct {
	ID           string        `json:"id"`
	CustomerID   string        `json:"customer_id"`
	CustomerName string        `json:"customer_name"`
	PhoneNumber  string        `json:"phone_number,omitempty"`
	Amount       int64         `json:"amount"`
	Method       PaymentMethod `json:"method"`
	Reference    string        `json:"reference"`
	Date         time.Time     `json:"date"`
	InvoiceID    string        `json:"invoice_id"`
	Status       PaymentStatus `json:"status"`
}
