package response

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

type PaymentResponse struct {
	ID           string `json:"id"`
	CustomerID   string `json:"customer_id"`
	CustomerName string `json:"customer_name"`
	PhoneNumber  string `json:"phone_number,omitempty"`
	Amount       int64  `json:"amount"`
	Method       string `json:"method"`
	Reference    string `json:"reference"`
	Date         string `json:"date"`
	InvoiceID    string `json:"invoice_id,omitempty"`
	Status       string `json:"status"`

	CustomerMessage string `json:"customer_message,omitempty"`
}

func FromPayment(p entities.Payment) PaymentResponse {
	return PaymentResponse{
		ID:           p.ID,
		CustomerID:   p.CustomerID,
		CustomerName: p.CustomerName,
		PhoneNumber:  p.PhoneNumber,
		Amount:       p.Amount,
		Method:       string(p.Method),
		Reference:    p.Reference,
		Date:         p.Date.Format("2006-01-02"),
		InvoiceID:    p.InvoiceID,
		Status:       string(p.Status),
	}
}

// FromPromptedPayment carries the provider's customer-facing text alongside
// the pending record so the dashboard can show it verbatim.
func FromPromptedPayment(p entities.Payment, customerMessage string) PaymentResponse {
	resp := FromPayment(p)
	resp.CustomerMessage = customerMessage
	return resp
}

func FromPayments(items []entities.Payment) []PaymentResponse {
	out := make([]PaymentResponse, 0, len(items))
	for _, p := range items {
		out = append(out, FromPayment(p))
	}
	return out
}
