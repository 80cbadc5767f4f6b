package response

import (
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

type InvoiceResponse struct {
	ID            string `json:"id"`
	CustomerID    string `json:"customer_id"`
	CustomerName  string `json:"customer_name"`
	Amount        int64  `json:"amount"`
	DueDate       string `json:"due_date"`
	Status        string `json:"status"`
	BillingPeriod string `json:"billing_period"`
	Package       string `json:"package,omitempty"`
	Generated     string `json:"generated"`
}

func FromInvoice(inv entities.Invoice) InvoiceResponse {
	return InvoiceResponse{
		ID:            inv.ID,
		CustomerID:    inv.CustomerID,
		CustomerName:  inv.CustomerName,
		Amount:        inv.Amount,
		DueDate:       inv.DueDate.Format("2006-01-02"),
		Status:        string(inv.Status),
		BillingPeriod: inv.BillingPeriod,
		Package:       inv.Package,
		Generated:     inv.Generated.Format("2006-01-02"),
	}
}

func FromInvoices(items []entities.Invoice) []InvoiceResponse {
	out := make([]InvoiceResponse, 0, len(items))
	for _, inv := range items {
		out = append(out, FromInvoice(inv))
	}
	return out
}
