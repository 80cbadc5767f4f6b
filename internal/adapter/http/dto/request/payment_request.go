package request

import (
	"encoding/json"
	"errors"
	"strconv"
	"strings"
	"time"
)

var (
	ErrInvalidPaymentAmount = errors.New("invalid payment amount")
	ErrInvalidPaymentDate   = errors.New("invalid payment date")
)

// SendPromptRequest asks the gateway to push a payment prompt to the
// customer's phone. Amount tolerates both JSON numbers and quoted strings
// because the dashboard frontend sends whichever the form produced.
type SendPromptRequest struct {
	CustomerID  string          `json:"customer_id" binding:"required"`
	InvoiceID   string          `json:"invoice_id"`
	Amount      json.RawMessage `json:"amount" binding:"required"`
	PhoneNumber string          `json:"phone_number"`
	Method      string          `json:"method" binding:"required"`
}

func (r SendPromptRequest) ResolveAmount() (int64, error) {
	return resolveAmount(r.Amount)
}

// RecordPaymentRequest records a payment that already happened outside the
// prompt flow (cash drawer, bank slip, manual M-PESA reference).
type RecordPaymentRequest struct {
	CustomerID string          `json:"customer_id" binding:"required"`
	InvoiceID  string          `json:"invoice_id"`
	Amount     json.RawMessage `json:"amount" binding:"required"`
	Method     string          `json:"method" binding:"required"`
	Reference  string          `json:"reference" binding:"required"`
	Date       string          `json:"date"`
}

func (r RecordPaymentRequest) ResolveAmount() (int64, error) {
	return resolveAmount(r.Amount)
}

// ResolveDate parses the optional payment date. Empty means "now" and is
// decided by the use case.
func (r RecordPaymentRequest) ResolveDate() (time.Time, error) {
	v := strings.TrimSpace(r.Date)
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

func resolveAmount(raw json.RawMessage) (int64, error) {
	v := strings.TrimSpace(string(raw))
	if v == "" || v == "null" {
		return 0, nil
	}
	v = strings.Trim(v, `"`)
	v = strings.ReplaceAll(v, ",", "")
	v = strings.TrimSpace(strings.TrimPrefix(v, "KSh"))
	if v == "" {
		return 0, ErrInvalidPaymentAmount
	}

	if n, err := strconv.ParseInt(v, 10, 64); err == nil {
		return n, nil
	}
	// Float parsing only tolerates a trailing ".0" form; exponent notation
	// is not an amount.
	if strings.ContainsAny(v, "eE") {
		return 0, ErrInvalidPaymentAmount
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return 0, ErrInvalidPaymentAmount
	}
	amount := int64(f)
	if float64(amount) != f {
		return 0, ErrInvalidPaymentAmount
	}
	return amount, nil
}
