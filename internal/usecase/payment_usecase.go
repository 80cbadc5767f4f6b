package usecase

import (
	"context"
	"errors"
	"fmt"
	"log"
	"regexp"
	"strings"
	"sync"
	"time"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/metrics"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"

	"github.com/google/uuid"
)

var (
	ErrMissingField         = errors.New("missing required field")
	ErrInvalidAmount        = errors.New("invalid amount")
	ErrInvalidPhoneNumber   = errors.New("invalid phone number")
	ErrInvalidPaymentMethod = errors.New("invalid payment method")
	ErrMethodNotPromptable  = errors.New("payment method not promptable")
	ErrPaymentNotFound      = errors.New("payment not found")
	ErrPaymentNotPending    = errors.New("payment not pending")
	ErrPromptInFlight       = errors.New("prompt already in flight for this customer and invoice")
)

// PromptDeliveryError wraps a provider initiation failure with enough context
// for operator-facing messaging. No ledger record exists for the attempt
// unless the RecordFailedAttempts policy is on.
type PromptDeliveryError struct {
	Method      entities.PaymentMethod
	PhoneNumber string
	Amount      int64
	Err         error
}

func (e *PromptDeliveryError) Error() string {
	return fmt.Sprintf("prompt delivery failed method=%s phone=%s amount=%d: %v", e.Method, e.PhoneNumber, e.Amount, e.Err)
}

func (e *PromptDeliveryError) Unwrap() error { return e.Err }

// SendPromptCommand is an operator-entered request to push a payment
// confirmation to a customer's phone.
type SendPromptCommand struct {
	CustomerID  string
	PhoneNumber string
	Amount      int64
	Method      entities.PaymentMethod
	InvoiceID   string
}

// RecordPaymentCommand is a fully-known payment recorded after the fact
// (cash, bank transfer, or a mobile-money receipt the operator already has).
type RecordPaymentCommand struct {
	CustomerID string
	Amount     int64
	Method     entities.PaymentMethod
	Reference  string
	InvoiceID  string
	Date       time.Time
}

// PaymentPolicy carries the configurable behavior of the prompt flow.
//
// RecordFailedAttempts: when on, a provider initiation failure leaves a
// failed-status record behind for audit; when off (the default) it leaves no
// trace. PromptTimeout caps the provider round-trip; zero disables the cap.
type PaymentPolicy struct {
	RecordFailedAttempts bool
	PromptTimeout        time.Duration
}

// IPaymentUseCase is the payment core: prompt initiation, manual recording,
// and reconciliation of pending prompts against the provider.

type IPaymentUseCase interface {
	SendPrompt(ctx context.Context, cmd SendPromptCommand) (entities.Payment, string, error)
	RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error)
	ReconcilePayment(ctx context.Context, id string) (entities.Payment, error)
	GetByID(ctx context.Context, id string) (entities.Payment, error)
	List(ctx context.Context) ([]entities.Payment, error)
}

type PaymentUseCase struct {
	ledger    interfaces.IPaymentLedger
	customers interfaces.ICustomerRepository
	invoices  interfaces.IInvoiceRepository
	gateways  map[entities.PaymentMethod]interfaces.IPromptGateway
	notifier  interfaces.INotifier
	policy    PaymentPolicy

	mu       sync.Mutex
	inFlight map[string]struct{}
}

var _ IPaymentUseCase = (*PaymentUseCase)(nil)

func NewPaymentUseCase(
	ledger interfaces.IPaymentLedger,
	customers interfaces.ICustomerRepository,
	invoices interfaces.IInvoiceRepository,
	gateways map[entities.PaymentMethod]interfaces.IPromptGateway,
	notifier interfaces.INotifier,
	policy PaymentPolicy,
) *PaymentUseCase {
	return &PaymentUseCase{
		ledger:    ledger,
		customers: customers,
		invoices:  invoices,
		gateways:  gateways,
		notifier:  notifier,
		policy:    policy,
		inFlight:  make(map[string]struct{}),
	}
}

// SendPrompt validates the request, dispatches to the method's initiation
// strategy and appends a pending ledger record on success. The returned string
// is the provider's customer-facing message.
//
// Provider failure is atomic: unless RecordFailedAttempts is on, no ledger
// record is created and the error is a *PromptDeliveryError.
func (u *PaymentUseCase) SendPrompt(ctx context.Context, cmd SendPromptCommand) (entities.Payment, string, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.PhoneNumber = strings.TrimSpace(cmd.PhoneNumber)
	cmd.InvoiceID = strings.TrimSpace(cmd.InvoiceID)
	log.Printf("[payment][usecase] send-prompt start customer_id=%s method=%s amount=%d", cmd.CustomerID, cmd.Method, cmd.Amount)

	if cmd.CustomerID == "" {
		return entities.Payment{}, "", fmt.Errorf("%w: customer_id", ErrMissingField)
	}
	if cmd.PhoneNumber == "" {
		return entities.Payment{}, "", fmt.Errorf("%w: phone_number", ErrMissingField)
	}
	if cmd.Amount == 0 {
		return entities.Payment{}, "", fmt.Errorf("%w: amount", ErrMissingField)
	}
	if cmd.Amount < 0 {
		return entities.Payment{}, "", ErrInvalidAmount
	}
	if !cmd.Method.Valid() {
		return entities.Payment{}, "", ErrInvalidPaymentMethod
	}
	if !cmd.Method.Promptable() {
		return entities.Payment{}, "", ErrMethodNotPromptable
	}

	phone, err := NormalizePhoneNumber(cmd.PhoneNumber)
	if err != nil {
		return entities.Payment{}, "", err
	}

	gateway, ok := u.gateways[cmd.Method]
	if !ok || gateway == nil {
		return entities.Payment{}, "", fmt.Errorf("prompt gateway not configured for method %s", cmd.Method)
	}

	customer, err := u.customers.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return entities.Payment{}, "", err
	}
	if customer.ID == "" {
		return entities.Payment{}, "", ErrCustomerNotFound
	}

	if cmd.InvoiceID != "" {
		invoice, err := u.invoices.GetByID(ctx, cmd.InvoiceID)
		if err != nil {
			return entities.Payment{}, "", err
		}
		if invoice.ID == "" {
			return entities.Payment{}, "", ErrInvoiceNotFound
		}
	}

	// One prompt at a time per customer/invoice pair, so a slow provider
	// round-trip cannot turn into a duplicate charge.
	release, err := u.acquirePrompt(customer.ID, cmd.InvoiceID)
	if err != nil {
		return entities.Payment{}, "", err
	}
	defer release()

	seq, err := u.ledger.NextSequence(ctx)
	if err != nil {
		return entities.Payment{}, "", err
	}
	id := FormatPaymentID(seq)
	invoiceID := cmd.InvoiceID
	if invoiceID == "" {
		// Default ids consume the invoice counter, so a later real invoice
		// can never be issued the same id.
		iseq, err := u.invoices.NextSequence(ctx)
		if err != nil {
			return entities.Payment{}, "", err
		}
		invoiceID = FormatInvoiceID(iseq)
	}

	ictx := ctx
	if u.policy.PromptTimeout > 0 {
		var cancel context.CancelFunc
		ictx, cancel = context.WithTimeout(ctx, u.policy.PromptTimeout)
		defer cancel()
	}

	receipt, err := gateway.Initiate(ictx, interfaces.PromptInitiation{
		PhoneNumber:      phone,
		Amount:           cmd.Amount,
		AccountReference: invoiceID,
		Description:      fmt.Sprintf("Payment for %s", customer.Name),
	})
	if err != nil {
		log.Printf("[payment][usecase] prompt initiation failed customer_id=%s method=%s err=%v", customer.ID, cmd.Method, err)
		metrics.PaymentPromptsTotal.WithLabelValues(string(cmd.Method), "failed").Inc()
		if u.policy.RecordFailedAttempts {
			failed := entities.Payment{
				ID:           id,
				CustomerID:   customer.ID,
				CustomerName: customer.Name,
				PhoneNumber:  phone,
				Amount:       cmd.Amount,
				Method:       cmd.Method,
				Reference:    fmt.Sprintf("%s-FAILED-%s", strings.ToUpper(string(cmd.Method)), shortToken()),
				Date:         time.Now().UTC(),
				InvoiceID:    invoiceID,
				Status:       entities.PaymentStatusFailed,
			}
			if _, cerr := u.ledger.Create(ctx, failed); cerr != nil {
				log.Printf("[payment][usecase] failed-attempt record create failed id=%s err=%v", id, cerr)
			}
		}
		u.notify(ctx, "Payment Prompt Failed",
			fmt.Sprintf("Failed to send payment prompt to %s. Please try again.", phone),
			entities.SeverityError)
		return entities.Payment{}, "", &PromptDeliveryError{Method: cmd.Method, PhoneNumber: phone, Amount: cmd.Amount, Err: err}
	}

	p := entities.Payment{
		ID:           id,
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		PhoneNumber:  phone,
		Amount:       cmd.Amount,
		Method:       cmd.Method,
		Reference:    receipt.CorrelationID,
		Date:         time.Now().UTC(),
		InvoiceID:    invoiceID,
		Status:       entities.PaymentStatusPending,
	}
	created, err := u.ledger.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] ledger create failed id=%s err=%v", id, err)
		return entities.Payment{}, "", err
	}

	metrics.PaymentPromptsTotal.WithLabelValues(string(cmd.Method), "sent").Inc()
	message := receipt.CustomerMessage
	if message == "" {
		message = fmt.Sprintf("Payment prompt sent to %s via %s.", phone, strings.ToUpper(string(cmd.Method)))
	}
	u.notify(ctx, "Payment Request Sent", message, entities.SeveritySuccess)
	log.Printf("[payment][usecase] send-prompt success id=%s reference=%s", created.ID, created.Reference)
	return created, message, nil
}

// RecordPayment appends an already-settled payment to the ledger. No provider
// interaction; the record is completed on creation.
func (u *PaymentUseCase) RecordPayment(ctx context.Context, cmd RecordPaymentCommand) (entities.Payment, error) {
	cmd.CustomerID = strings.TrimSpace(cmd.CustomerID)
	cmd.Reference = strings.TrimSpace(cmd.Reference)
	cmd.InvoiceID = strings.TrimSpace(cmd.InvoiceID)
	log.Printf("[payment][usecase] record start customer_id=%s method=%s amount=%d", cmd.CustomerID, cmd.Method, cmd.Amount)

	if cmd.CustomerID == "" {
		return entities.Payment{}, fmt.Errorf("%w: customer_id", ErrMissingField)
	}
	if cmd.Amount == 0 {
		return entities.Payment{}, fmt.Errorf("%w: amount", ErrMissingField)
	}
	if cmd.Amount < 0 {
		return entities.Payment{}, ErrInvalidAmount
	}
	if cmd.Reference == "" {
		return entities.Payment{}, fmt.Errorf("%w: reference", ErrMissingField)
	}
	if !cmd.Method.Valid() {
		return entities.Payment{}, ErrInvalidPaymentMethod
	}

	customer, err := u.customers.GetByID(ctx, cmd.CustomerID)
	if err != nil {
		return entities.Payment{}, err
	}
	if customer.ID == "" {
		return entities.Payment{}, ErrCustomerNotFound
	}

	if cmd.InvoiceID != "" {
		invoice, err := u.invoices.GetByID(ctx, cmd.InvoiceID)
		if err != nil {
			return entities.Payment{}, err
		}
		if invoice.ID == "" {
			return entities.Payment{}, ErrInvoiceNotFound
		}
	}

	seq, err := u.ledger.NextSequence(ctx)
	if err != nil {
		return entities.Payment{}, err
	}
	invoiceID := cmd.InvoiceID
	if invoiceID == "" {
		iseq, err := u.invoices.NextSequence(ctx)
		if err != nil {
			return entities.Payment{}, err
		}
		invoiceID = FormatInvoiceID(iseq)
	}
	date := cmd.Date
	if date.IsZero() {
		date = time.Now().UTC()
	}

	p := entities.Payment{
		ID:           FormatPaymentID(seq),
		CustomerID:   customer.ID,
		CustomerName: customer.Name,
		Amount:       cmd.Amount,
		Method:       cmd.Method,
		Reference:    cmd.Reference,
		Date:         date,
		InvoiceID:    invoiceID,
		Status:       entities.PaymentStatusCompleted,
	}
	created, err := u.ledger.Create(ctx, p)
	if err != nil {
		log.Printf("[payment][usecase] ledger create failed id=%s err=%v", p.ID, err)
		return entities.Payment{}, err
	}

	u.notify(ctx, "Payment Recorded",
		fmt.Sprintf("Payment of KSh %d from %s has been recorded.", created.Amount, created.CustomerName),
		entities.SeveritySuccess)
	log.Printf("[payment][usecase] record success id=%s", created.ID)
	return created, nil
}

// ReconcilePayment asks the provider for the outcome of a pending prompt and
// drives the pending -> completed/failed transition on the stored record.
// A still-pending answer returns the record unchanged.
func (u *PaymentUseCase) ReconcilePayment(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, fmt.Errorf("%w: payment_id", ErrMissingField)
	}

	p, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	if p.Status != entities.PaymentStatusPending {
		return entities.Payment{}, ErrPaymentNotPending
	}
	if !p.Method.Promptable() {
		return entities.Payment{}, ErrMethodNotPromptable
	}

	gateway, ok := u.gateways[p.Method]
	if !ok || gateway == nil {
		return entities.Payment{}, fmt.Errorf("prompt gateway not configured for method %s", p.Method)
	}

	status, err := gateway.QueryStatus(ctx, p.Reference)
	if err != nil {
		log.Printf("[payment][usecase] status query failed id=%s reference=%s err=%v", p.ID, p.Reference, err)
		return entities.Payment{}, err
	}
	if status == entities.PaymentStatusPending {
		log.Printf("[payment][usecase] reconcile still pending id=%s", p.ID)
		return p, nil
	}

	updated, err := u.ledger.UpdateStatus(ctx, p.ID, status)
	if err != nil {
		return entities.Payment{}, err
	}
	if updated.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}

	switch status {
	case entities.PaymentStatusCompleted:
		metrics.PaymentPromptsTotal.WithLabelValues(string(p.Method), "completed").Inc()
		u.notify(ctx, "Payment Completed",
			fmt.Sprintf("Payment of KSh %d from %s has been confirmed.", updated.Amount, updated.CustomerName),
			entities.SeveritySuccess)
		u.markInvoicePaid(ctx, updated.InvoiceID)
	case entities.PaymentStatusFailed:
		metrics.PaymentPromptsTotal.WithLabelValues(string(p.Method), "failed").Inc()
		u.notify(ctx, "Payment Failed",
			fmt.Sprintf("Payment of KSh %d from %s was not completed.", updated.Amount, updated.CustomerName),
			entities.SeverityError)
	}
	log.Printf("[payment][usecase] reconcile success id=%s status=%s", updated.ID, updated.Status)
	return updated, nil
}

func (u *PaymentUseCase) GetByID(ctx context.Context, id string) (entities.Payment, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Payment{}, fmt.Errorf("%w: payment_id", ErrMissingField)
	}

	p, err := u.ledger.GetByID(ctx, id)
	if err != nil {
		return entities.Payment{}, err
	}
	if p.ID == "" {
		return entities.Payment{}, ErrPaymentNotFound
	}
	return p, nil
}

func (u *PaymentUseCase) List(ctx context.Context) ([]entities.Payment, error) {
	return u.ledger.List(ctx)
}

// markInvoicePaid flags the linked invoice after a completed payment.
// Synthesized invoice ids may not exist in the catalog; that is not an error.
func (u *PaymentUseCase) markInvoicePaid(ctx context.Context, invoiceID string) {
	if invoiceID == "" || u.invoices == nil {
		return
	}
	invoice, err := u.invoices.GetByID(ctx, invoiceID)
	if err != nil || invoice.ID == "" {
		return
	}
	if invoice.Status == entities.InvoiceStatusPaid {
		return
	}
	if _, err := u.invoices.UpdateStatus(ctx, invoice.ID, entities.InvoiceStatusPaid); err != nil {
		log.Printf("[payment][usecase] invoice mark-paid failed invoice_id=%s err=%v", invoiceID, err)
	}
}

func (u *PaymentUseCase) acquirePrompt(customerID, invoiceID string) (func(), error) {
	key := customerID + "|" + invoiceID
	u.mu.Lock()
	defer u.mu.Unlock()
	if _, busy := u.inFlight[key]; busy {
		return nil, ErrPromptInFlight
	}
	u.inFlight[key] = struct{}{}
	return func() {
		u.mu.Lock()
		delete(u.inFlight, key)
		u.mu.Unlock()
	}, nil
}

func (u *PaymentUseCase) notify(ctx context.Context, title, description string, severity entities.Severity) {
	if u.notifier == nil {
		return
	}
	u.notifier.Notify(ctx, entities.Notification{Title: title, Description: description, Severity: severity})
}

// FormatPaymentID renders a ledger sequence value as the public payment id.
func FormatPaymentID(seq int64) string {
	return fmt.Sprintf("PAY-%03d", seq)
}

// FormatInvoiceID renders an invoice sequence value as the public invoice id.
func FormatInvoiceID(seq int64) string {
	return fmt.Sprintf("INV-%03d", seq)
}

var kenyanMSISDN = regexp.MustCompile(`^254[17]\d{8}$`)

// NormalizePhoneNumber coerces operator input ("+254712345678", "0712345678",
// "254 712 345 678") into the canonical 254XXXXXXXXX form.
func NormalizePhoneNumber(raw string) (string, error) {
	s := strings.TrimSpace(raw)
	s = strings.ReplaceAll(s, " ", "")
	s = strings.ReplaceAll(s, "-", "")
	s = strings.TrimPrefix(s, "+")
	if strings.HasPrefix(s, "0") && len(s) == 10 {
		s = "254" + s[1:]
	}
	if !kenyanMSISDN.MatchString(s) {
		return "", ErrInvalidPhoneNumber
	}
	return s, nil
}

func shortToken() string {
	return strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
}
