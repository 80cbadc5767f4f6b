package interfaces

import (
	"context"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

// PromptInitiation is the provider-agnostic request to push a payment
// confirmation dialog to a customer's phone. AccountReference is the invoice
// id the provider echoes back for reconciliation.
type PromptInitiation struct {
	PhoneNumber      string
	Amount           int64
	AccountReference string
	Description      string
}

// PromptReceipt is what a provider answers when it accepts a prompt for
// processing. CorrelationID is the token used to later query the prompt's
// outcome; CustomerMessage is the provider's customer-facing text.
type PromptReceipt struct {
	CorrelationID   string
	CustomerMessage string
}

// IPromptGateway abstracts one mobile-money provider (e.g. the M-PESA STK
// Push API) behind a uniform initiate/query contract.
//
// QueryStatus reports the current outcome of a previously initiated prompt:
// pending while the customer has not acted, completed or failed once the
// provider has a terminal answer.

type IPromptGateway interface {
	Initiate(ctx context.Context, req PromptInitiation) (PromptReceipt, error)
	QueryStatus(ctx context.Context, correlationID string) (entities.PaymentStatus, error)
}
