package payments

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/usecase/interfaces"

	"github.com/google/uuid"
)

// OfflineGateway stands in for mobile-money providers without a real API
// integration (Airtel Money, T-Kash). Initiation synthesizes a
// {METHOD}-PENDING-{token} reference from a random token rather than the
// wall clock, so rapid successive prompts cannot collide. Status queries
// always answer pending: there is no provider to ask, and the record stays
// pending until an operator records the settlement manually.

type OfflineGateway struct {
	method entities.PaymentMethod
}

var _ interfaces.IPromptGateway = (*OfflineGateway)(nil)

func NewOfflineGateway(method entities.PaymentMethod) *OfflineGateway {
	return &OfflineGateway{method: method}
}

func (g *OfflineGateway) Initiate(_ context.Context, req interfaces.PromptInitiation) (interfaces.PromptReceipt, error) {
	label := strings.ToUpper(string(g.method))
	token := strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	reference := fmt.Sprintf("%s-PENDING-%s", label, token)

	log.Printf("[payment][gateway] offline prompt method=%s phone=%s amount=%d reference=%s", g.method, req.PhoneNumber, req.Amount, reference)
	return interfaces.PromptReceipt{
		CorrelationID:   reference,
		CustomerMessage: fmt.Sprintf("A payment request of KSh %d has been sent to %s via %s.", req.Amount, req.PhoneNumber, label),
	}, nil
}

func (g *OfflineGateway) QueryStatus(_ context.Context, correlationID string) (entities.PaymentStatus, error) {
	log.Printf("[payment][gateway] offline status query method=%s reference=%s result=pending", g.method, correlationID)
	return entities.PaymentStatusPending, nil
}
