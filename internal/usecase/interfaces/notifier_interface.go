package interfaces

import (
	"context"

	"github.com/UntamedK1ddo/internet-smart-bill-kenya/internal/domain/entities"
)

// INotifier surfaces human-readable outcomes to the operator. Fire-and-forget:
// implementations log delivery problems instead of returning them.

type INotifier interface {
	Notify(ctx context.Context, n entities.Notification)
}
