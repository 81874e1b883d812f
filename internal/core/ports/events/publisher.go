package events

import (
	"context"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
)

// Publisher emits domain events to an external broker. Implementations must
// be safe for concurrent use.
type Publisher interface {
	PublishLedgerPosted(ctx context.Context, event domain.LedgerPostedEvent) error
}
