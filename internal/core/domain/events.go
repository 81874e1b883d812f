package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerPostedEvent is emitted after a ledger entry commits. It is published
// best-effort; consumers must tolerate duplicates (a retried publish) but
// never see an event for a rolled-back posting.
type LedgerPostedEvent struct {
	TenantID         int64           `json:"tenantID"`
	FinancialEntryID int64           `json:"financialEntryID"`
	LedgerEntryID    int64           `json:"ledgerEntryID"`
	Origin           Origin          `json:"origin"`
	Amount           decimal.Decimal `json:"amount"`
	PostedAt         time.Time       `json:"postedAt"`
}
