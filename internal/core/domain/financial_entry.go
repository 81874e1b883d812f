package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// EntryStatus is the lifecycle state of a financial entry.
type EntryStatus string

// Pending is the only stored status. A successful post does not update it;
// "posted" is inferred from the existence of a ledger entry referencing the
// financial entry. Whether that is intended or a gap is an open business
// question, so this core preserves the behavior.
const StatusPending EntryStatus = "pending"

// FinancialEntry is the source payable/receivable record that a ledger
// posting is derived from. It is created here with status pending and never
// mutated by this core afterwards.
type FinancialEntry struct {
	EntryID            int64           `json:"entryID" db:"entry_id"`
	TenantID           int64           `json:"tenantID" db:"tenant_id"`
	EntryType          Origin          `json:"entryType" db:"entry_type"`
	Description        string          `json:"description" db:"description"`
	Amount             decimal.Decimal `json:"amount" db:"amount"` // non-negative magnitude
	IssueDate          time.Time       `json:"issueDate" db:"issue_date"`
	DueDate            time.Time       `json:"dueDate" db:"due_date"`
	Status             EntryStatus     `json:"status" db:"status"`
	CategoryID         int64           `json:"categoryID" db:"category_id"`
	CounterpartID      *int64          `json:"counterpartID,omitempty" db:"counterpart_id"`
	FinancialAccountID *int64          `json:"financialAccountID,omitempty" db:"financial_account_id"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`
}
