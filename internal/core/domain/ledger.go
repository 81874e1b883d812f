package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// LedgerEntry is the balanced double-entry header produced by a posting.
// Exactly one exists per financial entry (unique on tenant + financial entry
// id) and it is immutable once created.
type LedgerEntry struct {
	LedgerEntryID      int64           `json:"ledgerEntryID" db:"ledger_entry_id"`
	TenantID           int64           `json:"tenantID" db:"tenant_id"`
	PostingDate        time.Time       `json:"postingDate" db:"posting_date"`
	History            string          `json:"history" db:"history"`
	CounterpartID      *int64          `json:"counterpartID,omitempty" db:"counterpart_id"`
	FinancialAccountID *int64          `json:"financialAccountID,omitempty" db:"financial_account_id"`
	TotalDebits        decimal.Decimal `json:"totalDebits" db:"total_debits"`
	TotalCredits       decimal.Decimal `json:"totalCredits" db:"total_credits"`
	FinancialEntryID   int64           `json:"financialEntryID" db:"financial_entry_id"`
	CreatedAt          time.Time       `json:"createdAt" db:"created_at"`

	// Lines are loaded alongside the header; postings produced by this core
	// always carry exactly two.
	Lines []LedgerLine `json:"lines" db:"-"`
}

// LedgerLine is a single debit-or-credit row within a ledger entry. One of
// Debit/Credit carries the amount, the other is zero.
type LedgerLine struct {
	LineID        int64           `json:"lineID" db:"line_id"`
	LedgerEntryID int64           `json:"ledgerEntryID" db:"ledger_entry_id"`
	AccountID     int64           `json:"accountID" db:"account_id"`
	Debit         decimal.Decimal `json:"debit" db:"debit"`
	Credit        decimal.Decimal `json:"credit" db:"credit"`
	History       string          `json:"history" db:"history"`
}

// BuildPosting assembles the unsaved header and its two lines for a financial
// entry under the given rule: a pure-debit line on the rule's debit account
// and a pure-credit line on the rule's credit account, both for the entry's
// full amount.
func BuildPosting(entry FinancialEntry, rule AccountingRule) (LedgerEntry, []LedgerLine) {
	header := LedgerEntry{
		TenantID:           entry.TenantID,
		PostingDate:        entry.IssueDate,
		History:            entry.Description,
		CounterpartID:      entry.CounterpartID,
		FinancialAccountID: entry.FinancialAccountID,
		TotalDebits:        entry.Amount,
		TotalCredits:       entry.Amount,
		FinancialEntryID:   entry.EntryID,
	}
	lines := []LedgerLine{
		{
			AccountID: rule.DebitAccountID,
			Debit:     entry.Amount,
			Credit:    decimal.Zero,
			History:   entry.Description,
		},
		{
			AccountID: rule.CreditAccountID,
			Debit:     decimal.Zero,
			Credit:    entry.Amount,
			History:   entry.Description,
		},
	}
	return header, lines
}

// PostingResult is returned by the ledger poster. AlreadyExisted marks the
// idempotent path: the entry had been posted before and no writes happened.
type PostingResult struct {
	Entry          LedgerEntry `json:"entry"`
	AlreadyExisted bool        `json:"alreadyExisted"`
}

// CreateAndPostResult is returned by the transaction coordinator after
// creating and posting a financial entry atomically.
type CreateAndPostResult struct {
	FinancialEntry FinancialEntry `json:"financialEntry"`
	LedgerEntry    LedgerEntry    `json:"ledgerEntry"`
}
