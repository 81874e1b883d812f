package dto

import (
	"time"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	"github.com/shopspring/decimal"
)

// ResolveRuleRequest asks for the accounting rule configured for a tenant,
// origin and financial category. Origin defaults to payable when omitted.
type ResolveRuleRequest struct {
	TenantID   int64  `json:"tenantID" binding:"required,gt=0"`
	CategoryID int64  `json:"categoryID" binding:"required,gt=0"`
	Origin     string `json:"origin" binding:"omitempty,oneof=payable receivable payment_made payment_received"`
}

// CreatePayableRequest carries the fields needed to create a payable
// financial entry. Dates use YYYY-MM-DD; issue date defaults to today and due
// date defaults to the issue date.
type CreatePayableRequest struct {
	TenantID           int64           `json:"tenantID" binding:"required,gt=0"`
	CategoryID         int64           `json:"categoryID" binding:"required,gt=0"`
	Amount             decimal.Decimal `json:"amount" binding:"required"`
	Description        string          `json:"description"`
	IssueDate          string          `json:"issueDate" binding:"omitempty,datetime=2006-01-02"`
	DueDate            string          `json:"dueDate" binding:"omitempty,datetime=2006-01-02"`
	CounterpartID      *int64          `json:"counterpartID"`
	FinancialAccountID *int64          `json:"financialAccountID"`
}

// PostEntryRequest identifies the financial entry to post to the ledger.
type PostEntryRequest struct {
	FinancialEntryID int64 `json:"financialEntryID" binding:"required,gt=0"`
}

// RuleResponse is the resolved accounting rule returned to callers.
type RuleResponse struct {
	RuleID          int64   `json:"ruleID"`
	TenantID        int64   `json:"tenantID"`
	Origin          string  `json:"origin"`
	Subtype         *string `json:"subtype,omitempty"`
	CategoryID      int64   `json:"categoryID"`
	DebitAccountID  int64   `json:"debitAccountID"`
	CreditAccountID int64   `json:"creditAccountID"`
	Description     string  `json:"description"`
}

// LedgerLineResponse is one debit-or-credit row of a posting.
type LedgerLineResponse struct {
	LineID    int64           `json:"lineID"`
	AccountID int64           `json:"accountID"`
	Debit     decimal.Decimal `json:"debit"`
	Credit    decimal.Decimal `json:"credit"`
	History   string          `json:"history"`
}

// LedgerEntryResponse is the posted ledger header with its lines.
type LedgerEntryResponse struct {
	LedgerEntryID    int64                `json:"ledgerEntryID"`
	TenantID         int64                `json:"tenantID"`
	PostingDate      time.Time            `json:"postingDate"`
	History          string               `json:"history"`
	TotalDebits      decimal.Decimal      `json:"totalDebits"`
	TotalCredits     decimal.Decimal      `json:"totalCredits"`
	FinancialEntryID int64                `json:"financialEntryID"`
	Lines            []LedgerLineResponse `json:"lines"`
}

// PostingResponse wraps a posting outcome; AlreadyExisted marks the
// idempotent replay path.
type PostingResponse struct {
	LedgerEntry    LedgerEntryResponse `json:"ledgerEntry"`
	AlreadyExisted bool                `json:"alreadyExisted"`
}

// FinancialEntryResponse is the created financial entry returned to callers.
type FinancialEntryResponse struct {
	EntryID            int64           `json:"entryID"`
	TenantID           int64           `json:"tenantID"`
	EntryType          string          `json:"entryType"`
	Description        string          `json:"description"`
	Amount             decimal.Decimal `json:"amount"`
	IssueDate          time.Time       `json:"issueDate"`
	DueDate            time.Time       `json:"dueDate"`
	Status             string          `json:"status"`
	CategoryID         int64           `json:"categoryID"`
	CounterpartID      *int64          `json:"counterpartID,omitempty"`
	FinancialAccountID *int64          `json:"financialAccountID,omitempty"`
}

// CreateAndPostResponse combines the atomic create-and-post outcome.
type CreateAndPostResponse struct {
	FinancialEntry FinancialEntryResponse `json:"financialEntry"`
	LedgerEntry    LedgerEntryResponse    `json:"ledgerEntry"`
}

// ToRuleResponse converts a domain.AccountingRule to its response DTO.
func ToRuleResponse(r *domain.AccountingRule) RuleResponse {
	return RuleResponse{
		RuleID:          r.RuleID,
		TenantID:        r.TenantID,
		Origin:          string(r.Origin),
		Subtype:         r.Subtype,
		CategoryID:      r.CategoryID,
		DebitAccountID:  r.DebitAccountID,
		CreditAccountID: r.CreditAccountID,
		Description:     r.Description,
	}
}

// ToLedgerEntryResponse converts a domain.LedgerEntry and its lines.
func ToLedgerEntryResponse(e *domain.LedgerEntry) LedgerEntryResponse {
	lines := make([]LedgerLineResponse, len(e.Lines))
	for i, l := range e.Lines {
		lines[i] = LedgerLineResponse{
			LineID:    l.LineID,
			AccountID: l.AccountID,
			Debit:     l.Debit,
			Credit:    l.Credit,
			History:   l.History,
		}
	}
	return LedgerEntryResponse{
		LedgerEntryID:    e.LedgerEntryID,
		TenantID:         e.TenantID,
		PostingDate:      e.PostingDate,
		History:          e.History,
		TotalDebits:      e.TotalDebits,
		TotalCredits:     e.TotalCredits,
		FinancialEntryID: e.FinancialEntryID,
		Lines:            lines,
	}
}

// ToFinancialEntryResponse converts a domain.FinancialEntry.
func ToFinancialEntryResponse(e *domain.FinancialEntry) FinancialEntryResponse {
	return FinancialEntryResponse{
		EntryID:            e.EntryID,
		TenantID:           e.TenantID,
		EntryType:          string(e.EntryType),
		Description:        e.Description,
		Amount:             e.Amount,
		IssueDate:          e.IssueDate,
		DueDate:            e.DueDate,
		Status:             string(e.Status),
		CategoryID:         e.CategoryID,
		CounterpartID:      e.CounterpartID,
		FinancialAccountID: e.FinancialAccountID,
	}
}
