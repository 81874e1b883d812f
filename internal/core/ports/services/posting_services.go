package services

import (
	"context"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	"github.com/SscSPs/contabil_engine/internal/dto"
)

// RuleResolverSvc resolves the configured accounting rule for a tenant,
// origin and category. No side effects.
type RuleResolverSvc interface {
	// Resolve returns the single winning rule, or an error wrapping
	// apperrors.ErrRuleNotFound when no active automatic rule matches.
	Resolve(ctx context.Context, tenantID int64, origin domain.Origin, categoryID int64) (*domain.AccountingRule, error)
}

// FinancialEntrySvc creates and reads financial entries.
type FinancialEntrySvc interface {
	// CreatePayable persists a new payable financial entry with status
	// pending. Amount is normalized to its absolute value; idempotency is the
	// poster's responsibility, not creation's.
	CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.FinancialEntry, error)
}

// LedgerPosterSvc turns one financial entry into one balanced ledger entry,
// idempotently.
type LedgerPosterSvc interface {
	// Post creates the ledger entry for the given financial entry, or returns
	// the existing one with AlreadyExisted set. Safe to call concurrently and
	// to retry after any transient error.
	Post(ctx context.Context, financialEntryID int64) (*domain.PostingResult, error)
}

// TransactionCoordinatorSvc performs entry creation and posting as one atomic
// unit: either the financial entry, ledger header and both lines all commit,
// or none do. Callers that want "create now, post later" should use
// FinancialEntrySvc followed by LedgerPosterSvc instead; that two-step flow
// leaves a window where the entry exists unposted.
type TransactionCoordinatorSvc interface {
	CreateAndPost(ctx context.Context, req dto.CreatePayableRequest) (*domain.CreateAndPostResult, error)
}

// ServiceContainer holds instances of all the application services.
// This is the main entry point for accessing service functionality and
// is used throughout the application, particularly in the handlers.
type ServiceContainer struct {
	RuleResolver   RuleResolverSvc
	FinancialEntry FinancialEntrySvc
	LedgerPoster   LedgerPosterSvc
	Coordinator    TransactionCoordinatorSvc
}
