package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsevents "github.com/SscSPs/contabil_engine/internal/core/ports/events"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_engine/internal/core/ports/services"
	"github.com/SscSPs/contabil_engine/internal/dto"
	"github.com/SscSPs/contabil_engine/internal/middleware"
)

// transactionCoordinatorService creates and posts a financial entry in one
// database transaction.
type transactionCoordinatorService struct {
	ruleRepo   portsrepo.RuleReader
	entryRepo  portsrepo.FinancialEntryRepositoryFacade
	ledgerRepo portsrepo.LedgerRepositoryWithTx
	publisher  portsevents.Publisher // optional, nil disables events
}

// NewTransactionCoordinatorService creates a new TransactionCoordinatorSvc.
func NewTransactionCoordinatorService(ruleRepo portsrepo.RuleReader, entryRepo portsrepo.FinancialEntryRepositoryFacade, ledgerRepo portsrepo.LedgerRepositoryWithTx, publisher portsevents.Publisher) portssvc.TransactionCoordinatorSvc {
	return &transactionCoordinatorService{
		ruleRepo:   ruleRepo,
		entryRepo:  entryRepo,
		ledgerRepo: ledgerRepo,
		publisher:  publisher,
	}
}

var _ portssvc.TransactionCoordinatorSvc = (*transactionCoordinatorService)(nil)

// CreateAndPost creates the financial entry and its ledger posting atomically:
// if rule resolution or any write fails, the whole unit rolls back and no
// financial entry is left behind.
// Implements portssvc.TransactionCoordinatorSvc
func (s *transactionCoordinatorService) CreateAndPost(ctx context.Context, req dto.CreatePayableRequest) (*domain.CreateAndPostResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := buildPayableEntry(req, time.Now())
	if err != nil {
		return nil, err
	}

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}
	// Rollback is a no-op after a successful commit.
	defer func() {
		if rbErr := s.ledgerRepo.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback create-and-post transaction", slog.String("error", rbErr.Error()))
		}
	}()

	entryID, err := s.entryRepo.CreateFinancialEntryTx(ctx, tx, entry)
	if err != nil {
		return nil, err
	}
	entry.EntryID = entryID

	rules, err := s.ruleRepo.FindActiveRulesTx(ctx, tx, entry.TenantID, entry.EntryType, entry.CategoryID)
	if err != nil {
		return nil, err
	}
	rule := domain.SelectRule(rules)
	if rule == nil {
		return nil, fmt.Errorf("%w: tenant %d, origin %s, category %d",
			apperrors.ErrRuleNotFound, entry.TenantID, entry.EntryType, entry.CategoryID)
	}

	header, lines := domain.BuildPosting(entry, *rule)

	posted, err := insertPosting(ctx, tx, s.ledgerRepo, header, lines)
	if err != nil {
		return nil, err
	}

	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Financial entry created and posted",
		slog.Int64("financial_entry_id", entryID),
		slog.Int64("ledger_entry_id", posted.LedgerEntryID),
		slog.Int64("rule_id", rule.RuleID))

	publishPosted(ctx, s.publisher, &entry, posted.LedgerEntryID)

	return &domain.CreateAndPostResult{FinancialEntry: entry, LedgerEntry: *posted}, nil
}
