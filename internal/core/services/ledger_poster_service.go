package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsevents "github.com/SscSPs/contabil_engine/internal/core/ports/events"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_engine/internal/core/ports/services"
	"github.com/SscSPs/contabil_engine/internal/middleware"
	"github.com/jackc/pgx/v5"
)

// ledgerPosterService turns financial entries into balanced ledger entries.
type ledgerPosterService struct {
	entryRepo    portsrepo.FinancialEntryReader
	ledgerRepo   portsrepo.LedgerRepositoryWithTx
	ruleResolver portssvc.RuleResolverSvc
	publisher    portsevents.Publisher // optional, nil disables events
}

// NewLedgerPosterService creates a new LedgerPosterSvc. The publisher may be
// nil, in which case no events are emitted.
func NewLedgerPosterService(entryRepo portsrepo.FinancialEntryReader, ledgerRepo portsrepo.LedgerRepositoryWithTx, ruleResolver portssvc.RuleResolverSvc, publisher portsevents.Publisher) portssvc.LedgerPosterSvc {
	return &ledgerPosterService{
		entryRepo:    entryRepo,
		ledgerRepo:   ledgerRepo,
		ruleResolver: ruleResolver,
		publisher:    publisher,
	}
}

var _ portssvc.LedgerPosterSvc = (*ledgerPosterService)(nil)

// insertPosting writes the header and its lines within the given transaction
// and returns the saved entry with generated ids filled in.
func insertPosting(ctx context.Context, tx pgx.Tx, ledgerRepo portsrepo.LedgerWriter, header domain.LedgerEntry, lines []domain.LedgerLine) (*domain.LedgerEntry, error) {
	ledgerEntryID, err := ledgerRepo.InsertLedgerEntryTx(ctx, tx, header)
	if err != nil {
		return nil, err
	}
	header.LedgerEntryID = ledgerEntryID

	for i := range lines {
		lines[i].LedgerEntryID = ledgerEntryID
		lineID, err := ledgerRepo.InsertLedgerLineTx(ctx, tx, lines[i])
		if err != nil {
			return nil, err
		}
		lines[i].LineID = lineID
	}
	header.Lines = lines

	return &header, nil
}

// publishPosted emits the posted event best-effort; a publish failure is
// logged and never fails the already committed posting.
func publishPosted(ctx context.Context, publisher portsevents.Publisher, entry *domain.FinancialEntry, ledgerEntryID int64) {
	if publisher == nil {
		return
	}
	event := domain.LedgerPostedEvent{
		TenantID:         entry.TenantID,
		FinancialEntryID: entry.EntryID,
		LedgerEntryID:    ledgerEntryID,
		Origin:           entry.EntryType,
		Amount:           entry.Amount,
		PostedAt:         time.Now().UTC(),
	}
	if err := publisher.PublishLedgerPosted(ctx, event); err != nil {
		middleware.GetLoggerFromCtx(ctx).Warn("Failed to publish ledger posted event",
			slog.Int64("ledger_entry_id", ledgerEntryID),
			slog.String("error", err.Error()))
	}
}

// Post creates the ledger entry for the given financial entry. If a posting
// already exists, or a concurrent caller commits one first, the existing
// posting is returned with AlreadyExisted set and nothing is written.
// Implements portssvc.LedgerPosterSvc
func (s *ledgerPosterService) Post(ctx context.Context, financialEntryID int64) (*domain.PostingResult, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := s.entryRepo.FindFinancialEntryByID(ctx, financialEntryID)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return nil, fmt.Errorf("%w: financial entry %d", apperrors.ErrNotFound, financialEntryID)
		}
		return nil, err
	}

	if entry.EntryType != domain.OriginPayable {
		return nil, fmt.Errorf("%w: financial entry %d has type %s, expected %s",
			apperrors.ErrTypeMismatch, financialEntryID, entry.EntryType, domain.OriginPayable)
	}

	// Cheap read-probe first; the uniqueness constraint below is what actually
	// guarantees single posting under concurrency.
	existing, err := s.ledgerRepo.FindLedgerEntryByFinancialEntryID(ctx, entry.TenantID, financialEntryID)
	if err == nil {
		logger.Info("Financial entry already posted",
			slog.Int64("financial_entry_id", financialEntryID),
			slog.Int64("ledger_entry_id", existing.LedgerEntryID))
		return &domain.PostingResult{Entry: *existing, AlreadyExisted: true}, nil
	}
	if !errors.Is(err, apperrors.ErrNotFound) {
		return nil, err
	}

	rule, err := s.ruleResolver.Resolve(ctx, entry.TenantID, entry.EntryType, entry.CategoryID)
	if err != nil {
		return nil, err
	}

	header, lines := domain.BuildPosting(*entry, *rule)

	tx, err := s.ledgerRepo.Begin(ctx)
	if err != nil {
		return nil, err
	}

	posted, err := insertPosting(ctx, tx, s.ledgerRepo, header, lines)
	if err != nil {
		if rbErr := s.ledgerRepo.Rollback(ctx, tx); rbErr != nil {
			logger.Error("Failed to rollback posting transaction", slog.String("error", rbErr.Error()))
		}
		if errors.Is(err, apperrors.ErrConflict) {
			// A concurrent posting committed first; return the winner.
			winner, findErr := s.ledgerRepo.FindLedgerEntryByFinancialEntryID(ctx, entry.TenantID, financialEntryID)
			if findErr != nil {
				return nil, findErr
			}
			logger.Info("Lost posting race, returning existing ledger entry",
				slog.Int64("financial_entry_id", financialEntryID),
				slog.Int64("ledger_entry_id", winner.LedgerEntryID))
			return &domain.PostingResult{Entry: *winner, AlreadyExisted: true}, nil
		}
		return nil, err
	}

	if err := s.ledgerRepo.Commit(ctx, tx); err != nil {
		return nil, err
	}

	logger.Info("Financial entry posted",
		slog.Int64("financial_entry_id", financialEntryID),
		slog.Int64("ledger_entry_id", posted.LedgerEntryID),
		slog.Int64("rule_id", rule.RuleID))

	publishPosted(ctx, s.publisher, entry, posted.LedgerEntryID)

	return &domain.PostingResult{Entry: *posted, AlreadyExisted: false}, nil
}
