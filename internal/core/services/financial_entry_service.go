package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_engine/internal/core/ports/services"
	"github.com/SscSPs/contabil_engine/internal/dto"
	"github.com/SscSPs/contabil_engine/internal/middleware"
)

const dateLayout = "2006-01-02"

// financialEntryService creates financial entries.
type financialEntryService struct {
	entryRepo portsrepo.FinancialEntryRepositoryFacade
}

// NewFinancialEntryService creates a new FinancialEntrySvc.
func NewFinancialEntryService(entryRepo portsrepo.FinancialEntryRepositoryFacade) portssvc.FinancialEntrySvc {
	return &financialEntryService{entryRepo: entryRepo}
}

var _ portssvc.FinancialEntrySvc = (*financialEntryService)(nil)

// buildPayableEntry validates the request and assembles the unsaved payable
// entry. The amount is stored as its absolute value, a negative input means
// the same obligation. Issue date defaults to today (UTC) and due date
// defaults to the issue date.
func buildPayableEntry(req dto.CreatePayableRequest, now time.Time) (domain.FinancialEntry, error) {
	if req.Amount.IsZero() {
		return domain.FinancialEntry{}, fmt.Errorf("%w: amount must not be zero", apperrors.ErrValidation)
	}

	issueDate := now.UTC().Truncate(24 * time.Hour)
	if req.IssueDate != "" {
		parsed, err := time.Parse(dateLayout, req.IssueDate)
		if err != nil {
			return domain.FinancialEntry{}, fmt.Errorf("%w: invalid issue date %q", apperrors.ErrValidation, req.IssueDate)
		}
		issueDate = parsed
	}

	dueDate := issueDate
	if req.DueDate != "" {
		parsed, err := time.Parse(dateLayout, req.DueDate)
		if err != nil {
			return domain.FinancialEntry{}, fmt.Errorf("%w: invalid due date %q", apperrors.ErrValidation, req.DueDate)
		}
		dueDate = parsed
	}

	return domain.FinancialEntry{
		TenantID:           req.TenantID,
		EntryType:          domain.OriginPayable,
		Description:        req.Description,
		Amount:             req.Amount.Abs(),
		IssueDate:          issueDate,
		DueDate:            dueDate,
		Status:             domain.StatusPending,
		CategoryID:         req.CategoryID,
		CounterpartID:      req.CounterpartID,
		FinancialAccountID: req.FinancialAccountID,
	}, nil
}

// CreatePayable persists a new payable financial entry with status pending.
// Implements portssvc.FinancialEntrySvc
func (s *financialEntryService) CreatePayable(ctx context.Context, req dto.CreatePayableRequest) (*domain.FinancialEntry, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	entry, err := buildPayableEntry(req, time.Now())
	if err != nil {
		return nil, err
	}

	entryID, err := s.entryRepo.CreateFinancialEntry(ctx, entry)
	if err != nil {
		logger.Error("Failed to create financial entry",
			slog.Int64("tenant_id", req.TenantID),
			slog.String("error", err.Error()))
		return nil, err
	}
	entry.EntryID = entryID

	logger.Info("Financial entry created",
		slog.Int64("entry_id", entryID),
		slog.Int64("tenant_id", entry.TenantID),
		slog.String("amount", entry.Amount.String()))

	return &entry, nil
}
