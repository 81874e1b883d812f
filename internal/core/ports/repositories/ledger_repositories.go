package repositories

import (
	"context"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// LedgerReader defines read operations for ledger entries and their lines.
type LedgerReader interface {
	// FindLedgerEntryByFinancialEntryID retrieves the ledger entry keyed by
	// (tenant, financial entry id), with its lines ordered by line id.
	// Returns apperrors.ErrNotFound when no posting exists yet.
	FindLedgerEntryByFinancialEntryID(ctx context.Context, tenantID, financialEntryID int64) (*domain.LedgerEntry, error)

	// FindLedgerLinesByEntryID retrieves the lines of a ledger entry ordered
	// by line id.
	FindLedgerLinesByEntryID(ctx context.Context, ledgerEntryID int64) ([]domain.LedgerLine, error)
}

// LedgerWriter defines write operations for ledger entries. The header and
// line inserts are separate tx-scoped steps so callers control atomicity; a
// header insert that hits the (tenant_id, financial_entry_id) uniqueness
// constraint returns an error wrapping apperrors.ErrConflict.
type LedgerWriter interface {
	// InsertLedgerEntryTx inserts the ledger header and returns its new id.
	InsertLedgerEntryTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error)

	// InsertLedgerLineTx inserts one ledger line and returns its new id.
	InsertLedgerLineTx(ctx context.Context, tx pgx.Tx, line domain.LedgerLine) (int64, error)
}

// LedgerRepositoryFacade combines all ledger repository interfaces.
type LedgerRepositoryFacade interface {
	LedgerReader
	LedgerWriter
}

// LedgerRepositoryWithTx extends LedgerRepositoryFacade with transaction
// capabilities.
type LedgerRepositoryWithTx interface {
	LedgerRepositoryFacade
	TransactionManager
}
