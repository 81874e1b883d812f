package repositories

import (
	"context"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// FinancialEntryReader defines read operations for financial entries.
type FinancialEntryReader interface {
	// FindFinancialEntryByID retrieves a financial entry by its identifier.
	FindFinancialEntryByID(ctx context.Context, entryID int64) (*domain.FinancialEntry, error)
}

// FinancialEntryWriter defines write operations for financial entries.
type FinancialEntryWriter interface {
	// CreateFinancialEntry persists a new financial entry and returns its id.
	CreateFinancialEntry(ctx context.Context, entry domain.FinancialEntry) (int64, error)

	// CreateFinancialEntryTx is CreateFinancialEntry scoped to an open
	// transaction.
	CreateFinancialEntryTx(ctx context.Context, tx pgx.Tx, entry domain.FinancialEntry) (int64, error)
}

// FinancialEntryRepositoryFacade combines all financial entry repository
// interfaces.
type FinancialEntryRepositoryFacade interface {
	FinancialEntryReader
	FinancialEntryWriter
}
