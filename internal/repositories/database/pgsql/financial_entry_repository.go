package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxFinancialEntryRepository struct {
	BaseRepository
}

// newPgxFinancialEntryRepository creates a new repository for financial entry data.
func newPgxFinancialEntryRepository(pool *pgxpool.Pool) portsrepo.FinancialEntryRepositoryFacade {
	return &PgxFinancialEntryRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.FinancialEntryRepositoryFacade = (*PgxFinancialEntryRepository)(nil)

const insertFinancialEntryQuery = `
	INSERT INTO financial_entries (
		tenant_id, entry_type, description, amount, issue_date, due_date,
		status, category_id, counterpart_id, financial_account_id
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
	RETURNING entry_id;
`

// CreateFinancialEntry persists a new financial entry and returns its id.
func (r *PgxFinancialEntryRepository) CreateFinancialEntry(ctx context.Context, entry domain.FinancialEntry) (int64, error) {
	return createFinancialEntry(ctx, r.Pool, entry)
}

// CreateFinancialEntryTx is CreateFinancialEntry within an open transaction.
func (r *PgxFinancialEntryRepository) CreateFinancialEntryTx(ctx context.Context, tx pgx.Tx, entry domain.FinancialEntry) (int64, error) {
	return createFinancialEntry(ctx, tx, entry)
}

// rowQuerier is the common surface of pgxpool.Pool and pgx.Tx used here.
type rowQuerier interface {
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

func createFinancialEntry(ctx context.Context, q rowQuerier, entry domain.FinancialEntry) (int64, error) {
	var entryID int64
	err := q.QueryRow(ctx, insertFinancialEntryQuery,
		entry.TenantID,
		entry.EntryType,
		entry.Description,
		entry.Amount,
		entry.IssueDate,
		entry.DueDate,
		entry.Status,
		entry.CategoryID,
		entry.CounterpartID,
		entry.FinancialAccountID,
	).Scan(&entryID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert financial entry", err)
	}
	return entryID, nil
}

// FindFinancialEntryByID retrieves a financial entry by its identifier.
func (r *PgxFinancialEntryRepository) FindFinancialEntryByID(ctx context.Context, entryID int64) (*domain.FinancialEntry, error) {
	query := `
		SELECT entry_id, tenant_id, entry_type, description, amount, issue_date,
		       due_date, status, category_id, counterpart_id, financial_account_id,
		       created_at
		FROM financial_entries
		WHERE entry_id = $1;
	`
	var entry domain.FinancialEntry
	err := r.Pool.QueryRow(ctx, query, entryID).Scan(
		&entry.EntryID,
		&entry.TenantID,
		&entry.EntryType,
		&entry.Description,
		&entry.Amount,
		&entry.IssueDate,
		&entry.DueDate,
		&entry.Status,
		&entry.CategoryID,
		&entry.CounterpartID,
		&entry.FinancialAccountID,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find financial entry "+strconv.FormatInt(entryID, 10), err)
	}

	return &entry, nil
}
