package pgsql

import (
	"context"
	"errors"
	"strconv"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxLedgerRepository struct {
	BaseRepository
}

// newPgxLedgerRepository creates a new repository for ledger entries and lines.
func newPgxLedgerRepository(pool *pgxpool.Pool) portsrepo.LedgerRepositoryWithTx {
	return &PgxLedgerRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.LedgerRepositoryWithTx = (*PgxLedgerRepository)(nil)

// InsertLedgerEntryTx inserts the ledger header. A uniqueness violation on
// (tenant_id, financial_entry_id) means another posting for the same entry
// committed first; that is surfaced as ErrConflict so the caller can take the
// idempotent path.
func (r *PgxLedgerRepository) InsertLedgerEntryTx(ctx context.Context, tx pgx.Tx, entry domain.LedgerEntry) (int64, error) {
	query := `
		INSERT INTO ledger_entries (
			tenant_id, posting_date, history, counterpart_id, financial_account_id,
			total_debits, total_credits, financial_entry_id
		)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING ledger_entry_id;
	`
	var ledgerEntryID int64
	err := tx.QueryRow(ctx, query,
		entry.TenantID,
		entry.PostingDate,
		entry.History,
		entry.CounterpartID,
		entry.FinancialAccountID,
		entry.TotalDebits,
		entry.TotalCredits,
		entry.FinancialEntryID,
	).Scan(&ledgerEntryID)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == "23505" { // unique_violation
			return 0, apperrors.NewConflictError("ledger entry for financial entry " +
				strconv.FormatInt(entry.FinancialEntryID, 10) + " already exists")
		}
		return 0, apperrors.NewAppError(500, "failed to insert ledger entry", err)
	}
	return ledgerEntryID, nil
}

// InsertLedgerLineTx inserts one ledger line and returns its new id.
func (r *PgxLedgerRepository) InsertLedgerLineTx(ctx context.Context, tx pgx.Tx, line domain.LedgerLine) (int64, error) {
	query := `
		INSERT INTO ledger_lines (ledger_entry_id, account_id, debit, credit, history)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING line_id;
	`
	var lineID int64
	err := tx.QueryRow(ctx, query,
		line.LedgerEntryID,
		line.AccountID,
		line.Debit,
		line.Credit,
		line.History,
	).Scan(&lineID)
	if err != nil {
		return 0, apperrors.NewAppError(500, "failed to insert ledger line", err)
	}
	return lineID, nil
}

// FindLedgerEntryByFinancialEntryID retrieves the posting keyed by
// (tenant, financial entry id), with its lines.
func (r *PgxLedgerRepository) FindLedgerEntryByFinancialEntryID(ctx context.Context, tenantID, financialEntryID int64) (*domain.LedgerEntry, error) {
	query := `
		SELECT ledger_entry_id, tenant_id, posting_date, history, counterpart_id,
		       financial_account_id, total_debits, total_credits, financial_entry_id,
		       created_at
		FROM ledger_entries
		WHERE tenant_id = $1 AND financial_entry_id = $2;
	`
	var entry domain.LedgerEntry
	err := r.Pool.QueryRow(ctx, query, tenantID, financialEntryID).Scan(
		&entry.LedgerEntryID,
		&entry.TenantID,
		&entry.PostingDate,
		&entry.History,
		&entry.CounterpartID,
		&entry.FinancialAccountID,
		&entry.TotalDebits,
		&entry.TotalCredits,
		&entry.FinancialEntryID,
		&entry.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperrors.ErrNotFound
		}
		return nil, apperrors.NewAppError(500, "failed to find ledger entry for financial entry "+
			strconv.FormatInt(financialEntryID, 10), err)
	}

	lines, err := r.FindLedgerLinesByEntryID(ctx, entry.LedgerEntryID)
	if err != nil {
		return nil, err
	}
	entry.Lines = lines

	return &entry, nil
}

// FindLedgerLinesByEntryID retrieves the lines of a ledger entry ordered by
// line id.
func (r *PgxLedgerRepository) FindLedgerLinesByEntryID(ctx context.Context, ledgerEntryID int64) ([]domain.LedgerLine, error) {
	query := `
		SELECT line_id, ledger_entry_id, account_id, debit, credit, history
		FROM ledger_lines
		WHERE ledger_entry_id = $1
		ORDER BY line_id ASC;
	`
	rows, err := r.Pool.Query(ctx, query, ledgerEntryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query ledger lines for entry "+
			strconv.FormatInt(ledgerEntryID, 10), err)
	}
	defer rows.Close()

	lines := []domain.LedgerLine{}
	for rows.Next() {
		var line domain.LedgerLine
		if err := rows.Scan(
			&line.LineID,
			&line.LedgerEntryID,
			&line.AccountID,
			&line.Debit,
			&line.Credit,
			&line.History,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan ledger line row", err)
		}
		lines = append(lines, line)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating ledger line rows", err)
	}

	return lines, nil
}
