package pgsql

import (
	"context"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type PgxRuleRepository struct {
	BaseRepository
}

// newPgxRuleRepository creates a new repository for accounting rule lookups.
func newPgxRuleRepository(pool *pgxpool.Pool) portsrepo.RuleReader {
	return &PgxRuleRepository{
		BaseRepository: BaseRepository{Pool: pool},
	}
}

var _ portsrepo.RuleReader = (*PgxRuleRepository)(nil)

const activeRulesQuery = `
	SELECT rule_id, tenant_id, origin, subtype, category_id,
	       debit_account_id, credit_account_id, automatic, active, description
	FROM accounting_rules
	WHERE tenant_id = $1
	  AND origin = $2
	  AND category_id = $3
	  AND automatic = TRUE
	  AND active = TRUE
	ORDER BY rule_id ASC;
`

// FindActiveRules returns all automatic active rules matching the lookup key,
// ordered by rule id so resolution stays deterministic.
func (r *PgxRuleRepository) FindActiveRules(ctx context.Context, tenantID int64, origin domain.Origin, categoryID int64) ([]domain.AccountingRule, error) {
	rows, err := r.Pool.Query(ctx, activeRulesQuery, tenantID, origin, categoryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounting rules", err)
	}
	return collectRules(rows)
}

// FindActiveRulesTx is FindActiveRules within an open transaction.
func (r *PgxRuleRepository) FindActiveRulesTx(ctx context.Context, tx pgx.Tx, tenantID int64, origin domain.Origin, categoryID int64) ([]domain.AccountingRule, error) {
	rows, err := tx.Query(ctx, activeRulesQuery, tenantID, origin, categoryID)
	if err != nil {
		return nil, apperrors.NewAppError(500, "failed to query accounting rules", err)
	}
	return collectRules(rows)
}

func collectRules(rows pgx.Rows) ([]domain.AccountingRule, error) {
	defer rows.Close()

	rules := []domain.AccountingRule{}
	for rows.Next() {
		var rule domain.AccountingRule
		if err := rows.Scan(
			&rule.RuleID,
			&rule.TenantID,
			&rule.Origin,
			&rule.Subtype,
			&rule.CategoryID,
			&rule.DebitAccountID,
			&rule.CreditAccountID,
			&rule.Automatic,
			&rule.Active,
			&rule.Description,
		); err != nil {
			return nil, apperrors.NewAppError(500, "failed to scan accounting rule row", err)
		}
		rules = append(rules, rule)
	}

	if err := rows.Err(); err != nil {
		return nil, apperrors.NewAppError(500, "error iterating accounting rule rows", err)
	}

	return rules, nil
}
