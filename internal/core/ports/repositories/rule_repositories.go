package repositories

import (
	"context"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	"github.com/jackc/pgx/v5"
)

// RuleReader defines read operations for accounting rule configuration.
// Rules are owned by a separate rule-management feature; this core never
// writes them.
type RuleReader interface {
	// FindActiveRules returns every rule matching tenant + origin + category
	// where both the automatic and active flags are set, ordered by rule id.
	FindActiveRules(ctx context.Context, tenantID int64, origin domain.Origin, categoryID int64) ([]domain.AccountingRule, error)

	// FindActiveRulesTx is FindActiveRules scoped to an open transaction, for
	// callers that resolve rules as part of a larger atomic unit.
	FindActiveRulesTx(ctx context.Context, tx pgx.Tx, tenantID int64, origin domain.Origin, categoryID int64) ([]domain.AccountingRule, error)
}
