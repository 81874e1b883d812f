package pgsql

import (
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	"github.com/jackc/pgx/v5/pgxpool"
)

func NewRepositoryProvider(dbPool *pgxpool.Pool) portsrepo.RepositoryProvider {
	return portsrepo.RepositoryProvider{
		RuleRepo:           newPgxRuleRepository(dbPool),
		FinancialEntryRepo: newPgxFinancialEntryRepository(dbPool),
		LedgerRepo:         newPgxLedgerRepository(dbPool),
	}
}
