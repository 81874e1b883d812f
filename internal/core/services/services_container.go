package services

import (
	portsevents "github.com/SscSPs/contabil_engine/internal/core/ports/events"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_engine/internal/core/ports/services"
)

// NewServiceContainer wires the repositories into the application services.
// The publisher may be nil when no broker is configured.
func NewServiceContainer(repos portsrepo.RepositoryProvider, publisher portsevents.Publisher) *portssvc.ServiceContainer {
	ruleResolver := NewRuleResolverService(repos.RuleRepo)

	return &portssvc.ServiceContainer{
		RuleResolver:   ruleResolver,
		FinancialEntry: NewFinancialEntryService(repos.FinancialEntryRepo),
		LedgerPoster:   NewLedgerPosterService(repos.FinancialEntryRepo, repos.LedgerRepo, ruleResolver, publisher),
		Coordinator:    NewTransactionCoordinatorService(repos.RuleRepo, repos.FinancialEntryRepo, repos.LedgerRepo, publisher),
	}
}
