package services

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SscSPs/contabil_engine/internal/apperrors"
	"github.com/SscSPs/contabil_engine/internal/core/domain"
	portsrepo "github.com/SscSPs/contabil_engine/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/contabil_engine/internal/core/ports/services"
	"github.com/SscSPs/contabil_engine/internal/middleware"
)

// ruleResolverService resolves accounting rules. It has no side effects and
// holds no state beyond its repository.
type ruleResolverService struct {
	ruleRepo portsrepo.RuleReader
}

// NewRuleResolverService creates a new RuleResolverSvc.
func NewRuleResolverService(ruleRepo portsrepo.RuleReader) portssvc.RuleResolverSvc {
	return &ruleResolverService{ruleRepo: ruleRepo}
}

var _ portssvc.RuleResolverSvc = (*ruleResolverService)(nil)

// Resolve finds the winning accounting rule for the tenant, origin and
// category. Several rules may match; the one with the lowest id wins so the
// result is stable regardless of insertion order.
func (s *ruleResolverService) Resolve(ctx context.Context, tenantID int64, origin domain.Origin, categoryID int64) (*domain.AccountingRule, error) {
	logger := middleware.GetLoggerFromCtx(ctx)

	if !origin.IsValid() {
		return nil, fmt.Errorf("%w: unknown origin %q", apperrors.ErrValidation, string(origin))
	}

	rules, err := s.ruleRepo.FindActiveRules(ctx, tenantID, origin, categoryID)
	if err != nil {
		logger.Error("Failed to query accounting rules",
			slog.Int64("tenant_id", tenantID),
			slog.String("origin", string(origin)),
			slog.Int64("category_id", categoryID),
			slog.String("error", err.Error()))
		return nil, err
	}

	rule := domain.SelectRule(rules)
	if rule == nil {
		return nil, fmt.Errorf("%w: tenant %d, origin %s, category %d",
			apperrors.ErrRuleNotFound, tenantID, origin, categoryID)
	}

	logger.Debug("Resolved accounting rule",
		slog.Int64("rule_id", rule.RuleID),
		slog.Int64("tenant_id", tenantID),
		slog.String("origin", string(origin)),
		slog.Int64("category_id", categoryID))

	return rule, nil
}
