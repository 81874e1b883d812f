package domain_test

import (
	"testing"
	"time"

	"github.com/SscSPs/contabil_engine/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSelectRule(t *testing.T) {
	t.Run("empty set returns nil", func(t *testing.T) {
		assert.Nil(t, domain.SelectRule(nil))
		assert.Nil(t, domain.SelectRule([]domain.AccountingRule{}))
	})

	t.Run("single rule wins", func(t *testing.T) {
		rules := []domain.AccountingRule{{RuleID: 9}}
		got := domain.SelectRule(rules)
		require.NotNil(t, got)
		assert.Equal(t, int64(9), got.RuleID)
	})

	t.Run("lowest id wins regardless of order", func(t *testing.T) {
		rules := []domain.AccountingRule{{RuleID: 30}, {RuleID: 3}, {RuleID: 12}}
		got := domain.SelectRule(rules)
		require.NotNil(t, got)
		assert.Equal(t, int64(3), got.RuleID)
	})
}

func TestBuildPosting(t *testing.T) {
	amount := decimal.NewFromFloat(320.75)
	entry := domain.FinancialEntry{
		EntryID:     7,
		TenantID:    1,
		EntryType:   domain.OriginPayable,
		Description: "server hosting",
		Amount:      amount,
		IssueDate:   time.Date(2026, 4, 1, 0, 0, 0, 0, time.UTC),
	}
	rule := domain.AccountingRule{
		RuleID:          5,
		DebitAccountID:  100,
		CreditAccountID: 200,
	}

	header, lines := domain.BuildPosting(entry, rule)

	assert.Equal(t, entry.TenantID, header.TenantID)
	assert.Equal(t, entry.EntryID, header.FinancialEntryID)
	assert.Equal(t, entry.IssueDate, header.PostingDate)
	assert.Equal(t, entry.Description, header.History)
	assert.True(t, header.TotalDebits.Equal(amount))
	assert.True(t, header.TotalCredits.Equal(amount))

	require.Len(t, lines, 2)
	debit, credit := lines[0], lines[1]
	assert.Equal(t, int64(100), debit.AccountID)
	assert.True(t, debit.Debit.Equal(amount))
	assert.True(t, debit.Credit.IsZero())
	assert.Equal(t, int64(200), credit.AccountID)
	assert.True(t, credit.Credit.Equal(amount))
	assert.True(t, credit.Debit.IsZero())

	// The two sides always balance.
	assert.True(t, debit.Debit.Equal(credit.Credit))
}

func TestOriginIsValid(t *testing.T) {
	assert.True(t, domain.OriginPayable.IsValid())
	assert.True(t, domain.OriginReceivable.IsValid())
	assert.True(t, domain.OriginPaymentMade.IsValid())
	assert.True(t, domain.OriginPaymentReceived.IsValid())
	assert.False(t, domain.Origin("").IsValid())
	assert.False(t, domain.Origin("invoice").IsValid())
}
