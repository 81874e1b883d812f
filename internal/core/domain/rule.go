package domain

// Origin identifies the kind of financial event a rule or entry refers to.
type Origin string

const (
	OriginPayable         Origin = "payable"
	OriginReceivable      Origin = "receivable"
	OriginPaymentMade     Origin = "payment_made"
	OriginPaymentReceived Origin = "payment_received"
)

// IsValid reports whether the origin is one of the known kinds.
func (o Origin) IsValid() bool {
	switch o {
	case OriginPayable, OriginReceivable, OriginPaymentMade, OriginPaymentReceived:
		return true
	}
	return false
}

// AccountingRule maps (tenant, origin, category) to a debit/credit account
// pair. Rules are owned by a separate configuration feature; this core only
// reads them.
type AccountingRule struct {
	RuleID          int64   `json:"ruleID" db:"rule_id"`
	TenantID        int64   `json:"tenantID" db:"tenant_id"`
	Origin          Origin  `json:"origin" db:"origin"`
	Subtype         *string `json:"subtype,omitempty" db:"subtype"`
	CategoryID      int64   `json:"categoryID" db:"category_id"`
	DebitAccountID  int64   `json:"debitAccountID" db:"debit_account_id"`
	CreditAccountID int64   `json:"creditAccountID" db:"credit_account_id"`
	Automatic       bool    `json:"automatic" db:"automatic"`
	Active          bool    `json:"active" db:"active"`
	Description     string  `json:"description" db:"description"`
}

// SelectRule picks the winning rule from a candidate set: the one with the
// lowest identifier. Multiple rows may match a (tenant, origin, category)
// lookup; resolution must be deterministic regardless of insertion order.
// Returns nil when the set is empty.
func SelectRule(rules []AccountingRule) *AccountingRule {
	var winner *AccountingRule
	for i := range rules {
		if winner == nil || rules[i].RuleID < winner.RuleID {
			winner = &rules[i]
		}
	}
	return winner
}
