package ledger

import (
	"fmt"
	"strings"
)

type ActionKind string

const (
	ActionDeposit    ActionKind = "deposit"
	ActionWithdrawal ActionKind = "withdrawal"
	ActionDispute    ActionKind = "dispute"
	ActionResolve    ActionKind = "resolve"
	ActionChargeback ActionKind = "chargeback"
)

// ParseActionKind accepts any casing and surrounding whitespace.
func ParseActionKind(s string) (ActionKind, error) {
	kind := ActionKind(strings.ToLower(strings.TrimSpace(s)))
	switch kind {
	case ActionDeposit, ActionWithdrawal, ActionDispute, ActionResolve, ActionChargeback:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid action type: %q", s)
	}
}

// Action is one input record. Amount is only read for deposits and
// withdrawals.
type Action struct {
	TransactionID TransactionID
	ClientID      ClientID
	Kind          ActionKind
	Amount        *Amount
}
