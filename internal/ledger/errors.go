package ledger

import (
	"errors"
	"fmt"
)

// Account arithmetic errors. They are recorded on the transaction as a
// Failed state and never returned from Apply.
var (
	ErrLocked            = errors.New("the account is locked")
	ErrInsufficientFunds = errors.New("there are not enough funds")
	ErrNegativeAmount    = errors.New("cannot use a negative amount")
)

// Structural errors returned from Apply. Match them with errors.Is against
// an *UpdateError.
var (
	ErrTransactionUsed    = errors.New("transaction id already used")
	ErrTransactionMissing = errors.New("transaction does not exist")
	ErrAccountMissing     = errors.New("account does not exist")
	ErrClientMismatch     = errors.New("client does not own transaction")
	ErrNoAmount           = errors.New("amount is required")
)

type UpdateErrorKind int

const (
	TransactionUsed UpdateErrorKind = iota + 1
	TransactionMissing
	AccountMissing
	ClientMismatch
	NoAmount
)

func (k UpdateErrorKind) String() string {
	switch k {
	case TransactionUsed:
		return "transaction_used"
	case TransactionMissing:
		return "transaction_missing"
	case AccountMissing:
		return "account_missing"
	case ClientMismatch:
		return "client_mismatch"
	case NoAmount:
		return "no_amount"
	default:
		return "unknown"
	}
}

func (k UpdateErrorKind) sentinel() error {
	switch k {
	case TransactionUsed:
		return ErrTransactionUsed
	case TransactionMissing:
		return ErrTransactionMissing
	case AccountMissing:
		return ErrAccountMissing
	case ClientMismatch:
		return ErrClientMismatch
	case NoAmount:
		return ErrNoAmount
	default:
		return nil
	}
}

// UpdateError reports an action that does not fit the current state: a reused
// id, a reference to an unknown transaction, or a client that does not own
// the referenced transaction.
type UpdateError struct {
	Kind          UpdateErrorKind
	TransactionID TransactionID
	// Client is the client named by the action.
	Client ClientID
	// Owner is the client recorded on the transaction, set for ClientMismatch.
	Owner ClientID
}

func (e *UpdateError) Error() string {
	switch e.Kind {
	case TransactionUsed:
		return fmt.Sprintf("deposit or withdrawal reuses transaction id %s", e.TransactionID)
	case TransactionMissing:
		return fmt.Sprintf("transaction %s does not exist", e.TransactionID)
	case AccountMissing:
		return fmt.Sprintf("account %s does not exist", e.Client)
	case ClientMismatch:
		return fmt.Sprintf("action client %s does not match transaction %s client %s", e.Client, e.TransactionID, e.Owner)
	case NoAmount:
		return fmt.Sprintf("transaction %s has no amount", e.TransactionID)
	default:
		return "unknown update error"
	}
}

func (e *UpdateError) Unwrap() error {
	return e.Kind.sentinel()
}

// FailureReason returns the short label of an account error, used in reports
// and metrics.
func FailureReason(err error) string {
	switch {
	case errors.Is(err, ErrLocked):
		return "locked"
	case errors.Is(err, ErrInsufficientFunds):
		return "insufficient_funds"
	case errors.Is(err, ErrNegativeAmount):
		return "negative_amount"
	default:
		return "unknown"
	}
}
