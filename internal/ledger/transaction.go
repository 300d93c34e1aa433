package ledger

// StateKind tags the variant held by a TransactionState.
type StateKind int

const (
	Succeeded StateKind = iota
	Failed
	Disputed
	Cancelled
)

func (k StateKind) String() string {
	switch k {
	case Succeeded:
		return "succeeded"
	case Failed:
		return "failed"
	case Disputed:
		return "disputed"
	case Cancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// TransactionState is the outcome of the last operation on a transaction.
// Reason is only set when Kind is Failed and holds one of the account errors.
type TransactionState struct {
	Kind   StateKind
	Reason error
}

func SucceededState() TransactionState { return TransactionState{Kind: Succeeded} }

func FailedState(reason error) TransactionState {
	return TransactionState{Kind: Failed, Reason: reason}
}

func DisputedState() TransactionState { return TransactionState{Kind: Disputed} }

func CancelledState() TransactionState { return TransactionState{Kind: Cancelled} }

func (s TransactionState) String() string {
	if s.Kind == Failed && s.Reason != nil {
		return "failed(" + FailureReason(s.Reason) + ")"
	}
	return s.Kind.String()
}

// Transaction is the record left by a deposit or withdrawal. Withdrawals
// store the negated amount, so a positive Amount marks a deposit.
type Transaction struct {
	ID     TransactionID
	Client ClientID
	Amount Amount
	State  TransactionState
}

// stateFrom maps the result of an account operation onto a transaction state.
func stateFrom(err error, onSuccess TransactionState) TransactionState {
	if err != nil {
		return FailedState(err)
	}
	return onSuccess
}
