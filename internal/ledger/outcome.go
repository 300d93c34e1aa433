package ledger

type OutcomeKind int

const (
	OutcomeCommitted OutcomeKind = iota
	OutcomeFailed
	OutcomeIgnored
)

// Outcome is what an accepted action did to the state. Reason holds the
// account error when Kind is OutcomeFailed.
type Outcome struct {
	Kind   OutcomeKind
	Reason error
}

func outcomeOf(err error) Outcome {
	if err != nil {
		return Outcome{Kind: OutcomeFailed, Reason: err}
	}
	return Outcome{Kind: OutcomeCommitted}
}

// String is the metrics label: committed, noop or failed_<reason>.
func (o Outcome) String() string {
	switch o.Kind {
	case OutcomeFailed:
		return "failed_" + FailureReason(o.Reason)
	case OutcomeIgnored:
		return "noop"
	default:
		return "committed"
	}
}
