package domain

import (
	"time"

	"github.com/grachmannico95/ledger-engine/internal/ledger"
)

type RunStatus string

const (
	RunStatusProcessing RunStatus = "processing"
	RunStatusCompleted  RunStatus = "completed"
	RunStatusFailed     RunStatus = "failed"
)

// Run is one uploaded action log replayed into a fresh ledger.
type Run struct {
	ID            string     `json:"id"`
	Status        RunStatus  `json:"status"`
	ProcessedRows int        `json:"processed_rows"`
	RejectedRows  int        `json:"rejected_rows"`
	Error         string     `json:"error,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	CompletedAt   *time.Time `json:"completed_at,omitempty"`
}

// Issue is a transaction whose last operation failed.
type Issue struct {
	TransactionID ledger.TransactionID `json:"tx"`
	Client        ledger.ClientID      `json:"client"`
	Amount        ledger.Amount        `json:"amount"`
	Reason        string               `json:"reason"`
}

func NewIssue(tx ledger.Transaction) Issue {
	return Issue{
		TransactionID: tx.ID,
		Client:        tx.Client,
		Amount:        tx.Amount,
		Reason:        ledger.FailureReason(tx.State.Reason),
	}
}

// Snapshot is the final state of a run.
type Snapshot struct {
	Accounts []ledger.AccountData
	Issues   []Issue
}

func IsValidReason(reason string) bool {
	switch reason {
	case "locked", "insufficient_funds", "negative_amount":
		return true
	default:
		return false
	}
}
