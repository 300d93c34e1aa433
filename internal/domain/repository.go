package domain

import (
	"context"

	"github.com/grachmannico95/ledger-engine/internal/ledger"
)

type Repository interface {
	// Run management
	CreateRun(ctx context.Context, runID string) error
	GetRun(ctx context.Context, runID string) (*Run, error)
	UpdateRunStatus(ctx context.Context, runID string, status RunStatus, reason string) error
	IncrementProcessedRows(ctx context.Context, runID string, n int) error
	IncrementRejectedRows(ctx context.Context, runID string, n int) error

	// Snapshot operations
	SaveSnapshot(ctx context.Context, runID string, snapshot Snapshot) error
	GetAccounts(ctx context.Context, runID string) ([]ledger.AccountData, error)
	GetIssues(ctx context.Context, runID string, page, perPage int, reason *string) ([]Issue, int, error)

	// Idempotency tracking
	IsEventProcessed(ctx context.Context, eventID string) (bool, error)
	MarkEventProcessed(ctx context.Context, eventID string) error
}
