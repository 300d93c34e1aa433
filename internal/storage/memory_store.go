package storage

import (
	"context"
	"slices"
	"sync"
	"time"

	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
)

type MemoryStore struct {
	runs            map[string]*domain.Run
	snapshots       map[string]domain.Snapshot
	processedEvents map[string]bool
	mu              sync.RWMutex
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		runs:            make(map[string]*domain.Run),
		snapshots:       make(map[string]domain.Snapshot),
		processedEvents: make(map[string]bool),
	}
}

func (s *MemoryStore) CreateRun(ctx context.Context, runID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.runs[runID] = &domain.Run{
		ID:        runID,
		Status:    domain.RunStatusProcessing,
		CreatedAt: time.Now(),
	}

	return nil
}

// GetRun returns a copy so callers never race with the processing goroutine.
func (s *MemoryStore) GetRun(ctx context.Context, runID string) (*domain.Run, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	run, exists := s.runs[runID]
	if !exists {
		return nil, domain.ErrRunNotFound
	}

	copied := *run
	return &copied, nil
}

func (s *MemoryStore) UpdateRunStatus(ctx context.Context, runID string, status domain.RunStatus, reason string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[runID]
	if !exists {
		return domain.ErrRunNotFound
	}

	run.Status = status
	run.Error = reason
	if status == domain.RunStatusCompleted || status == domain.RunStatusFailed {
		now := time.Now()
		run.CompletedAt = &now
	}

	return nil
}

func (s *MemoryStore) IncrementProcessedRows(ctx context.Context, runID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[runID]
	if !exists {
		return domain.ErrRunNotFound
	}

	run.ProcessedRows += n

	return nil
}

func (s *MemoryStore) IncrementRejectedRows(ctx context.Context, runID string, n int) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	run, exists := s.runs[runID]
	if !exists {
		return domain.ErrRunNotFound
	}

	run.RejectedRows += n

	return nil
}

func (s *MemoryStore) SaveSnapshot(ctx context.Context, runID string, snapshot domain.Snapshot) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.runs[runID]; !exists {
		return domain.ErrRunNotFound
	}

	issues := slices.Clone(snapshot.Issues)
	slices.SortFunc(issues, func(a, b domain.Issue) int {
		return int(a.TransactionID) - int(b.TransactionID)
	})

	s.snapshots[runID] = domain.Snapshot{
		Accounts: slices.Clone(snapshot.Accounts),
		Issues:   issues,
	}

	return nil
}

func (s *MemoryStore) GetAccounts(ctx context.Context, runID string) ([]ledger.AccountData, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.runs[runID]; !exists {
		return nil, domain.ErrRunNotFound
	}

	return slices.Clone(s.snapshots[runID].Accounts), nil
}

func (s *MemoryStore) GetIssues(ctx context.Context, runID string, page, perPage int, reason *string) ([]domain.Issue, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if _, exists := s.runs[runID]; !exists {
		return nil, 0, domain.ErrRunNotFound
	}

	var filtered []domain.Issue
	for _, issue := range s.snapshots[runID].Issues {
		if reason != nil && issue.Reason != *reason {
			continue
		}
		filtered = append(filtered, issue)
	}

	total := len(filtered)

	if page < 1 {
		page = 1
	}
	if perPage < 1 {
		perPage = 10
	}

	// Compare page counts before multiplying so huge pages cannot overflow.
	pages := total / perPage
	if total%perPage != 0 {
		pages++
	}
	if page > pages {
		return []domain.Issue{}, total, nil
	}

	start := (page - 1) * perPage
	end := total
	if perPage < total-start {
		end = start + perPage
	}

	return filtered[start:end], total, nil
}

func (s *MemoryStore) IsEventProcessed(ctx context.Context, eventID string) (bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.processedEvents[eventID], nil
}

func (s *MemoryStore) MarkEventProcessed(ctx context.Context, eventID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.processedEvents[eventID] {
		return domain.ErrDuplicateEvent
	}
	s.processedEvents[eventID] = true

	return nil
}
