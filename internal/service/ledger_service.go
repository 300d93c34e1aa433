package service

import (
	"context"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/eventbus"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
)

type LedgerService interface {
	// Batch runs
	UploadStatement(ctx context.Context, reader io.Reader) (string, error)
	GetRunStatus(ctx context.Context, runID string) (*domain.Run, error)
	GetAccounts(ctx context.Context, runID string) ([]ledger.AccountData, error)
	GetIssues(ctx context.Context, runID string, page, perPage int, reason *string) ([]domain.Issue, int, error)

	// Live ledger
	SubmitAction(ctx context.Context, action ledger.Action) (string, error)
	LiveAccounts(ctx context.Context) []ledger.AccountData
}

type ledgerService struct {
	repo         domain.Repository
	csvProcessor CSVProcessorInterface
	bus          eventbus.EventBus
	live         ledger.Processor
	logger       *logger.Logger
}

func NewLedgerService(
	repo domain.Repository,
	csvProcessor CSVProcessorInterface,
	bus eventbus.EventBus,
	live ledger.Processor,
	log *logger.Logger,
) LedgerService {
	return &ledgerService{
		repo:         repo,
		csvProcessor: csvProcessor,
		bus:          bus,
		live:         live,
		logger:       log,
	}
}

func (s *ledgerService) UploadStatement(ctx context.Context, reader io.Reader) (string, error) {
	runID := uuid.New().String()

	ctx = logger.WithRunID(ctx, runID)

	s.logger.Info(ctx, "Creating run record")

	err := s.repo.CreateRun(ctx, runID)
	if err != nil {
		s.logger.Error(ctx, "Failed to create run",
			"error", err,
		)
		return "", err
	}

	go func() {
		processCtx := logger.WithRunID(context.Background(), runID)
		if traceID := logger.GetTraceID(ctx); traceID != "" {
			processCtx = logger.WithTraceID(processCtx, traceID)
		}

		err := s.csvProcessor.ProcessStream(processCtx, runID, reader)
		if err != nil {
			s.logger.Error(processCtx, "Run failed",
				"error", err,
			)
		}
	}()

	s.logger.Info(ctx, "Run created, processing started")

	return runID, nil
}

func (s *ledgerService) GetRunStatus(ctx context.Context, runID string) (*domain.Run, error) {
	ctx = logger.WithRunID(ctx, runID)

	s.logger.Debug(ctx, "Getting run status")

	run, err := s.repo.GetRun(ctx, runID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get run",
			"error", err,
		)
		return nil, err
	}

	return run, nil
}

func (s *ledgerService) GetAccounts(ctx context.Context, runID string) ([]ledger.AccountData, error) {
	ctx = logger.WithRunID(ctx, runID)

	s.logger.Debug(ctx, "Getting accounts")

	accounts, err := s.repo.GetAccounts(ctx, runID)
	if err != nil {
		s.logger.Error(ctx, "Failed to get accounts",
			"error", err,
		)
		return nil, err
	}

	s.logger.Debug(ctx, "Accounts retrieved",
		"count", len(accounts),
	)

	return accounts, nil
}

func (s *ledgerService) GetIssues(ctx context.Context, runID string, page, perPage int, reason *string) ([]domain.Issue, int, error) {
	ctx = logger.WithRunID(ctx, runID)

	s.logger.Debug(ctx, "Getting issues",
		"page", page,
		"per_page", perPage,
		"reason", reason,
	)

	issues, total, err := s.repo.GetIssues(ctx, runID, page, perPage, reason)
	if err != nil {
		s.logger.Error(ctx, "Failed to get issues",
			"error", err,
		)
		return nil, 0, err
	}

	s.logger.Debug(ctx, "Issues retrieved",
		"total", total,
		"returned", len(issues),
	)

	return issues, total, nil
}

// SubmitAction queues an action for the live ledger and returns its event id.
// The event id doubles as the idempotency key when the caller provides one
// through the trace id.
func (s *ledgerService) SubmitAction(ctx context.Context, action ledger.Action) (string, error) {
	eventID := logger.GetTraceID(ctx)
	if eventID == "" {
		eventID = uuid.New().String()
	}

	event := eventbus.Event{
		ID:        eventID,
		Type:      eventbus.EventTypeAction,
		Payload:   eventbus.ActionEvent{Action: action, Source: "http"},
		Timestamp: time.Now(),
	}

	err := s.bus.Publish(ctx, event)
	if err != nil {
		s.logger.Error(ctx, "Failed to publish action",
			"event_id", eventID,
			"type", action.Kind,
			"error", err,
		)
		return "", err
	}

	s.logger.Debug(ctx, "Action queued",
		"event_id", eventID,
		"type", action.Kind,
		"client", action.ClientID,
		"tx", action.TransactionID,
	)

	return eventID, nil
}

func (s *ledgerService) LiveAccounts(ctx context.Context) []ledger.AccountData {
	accounts := s.live.Accounts()

	s.logger.Debug(ctx, "Live accounts retrieved",
		"count", len(accounts),
	)

	return accounts
}
