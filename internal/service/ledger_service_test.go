package service

import (
	"bytes"
	"context"
	"errors"
	"io"
	"testing"
	"time"

	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/eventbus"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/mocks"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type serviceDeps struct {
	repo         *mocks.MockRepository
	csvProcessor *mocks.MockCSVProcessorInterface
	bus          *mocks.MockEventBus
	live         *ledger.SharedEngine
}

func newTestService(t *testing.T) (LedgerService, serviceDeps) {
	deps := serviceDeps{
		repo:         mocks.NewMockRepository(t),
		csvProcessor: mocks.NewMockCSVProcessorInterface(t),
		bus:          mocks.NewMockEventBus(t),
		live:         ledger.NewSharedEngine(),
	}
	svc := NewLedgerService(deps.repo, deps.csvProcessor, deps.bus, deps.live, logger.NewNop())
	return svc, deps
}

func TestNewLedgerService(t *testing.T) {
	svc, _ := newTestService(t)

	assert.NotNil(t, svc)
	assert.Implements(t, (*LedgerService)(nil), svc)
}

func TestUploadStatement_Success(t *testing.T) {
	svc, deps := newTestService(t)

	ctx := context.Background()
	reader := bytes.NewReader([]byte("type,client,tx,amount\n"))
	processed := make(chan string, 1)

	deps.repo.EXPECT().
		CreateRun(mock.Anything, mock.AnythingOfType("string")).
		Return(nil).
		Once()

	deps.csvProcessor.EXPECT().
		ProcessStream(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(ctx context.Context, runID string, _ io.Reader) {
			processed <- runID
		}).
		Return(nil).
		Once()

	runID, err := svc.UploadStatement(ctx, reader)

	require.NoError(t, err)
	assert.Len(t, runID, 36)

	select {
	case got := <-processed:
		assert.Equal(t, runID, got)
	case <-time.After(time.Second):
		t.Fatal("processing never started")
	}
}

func TestUploadStatement_CarriesTraceID(t *testing.T) {
	svc, deps := newTestService(t)

	ctx := logger.WithTraceID(context.Background(), "trace-abc")
	traces := make(chan string, 1)

	deps.repo.EXPECT().
		CreateRun(mock.Anything, mock.AnythingOfType("string")).
		Return(nil).
		Once()

	deps.csvProcessor.EXPECT().
		ProcessStream(mock.Anything, mock.AnythingOfType("string"), mock.Anything).
		Run(func(ctx context.Context, _ string, _ io.Reader) {
			traces <- logger.GetTraceID(ctx)
		}).
		Return(errors.New("boom")).
		Once()

	_, err := svc.UploadStatement(ctx, bytes.NewReader(nil))
	require.NoError(t, err)

	select {
	case got := <-traces:
		assert.Equal(t, "trace-abc", got)
	case <-time.After(time.Second):
		t.Fatal("processing never started")
	}
}

func TestUploadStatement_CreateRunError(t *testing.T) {
	svc, deps := newTestService(t)

	expectedError := errors.New("database error")

	deps.repo.EXPECT().
		CreateRun(mock.Anything, mock.AnythingOfType("string")).
		Return(expectedError).
		Once()

	runID, err := svc.UploadStatement(context.Background(), bytes.NewReader(nil))

	assert.Equal(t, expectedError, err)
	assert.Empty(t, runID)
}

func TestGetRunStatus_Success(t *testing.T) {
	svc, deps := newTestService(t)

	runID := "run-123"
	completedAt := time.Now()
	expected := &domain.Run{
		ID:            runID,
		Status:        domain.RunStatusCompleted,
		ProcessedRows: 12,
		RejectedRows:  1,
		CreatedAt:     completedAt.Add(-time.Second),
		CompletedAt:   &completedAt,
	}

	deps.repo.EXPECT().
		GetRun(mock.MatchedBy(func(ctx context.Context) bool {
			return logger.GetRunID(ctx) == runID
		}), runID).
		Return(expected, nil).
		Once()

	run, err := svc.GetRunStatus(context.Background(), runID)

	require.NoError(t, err)
	assert.Equal(t, expected, run)
}

func TestGetRunStatus_NotFound(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.EXPECT().
		GetRun(mock.Anything, "missing").
		Return(nil, domain.ErrRunNotFound).
		Once()

	run, err := svc.GetRunStatus(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrRunNotFound)
	assert.Nil(t, run)
}

func TestGetAccounts_Success(t *testing.T) {
	svc, deps := newTestService(t)

	expected := []ledger.AccountData{
		{Client: 1, Available: decimal.RequireFromString("1.5"), Held: decimal.Zero, Total: decimal.RequireFromString("1.5")},
		{Client: 2, Available: decimal.Zero, Held: decimal.Zero, Total: decimal.Zero, Locked: true},
	}

	deps.repo.EXPECT().
		GetAccounts(mock.Anything, "run-1").
		Return(expected, nil).
		Once()

	accounts, err := svc.GetAccounts(context.Background(), "run-1")

	require.NoError(t, err)
	assert.Equal(t, expected, accounts)
}

func TestGetAccounts_Error(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.EXPECT().
		GetAccounts(mock.Anything, "run-1").
		Return(nil, domain.ErrRunNotFound).
		Once()

	accounts, err := svc.GetAccounts(context.Background(), "run-1")

	assert.ErrorIs(t, err, domain.ErrRunNotFound)
	assert.Nil(t, accounts)
}

func TestGetIssues_WithReason(t *testing.T) {
	svc, deps := newTestService(t)

	reason := "insufficient_funds"
	expected := []domain.Issue{
		{TransactionID: 4, Client: 2, Amount: decimal.RequireFromString("-3"), Reason: reason},
	}

	deps.repo.EXPECT().
		GetIssues(mock.Anything, "run-1", 1, 10, &reason).
		Return(expected, 1, nil).
		Once()

	issues, total, err := svc.GetIssues(context.Background(), "run-1", 1, 10, &reason)

	require.NoError(t, err)
	assert.Equal(t, expected, issues)
	assert.Equal(t, 1, total)
}

func TestGetIssues_WithNilReason(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.EXPECT().
		GetIssues(mock.Anything, "run-1", 2, 5, (*string)(nil)).
		Return([]domain.Issue{}, 7, nil).
		Once()

	issues, total, err := svc.GetIssues(context.Background(), "run-1", 2, 5, nil)

	require.NoError(t, err)
	assert.Empty(t, issues)
	assert.Equal(t, 7, total)
}

func TestGetIssues_Error(t *testing.T) {
	svc, deps := newTestService(t)

	deps.repo.EXPECT().
		GetIssues(mock.Anything, "run-1", 1, 10, (*string)(nil)).
		Return(nil, 0, domain.ErrRunNotFound).
		Once()

	issues, total, err := svc.GetIssues(context.Background(), "run-1", 1, 10, nil)

	assert.ErrorIs(t, err, domain.ErrRunNotFound)
	assert.Nil(t, issues)
	assert.Zero(t, total)
}

func TestSubmitAction_Publishes(t *testing.T) {
	svc, deps := newTestService(t)

	amount := decimal.RequireFromString("2.5")
	action := ledger.Action{TransactionID: 9, ClientID: 3, Kind: ledger.ActionDeposit, Amount: &amount}

	deps.bus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e eventbus.Event) bool {
			payload, ok := e.Payload.(eventbus.ActionEvent)
			return ok && e.Type == eventbus.EventTypeAction && payload.Action.TransactionID == 9
		})).
		Return(nil).
		Once()

	eventID, err := svc.SubmitAction(context.Background(), action)

	require.NoError(t, err)
	assert.Len(t, eventID, 36)
}

func TestSubmitAction_TraceIDIsEventID(t *testing.T) {
	svc, deps := newTestService(t)

	ctx := logger.WithTraceID(context.Background(), "req-42")
	action := ledger.Action{TransactionID: 1, ClientID: 1, Kind: ledger.ActionDispute}

	deps.bus.EXPECT().
		Publish(mock.Anything, mock.MatchedBy(func(e eventbus.Event) bool {
			return e.ID == "req-42"
		})).
		Return(nil).
		Once()

	eventID, err := svc.SubmitAction(ctx, action)

	require.NoError(t, err)
	assert.Equal(t, "req-42", eventID)
}

func TestSubmitAction_BusFull(t *testing.T) {
	svc, deps := newTestService(t)

	deps.bus.EXPECT().
		Publish(mock.Anything, mock.Anything).
		Return(eventbus.ErrBusFull).
		Once()

	eventID, err := svc.SubmitAction(context.Background(), ledger.Action{Kind: ledger.ActionResolve})

	assert.ErrorIs(t, err, eventbus.ErrBusFull)
	assert.Empty(t, eventID)
}

func TestLiveAccounts(t *testing.T) {
	svc, deps := newTestService(t)

	amount := decimal.RequireFromString("10")
	require.NoError(t, deps.live.Process(context.Background(), ledger.Action{
		TransactionID: 1, ClientID: 7, Kind: ledger.ActionDeposit, Amount: &amount,
	}))

	accounts := svc.LiveAccounts(context.Background())

	require.Len(t, accounts, 1)
	assert.Equal(t, ledger.ClientID(7), accounts[0].Client)
	assert.Equal(t, "10", accounts[0].Available.String())
}
