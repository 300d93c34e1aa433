package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"math"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/eventbus"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/mocks"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newTestHandler(t *testing.T) (*mocks.MockLedgerService, *echo.Echo) {
	svc := mocks.NewMockLedgerService(t)
	h := NewLedgerHandler(svc, logger.NewNop())

	e := echo.New()
	e.POST("/statements", h.Upload)
	e.GET("/statements/:id", h.GetRun)
	e.GET("/accounts", h.GetAccounts)
	e.GET("/transactions/issues", h.GetIssues)
	e.POST("/actions", h.SubmitAction)
	e.GET("/live/accounts", h.LiveAccounts)

	return svc, e
}

func serve(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func sampleAccounts() []ledger.AccountData {
	return []ledger.AccountData{
		{
			Client:    1,
			Available: decimal.RequireFromString("1.5"),
			Held:      decimal.Zero,
			Total:     decimal.RequireFromString("1.5"),
		},
	}
}

func TestUpload_Success(t *testing.T) {
	svc, e := newTestHandler(t)

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("file", "actions.csv")
	require.NoError(t, err)
	_, err = part.Write([]byte("type,client,tx,amount\ndeposit,1,1,1\n"))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	svc.EXPECT().
		UploadStatement(mock.Anything, mock.Anything).
		RunAndReturn(func(_ context.Context, r io.Reader) (string, error) {
			content, err := io.ReadAll(r)
			require.NoError(t, err)
			assert.Contains(t, string(content), "deposit,1,1,1")
			return "run-1", nil
		}).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/statements", body)
	req.Header.Set(echo.HeaderContentType, writer.FormDataContentType())
	rec := serve(e, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "run-1", resp["run_id"])
	assert.Equal(t, "processing", resp["status"])
}

func TestUpload_MissingFile(t *testing.T) {
	_, e := newTestHandler(t)

	rec := serve(e, httptest.NewRequest(http.MethodPost, "/statements", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetRun_NotFound(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		GetRunStatus(mock.Anything, "nope").
		Return(nil, domain.ErrRunNotFound).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/statements/nope", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetRun_Success(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		GetRunStatus(mock.Anything, "run-1").
		Return(&domain.Run{ID: "run-1", Status: domain.RunStatusCompleted, ProcessedRows: 3}, nil).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/statements/run-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var run domain.Run
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, domain.RunStatusCompleted, run.Status)
	assert.Equal(t, 3, run.ProcessedRows)
}

func TestGetAccounts_RequiresRunID(t *testing.T) {
	_, e := newTestHandler(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/accounts", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetAccounts_JSON(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		GetAccounts(mock.Anything, "run-1").
		Return(sampleAccounts(), nil).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/accounts?run_id=run-1", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"available":"1.5"`)
	assert.Contains(t, rec.Body.String(), `"locked":false`)
}

func TestGetAccounts_CSV(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		GetAccounts(mock.Anything, "run-1").
		Return(sampleAccounts(), nil).
		Once()

	req := httptest.NewRequest(http.MethodGet, "/accounts?run_id=run-1", nil)
	req.Header.Set(echo.HeaderAccept, "text/csv")
	rec := serve(e, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(rec.Header().Get(echo.HeaderContentType), "text/csv"))
	assert.Equal(t, "client,available,held,total,locked\n1,1.5,0,1.5,false\n", rec.Body.String())
}

func TestGetAccounts_RunNotFound(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		GetAccounts(mock.Anything, "run-9").
		Return(nil, domain.ErrRunNotFound).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/accounts?run_id=run-9", nil))

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetIssues_InvalidReason(t *testing.T) {
	_, e := newTestHandler(t)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/transactions/issues?run_id=run-1&reason=bored", nil))

	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestGetIssues_DefaultsPaging(t *testing.T) {
	svc, e := newTestHandler(t)

	reason := "locked"
	svc.EXPECT().
		GetIssues(mock.Anything, "run-1", 1, 10, &reason).
		Return([]domain.Issue{{TransactionID: 6, Client: 1, Amount: decimal.RequireFromString("5"), Reason: reason}}, 1, nil).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/transactions/issues?run_id=run-1&page=0&per_page=x&reason=locked", nil))

	assert.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Items []domain.Issue `json:"items"`
		Page  int            `json:"page"`
		Total int            `json:"total"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, 1, resp.Page)
	assert.Equal(t, 1, resp.Total)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, ledger.TransactionID(6), resp.Items[0].TransactionID)
}

func TestGetIssues_ClampsPerPage(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		GetIssues(mock.Anything, "run-1", math.MaxInt, 100, (*string)(nil)).
		Return([]domain.Issue{}, 3, nil).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet,
		"/transactions/issues?run_id=run-1&page=9223372036854775807&per_page=1000000", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"per_page":100`)
}

func TestSubmitAction_Accepted(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		SubmitAction(mock.Anything, mock.MatchedBy(func(a ledger.Action) bool {
			return a.Kind == ledger.ActionDeposit && a.ClientID == 2 && a.TransactionID == 11 &&
				a.Amount != nil && a.Amount.Equal(decimal.RequireFromString("3.25"))
		})).
		Return("evt-1", nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/actions",
		strings.NewReader(`{"type":"deposit","client":2,"tx":11,"amount":"3.25"}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
	assert.Contains(t, rec.Body.String(), "evt-1")
}

func TestSubmitAction_DisputeWithoutAmount(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		SubmitAction(mock.Anything, mock.MatchedBy(func(a ledger.Action) bool {
			return a.Kind == ledger.ActionDispute && a.Amount == nil
		})).
		Return("evt-2", nil).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/actions",
		strings.NewReader(`{"type":"dispute","client":2,"tx":11}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)

	assert.Equal(t, http.StatusAccepted, rec.Code)
}

func TestSubmitAction_BadInput(t *testing.T) {
	_, e := newTestHandler(t)

	for _, body := range []string{
		`{"type":"teleport","client":1,"tx":1}`,
		`{"type":"deposit","client":1,"tx":1,"amount":"lots"}`,
		`{"type":"deposit","client":-1,"tx":1}`,
	} {
		req := httptest.NewRequest(http.MethodPost, "/actions", strings.NewReader(body))
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
		rec := serve(e, req)

		assert.Equal(t, http.StatusBadRequest, rec.Code, body)
	}
}

func TestSubmitAction_BusFull(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		SubmitAction(mock.Anything, mock.Anything).
		Return("", eventbus.ErrBusFull).
		Once()

	req := httptest.NewRequest(http.MethodPost, "/actions",
		strings.NewReader(`{"type":"resolve","client":1,"tx":1}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := serve(e, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
}

func TestLiveAccounts(t *testing.T) {
	svc, e := newTestHandler(t)

	svc.EXPECT().
		LiveAccounts(mock.Anything).
		Return(sampleAccounts()).
		Once()

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/live/accounts", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"client":1`)
}

func TestHealthCheck(t *testing.T) {
	e := echo.New()
	e.GET("/health", NewHealthHandler(nil).Check)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"status":"ok"`)
	assert.NotContains(t, rec.Body.String(), "live_accounts")
}

func TestHealthCheck_ReportsLiveLedger(t *testing.T) {
	live := ledger.NewSharedEngine()
	amount := decimal.RequireFromString("1")
	require.NoError(t, live.Process(context.Background(), ledger.Action{
		Kind: ledger.ActionDeposit, ClientID: 4, TransactionID: 1, Amount: &amount,
	}))

	e := echo.New()
	e.GET("/health", NewHealthHandler(live).Check)

	rec := serve(e, httptest.NewRequest(http.MethodGet, "/health", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"live_accounts":1`)
}
