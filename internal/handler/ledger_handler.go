package handler

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"slices"
	"strconv"
	"strings"

	"github.com/grachmannico95/ledger-engine/internal/codec"
	"github.com/grachmannico95/ledger-engine/internal/domain"
	"github.com/grachmannico95/ledger-engine/internal/eventbus"
	"github.com/grachmannico95/ledger-engine/internal/ledger"
	"github.com/grachmannico95/ledger-engine/internal/service"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/labstack/echo/v4"
	"github.com/shopspring/decimal"
)

const maxPerPage = 100

type LedgerHandler struct {
	service service.LedgerService
	logger  *logger.Logger
}

func NewLedgerHandler(service service.LedgerService, log *logger.Logger) *LedgerHandler {
	return &LedgerHandler{
		service: service,
		logger:  log,
	}
}

// ActionRequest is the body of POST /actions. Amount is a decimal string so
// no precision is lost in JSON.
type ActionRequest struct {
	Type   string `json:"type"`
	Client uint16 `json:"client"`
	Tx     uint32 `json:"tx"`
	Amount string `json:"amount,omitempty"`
}

func (h *LedgerHandler) Upload(c echo.Context) error {
	ctx := c.Request().Context()

	h.logger.Info(ctx, "Handling upload request")

	file, err := c.FormFile("file")
	if err != nil {
		h.logger.Error(ctx, "Failed to get file from request",
			"error", err,
		)
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "file is required",
		})
	}

	src, err := file.Open()
	if err != nil {
		h.logger.Error(ctx, "Failed to open file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to open file",
		})
	}
	defer src.Close()

	// The upload is processed after the request returns, so it cannot keep
	// reading from the multipart file.
	content, err := io.ReadAll(src)
	if err != nil {
		h.logger.Error(ctx, "Failed to read file",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to read file",
		})
	}

	runID, err := h.service.UploadStatement(ctx, bytes.NewReader(content))
	if err != nil {
		h.logger.Error(ctx, "Failed to upload statement",
			"error", err,
		)
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to upload statement",
		})
	}

	h.logger.Info(ctx, "Upload successful",
		"run_id", runID,
		"bytes", len(content),
	)

	return c.JSON(http.StatusAccepted, map[string]string{
		"run_id": runID,
		"status": string(domain.RunStatusProcessing),
	})
}

func (h *LedgerHandler) GetRun(c echo.Context) error {
	ctx := c.Request().Context()
	runID := c.Param("id")

	run, err := h.service.GetRunStatus(ctx, runID)
	if err != nil {
		return h.runError(c, err, "failed to get run")
	}

	return c.JSON(http.StatusOK, run)
}

func (h *LedgerHandler) GetAccounts(c echo.Context) error {
	ctx := c.Request().Context()

	runID := c.QueryParam("run_id")
	if runID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "run_id is required",
		})
	}

	accounts, err := h.service.GetAccounts(ctx, runID)
	if err != nil {
		return h.runError(c, err, "failed to get accounts")
	}

	if wantsCSV(c) {
		return h.writeCSV(c, accounts)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"run_id":   runID,
		"accounts": accounts,
	})
}

func (h *LedgerHandler) GetIssues(c echo.Context) error {
	ctx := c.Request().Context()

	runID := c.QueryParam("run_id")
	if runID == "" {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "run_id is required",
		})
	}

	page, err := strconv.Atoi(c.QueryParam("page"))
	if err != nil || page < 1 {
		page = 1
	}

	perPage, err := strconv.Atoi(c.QueryParam("per_page"))
	if err != nil || perPage < 1 {
		perPage = 10
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}

	var reasonFilter *string
	if reason := c.QueryParam("reason"); reason != "" {
		if !domain.IsValidReason(reason) {
			return c.JSON(http.StatusBadRequest, map[string]string{
				"error": "reason must be locked, insufficient_funds or negative_amount",
			})
		}
		reasonFilter = &reason
	}

	issues, total, err := h.service.GetIssues(ctx, runID, page, perPage, reasonFilter)
	if err != nil {
		return h.runError(c, err, "failed to get issues")
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"run_id":   runID,
		"items":    issues,
		"page":     page,
		"per_page": perPage,
		"total":    total,
	})
}

func (h *LedgerHandler) SubmitAction(c echo.Context) error {
	ctx := c.Request().Context()

	var req ActionRequest
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": "invalid request body",
		})
	}

	action, err := req.toAction()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{
			"error": err.Error(),
		})
	}

	eventID, err := h.service.SubmitAction(ctx, action)
	if err != nil {
		if errors.Is(err, eventbus.ErrBusFull) {
			return c.JSON(http.StatusServiceUnavailable, map[string]string{
				"error": "ledger is busy, retry later",
			})
		}
		return c.JSON(http.StatusInternalServerError, map[string]string{
			"error": "failed to submit action",
		})
	}

	return c.JSON(http.StatusAccepted, map[string]string{
		"event_id": eventID,
		"status":   "queued",
	})
}

func (h *LedgerHandler) LiveAccounts(c echo.Context) error {
	accounts := h.service.LiveAccounts(c.Request().Context())

	if wantsCSV(c) {
		return h.writeCSV(c, accounts)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"accounts": accounts,
	})
}

func (h *LedgerHandler) runError(c echo.Context, err error, message string) error {
	if errors.Is(err, domain.ErrRunNotFound) {
		return c.JSON(http.StatusNotFound, map[string]string{
			"error": "run not found",
		})
	}

	h.logger.Error(c.Request().Context(), message,
		"error", err,
	)
	return c.JSON(http.StatusInternalServerError, map[string]string{
		"error": message,
	})
}

func (h *LedgerHandler) writeCSV(c echo.Context, accounts []ledger.AccountData) error {
	c.Response().Header().Set(echo.HeaderContentType, "text/csv; charset=utf-8")
	c.Response().WriteHeader(http.StatusOK)
	return codec.WriteAccounts(c.Response(), slices.Values(accounts))
}

func wantsCSV(c echo.Context) bool {
	return strings.Contains(c.Request().Header.Get(echo.HeaderAccept), "text/csv")
}

func (r ActionRequest) toAction() (ledger.Action, error) {
	kind, err := ledger.ParseActionKind(r.Type)
	if err != nil {
		return ledger.Action{}, err
	}

	action := ledger.Action{
		TransactionID: ledger.TransactionID(r.Tx),
		ClientID:      ledger.ClientID(r.Client),
		Kind:          kind,
	}

	if r.Amount != "" {
		amount, err := decimal.NewFromString(r.Amount)
		if err != nil {
			return ledger.Action{}, errors.New("amount must be a decimal number")
		}
		action.Amount = &amount
	}

	return action, nil
}
