package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
)

// LiveLedger is the part of the live engine the health check reports on.
type LiveLedger interface {
	Len() int
}

type HealthHandler struct {
	live LiveLedger
}

// NewHealthHandler reports on live when it is non-nil.
func NewHealthHandler(live LiveLedger) *HealthHandler {
	return &HealthHandler{live: live}
}

func (h *HealthHandler) Check(c echo.Context) error {
	body := map[string]interface{}{
		"status":    "ok",
		"timestamp": time.Now().Format(time.RFC3339),
	}
	if h.live != nil {
		body["live_accounts"] = h.live.Len()
	}
	return c.JSON(http.StatusOK, body)
}
