package middleware

import (
	"strings"

	"github.com/google/uuid"
	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/labstack/echo/v4"
)

// TraceIDHeader carries the request trace id. For POST /actions it is also
// the idempotency key of the live action.
const TraceIDHeader = "X-Trace-ID"

const maxTraceIDLength = 128

// RequestID takes the caller's trace id, or mints one, and puts it on the
// request context and the response.
func RequestID() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			traceID := strings.TrimSpace(c.Request().Header.Get(TraceIDHeader))
			if traceID == "" || len(traceID) > maxTraceIDLength {
				traceID = uuid.New().String()
			}

			ctx := logger.WithTraceID(c.Request().Context(), traceID)
			c.SetRequest(c.Request().WithContext(ctx))

			c.Response().Header().Set(TraceIDHeader, traceID)

			return next(c)
		}
	}
}
