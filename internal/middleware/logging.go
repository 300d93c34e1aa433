package middleware

import (
	"time"

	"github.com/grachmannico95/ledger-engine/pkg/logger"
	"github.com/labstack/echo/v4"
)

func Logging(log *logger.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()

			err := next(c)
			if err != nil {
				// Let echo write the error now so the logged status is the one sent.
				c.Error(err)
			}

			ctx := c.Request().Context()
			if runID := c.QueryParam("run_id"); runID != "" {
				ctx = logger.WithRunID(ctx, runID)
			}

			fields := []interface{}{
				"method", c.Request().Method,
				"path", c.Request().URL.Path,
				"status", c.Response().Status,
				"bytes_out", c.Response().Size,
				"duration_ms", time.Since(start).Milliseconds(),
				"remote_addr", c.Request().RemoteAddr,
			}
			if c.Response().Status >= 500 {
				log.Error(ctx, "HTTP request", fields...)
			} else {
				log.Info(ctx, "HTTP request", fields...)
			}

			return nil
		}
	}
}
