package middleware

import (
	"strconv"
	"time"

	"github.com/labstack/echo/v4"

	"surf-api/pkg/metrics"
)

// SetupMetrics records request count and latency per route template.
func SetupMetrics(e *echo.Echo) {
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			if isOperational(c) {
				return next(c)
			}

			start := time.Now()
			// rendered here so the recorded status is final; echo skips the committed response later
			err := next(c)
			if err != nil {
				c.Error(err)
			}

			endpoint := c.Path()
			if endpoint == "" {
				endpoint = "unmatched"
			}
			metrics.RecordHTTPRequest(endpoint, c.Request().Method, strconv.Itoa(c.Response().Status), time.Since(start))
			return err
		}
	})
}
