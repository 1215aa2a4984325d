package middleware

import (
	"time"

	"academy/internal/infra/metrics"

	"github.com/labstack/echo/v4"
)

// MetricsMiddleware records request counts and latency per registered route.
type MetricsMiddleware struct {
	collector *metrics.Collector
}

// NewMetricsMiddleware creates a new metrics middleware
func NewMetricsMiddleware(collector *metrics.Collector) *MetricsMiddleware {
	return &MetricsMiddleware{collector: collector}
}

// Handle renders a returned error before reading the status code, so it is
// registered outside the logger middleware.
func (m *MetricsMiddleware) Handle(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		start := time.Now()

		err := next(c)
		if err != nil {
			c.Error(err)
		}

		route := c.Path()
		if route == "" {
			route = "unmatched"
		}
		m.collector.RecordHTTPRequest(c.Request().Method, route, c.Response().Status, time.Since(start))

		return nil
	}
}
