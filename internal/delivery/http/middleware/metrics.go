package middleware

import (
	"strconv"
	"time"

	"github.com/freight-estimator/internal/pkg/metrics"
	"github.com/gofiber/fiber/v2"
)

// Metrics - счётчик и латентность запросов по шаблону маршрута
func Metrics(collector *metrics.Collector) fiber.Handler {
	return func(c *fiber.Ctx) error {
		if collector == nil {
			return c.Next()
		}

		start := time.Now()
		err := c.Next()

		// Шаблон маршрута, а не фактический путь: /api/v1/quotes/:id
		route := c.Route().Path
		if route == "" || route == "/" {
			route = "unmatched"
		}

		status := c.Response().StatusCode()
		if err != nil {
			if e, ok := err.(*fiber.Error); ok {
				status = e.Code
			}
		}

		collector.HTTPRequests.WithLabelValues(c.Method(), route, strconv.Itoa(status)).Inc()
		collector.HTTPDurations.WithLabelValues(c.Method(), route).Observe(time.Since(start).Seconds())
		return err
	}
}
