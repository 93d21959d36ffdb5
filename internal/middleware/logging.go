// Package middleware holds the Fiber middleware shared by all routes.
package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"

	"github.com/ahstack/shopchat/internal/logger"
)

// RequestIDHeader carries the per-request id back to the caller.
const RequestIDHeader = "X-Request-ID"

// Logging tags every request with a uuid and logs method, path, status and
// latency once the handler chain finishes.
func Logging(log logger.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		requestID := c.Get(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Set(RequestIDHeader, requestID)
		c.Locals("request_id", requestID)

		start := time.Now()
		err := c.Next()

		fields := map[string]interface{}{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     c.Response().StatusCode(),
			"duration":   time.Since(start).String(),
		}
		if err != nil {
			fields["error"] = err.Error()
			log.Error("request failed", fields)
			return err
		}
		log.Info("request handled", fields)
		return nil
	}
}
