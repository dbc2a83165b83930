// ABOUTME: Request middleware: shared-secret token gate and request logging.
// ABOUTME: The gate short-circuits to 403 before any body processing.
package server

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// tokenGate rejects any request whose token query parameter does not
// match the configured shared secret. An empty configured token
// disables the gate.
func (s *Server) tokenGate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		if s.cfg.Token == "" {
			return c.Next()
		}
		if c.Query("token") != s.cfg.Token {
			return c.Status(fiber.StatusForbidden).SendString("Forbidden (bad token)")
		}
		return c.Next()
	}
}

// loggingMiddleware tags each request with an ID and logs the outcome.
func (s *Server) loggingMiddleware() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		reqID := uuid.NewString()[:8]
		c.Locals("request_id", reqID)

		err := c.Next()

		s.logger.Printf("%s %s %s -> %d (%s)",
			reqID, c.Method(), c.OriginalURL(),
			c.Response().StatusCode(), time.Since(start))
		return err
	}
}
