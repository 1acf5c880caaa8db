package middleware

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/users/pkg/logging"
)

// AccessLog writes one structured record per request. Errors from the chain
// are passed to the app ErrorHandler first so the logged status is final.
func AccessLog(log logging.Logger) fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()
		if chainErr := c.Next(); chainErr != nil {
			if err := c.App().ErrorHandler(c, chainErr); err != nil {
				_ = c.SendStatus(fiber.StatusInternalServerError)
			}
		}
		log.Info(c.Context(), "http request",
			"method", c.Method(),
			"path", c.Path(),
			"status", c.Response().StatusCode(),
			"latency", time.Since(start).String(),
			"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
		)
		return nil
	}
}
