package presenter

import (
	"errors"
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/users/pkg/auth"
	"github.com/artem13815/users/pkg/logging"
	"github.com/artem13815/users/pkg/user"
)

type ErrorResponse struct {
	Message string `json:"message"`
}

func JSON(c *fiber.Ctx, status int, v any) error {
	return c.Status(status).JSON(v)
}

func Error(c *fiber.Ctx, status int, message string) error {
	return JSON(c, status, ErrorResponse{Message: message})
}

// Found replies 200 with v as the body, unwrapped.
func Found(c *fiber.Ctx, v any) error {
	return JSON(c, http.StatusOK, v)
}

func NotFound(c *fiber.Ctx) error {
	return Error(c, http.StatusNotFound, "not found")
}

func Unauthorized(c *fiber.Ctx) error {
	return Error(c, http.StatusUnauthorized, "unauthorized")
}

// Status maps err to an HTTP status and a message safe to show to clients.
func Status(err error) (int, string) {
	var fe *fiber.Error
	switch {
	case errors.Is(err, user.ErrNotFound):
		return http.StatusNotFound, "not found"
	case errors.Is(err, user.ErrUnauthorized):
		return http.StatusUnauthorized, "unauthorized"
	case errors.Is(err, auth.ErrInvalidCredentials):
		return http.StatusUnauthorized, "invalid credentials"
	case errors.Is(err, user.ErrUserAlreadyExists):
		return http.StatusConflict, "user already exists"
	case errors.Is(err, user.ErrRoleAlreadyAssigned):
		return http.StatusConflict, "role already assigned"
	case errors.Is(err, user.ErrUnknownRole):
		return http.StatusBadRequest, "unknown role"
	case errors.As(err, &fe):
		return fe.Code, fe.Message
	default:
		return http.StatusInternalServerError, "internal server error"
	}
}

// HandleErr replies with the status mapped from err. Errors without a known
// mapping are returned unchanged so the app ErrorHandler can log them.
func HandleErr(c *fiber.Ctx, err error) error {
	status, msg := Status(err)
	if status == http.StatusInternalServerError {
		return err
	}
	return Error(c, status, msg)
}

// ErrorHandler is the fiber.Config ErrorHandler. Server-side failures are
// logged with the request id; details never reach the client.
func ErrorHandler(log logging.Logger) fiber.ErrorHandler {
	return func(c *fiber.Ctx, err error) error {
		status, msg := Status(err)
		if status >= http.StatusInternalServerError {
			log.Error(c.Context(), "request failed",
				"method", c.Method(),
				"path", c.Path(),
				"request_id", c.GetRespHeader(fiber.HeaderXRequestID),
				"err", err,
			)
		}
		return Error(c, status, msg)
	}
}
