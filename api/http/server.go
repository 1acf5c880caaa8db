package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"

	"github.com/artem13815/users/api/http/middleware"
	"github.com/artem13815/users/api/http/presenter"
	"github.com/artem13815/users/pkg/logging"
)

// NewApp builds the Fiber app with the shared middleware stack and error
// mapping. Routes are added by Register.
func NewApp(log logging.Logger) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:      "users-service",
		ErrorHandler: presenter.ErrorHandler(log),
		// values from c.Params/c.Get stay valid after the handler returns
		Immutable: true,
	})
	app.Use(requestid.New())
	app.Use(middleware.AccessLog(log))
	app.Use(recover.New())
	return app
}
