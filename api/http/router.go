package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/artem13815/users/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app.
func Register(app *fiber.App, auth *handlers.AuthHandler, health *handlers.HealthHandler, users *handlers.UserHandler, authMW fiber.Handler) {
	api := app.Group("/api")
	v1 := api.Group("/v1")

	// Health and readiness endpoints for probes/monitoring
	v1.Get("/health", health.Health)
	v1.Get("/ready", health.Ready)

	a := v1.Group("/auth")
	a.Post("/register", auth.Register)
	a.Post("/login", auth.Login)

	u := v1.Group("/users", authMW)
	// "self" must be matched before the numeric id route
	u.Get("/self", users.Self)
	u.Get("/:id", users.GetByID)
	u.Put("/:id/roles/:role", users.AssignRole)
	u.Delete("/:id/roles/:role", users.RevokeRole)
}
