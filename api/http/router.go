package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/nurbekov/user-service/api/http/handlers"
)

// Register wires all HTTP routes onto given Fiber app. All user-record
// routes sit behind the bearer-token middleware; login and register are
// the unauthenticated entry points.
func Register(app *fiber.App, auth *handlers.AuthHandler, users *handlers.UserHandler, health *handlers.HealthHandler, authMW fiber.Handler) {
	// Health and readiness endpoints for probes/monitoring
	app.Get("/health", health.Health)
	app.Get("/ready", health.Ready)

	api := app.Group("/api")

	u := api.Group("/users")
	u.Post("/login", auth.Login)
	u.Post("/register", auth.Register)

	protected := u.Group("", authMW)
	protected.Get("/", users.List)
	protected.Get("/:id", users.GetByID)
	protected.Put("/:id", users.Update)
	protected.Delete("/:id", users.Delete)
}
