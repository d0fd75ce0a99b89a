package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/users/auth/controller"
	rateLimiter "hadirku_backend/internals/middlewares"
)

// AuthRoutes: /api/auth (publik).
func AuthRoutes(app *fiber.App, ctrl *controller.AuthController) {
	auth := app.Group("/api/auth")

	auth.Post("/register", rateLimiter.RegisterRateLimiter(), ctrl.Register)
	auth.Post("/login", rateLimiter.LoginRateLimiter(), ctrl.Login)
	auth.Post("/login-google", rateLimiter.LoginRateLimiter(), ctrl.LoginGoogle)
	auth.Post("/logout", ctrl.Logout)
}
