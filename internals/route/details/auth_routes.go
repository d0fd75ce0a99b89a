package details

import (
	"github.com/gofiber/fiber/v2"

	authController "hadirku_backend/internals/features/users/auth/controller"
	authRoute "hadirku_backend/internals/features/users/auth/route"
)

func AuthRoutes(app *fiber.App, c *Container) {
	authRoute.AuthRoutes(app, authController.NewAuthController(c.Auth, c.Validate))
}
