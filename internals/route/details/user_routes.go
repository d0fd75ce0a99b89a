package details

import (
	"github.com/gofiber/fiber/v2"

	userController "hadirku_backend/internals/features/users/user/controller"
	userRoute "hadirku_backend/internals/features/users/user/route"
)

// UserRoutes: profil sendiri di /api/u, daftar akun di /api/a.
func UserRoutes(user, admin fiber.Router, c *Container) {
	ctrl := userController.NewUserController(c.Profile, c.Validate)
	userRoute.UserRoutes(user, ctrl)
	userRoute.UserAdminRoutes(admin, ctrl)
}
