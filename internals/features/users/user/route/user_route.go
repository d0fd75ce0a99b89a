package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/users/user/controller"
)

// UserRoutes dipasang di group /api/u (JWT).
func UserRoutes(user fiber.Router, ctrl *controller.UserController) {
	me := user.Group("/me")
	me.Get("/", ctrl.Me)
	me.Put("/schedule-code", ctrl.SetScheduleCode)
	me.Put("/device", ctrl.BindDevice)
	me.Post("/photo", ctrl.UploadPhoto)
}

// UserAdminRoutes dipasang di group /api/a (JWT + admin).
func UserAdminRoutes(admin fiber.Router, ctrl *controller.UserController) {
	admin.Get("/users", ctrl.ListUsers)
}
