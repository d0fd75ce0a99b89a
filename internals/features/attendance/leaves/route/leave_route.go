package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/leaves/controller"
)

func LeaveUserRoutes(user fiber.Router, ctrl *controller.LeaveController) {
	l := user.Group("/leaves")
	l.Post("/", ctrl.Create)
	l.Get("/", ctrl.ListMine)
}
