package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/schedules/controller"
)

func ScheduleUserRoutes(user fiber.Router, ctrl *controller.ScheduleController) {
	s := user.Group("/schedules")
	s.Get("/mine", ctrl.Mine)
	s.Get("/codes", ctrl.Codes)
}

func ScheduleAdminRoutes(admin fiber.Router, ctrl *controller.ScheduleController) {
	s := admin.Group("/schedules")
	s.Post("/import", ctrl.Import)
	s.Get("/", ctrl.List)
}
