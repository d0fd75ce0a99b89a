package route

import (
	"github.com/gofiber/fiber/v2"

	annCtl "hadirku_backend/internals/features/announcements/controller"
)

func AnnouncementUserRoutes(user fiber.Router, ctrl *annCtl.AnnouncementController) {
	user.Get("/announcements", ctrl.List)
}

func AnnouncementAdminRoutes(admin fiber.Router, ctrl *annCtl.AnnouncementController) {
	ann := admin.Group("/announcements")
	ann.Post("/", ctrl.Create)
	ann.Delete("/:id", ctrl.Delete)
}
