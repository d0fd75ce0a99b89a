package details

import (
	"github.com/gofiber/fiber/v2"

	annController "hadirku_backend/internals/features/announcements/controller"
	annRoute "hadirku_backend/internals/features/announcements/route"
	reportController "hadirku_backend/internals/features/reports/controller"
	reportRoute "hadirku_backend/internals/features/reports/route"
	scheduleController "hadirku_backend/internals/features/schedules/controller"
	scheduleRoute "hadirku_backend/internals/features/schedules/route"
)

// SchoolUserRoutes: jadwal & pengumuman untuk semua user login.
func SchoolUserRoutes(user fiber.Router, c *Container) {
	scheduleRoute.ScheduleUserRoutes(user, scheduleController.NewScheduleController(c.Schedules, c.Profile))
	annRoute.AnnouncementUserRoutes(user, annController.NewAnnouncementController(c.DB, c.Validate))
}

// SchoolAdminRoutes: import jadwal, laporan, kelola pengumuman.
func SchoolAdminRoutes(admin fiber.Router, c *Container) {
	scheduleRoute.ScheduleAdminRoutes(admin, scheduleController.NewScheduleController(c.Schedules, c.Profile))
	reportRoute.ReportAdminRoutes(admin, reportController.NewReportController(c.Reports, c.Validate))
	annRoute.AnnouncementAdminRoutes(admin, annController.NewAnnouncementController(c.DB, c.Validate))
}
