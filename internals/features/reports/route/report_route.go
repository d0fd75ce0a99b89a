package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/reports/controller"
)

func ReportAdminRoutes(admin fiber.Router, ctrl *controller.ReportController) {
	r := admin.Group("/reports")
	r.Get("/comprehensive", ctrl.Comprehensive)
	r.Get("/comprehensive/export", ctrl.ExportComprehensive)
	r.Get("/staff", ctrl.Staff)
	r.Get("/staff/export", ctrl.ExportStaff)
	r.Post("/summary", ctrl.Summary)
}
