package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/qrtoken/controller"
)

// QRAdminRoutes dipasang di group /api/a.
func QRAdminRoutes(admin fiber.Router, ctrl *controller.QRController) {
	qr := admin.Group("/qr")
	qr.Get("/current", ctrl.Current)
	qr.Get("/current.png", ctrl.CurrentPNG)
	qr.Post("/rotate", ctrl.Rotate)
}
