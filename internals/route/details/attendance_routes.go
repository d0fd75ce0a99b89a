package details

import (
	"github.com/gofiber/fiber/v2"

	leaveController "hadirku_backend/internals/features/attendance/leaves/controller"
	leaveRoute "hadirku_backend/internals/features/attendance/leaves/route"
	qrController "hadirku_backend/internals/features/attendance/qrtoken/controller"
	qrRoute "hadirku_backend/internals/features/attendance/qrtoken/route"
	scanController "hadirku_backend/internals/features/attendance/scans/controller"
	scanRoute "hadirku_backend/internals/features/attendance/scans/route"
)

func AttendanceUserRoutes(user fiber.Router, c *Container) {
	scanRoute.ScanUserRoutes(user, scanController.NewScanController(c.Scans, c.Validate))
	leaveRoute.LeaveUserRoutes(user, leaveController.NewLeaveController(c.Leaves, c.Profile, c.Validate))
}

func AttendanceAdminRoutes(admin fiber.Router, c *Container) {
	qrRoute.QRAdminRoutes(admin, qrController.NewQRController(c.QR))
}
