package route

import (
	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/features/attendance/scans/controller"
	rateLimiter "hadirku_backend/internals/middlewares"
)

func ScanUserRoutes(user fiber.Router, ctrl *controller.ScanController) {
	a := user.Group("/attendance")
	a.Post("/check-in", rateLimiter.ScanRateLimiter(), ctrl.CheckIn)
	a.Post("/check-out", rateLimiter.ScanRateLimiter(), ctrl.CheckOut)
	a.Get("/today", ctrl.Today)
	a.Get("/history", ctrl.History)
}
