package routes

import (
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"hadirku_backend/internals/constants"
	authMiddleware "hadirku_backend/internals/middlewares/auth"
	routeDetails "hadirku_backend/internals/route/details"
)

var startTime time.Time

func SetupRoutes(app *fiber.App, c *routeDetails.Container) {
	startTime = time.Now()

	log.Println("[INFO] Setting up BaseRoutes...")
	BaseRoutes(app)

	// ===================== AUTH (publik) =====================
	log.Println("[INFO] Setting up AuthRoutes...")
	routeDetails.AuthRoutes(app, c)

	// ===================== GROUPS =====================
	log.Println("[INFO] Setting up USER group...")
	user := app.Group("/api/u", authMiddleware.AuthMiddleware(c.DB))

	log.Println("[INFO] Setting up ADMIN group (Auth + RoleCheck)...")
	admin := app.Group("/api/a",
		authMiddleware.AuthMiddleware(c.DB),
		authMiddleware.OnlyRoles(constants.RoleErrorAdmin("fitur admin"), constants.AdminOnly...),
	)

	// ===================== MOUNT ROUTES =====================
	log.Println("[INFO] Mounting User routes...")
	routeDetails.UserRoutes(user, admin, c)

	log.Println("[INFO] Mounting Attendance routes...")
	routeDetails.AttendanceUserRoutes(user, c)
	routeDetails.AttendanceAdminRoutes(admin, c)

	log.Println("[INFO] Mounting School routes...")
	routeDetails.SchoolUserRoutes(user, c)
	routeDetails.SchoolAdminRoutes(admin, c)
}
