package dashboardRoutes

import (
	dashboardController "busline/controllers/dashboard"
	"busline/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.JWTMiddleware)
	dashboard.Get("/summary", dashboardController.Summary)
}
