package stationRoutes

import (
	stationController "busline/controllers/station"
	"busline/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupStationRoutes(app *fiber.App) {
	station := app.Group("/station", middleware.JWTMiddleware)
	station.Get("/list", stationController.List)
}
