package freightRoutes

import (
	controller "busline/controllers/freight"
	"busline/middleware"
	validator "busline/validators/freight"

	"github.com/gofiber/fiber/v2"
)

func SetupFreightRoutes(app *fiber.App) {
	freight := app.Group("/freight", middleware.JWTMiddleware)

	freight.Post("/create", validator.Create(), controller.Create)
	freight.Get("/list", validator.List(), controller.List)
	freight.Get("/manifest", controller.ManifestPdf)
	freight.Get("/code/:code", controller.GetByCode)
	freight.Post("/update-status", validator.UpdateStatus(), controller.UpdateStatus)
}
