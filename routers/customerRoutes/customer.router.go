package customerRoutes

import (
	controller "busline/controllers/customer"
	"busline/middleware"
	validator "busline/validators/customer"

	"github.com/gofiber/fiber/v2"
)

func SetupCustomerRoutes(app *fiber.App) {
	customer := app.Group("/customer", middleware.JWTMiddleware)

	customer.Get("/lookup", validator.Lookup(), controller.Lookup)
	customer.Get("/list", validator.List(), controller.List)
}
