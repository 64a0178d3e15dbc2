package bookingRoutes

import (
	controller "busline/controllers/booking"
	"busline/middleware"
	validator "busline/validators/booking"

	"github.com/gofiber/fiber/v2"
)

func SetupBookingRoutes(app *fiber.App) {
	booking := app.Group("/booking", middleware.JWTMiddleware)

	booking.Post("/create", validator.Create(), controller.Create)
	booking.Get("/list", validator.List(), controller.List)
	booking.Post("/update-payment", validator.UpdatePayment(), controller.UpdatePayment)
	booking.Post("/cancel", validator.Cancel(), controller.Cancel)
	booking.Get("/ticket/:id/pdf", controller.TicketPdf)
}
