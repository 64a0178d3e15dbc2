package timeslotRoutes

import (
	controller "busline/controllers/timeslot"
	"busline/middleware"
	validator "busline/validators/timeslot"

	"github.com/gofiber/fiber/v2"
)

func SetupTimeslotRoutes(app *fiber.App) {
	timeslot := app.Group("/timeslot")

	timeslot.Post("/generate", middleware.JWTMiddleware, middleware.RequireRole("ADMIN"), validator.Generate(), controller.Generate)
	timeslot.Get("/list", middleware.JWTMiddleware, validator.List(), controller.List)
}
