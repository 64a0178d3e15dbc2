package authRoutes

import (
	controller "busline/controllers/auth"
	validator "busline/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	auth := app.Group("/auth")

	auth.Post("/register", validator.Register(), controller.Register)
	auth.Post("/login", validator.Login(), controller.Login)
}
