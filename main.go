package main

import (
	"busline/config"
	"busline/database"
	authRoutes "busline/routers/authRoutes"
	bookingRoutes "busline/routers/bookingRoutes"
	customerRoutes "busline/routers/customerRoutes"
	dashboardRoutes "busline/routers/dashboardRoutes"
	freightRoutes "busline/routers/freightRoutes"
	stationRoutes "busline/routers/stationRoutes"
	timeslotRoutes "busline/routers/timeslotRoutes"
	"busline/utils"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	authRoutes.SetupAuthRoutes(app)
	timeslotRoutes.SetupTimeslotRoutes(app)
	freightRoutes.SetupFreightRoutes(app)
	bookingRoutes.SetupBookingRoutes(app)
	customerRoutes.SetupCustomerRoutes(app)
	dashboardRoutes.SetupDashboardRoutes(app)
	stationRoutes.SetupStationRoutes(app)

	// Nightly generation of tomorrow's departure board
	utils.StartSlotScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
