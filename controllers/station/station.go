package stationController

import (
	"busline/database"
	"busline/middleware"
	"busline/models"

	"github.com/gofiber/fiber/v2"
)

// List returns the active stations for the intake and booking dropdowns.
func List(c *fiber.Ctx) error {
	var stations []models.Station
	if err := database.Database.Db.Where("is_active = true").Order("name asc").Find(&stations).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch stations!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Stations fetched successfully!", stations)
}
