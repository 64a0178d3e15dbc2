package timeslotController

import (
	"busline/database"
	"busline/middleware"
	"busline/models"
	"busline/schedule"
	timeslotValidator "busline/validators/timeslot"
	"errors"
	"log"

	"github.com/gofiber/fiber/v2"
)

// Generate creates the full departure board for one date. Generating twice
// for the same date is refused with a conflict, never a partial overwrite.
func Generate(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedGenerate").(*timeslotValidator.GenerateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	slots, err := schedule.GenerateForDate(database.Database.Db, reqData.Date)
	if err != nil {
		if errors.Is(err, schedule.ErrAlreadyExists) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Time slots already generated for this date!", nil)
		}
		log.Printf("Error generating time slots: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to generate time slots!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time slots generated successfully!", fiber.Map{
		"count": len(slots),
		"slots": slots,
	})
}

func List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedSlotList").(*timeslotValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db.Model(&models.TimeSlot{}).Where("slot_date = ?", reqData.Date)
	if reqData.Route != "" {
		db = db.Where("route = ?", reqData.Route)
	}

	var slots []models.TimeSlot
	if err := db.Order("route desc, slot_time asc").Find(&slots).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch time slots!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Time slots fetched successfully!", fiber.Map{
		"count": len(slots),
		"slots": slots,
	})
}
