package dashboardController

import (
	"busline/database"
	"busline/middleware"
	"busline/models"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Summary aggregates one day's activity for the office dashboard: bookings,
// seat counts and fare revenue, freight intake and fees, and whether the
// departure board exists yet.
func Summary(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date is required!", nil)
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date! Expected format YYYY-MM-DD.", nil)
	}

	db := database.Database.Db

	var slotCount int64
	db.Model(&models.TimeSlot{}).Where("slot_date = ?", date).Count(&slotCount)

	var bookingCount int64
	db.Model(&models.Booking{}).
		Where("travel_date = ? AND status = ? AND is_deleted = false", date, models.BookingStatusBooked).
		Count(&bookingCount)

	type bookingTotals struct {
		Seats   int64
		Revenue float64
	}
	var bt bookingTotals
	db.Model(&models.Booking{}).
		Select("COALESCE(SUM(seat_count),0) as seats, COALESCE(SUM(fare),0) as revenue").
		Where("travel_date = ? AND status = ? AND is_deleted = false", date, models.BookingStatusBooked).
		Scan(&bt)

	var freightCount int64
	db.Model(&models.Freight{}).
		Where("send_date = ? AND is_deleted = false", date).
		Count(&freightCount)

	var freightFees float64
	db.Model(&models.Freight{}).
		Select("COALESCE(SUM(fee),0)").
		Where("send_date = ? AND is_deleted = false", date).
		Scan(&freightFees)

	// Seats sold per route
	type routeSeats struct {
		Route string `json:"route"`
		Seats int64  `json:"seats"`
	}
	var perRoute []routeSeats
	db.Model(&models.Booking{}).
		Select("time_slots.route as route, COALESCE(SUM(bookings.seat_count),0) as seats").
		Joins("JOIN time_slots ON time_slots.id = bookings.time_slot_id").
		Where("bookings.travel_date = ? AND bookings.status = ? AND bookings.is_deleted = false", date, models.BookingStatusBooked).
		Group("time_slots.route").
		Scan(&perRoute)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard summary fetched successfully!", fiber.Map{
		"date":           dateStr,
		"slotsGenerated": slotCount > 0,
		"slotCount":      slotCount,
		"bookings": fiber.Map{
			"count":   bookingCount,
			"seats":   bt.Seats,
			"revenue": bt.Revenue,
		},
		"freight": fiber.Map{
			"count": freightCount,
			"fees":  freightFees,
		},
		"seatsByRoute": perRoute,
	})
}
