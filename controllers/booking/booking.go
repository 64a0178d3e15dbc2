package bookingController

import (
	"busline/database"
	"busline/middleware"
	"busline/models"
	"busline/utils"
	bookingValidator "busline/validators/booking"
	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Create reserves seats on a generated time slot. The customer record is
// upserted by phone so the customer desk can find them later.
func Create(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedBookingCreate").(*bookingValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var slot models.TimeSlot
	if err := db.First(&slot, reqData.TimeSlotID).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Time slot not found!", nil)
	}

	booking := models.Booking{
		Reference:     uuid.NewString(),
		CustomerName:  reqData.CustomerName,
		CustomerPhone: reqData.CustomerPhone,
		TimeSlotID:    slot.ID,
		TravelDate:    slot.SlotDate,
		SeatCount:     reqData.SeatCount,
		Pickup:        reqData.Pickup,
		Dropoff:       reqData.Dropoff,
		Fare:          reqData.Fare,
		PaymentStatus: models.PaymentStatusUnpaid,
		Status:        models.BookingStatusBooked,
		CreatedBy:     userId,
	}

	if err := db.Create(&booking).Error; err != nil {
		log.Printf("Error creating booking: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create booking!", nil)
	}

	var customer models.Customer
	if err := db.Where("phone = ?", reqData.CustomerPhone).First(&customer).Error; err != nil {
		if err := db.Create(&models.Customer{Name: reqData.CustomerName, Phone: reqData.CustomerPhone}).Error; err != nil {
			log.Printf("Error saving customer %s: %v", reqData.CustomerPhone, err)
		}
	}

	if reqData.Email != "" {
		go utils.SendBookingConfirmationEmail(reqData.Email, booking, slot)
	}

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Booking created successfully!", booking)
}

func List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBookingList").(*bookingValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.Booking{}).Where("is_deleted = false")
	if reqData.Date != nil {
		db = db.Where("travel_date = ?", *reqData.Date)
	}
	if reqData.Phone != "" {
		db = db.Where("customer_phone = ?", reqData.Phone)
	}
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	var bookings []models.Booking
	if err := db.Order("created_at DESC").Offset(offset).Limit(reqData.Limit).Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch bookings!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Bookings fetched successfully!", fiber.Map{
		"bookings": bookings,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

func UpdatePayment(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBookingPayment").(*bookingValidator.UpdatePaymentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var booking models.Booking
	if err := db.Where("id = ? AND is_deleted = false", reqData.BookingID).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	booking.PaymentStatus = reqData.PaymentStatus
	if err := db.Save(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update payment status!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Payment status updated successfully!", booking)
}

func Cancel(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedBookingCancel").(*bookingValidator.CancelRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var booking models.Booking
	if err := db.Where("id = ? AND is_deleted = false", reqData.BookingID).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	if booking.Status == models.BookingStatusCancelled {
		return middleware.JsonResponse(c, fiber.StatusConflict, false, "Booking is already cancelled!", nil)
	}

	booking.Status = models.BookingStatusCancelled
	if err := db.Save(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to cancel booking!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Booking cancelled successfully!", booking)
}

// TicketPdf renders a printable ticket for one booking.
func TicketPdf(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil || id < 1 {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid booking id!", nil)
	}

	db := database.Database.Db

	var booking models.Booking
	if err := db.Preload("TimeSlot").Where("id = ? AND is_deleted = false", id).First(&booking).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Booking not found!", nil)
	}

	pdf, err := utils.BookingTicketPdf(booking)
	if err != nil {
		log.Printf("Error rendering ticket: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render ticket!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="ticket-`+booking.Reference+`.pdf"`)
	return c.Send(pdf)
}
