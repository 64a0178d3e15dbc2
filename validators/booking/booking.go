package bookingValidator

import (
	"busline/middleware"
	"busline/models"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type CreateRequest struct {
	CustomerName  string  `json:"customerName"`
	CustomerPhone string  `json:"customerPhone"`
	TimeSlotID    uint    `json:"timeSlotId"`
	SeatCount     int     `json:"seatCount"`
	Pickup        string  `json:"pickup"`
	Dropoff       string  `json:"dropoff"`
	Fare          float64 `json:"fare"`
	Email         string  `json:"email"` // optional, for the confirmation mail
}

type ListRequest struct {
	Page   int
	Limit  int
	Date   *time.Time
	Phone  string
	Status string
}

type UpdatePaymentRequest struct {
	BookingID     uint   `json:"bookingId"`
	PaymentStatus string `json:"paymentStatus"`
}

type CancelRequest struct {
	BookingID uint `json:"bookingId"`
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.CustomerName = strings.TrimSpace(reqData.CustomerName)
		if reqData.CustomerName == "" {
			errors["customerName"] = "Customer name is required!"
		}

		if err := validate.Var(reqData.CustomerPhone, "required,numeric,min=9,max=11"); err != nil {
			errors["customerPhone"] = "Customer phone must be 9-11 digits!"
		}

		if reqData.TimeSlotID == 0 {
			errors["timeSlotId"] = "Time slot is required!"
		}

		if reqData.SeatCount < 1 {
			errors["seatCount"] = "Seat count must be at least 1!"
		}
		if reqData.Fare < 0 {
			errors["fare"] = "Fare cannot be negative!"
		}

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Invalid email address!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookingCreate", reqData)
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := &ListRequest{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Phone:  c.Query("phone"),
			Status: strings.ToUpper(c.Query("status")),
		}

		errors := make(map[string]string)

		if req.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if req.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if dateStr := c.Query("date"); dateStr != "" {
			date, err := time.Parse("2006-01-02", dateStr)
			if err != nil {
				errors["date"] = "Invalid date! Expected format YYYY-MM-DD."
			} else {
				req.Date = &date
			}
		}

		if req.Status != "" {
			valid := map[string]bool{models.BookingStatusBooked: true, models.BookingStatusCancelled: true}
			if !valid[req.Status] {
				errors["status"] = "Invalid status! Allowed: BOOKED, CANCELLED."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookingList", req)
		return c.Next()
	}
}

func UpdatePayment() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdatePaymentRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.BookingID == 0 {
			errors["bookingId"] = "Booking ID is required!"
		}

		reqData.PaymentStatus = strings.ToUpper(strings.TrimSpace(reqData.PaymentStatus))
		valid := map[string]bool{
			models.PaymentStatusUnpaid:   true,
			models.PaymentStatusPaid:     true,
			models.PaymentStatusRefunded: true,
		}
		if !valid[reqData.PaymentStatus] {
			errors["paymentStatus"] = "Invalid payment status! Allowed: UNPAID, PAID, REFUNDED."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedBookingPayment", reqData)
		return c.Next()
	}
}

func Cancel() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CancelRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if reqData.BookingID == 0 {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"bookingId": "Booking ID is required!",
			})
		}

		c.Locals("validatedBookingCancel", reqData)
		return c.Next()
	}
}
