package customerController

import (
	"busline/database"
	"busline/middleware"
	"busline/models"
	customerValidator "busline/validators/customer"

	"github.com/gofiber/fiber/v2"
)

// Lookup finds a customer by phone together with their booking and freight
// history, most recent first.
func Lookup(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedLookup").(*customerValidator.LookupRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var customer models.Customer
	if err := db.Where("phone = ? AND is_deleted = false", reqData.Phone).First(&customer).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Customer not found!", nil)
	}

	var bookings []models.Booking
	if err := db.Where("customer_phone = ? AND is_deleted = false", reqData.Phone).
		Order("created_at DESC").Limit(20).Find(&bookings).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch booking history!", nil)
	}

	var freights []models.Freight
	if err := db.Where("(sender_phone = ? OR receiver_phone = ?) AND is_deleted = false", reqData.Phone, reqData.Phone).
		Order("created_at DESC").Limit(20).Find(&freights).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch freight history!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customer fetched successfully!", fiber.Map{
		"customer": customer,
		"bookings": bookings,
		"freights": freights,
	})
}

func List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedCustomerList").(*customerValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.Customer{}).Where("is_deleted = false")
	if reqData.Search != "" {
		like := "%" + reqData.Search + "%"
		db = db.Where("name LIKE ? OR phone LIKE ?", like, like)
	}

	var total int64
	db.Count(&total)

	var customers []models.Customer
	if err := db.Order("created_at DESC").Offset(offset).Limit(reqData.Limit).Find(&customers).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch customers!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Customers fetched successfully!", fiber.Map{
		"customers": customers,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}
