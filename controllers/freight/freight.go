package freightController

import (
	"busline/database"
	"busline/middleware"
	"busline/models"
	"busline/sequence"
	"busline/utils"
	freightValidator "busline/validators/freight"
	"encoding/json"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"
)

// Create takes in one consignment. The product-code allocation and the
// freight insert share one transaction, so a failed insert rolls the counter
// back instead of burning a sequence number.
func Create(c *fiber.Ctx) error {
	userId, _ := c.Locals("userId").(uint)

	reqData, ok := c.Locals("validatedFreightCreate").(*freightValidator.CreateRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	quantity := reqData.Quantity
	if quantity == 0 {
		quantity = 1
	}
	paidBy := reqData.PaidBy
	if paidBy == "" {
		paidBy = models.FreightPayerSender
	}

	itemsJSON, err := json.Marshal(reqData.Items)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid items payload!", nil)
	}

	var freight models.Freight
	err = database.Database.Db.Transaction(func(tx *gorm.DB) error {
		code, err := sequence.Allocate(tx, reqData.SenderStation, reqData.ParsedSendDate)
		if err != nil {
			return err
		}

		freight = models.Freight{
			ProductCode:   code.String(),
			SenderName:    reqData.SenderName,
			SenderPhone:   reqData.SenderPhone,
			ReceiverName:  reqData.ReceiverName,
			ReceiverPhone: reqData.ReceiverPhone,
			SenderStation: reqData.SenderStation,
			SendDate:      reqData.ParsedSendDate,
			TimeSlotID:    reqData.TimeSlotID,
			Description:   reqData.Description,
			Quantity:      quantity,
			WeightKg:      reqData.WeightKg,
			Fee:           reqData.Fee,
			CodAmount:     reqData.CodAmount,
			PaidBy:        paidBy,
			Status:        models.FreightStatusReceived,
			Items:         itemsJSON,
			CreatedBy:     userId,
		}
		return tx.Create(&freight).Error
	})
	if err != nil {
		log.Printf("Error creating freight: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create freight record!", nil)
	}

	// Keep the sender on file for the customer desk
	upsertCustomer(reqData.SenderName, reqData.SenderPhone)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Freight created successfully!", freight)
}

func List(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFreightList").(*freightValidator.ListRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	offset := (reqData.Page - 1) * reqData.Limit

	db := database.Database.Db.Model(&models.Freight{}).Where("is_deleted = false")
	if reqData.Date != nil {
		db = db.Where("send_date = ?", *reqData.Date)
	}
	if reqData.Station != "" {
		db = db.Where("sender_station = ?", reqData.Station)
	}
	if reqData.Status != "" {
		db = db.Where("status = ?", reqData.Status)
	}

	var total int64
	db.Count(&total)

	var freights []models.Freight
	if err := db.Order("created_at DESC").Offset(offset).Limit(reqData.Limit).Find(&freights).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch freight records!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Freight records fetched successfully!", fiber.Map{
		"freights": freights,
		"pagination": fiber.Map{
			"total": total,
			"page":  reqData.Page,
			"limit": reqData.Limit,
		},
	})
}

// GetByCode looks a consignment up by its product code.
func GetByCode(c *fiber.Ctx) error {
	code := c.Params("code")
	if _, err := sequence.Parse(code); err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid product code format!", nil)
	}

	var freight models.Freight
	if err := database.Database.Db.Where("product_code = ? AND is_deleted = false", code).First(&freight).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Freight not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Freight fetched successfully!", freight)
}

// UpdateStatus moves a consignment along RECEIVED -> LOADED -> ARRIVED ->
// DELIVERED. Arrival notifies the receiver by SMS.
func UpdateStatus(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedFreightStatus").(*freightValidator.UpdateStatusRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	db := database.Database.Db

	var freight models.Freight
	if err := db.Where("id = ? AND is_deleted = false", reqData.FreightID).First(&freight).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Freight not found!", nil)
	}

	freight.Status = reqData.Status
	if err := db.Save(&freight).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update freight status!", nil)
	}

	if freight.Status == models.FreightStatusArrived && freight.ReceiverPhone != "" {
		go utils.SendFreightArrivalSMS(freight.ReceiverPhone, freight.ProductCode)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Freight status updated successfully!", freight)
}

// ManifestPdf renders the day's consignment manifest for printing.
func ManifestPdf(c *fiber.Ctx) error {
	dateStr := c.Query("date")
	if dateStr == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date is required!", nil)
	}
	date, err := time.Parse("2006-01-02", dateStr)
	if err != nil {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date! Expected format YYYY-MM-DD.", nil)
	}

	var freights []models.Freight
	if err := database.Database.Db.
		Where("send_date = ? AND is_deleted = false", date).
		Order("product_code asc").Find(&freights).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch freight records!", nil)
	}

	pdf, err := utils.FreightManifestPdf(date, freights)
	if err != nil {
		log.Printf("Error rendering manifest: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to render manifest!", nil)
	}

	c.Set("Content-Type", "application/pdf")
	c.Set("Content-Disposition", `attachment; filename="manifest-`+dateStr+`.pdf"`)
	return c.Send(pdf)
}

func upsertCustomer(name, phone string) {
	db := database.Database.Db

	var customer models.Customer
	if err := db.Where("phone = ?", phone).First(&customer).Error; err == nil {
		return
	}
	if err := db.Create(&models.Customer{Name: name, Phone: phone}).Error; err != nil {
		log.Printf("Error saving customer %s: %v", phone, err)
	}
}
