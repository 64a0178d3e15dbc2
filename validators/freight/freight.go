package freightValidator

import (
	"busline/middleware"
	"busline/models"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type FreightItem struct {
	Name     string  `json:"name"`
	Quantity int     `json:"quantity"`
	WeightKg float64 `json:"weightKg"`
}

type CreateRequest struct {
	SenderName    string        `json:"senderName"`
	SenderPhone   string        `json:"senderPhone"`
	ReceiverName  string        `json:"receiverName"`
	ReceiverPhone string        `json:"receiverPhone"`
	SenderStation string        `json:"senderStation"`
	SendDate      string        `json:"sendDate"`
	TimeSlotID    *uint         `json:"timeSlotId"`
	Description   string        `json:"description"`
	Quantity      int           `json:"quantity"`
	WeightKg      float64       `json:"weightKg"`
	Fee           float64       `json:"fee"`
	CodAmount     float64       `json:"codAmount"`
	PaidBy        string        `json:"paidBy"`
	Items         []FreightItem `json:"items"`

	ParsedSendDate time.Time `json:"-"`
}

type ListRequest struct {
	Page    int
	Limit   int
	Date    *time.Time
	Station string
	Status  string
}

type UpdateStatusRequest struct {
	FreightID uint   `json:"freightId"`
	Status    string `json:"status"`
}

var validStatus = map[string]bool{
	models.FreightStatusReceived:  true,
	models.FreightStatusLoaded:    true,
	models.FreightStatusArrived:   true,
	models.FreightStatusDelivered: true,
}

func Create() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(CreateRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		reqData.SenderName = strings.TrimSpace(reqData.SenderName)
		if reqData.SenderName == "" {
			errors["senderName"] = "Sender name is required!"
		}

		if err := validate.Var(reqData.SenderPhone, "required,numeric,min=9,max=11"); err != nil {
			errors["senderPhone"] = "Sender phone must be 9-11 digits!"
		}
		if reqData.ReceiverPhone != "" {
			if err := validate.Var(reqData.ReceiverPhone, "numeric,min=9,max=11"); err != nil {
				errors["receiverPhone"] = "Receiver phone must be 9-11 digits!"
			}
		}

		reqData.SenderStation = strings.TrimSpace(reqData.SenderStation)
		if reqData.SenderStation == "" {
			errors["senderStation"] = "Sender station is required!"
		}

		if reqData.SendDate == "" {
			errors["sendDate"] = "Send date is required!"
		} else if parsed, err := time.Parse("2006-01-02", reqData.SendDate); err != nil {
			errors["sendDate"] = "Invalid send date! Expected format YYYY-MM-DD."
		} else {
			reqData.ParsedSendDate = parsed
		}

		if reqData.Quantity < 0 {
			errors["quantity"] = "Quantity cannot be negative!"
		}
		if reqData.Fee < 0 {
			errors["fee"] = "Fee cannot be negative!"
		}
		if reqData.CodAmount < 0 {
			errors["codAmount"] = "COD amount cannot be negative!"
		}

		if reqData.PaidBy != "" {
			valid := map[string]bool{models.FreightPayerSender: true, models.FreightPayerReceiver: true}
			reqData.PaidBy = strings.ToUpper(reqData.PaidBy)
			if !valid[reqData.PaidBy] {
				errors["paidBy"] = "Invalid payer! Allowed: SENDER, RECEIVER."
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFreightCreate", reqData)
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := &ListRequest{
			Page:    c.QueryInt("page", 1),
			Limit:   c.QueryInt("limit", 10),
			Station: c.Query("station"),
			Status:  strings.ToUpper(c.Query("status")),
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

		if req.Status != "" && !validStatus[req.Status] {
			errors["status"] = "Invalid status! Allowed: RECEIVED, LOADED, ARRIVED, DELIVERED."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFreightList", req)
		return c.Next()
	}
}

func UpdateStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(UpdateStatusRequest)

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.FreightID == 0 {
			errors["freightId"] = "Freight ID is required!"
		}

		reqData.Status = strings.ToUpper(strings.TrimSpace(reqData.Status))
		if reqData.Status == "" {
			errors["status"] = "Status is required!"
		} else if !validStatus[reqData.Status] {
			errors["status"] = "Invalid status! Allowed: RECEIVED, LOADED, ARRIVED, DELIVERED."
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedFreightStatus", reqData)
		return c.Next()
	}
}
