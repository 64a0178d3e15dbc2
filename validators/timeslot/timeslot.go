package timeslotValidator

import (
	"busline/middleware"
	"busline/schedule"
	"time"

	"github.com/gofiber/fiber/v2"
)

type GenerateRequest struct {
	Date time.Time
}

type ListRequest struct {
	Date  time.Time
	Route string
}

// Generate requires an explicit, parseable date; nothing is defaulted to
// "today" so back-dated and forward-dated boards can be generated alike.
func Generate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		body := new(struct {
			Date string `json:"date"`
		})

		if err := c.BodyParser(body); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if body.Date == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date is required!", nil)
		}

		date, err := time.Parse("2006-01-02", body.Date)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date! Expected format YYYY-MM-DD.", nil)
		}

		c.Locals("validatedGenerate", &GenerateRequest{Date: date})
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		dateStr := c.Query("date")
		if dateStr == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Date is required!", nil)
		}

		date, err := time.Parse("2006-01-02", dateStr)
		if err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid date! Expected format YYYY-MM-DD.", nil)
		}

		route := c.Query("route")
		if route != "" && route != schedule.RouteOutbound && route != schedule.RouteInbound {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid route! Allowed: Outbound, Inbound.", nil)
		}

		c.Locals("validatedSlotList", &ListRequest{Date: date, Route: route})
		return c.Next()
	}
}
