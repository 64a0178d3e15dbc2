package customerValidator

import (
	"busline/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

type LookupRequest struct {
	Phone string
}

type ListRequest struct {
	Page   int
	Limit  int
	Search string
}

// Lookup rejects a missing phone before any query runs.
func Lookup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		phone := c.Query("phone")
		if phone == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Phone is required!", nil)
		}

		if err := validate.Var(phone, "numeric,min=9,max=11"); err != nil {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"phone": "Phone must be 9-11 digits!",
			})
		}

		c.Locals("validatedLookup", &LookupRequest{Phone: phone})
		return c.Next()
	}
}

func List() fiber.Handler {
	return func(c *fiber.Ctx) error {
		req := &ListRequest{
			Page:   c.QueryInt("page", 1),
			Limit:  c.QueryInt("limit", 10),
			Search: c.Query("search"),
		}

		errors := make(map[string]string)

		if req.Page < 1 {
			errors["page"] = "Page must be greater than 0!"
		}
		if req.Limit < 1 {
			errors["limit"] = "Limit must be greater than 0!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCustomerList", req)
		return c.Next()
	}
}
