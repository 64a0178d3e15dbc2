package timeslotValidator

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func generateApp() *fiber.App {
	app := fiber.New()
	app.Post("/generate", Generate(), func(c *fiber.Ctx) error {
		req := c.Locals("validatedGenerate").(*GenerateRequest)
		return c.JSON(fiber.Map{"success": true, "date": req.Date.Format("2006-01-02")})
	})
	return app
}

func TestGenerateRequiresDate(t *testing.T) {
	app := generateApp()

	body, _ := json.Marshal(fiber.Map{})
	req := httptest.NewRequest("POST", "/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGenerateRejectsUnparseableDate(t *testing.T) {
	app := generateApp()

	for _, bad := range []string{"15-01-2025", "2025/01/15", "notadate"} {
		body, _ := json.Marshal(fiber.Map{"date": bad})
		req := httptest.NewRequest("POST", "/generate", bytes.NewReader(body))
		req.Header.Set("Content-Type", "application/json")

		resp, err := app.Test(req, -1)
		require.NoError(t, err)
		assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode, "date %q should be rejected", bad)
	}
}

func TestGeneratePassesValidDate(t *testing.T) {
	app := generateApp()

	body, _ := json.Marshal(fiber.Map{"date": "2025-01-15"})
	req := httptest.NewRequest("POST", "/generate", bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	var out struct {
		Date string `json:"date"`
	}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	assert.Equal(t, "2025-01-15", out.Date)
}

func TestListValidatesRoute(t *testing.T) {
	app := fiber.New()
	app.Get("/list", List(), func(c *fiber.Ctx) error {
		return c.SendStatus(fiber.StatusOK)
	})

	resp, err := app.Test(httptest.NewRequest("GET", "/list?date=2025-01-15&route=Sideways", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/list?date=2025-01-15&route=Outbound", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}
