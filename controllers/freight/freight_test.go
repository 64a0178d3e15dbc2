package freightController

import (
	"bytes"
	"encoding/json"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"busline/config"
	"busline/database"
	"busline/models"
	freightValidator "busline/validators/freight"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupApp(t *testing.T) *fiber.App {
	t.Helper()

	config.AppConfig = &config.Config{CompanyName: "Busline Transport Co."}

	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "busline.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(
		&models.Freight{}, &models.FreightCounter{}, &models.Customer{}, &models.SmsLog{},
	))
	database.Database = database.DbInstance{Db: db}

	app := fiber.New()
	app.Post("/freight/create", freightValidator.Create(), Create)
	app.Get("/freight/list", freightValidator.List(), List)
	app.Get("/freight/code/:code", GetByCode)
	app.Post("/freight/update-status", freightValidator.UpdateStatus(), UpdateStatus)
	return app
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
}

func post(t *testing.T, app *fiber.App, path string, payload any) (*envelope, int) {
	t.Helper()

	body, _ := json.Marshal(payload)
	req := httptest.NewRequest("POST", path, bytes.NewReader(body))
	req.Header.Set("Content-Type", "application/json")

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var env envelope
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&env))
	return &env, resp.StatusCode
}

func createPayload() fiber.Map {
	return fiber.Map{
		"senderName":    "Nguyen Van A",
		"senderPhone":   "0909000111",
		"receiverName":  "Tran Thi B",
		"receiverPhone": "0912345678",
		"senderStation": "HCM Mien Dong",
		"sendDate":      "2025-01-15",
		"description":   "Two boxes of documents",
		"quantity":      2,
		"weightKg":      4.5,
		"fee":           60000,
	}
}

func TestCreateAllocatesSequentialCodes(t *testing.T) {
	app := setupApp(t)

	env, status := post(t, app, "/freight/create", createPayload())
	require.Equal(t, fiber.StatusCreated, status)
	require.True(t, env.Success)

	var first models.Freight
	require.NoError(t, json.Unmarshal(env.Data, &first))
	assert.Equal(t, "HCM-150125-001", first.ProductCode)
	assert.Equal(t, models.FreightStatusReceived, first.Status)

	env, status = post(t, app, "/freight/create", createPayload())
	require.Equal(t, fiber.StatusCreated, status)

	var second models.Freight
	require.NoError(t, json.Unmarshal(env.Data, &second))
	assert.Equal(t, "HCM-150125-002", second.ProductCode)

	// Sender is kept on file for the customer desk
	var customer models.Customer
	require.NoError(t, database.Database.Db.Where("phone = ?", "0909000111").First(&customer).Error)
}

func TestCreateRequiresSendDate(t *testing.T) {
	app := setupApp(t)

	payload := createPayload()
	delete(payload, "sendDate")

	env, status := post(t, app, "/freight/create", payload)
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
}

func TestGetByCode(t *testing.T) {
	app := setupApp(t)

	_, status := post(t, app, "/freight/create", createPayload())
	require.Equal(t, fiber.StatusCreated, status)

	resp, err := app.Test(httptest.NewRequest("GET", "/freight/code/HCM-150125-001", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/freight/code/HCM-150125-099", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)

	resp, err = app.Test(httptest.NewRequest("GET", "/freight/code/garbage", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusBadRequest, resp.StatusCode)
}

func TestGetByCodeHyphenatedStation(t *testing.T) {
	app := setupApp(t)

	payload := createPayload()
	payload["senderStation"] = "Xuan-Loc Depot"

	env, status := post(t, app, "/freight/create", payload)
	require.Equal(t, fiber.StatusCreated, status)

	var freight models.Freight
	require.NoError(t, json.Unmarshal(env.Data, &freight))
	require.Equal(t, "Xuan-Loc-150125-001", freight.ProductCode)

	// The issued code must resolve even though the station token has a hyphen
	resp, err := app.Test(httptest.NewRequest("GET", "/freight/code/Xuan-Loc-150125-001", nil), -1)
	require.NoError(t, err)
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)
}

func TestUpdateStatus(t *testing.T) {
	app := setupApp(t)

	env, status := post(t, app, "/freight/create", createPayload())
	require.Equal(t, fiber.StatusCreated, status)

	var freight models.Freight
	require.NoError(t, json.Unmarshal(env.Data, &freight))

	env, status = post(t, app, "/freight/update-status", fiber.Map{
		"freightId": freight.ID,
		"status":    "loaded",
	})
	require.Equal(t, fiber.StatusOK, status)

	var updated models.Freight
	require.NoError(t, json.Unmarshal(env.Data, &updated))
	assert.Equal(t, models.FreightStatusLoaded, updated.Status)

	env, status = post(t, app, "/freight/update-status", fiber.Map{
		"freightId": freight.ID,
		"status":    "TELEPORTED",
	})
	assert.Equal(t, fiber.StatusUnprocessableEntity, status)
	assert.False(t, env.Success)
}
