package utils

import (
	"busline/config"
	"busline/database"
	"busline/models"
	"fmt"
	"log"

	"github.com/go-resty/resty/v2"
)

var smsClient = resty.New()

// SendFreightArrivalSMS tells the receiver their consignment reached the
// destination station. Failures are logged, never surfaced to the caller --
// the status update must not depend on the gateway.
func SendFreightArrivalSMS(phone, productCode string) {
	body := fmt.Sprintf("Your freight %s has arrived and is ready for pickup. - %s", productCode, config.AppConfig.CompanyName)
	sendSMS(phone, body)
}

func sendSMS(phone, body string) {
	entry := models.SmsLog{Phone: phone, Body: body, Status: "SENT"}

	if config.AppConfig.SmsApiKey == "" {
		log.Printf("SMS gateway not configured, skipping send to %s", phone)
		entry.Status = "FAILED"
		database.Database.Db.Create(&entry)
		return
	}

	resp, err := smsClient.R().
		SetQueryParams(map[string]string{
			"authorization": config.AppConfig.SmsApiKey,
			"route":         "q",
			"sender_id":     config.AppConfig.SmsSenderID,
			"message":       body,
			"numbers":       phone,
		}).
		Get(config.AppConfig.SmsApiUrl)
	if err != nil {
		log.Printf("Error while sending SMS to %s: %v", phone, err)
		entry.Status = "FAILED"
	} else if resp.StatusCode() != 200 {
		log.Printf("Failed to send SMS to %s, response code: %d", phone, resp.StatusCode())
		entry.Status = "FAILED"
	} else {
		entry.MessageID = resp.Header().Get("X-Request-Id")
	}

	if err := database.Database.Db.Create(&entry).Error; err != nil {
		log.Printf("Error saving SMS log: %v", err)
	}
}
