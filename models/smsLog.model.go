package models

import "gorm.io/gorm"

// SmsLog records every message handed to the SMS gateway, delivered or not.
type SmsLog struct {
	gorm.Model
	Phone     string `json:"phone" gorm:"index;not null"`
	Body      string `json:"body" gorm:"not null"`
	MessageID string `json:"message_id" gorm:"default:''"` // gateway request id
	Status    string `json:"status" gorm:"default:'SENT'"` // SENT / FAILED
}
