package models

import (
	"time"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	FreightStatusReceived  = "RECEIVED"
	FreightStatusLoaded    = "LOADED"
	FreightStatusArrived   = "ARRIVED"
	FreightStatusDelivered = "DELIVERED"

	FreightPayerSender   = "SENDER"
	FreightPayerReceiver = "RECEIVER"
)

// Freight is one consignment taken in at a station counter. ProductCode is the
// allocator output (station code + DDMMYY + daily sequence) and identifies the
// consignment on the waybill and at the receiving desk.
type Freight struct {
	gorm.Model
	ProductCode   string    `json:"productCode" gorm:"size:32;uniqueIndex;not null"`
	SenderName    string    `json:"senderName" gorm:"not null"`
	SenderPhone   string    `json:"senderPhone" gorm:"index;not null"`
	ReceiverName  string    `json:"receiverName" gorm:"default:''"`
	ReceiverPhone string    `json:"receiverPhone" gorm:"index;default:''"`
	SenderStation string    `json:"senderStation" gorm:"not null"`
	SendDate      time.Time `json:"sendDate" gorm:"type:date;index;not null"`
	TimeSlotID    *uint     `json:"timeSlotId" gorm:"index"`
	Description   string    `json:"description" gorm:"default:''"`
	Quantity      int       `json:"quantity" gorm:"default:1"`
	WeightKg      float64   `json:"weightKg" gorm:"default:0"`
	Fee           float64   `json:"fee" gorm:"default:0"`
	CodAmount     float64   `json:"codAmount" gorm:"default:0"`
	PaidBy        string    `json:"paidBy" gorm:"default:'SENDER'"` // SENDER / RECEIVER
	Status        string    `json:"status" gorm:"default:'RECEIVED'"`
	// Items keeps the per-piece breakdown exactly as entered at the counter.
	Items     datatypes.JSON `json:"items"`
	CreatedBy uint           `json:"createdBy"`
	IsDeleted bool           `json:"is_deleted" gorm:"default:false"`
}
