package models

import (
	"time"

	"gorm.io/gorm"
)

const (
	BookingStatusBooked    = "BOOKED"
	BookingStatusCancelled = "CANCELLED"

	PaymentStatusUnpaid   = "UNPAID"
	PaymentStatusPaid     = "PAID"
	PaymentStatusRefunded = "REFUNDED"
)

// Booking is a seat reservation against one generated time slot.
type Booking struct {
	gorm.Model
	Reference     string    `json:"reference" gorm:"size:36;uniqueIndex;not null"`
	CustomerName  string    `json:"customerName" gorm:"not null"`
	CustomerPhone string    `json:"customerPhone" gorm:"index;not null"`
	TimeSlotID    uint      `json:"timeSlotId" gorm:"index;not null"`
	TravelDate    time.Time `json:"travelDate" gorm:"type:date;index;not null"`
	SeatCount     int       `json:"seatCount" gorm:"not null;default:1"`
	Pickup        string    `json:"pickup" gorm:"default:''"`
	Dropoff       string    `json:"dropoff" gorm:"default:''"`
	Fare          float64   `json:"fare" gorm:"not null;default:0"`
	PaymentStatus string    `json:"paymentStatus" gorm:"default:'UNPAID'"`
	Status        string    `json:"status" gorm:"default:'BOOKED'"`
	CreatedBy     uint      `json:"createdBy"`
	IsDeleted     bool      `json:"is_deleted" gorm:"default:false"`

	TimeSlot TimeSlot `json:"-" gorm:"foreignKey:TimeSlotID"`
}
