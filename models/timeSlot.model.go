package models

import (
	"time"

	"gorm.io/gorm"
)

// TimeSlot is one fixed departure on one of the two directional routes.
// Slots are generated in bulk for a calendar date and never mutated afterwards.
// The composite unique index is the source of truth for "already generated" --
// a duplicate-key error on insert means another call won the race.
type TimeSlot struct {
	gorm.Model
	SlotDate    time.Time `json:"slotDate" gorm:"type:date;not null;uniqueIndex:uk_time_slots_departure,priority:1"`
	SlotTime    string    `json:"slotTime" gorm:"size:5;not null;uniqueIndex:uk_time_slots_departure,priority:2"` // HH:MM, 24h
	Route       string    `json:"route" gorm:"size:32;not null;uniqueIndex:uk_time_slots_departure,priority:3"`
	VehicleType string    `json:"vehicleType" gorm:"size:64;not null"`
}

func (TimeSlot) TableName() string {
	return "time_slots"
}
