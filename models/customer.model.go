package models

import "gorm.io/gorm"

// Customer is looked up by phone number from the booking and freight desks.
type Customer struct {
	gorm.Model
	Name      string `json:"name"`
	Phone     string `json:"phone" gorm:"uniqueIndex;not null"`
	Address   string `json:"address" gorm:"default:''"`
	Note      string `json:"note" gorm:"default:''"`
	IsDeleted bool   `json:"is_deleted" gorm:"default:false"`
}
