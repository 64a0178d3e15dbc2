package models

import "gorm.io/gorm"

// Station is a pickup/intake point. Code is the first word of the name and is
// what the freight code allocator partitions on.
type Station struct {
	gorm.Model
	Name     string `json:"name" gorm:"uniqueIndex;not null"`
	Code     string `json:"code" gorm:"size:16;not null"`
	IsActive bool   `json:"is_active" gorm:"default:true"`
}
