package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name                string `gorm:"default:''"`
	Email               string `gorm:"unique;not null"`
	Mobile              string `gorm:"default:''"`
	Role                string `gorm:"default:'STAFF'"` // STAFF, ADMIN
	Password            string `gorm:"not null"`
	Station             string `gorm:"default:''"` // home station the staff member works at
	LastLogin           time.Time
	FailedLoginAttempts int  `gorm:"default:0"`
	IsBlocked           bool `gorm:"default:false"`
	IsDeleted           bool `gorm:"default:false"`
}
