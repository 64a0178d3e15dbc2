package models

import "time"

// FreightCounter stores the next-issued sequence value for one station-day
// partition. Rows are only ever created or incremented, never deleted, so a
// sequence value is never reissued for a partition.
type FreightCounter struct {
	PartitionKey string    `gorm:"primaryKey;size:64" json:"partition_key"` // stationCode_DDMMYY
	Value        int64     `gorm:"not null" json:"value"`
	UpdatedAt    time.Time `json:"updated_at"`
}

func (FreightCounter) TableName() string { return "freight_counters" }
