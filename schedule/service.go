package schedule

import (
	"errors"
	"strings"
	"time"

	"busline/models"

	"gorm.io/gorm"
)

// ErrAlreadyExists reports that slots for the requested date were generated
// before. It is an expected business outcome, not a store failure, and callers
// surface it as a conflict rather than a server error.
var ErrAlreadyExists = errors.New("time slots already generated for date")

// GenerateForDate creates the full departure board for a date. The existence
// check and the bulk insert run inside one transaction, and the unique index
// on (slot_date, slot_time, route) turns the remaining check-then-insert race
// into a duplicate-key error, which is reported as ErrAlreadyExists as well.
// Either every slot is persisted or none are.
func GenerateForDate(db *gorm.DB, date time.Time) ([]models.TimeSlot, error) {
	slots := Generate(date)

	err := db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.TimeSlot{}).
			Where("slot_date = ?", slots[0].SlotDate).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrAlreadyExists
		}
		return tx.Create(&slots).Error
	})
	if err != nil {
		if errors.Is(err, ErrAlreadyExists) || isDuplicateKey(err) {
			return nil, ErrAlreadyExists
		}
		return nil, err
	}

	return slots, nil
}

// isDuplicateKey matches unique-constraint violations across the supported
// drivers (gorm only translates them for some dialects).
func isDuplicateKey(err error) bool {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "duplicate") || strings.Contains(msg, "unique constraint")
}
