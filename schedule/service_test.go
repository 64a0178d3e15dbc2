package schedule

import (
	"path/filepath"
	"testing"
	"time"

	"busline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(filepath.Join(t.TempDir(), "busline.db")), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.TimeSlot{}))
	return db
}

func slotCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.TimeSlot{}).Count(&count).Error)
	return count
}

func TestGenerateForDatePersistsFullBoard(t *testing.T) {
	db := openTestDB(t)

	slots, err := GenerateForDate(db, testDate)
	require.NoError(t, err)

	assert.Equal(t, int64(len(slots)), slotCount(t, db))
	assert.Equal(t, len(Generate(testDate)), len(slots))
}

func TestGenerateForDateRefusesSecondRun(t *testing.T) {
	db := openTestDB(t)

	_, err := GenerateForDate(db, testDate)
	require.NoError(t, err)
	before := slotCount(t, db)

	_, err = GenerateForDate(db, testDate)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, before, slotCount(t, db), "refused run must not insert anything")
}

func TestGenerateForDateIndependentDates(t *testing.T) {
	db := openTestDB(t)

	first, err := GenerateForDate(db, testDate)
	require.NoError(t, err)
	second, err := GenerateForDate(db, testDate.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.Equal(t, int64(len(first)+len(second)), slotCount(t, db))
}

func TestGenerateForDateDetectsPartialBoard(t *testing.T) {
	db := openTestDB(t)

	// Even a single pre-existing slot for the date blocks generation
	require.NoError(t, db.Create(&models.TimeSlot{
		SlotDate:    time.Date(testDate.Year(), testDate.Month(), testDate.Day(), 0, 0, 0, 0, time.UTC),
		SlotTime:    "05:30",
		Route:       RouteOutbound,
		VehicleType: VehicleType,
	}).Error)

	_, err := GenerateForDate(db, testDate)
	assert.ErrorIs(t, err, ErrAlreadyExists)
	assert.Equal(t, int64(1), slotCount(t, db))
}

func TestIsDuplicateKey(t *testing.T) {
	db := openTestDB(t)

	slot := models.TimeSlot{SlotDate: testDate, SlotTime: "05:30", Route: RouteOutbound, VehicleType: VehicleType}
	require.NoError(t, db.Create(&slot).Error)

	dup := models.TimeSlot{SlotDate: testDate, SlotTime: "05:30", Route: RouteOutbound, VehicleType: VehicleType}
	err := db.Create(&dup).Error
	require.Error(t, err)
	assert.True(t, isDuplicateKey(err))
}
