package sequence

import (
	"path/filepath"
	"sync"
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
	require.NoError(t, db.AutoMigrate(&models.FreightCounter{}))
	return db
}

func TestStationCode(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"multi word", "HCM Central", "HCM"},
		{"empty", "", "00"},
		{"blank", "   ", "00"},
		{"single token", "SingleToken", "SingleToken"},
		{"leading spaces", "  HN Giap Bat", "HN"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, StationCode(tc.in))
		})
	}
}

func TestDateKey(t *testing.T) {
	assert.Equal(t, "050125", DateKey(time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "311299", DateKey(time.Date(1999, 12, 31, 23, 59, 0, 0, time.UTC)))
}

func TestCodeString(t *testing.T) {
	assert.Equal(t, "HCM-150125-007", Code{Station: "HCM", DateKey: "150125", Sequence: 7}.String())
	// Width grows naturally past three digits, no truncation
	assert.Equal(t, "HCM-150125-1000", Code{Station: "HCM", DateKey: "150125", Sequence: 1000}.String())
}

func TestParseRoundTrip(t *testing.T) {
	in := Code{Station: "HCM", DateKey: "050125", Sequence: 7}

	out, err := Parse(in.String())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseHyphenatedStation(t *testing.T) {
	// Station short codes can carry hyphens of their own; only the last two
	// segments are date key and sequence.
	in := Code{Station: "Xuan-Loc", DateKey: "150125", Sequence: 7}

	out, err := Parse("Xuan-Loc-150125-007")
	require.NoError(t, err)
	assert.Equal(t, in, out)

	out, err = Parse(in.String())
	require.NoError(t, err)
	assert.Equal(t, in, out)
}

func TestParseRejectsMalformed(t *testing.T) {
	for _, s := range []string{
		"", "garbage", "HCM-050125", "HCM-05012-007", "HCM-0501AB-007",
		"HCM-050125-abc", "HCM-050125-000", "-050125-007",
	} {
		_, err := Parse(s)
		assert.Error(t, err, "expected error for %q", s)
	}
}

func TestAllocateSequential(t *testing.T) {
	db := openTestDB(t)
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	for i, want := range []string{"HCM-050125-001", "HCM-050125-002", "HCM-050125-003"} {
		code, err := Allocate(db, "HCM Central", date)
		require.NoError(t, err, "allocation %d", i+1)
		assert.Equal(t, want, code.String())
	}
}

func TestAllocatePartitionsAreIndependent(t *testing.T) {
	db := openTestDB(t)
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	hcm, err := Allocate(db, "HCM Central", date)
	require.NoError(t, err)
	hn, err := Allocate(db, "HN Giap Bat", date)
	require.NoError(t, err)
	nextDay, err := Allocate(db, "HCM Central", date.AddDate(0, 0, 1))
	require.NoError(t, err)

	assert.EqualValues(t, 1, hcm.Sequence)
	assert.EqualValues(t, 1, hn.Sequence)
	assert.EqualValues(t, 1, nextDay.Sequence)

	// Second allocation on the first partition is unaffected by the others
	hcm2, err := Allocate(db, "HCM Central", date)
	require.NoError(t, err)
	assert.EqualValues(t, 2, hcm2.Sequence)
}

func TestAllocateEmptyStationFallsBack(t *testing.T) {
	db := openTestDB(t)

	code, err := Allocate(db, "", time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "00-050125-001", code.String())
}

func TestAllocateConcurrentDistinct(t *testing.T) {
	db := openTestDB(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)

	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)
	const n = 10

	results := make(chan int64, n)
	var wg sync.WaitGroup
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			code, err := Allocate(db, "HCM Central", date)
			assert.NoError(t, err)
			results <- code.Sequence
		}()
	}
	wg.Wait()
	close(results)

	// Every allocation must see a value nobody else got
	seen := make(map[int64]bool, n)
	for seq := range results {
		assert.False(t, seen[seq], "sequence %d handed out twice", seq)
		seen[seq] = true
	}
	assert.Len(t, seen, n)
}

func TestAllocateRollsBackWithTransaction(t *testing.T) {
	db := openTestDB(t)
	date := time.Date(2025, 1, 5, 0, 0, 0, 0, time.UTC)

	// A failed business insert rolls the increment back with it
	err := db.Transaction(func(tx *gorm.DB) error {
		_, err := Allocate(tx, "HCM Central", date)
		require.NoError(t, err)
		return assert.AnError
	})
	require.Error(t, err)

	code, err := Allocate(db, "HCM Central", date)
	require.NoError(t, err)
	assert.EqualValues(t, 1, code.Sequence)
}
