// Package sequence issues freight product codes. A code is the sender
// station's short code, the send date as DDMMYY and a per-station-day sequence
// number, e.g. "HCM-150125-007". The sequence lives in the freight_counters
// table and is advanced with a single upsert so two counters taking in freight
// at the same desk can never be handed the same number.
package sequence

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"
)

// DefaultStationCode is used when a station name has no usable token.
const DefaultStationCode = "00"

// Code is a parsed or freshly allocated product code.
type Code struct {
	Station  string
	DateKey  string // DDMMYY
	Sequence int64
}

// String formats the code as STATION-DDMMYY-NNN. The sequence is zero-padded
// to three digits; wider values keep their natural width.
func (c Code) String() string {
	return fmt.Sprintf("%s-%s-%03d", c.Station, c.DateKey, c.Sequence)
}

// StationCode derives the short code from a station name: the first
// space-delimited token, or DefaultStationCode when there is none.
func StationCode(stationName string) string {
	fields := strings.Fields(stationName)
	if len(fields) == 0 {
		return DefaultStationCode
	}
	return fields[0]
}

// DateKey formats a send date as DDMMYY.
func DateKey(t time.Time) string {
	return t.Format("020106")
}

// PartitionKey scopes a counter to one station-day.
func PartitionKey(stationCode, dateKey string) string {
	return stationCode + "_" + dateKey
}

// Allocate advances the counter for (stationName, sendDate) and returns the
// resulting product code. The first allocation for a partition starts at 1.
// The increment is one statement, so callers that need the counter rolled back
// together with a failed record insert should pass a transaction handle.
func Allocate(db *gorm.DB, stationName string, sendDate time.Time) (Code, error) {
	code := Code{
		Station: StationCode(stationName),
		DateKey: DateKey(sendDate),
	}
	key := PartitionKey(code.Station, code.DateKey)

	next, err := nextValue(db, key)
	if err != nil {
		return Code{}, fmt.Errorf("allocate product code for %s: %w", key, err)
	}

	code.Sequence = next
	return code, nil
}

func nextValue(db *gorm.DB, key string) (int64, error) {
	now := time.Now()

	if db.Dialector.Name() == "mysql" {
		// MySQL has no RETURNING; LAST_INSERT_ID(expr) carries the updated
		// value out, but only on the connection that ran the insert. The
		// transaction pins both statements to one connection even when the
		// caller hands in a bare pool handle. RowsAffected is 1 for a fresh
		// insert and 2 when the ON DUPLICATE branch ran.
		var next int64
		err := db.Transaction(func(tx *gorm.DB) error {
			res := tx.Exec(
				`INSERT INTO freight_counters (partition_key, value, updated_at)
				 VALUES (?, 1, ?)
				 ON DUPLICATE KEY UPDATE value = LAST_INSERT_ID(value + 1), updated_at = ?`,
				key, now, now,
			)
			if res.Error != nil {
				return res.Error
			}
			if res.RowsAffected == 1 {
				next = 1
				return nil
			}
			return tx.Raw(`SELECT LAST_INSERT_ID()`).Scan(&next).Error
		})
		if err != nil {
			return 0, err
		}
		return next, nil
	}

	// Upsert-with-increment; unqualified "value" in DO UPDATE refers to the
	// existing row on both postgres and sqlite.
	var next int64
	err := db.Raw(
		`INSERT INTO freight_counters (partition_key, value, updated_at)
		 VALUES (?, 1, ?)
		 ON CONFLICT (partition_key)
		 DO UPDATE SET value = value + 1, updated_at = ?
		 RETURNING value`,
		key, now, now,
	).Scan(&next).Error
	if err != nil {
		return 0, err
	}
	return next, nil
}

// Parse splits a formatted product code back into its components. Station
// codes may themselves contain hyphens, so the code is read from the right:
// the last segment is the sequence, the one before it the date key, and
// whatever remains is the station.
func Parse(s string) (Code, error) {
	seqAt := strings.LastIndex(s, "-")
	if seqAt < 0 {
		return Code{}, fmt.Errorf("malformed product code %q", s)
	}
	dateAt := strings.LastIndex(s[:seqAt], "-")
	if dateAt < 1 {
		return Code{}, fmt.Errorf("malformed product code %q", s)
	}

	station := s[:dateAt]
	dateKey := s[dateAt+1 : seqAt]
	if len(dateKey) != 6 {
		return Code{}, fmt.Errorf("malformed date key in product code %q", s)
	}
	if _, err := strconv.Atoi(dateKey); err != nil {
		return Code{}, fmt.Errorf("malformed date key in product code %q", s)
	}
	seq, err := strconv.ParseInt(s[seqAt+1:], 10, 64)
	if err != nil || seq < 1 {
		return Code{}, fmt.Errorf("malformed sequence in product code %q", s)
	}
	return Code{Station: station, DateKey: dateKey, Sequence: seq}, nil
}
