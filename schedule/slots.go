// Package schedule generates the fixed daily departure board: one slot every
// half hour on each of the two directional routes.
package schedule

import (
	"fmt"
	"time"

	"busline/models"
)

const (
	RouteOutbound = "Outbound"
	RouteInbound  = "Inbound"

	// VehicleType labels every generated slot; the fleet runs one class.
	VehicleType = "Limousine 34"
)

// routeWindow is a half-hourly departure range. First departure is
// startHour:30, last is endHour:00.
type routeWindow struct {
	route     string
	startHour int
	endHour   int
}

// The two fixed routes: outbound 05:30 through 20:00, inbound 03:30 through
// 18:00. Outbound slots come first in the generated order.
var windows = []routeWindow{
	{route: RouteOutbound, startHour: 5, endHour: 20},
	{route: RouteInbound, startHour: 3, endHour: 18},
}

// Generate enumerates the full departure board for one date. It is pure and
// deterministic: same date in, same ordered slot list out. Ordering is
// outbound first, then inbound, each ascending by time.
func Generate(date time.Time) []models.TimeSlot {
	day := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, time.UTC)

	var slots []models.TimeSlot
	for _, w := range windows {
		for _, t := range w.times() {
			slots = append(slots, models.TimeSlot{
				SlotDate:    day,
				SlotTime:    t,
				Route:       w.route,
				VehicleType: VehicleType,
			})
		}
	}
	return slots
}

// times lists the HH:MM departures for one window: only :30 at the start
// hour, :00 and :30 for every hour in between, only :00 at the end hour.
func (w routeWindow) times() []string {
	var out []string
	out = append(out, fmt.Sprintf("%02d:30", w.startHour))
	for h := w.startHour + 1; h <= w.endHour; h++ {
		out = append(out, fmt.Sprintf("%02d:00", h))
		if h < w.endHour {
			out = append(out, fmt.Sprintf("%02d:30", h))
		}
	}
	return out
}
