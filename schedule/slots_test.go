package schedule

import (
	"fmt"
	"testing"
	"time"

	"busline/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testDate = time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC)

func TestGenerateIsDeterministic(t *testing.T) {
	a := Generate(testDate)
	b := Generate(testDate)
	assert.Equal(t, a, b)
}

func TestGenerateSplitsEvenlyAcrossRoutes(t *testing.T) {
	slots := Generate(testDate)

	var outbound, inbound int
	for _, s := range slots {
		switch s.Route {
		case RouteOutbound:
			outbound++
		case RouteInbound:
			inbound++
		default:
			t.Fatalf("unexpected route %q", s.Route)
		}
	}

	assert.Equal(t, outbound, inbound)
	assert.Equal(t, outbound+inbound, len(slots))
}

func TestGenerateOutboundBoundaries(t *testing.T) {
	slots := routeSlots(Generate(testDate), RouteOutbound)
	require.NotEmpty(t, slots)

	assert.Equal(t, "05:30", slots[0])
	assert.Equal(t, "20:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "05:00")
	assert.NotContains(t, slots, "20:30")
}

func TestGenerateInboundBoundaries(t *testing.T) {
	slots := routeSlots(Generate(testDate), RouteInbound)
	require.NotEmpty(t, slots)

	assert.Equal(t, "03:30", slots[0])
	assert.Equal(t, "18:00", slots[len(slots)-1])
	assert.NotContains(t, slots, "03:00")
	assert.NotContains(t, slots, "18:30")
}

func TestGenerateHalfHourEnumeration(t *testing.T) {
	// Only :30 at the start hour, both marks in between, only :00 at the end
	slots := routeSlots(Generate(testDate), RouteOutbound)

	want := []string{"05:30"}
	for h := 6; h <= 20; h++ {
		want = append(want, timeOf(h, 0))
		if h < 20 {
			want = append(want, timeOf(h, 30))
		}
	}
	assert.Equal(t, want, slots)
}

func TestGenerateOrderIsOutboundThenInbound(t *testing.T) {
	slots := Generate(testDate)

	seenInbound := false
	for _, s := range slots {
		if s.Route == RouteInbound {
			seenInbound = true
		}
		if seenInbound && s.Route == RouteOutbound {
			t.Fatal("outbound slot after inbound block")
		}
	}
}

func TestGenerateNormalizesDateAndLabels(t *testing.T) {
	noon := time.Date(2025, 1, 15, 12, 34, 56, 0, time.UTC)

	for _, s := range Generate(noon) {
		assert.Equal(t, time.Date(2025, 1, 15, 0, 0, 0, 0, time.UTC), s.SlotDate)
		assert.Equal(t, VehicleType, s.VehicleType)
		assert.Len(t, s.SlotTime, 5)
	}
}

func routeSlots(slots []models.TimeSlot, route string) []string {
	var times []string
	for _, s := range slots {
		if s.Route == route {
			times = append(times, s.SlotTime)
		}
	}
	return times
}

func timeOf(hour, minute int) string {
	return fmt.Sprintf("%02d:%02d", hour, minute)
}
