// Package hours computes same-day collection slots from the shop's weekly
// opening hours. Everything here is pure: callers pass "now" in so results
// are never cached across requests.
package hours

import (
	"fmt"
	"time"
)

const (
	// Minimum preparation time before the earliest offerable slot.
	prepOffsetMinutes = 15

	// Collection slots are aligned to 15-minute boundaries.
	slotGranularityMinutes = 15
)

// DayHours is a single day's opening window, expressed in fractional hours
// (e.g. 7.0 to 14.0). The window is half-open: open at Open, closed at Close.
type DayHours struct {
	Open   float64
	Close  float64
	Closed bool
}

// WeeklyHours is indexed by time.Weekday (Sunday = 0).
type WeeklyHours [7]DayHours

// Default returns the shop's standing hours: Mon-Fri 07:00-14:00,
// Sat 07:00-13:00, Sun closed.
func Default() WeeklyHours {
	var w WeeklyHours
	w[time.Sunday] = DayHours{Closed: true}
	for d := time.Monday; d <= time.Friday; d++ {
		w[d] = DayHours{Open: 7, Close: 14}
	}
	w[time.Saturday] = DayHours{Open: 7, Close: 13}
	return w
}

// IsOpen reports whether the shop is taking orders at the given moment.
func IsOpen(now time.Time, weekly WeeklyHours) bool {
	day := weekly[now.Weekday()]
	if day.Closed {
		return false
	}

	nowMin := now.Hour()*60 + now.Minute()
	return nowMin >= minuteOfDay(day.Open) && nowMin < minuteOfDay(day.Close)
}

// AvailableSlots returns every collection time still offerable today, in
// ascending order, formatted as zero-padded HH:MM. The earliest slot is
// now plus the preparation offset, rounded up to the next slot boundary.
// An empty slice means the shop cannot take an order right now; callers
// must present that as "currently closed", not as an error.
func AvailableSlots(now time.Time, weekly WeeklyHours) []string {
	if !IsOpen(now, weekly) {
		return nil
	}

	day := weekly[now.Weekday()]
	closeMin := minuteOfDay(day.Close)

	earliest := now.Hour()*60 + now.Minute() + prepOffsetMinutes
	if earliest >= closeMin {
		// Too late to prepare anything before closing.
		return nil
	}

	start := ceilToSlot(earliest)

	var slots []string
	for t := start; t < closeMin; t += slotGranularityMinutes {
		slots = append(slots, fmt.Sprintf("%02d:%02d", t/60, t%60))
	}
	return slots
}

// IsValidSlot reports whether slot is currently offerable. Re-checked at
// submission time so a client sitting on a stale page cannot book an
// expired slot.
func IsValidSlot(slot string, now time.Time, weekly WeeklyHours) bool {
	for _, s := range AvailableSlots(now, weekly) {
		if s == slot {
			return true
		}
	}
	return false
}

func ceilToSlot(minute int) int {
	rem := minute % slotGranularityMinutes
	if rem == 0 {
		return minute
	}
	return minute + slotGranularityMinutes - rem
}

func minuteOfDay(fractionalHour float64) int {
	return int(fractionalHour*60 + 0.5)
}
