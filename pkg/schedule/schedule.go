package schedule

import (
	"fmt"

	"github.com/lintang-b-s/transitx/pkg"
)

// Generate synthesizes departure time strings "HH:MM" (24h, zero padded)
// from startHour:00 up to and including endHour:00, stepping by
// frequencyMinutes. the strings are opaque metadata for connections,
// nothing downstream parses them back.
func Generate(startHour, endHour, frequencyMinutes int) []string {
	if frequencyMinutes <= 0 {
		return []string{}
	}

	departures := make([]string, 0, (endHour-startHour)*60/frequencyMinutes+1)
	for minute := startHour * 60; minute <= endHour*60; minute += frequencyMinutes {
		departures = append(departures, fmt.Sprintf("%02d:%02d", minute/60, minute%60))
	}
	return departures
}

// DefaultTimetable is the timetable attached to connections added without
// an explicit one: 05:00 through 23:00 every 15 minutes.
func DefaultTimetable() []string {
	return Generate(pkg.TIMETABLE_START_HOUR, pkg.TIMETABLE_END_HOUR,
		pkg.TIMETABLE_FREQUENCY_MIN)
}
