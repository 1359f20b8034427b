// Package vaccine computes the fixed polio immunization schedule from a
// child's birth date.
package vaccine

import (
	"fmt"
	"strings"
	"time"
)

// Entry is one dose in the schedule.
type Entry struct {
	Period  string    // human label, e.g. "6 Weeks"
	Date    time.Time // absolute due date
	Vaccine string    // dose label, e.g. "OPV-1 + IPV-1"
}

// DateFormat is the rendering format for schedule dates.
const DateFormat = "02-Jan-2006"

// scheduleEmojis decorate entries in order; one per schedule row.
var scheduleEmojis = []string{"💉", "🕒", "📅", "⚠️", "ℹ️", "🎯"}

// BuildPolioSchedule returns the six fixed doses for the given birth date.
// Offsets are whole weeks from birth: 0, 6, 10, 14, 72 and 260.
func BuildPolioSchedule(birth time.Time) []Entry {
	weeks := func(n int) time.Time { return birth.AddDate(0, 0, n*7) }
	return []Entry{
		{Period: "At Birth (within 15 days)", Date: birth, Vaccine: "OPV-0"},
		{Period: "6 Weeks", Date: weeks(6), Vaccine: "OPV-1 + IPV-1"},
		{Period: "10 Weeks", Date: weeks(10), Vaccine: "OPV-2"},
		{Period: "14 Weeks", Date: weeks(14), Vaccine: "OPV-3 + IPV-2"},
		{Period: "16–24 Months", Date: weeks(72), Vaccine: "OPV + IPV Boosters"},
		{Period: "5 Years", Date: weeks(260), Vaccine: "OPV Booster"},
	}
}

// FormatSchedule renders the schedule one dose per line.
func FormatSchedule(schedule []Entry) string {
	var b strings.Builder
	for i, e := range schedule {
		emoji := scheduleEmojis[i%len(scheduleEmojis)]
		b.WriteString(fmt.Sprintf("%s %s: %s → %s\n", emoji, e.Period, e.Date.Format(DateFormat), e.Vaccine))
	}
	return b.String()
}
