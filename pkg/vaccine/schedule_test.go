package vaccine_test

import (
	"strings"
	"testing"
	"time"

	"health-info-bot/pkg/vaccine"
)

func TestBuildPolioSchedule(t *testing.T) {
	birth := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	schedule := vaccine.BuildPolioSchedule(birth)

	if len(schedule) != 6 {
		t.Fatalf("expected 6 entries, got %d", len(schedule))
	}

	tests := []struct {
		period  string
		date    time.Time
		vaccine string
	}{
		{"At Birth (within 15 days)", birth, "OPV-0"},
		{"6 Weeks", time.Date(2024, 2, 12, 0, 0, 0, 0, time.UTC), "OPV-1 + IPV-1"},
		{"10 Weeks", birth.AddDate(0, 0, 70), "OPV-2"},
		{"14 Weeks", birth.AddDate(0, 0, 98), "OPV-3 + IPV-2"},
		{"16–24 Months", birth.AddDate(0, 0, 504), "OPV + IPV Boosters"},
		{"5 Years", birth.AddDate(0, 0, 1820), "OPV Booster"},
	}

	for i, tt := range tests {
		e := schedule[i]
		if e.Period != tt.period {
			t.Errorf("entry %d: period = %q, want %q", i, e.Period, tt.period)
		}
		if !e.Date.Equal(tt.date) {
			t.Errorf("entry %d: date = %v, want %v", i, e.Date, tt.date)
		}
		if e.Vaccine != tt.vaccine {
			t.Errorf("entry %d: vaccine = %q, want %q", i, e.Vaccine, tt.vaccine)
		}
	}
}

func TestFormatSchedule(t *testing.T) {
	birth := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := vaccine.FormatSchedule(vaccine.BuildPolioSchedule(birth))

	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected 6 lines, got %d: %q", len(lines), out)
	}
	if lines[0] != "💉 At Birth (within 15 days): 01-Jan-2024 → OPV-0" {
		t.Errorf("unexpected first line: %q", lines[0])
	}
	if !strings.Contains(lines[1], "12-Feb-2024") {
		t.Errorf("6 weeks line missing expected date: %q", lines[1])
	}
}
