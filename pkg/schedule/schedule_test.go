package schedule

import (
	"fmt"
	"testing"
)

func TestGenerate(t *testing.T) {
	testCases := []struct {
		name             string
		startHour        int
		endHour          int
		frequencyMinutes int
		wantLen          int
		wantFirst        string
		wantLast         string
	}{
		{
			name:             "one hour every 30 minutes",
			startHour:        8,
			endHour:          9,
			frequencyMinutes: 30,
			wantLen:          3,
			wantFirst:        "08:00",
			wantLast:         "09:00",
		},
		{
			name:             "single departure when window is empty",
			startHour:        10,
			endHour:          10,
			frequencyMinutes: 15,
			wantLen:          1,
			wantFirst:        "10:00",
			wantLast:         "10:00",
		},
		{
			name:             "frequency not dividing the window stops before end",
			startHour:        6,
			endHour:          7,
			frequencyMinutes: 25,
			wantLen:          3,
			wantFirst:        "06:00",
			wantLast:         "06:50",
		},
	}

	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			got := Generate(tt.startHour, tt.endHour, tt.frequencyMinutes)
			if len(got) != tt.wantLen {
				t.Fatalf("got %d departures, want %d", len(got), tt.wantLen)
			}
			if got[0] != tt.wantFirst {
				t.Errorf("first departure = %s, want %s", got[0], tt.wantFirst)
			}
			if got[len(got)-1] != tt.wantLast {
				t.Errorf("last departure = %s, want %s", got[len(got)-1], tt.wantLast)
			}
		})
	}
}

func TestGenerateInvalidFrequency(t *testing.T) {
	if got := Generate(5, 23, 0); len(got) != 0 {
		t.Errorf("zero frequency should synthesize nothing, got %d entries", len(got))
	}
	if got := Generate(9, 8, 15); len(got) != 0 {
		t.Errorf("inverted window should synthesize nothing, got %d entries", len(got))
	}
}

func TestDefaultTimetable(t *testing.T) {
	timetable := DefaultTimetable()

	if len(timetable) != 73 {
		t.Fatalf("got %d departures, want 73", len(timetable))
	}
	if timetable[0] != "05:00" {
		t.Errorf("first departure = %s, want 05:00", timetable[0])
	}
	if timetable[len(timetable)-1] != "23:00" {
		t.Errorf("last departure = %s, want 23:00", timetable[len(timetable)-1])
	}

	// spacing between consecutive departures is exactly the default frequency
	for i := 1; i < len(timetable); i++ {
		prev, curr := timetable[i-1], timetable[i]
		if minutesOf(t, curr)-minutesOf(t, prev) != 15 {
			t.Fatalf("departure spacing %s -> %s is not 15 minutes", prev, curr)
		}
	}
}

func minutesOf(t *testing.T, hhmm string) int {
	t.Helper()
	var h, m int
	if _, err := fmt.Sscanf(hhmm, "%d:%d", &h, &m); err != nil {
		t.Fatalf("bad departure string %q: %v", hhmm, err)
	}
	return h*60 + m
}
