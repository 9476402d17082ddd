package timeutil

import (
	"testing"
	"time"
)

func TestParseClock(t *testing.T) {
	tests := []struct {
		in      string
		want    int
		wantErr bool
	}{
		{"00:00", 0, false},
		{"09:30", 570, false},
		{"18:00", 1080, false},
		{"23:59", 1439, false},
		{" 7:05 ", 425, false},
		{"24:00", 0, true},
		{"12:60", 0, true},
		{"noon", 0, true},
		{"12", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseClock(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseClock(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil {
			t.Errorf("ParseClock(%q) unexpected error: %v", tt.in, err)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseClock(%q) = %d, want %d", tt.in, got, tt.want)
		}
	}
}

func TestFormatClock(t *testing.T) {
	tests := []struct {
		in   int
		want string
	}{
		{0, "00:00"},
		{65, "01:05"},
		{1140, "19:00"},
		{1439, "23:59"},
	}
	for _, tt := range tests {
		if got := FormatClock(tt.in); got != tt.want {
			t.Errorf("FormatClock(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestDuration(t *testing.T) {
	d, err := Duration("18:00", "20:00")
	if err != nil || d != 120 {
		t.Errorf("Duration(18:00, 20:00) = %d, %v; want 120", d, err)
	}
	d, err = Duration("10:00", "09:00")
	if err != nil || d != -60 {
		t.Errorf("Duration(10:00, 09:00) = %d, %v; want -60", d, err)
	}
}

func TestDaysBetween(t *testing.T) {
	base := time.Date(2025, 3, 1, 0, 0, 0, 0, time.UTC)
	tests := []struct {
		to   time.Time
		want int
	}{
		{base, 0},
		{base.AddDate(0, 0, 2), 2},
		{base.AddDate(0, 0, 4).Add(23 * time.Hour), 4},
		{base.AddDate(0, 0, -1), -1},
	}
	for _, tt := range tests {
		if got := DaysBetween(base, tt.to); got != tt.want {
			t.Errorf("DaysBetween(%v, %v) = %d, want %d", base, tt.to, got, tt.want)
		}
	}
}

func TestDayKeepsWallClockDate(t *testing.T) {
	loc := time.FixedZone("UTC+9", 9*3600)
	in := time.Date(2025, 3, 2, 1, 30, 0, 0, loc)
	got := Day(in)
	if DateKey(got) != "2025-03-02" {
		t.Errorf("Day(%v) = %v, want 2025-03-02", in, got)
	}
}

func TestParseWeekday(t *testing.T) {
	tests := []struct {
		in      string
		want    time.Weekday
		wantErr bool
	}{
		{"Monday", time.Monday, false},
		{"saturday", time.Saturday, false},
		{"Sun", time.Sunday, false},
		{"th", 0, true},
		{"Funday", 0, true},
	}
	for _, tt := range tests {
		got, err := ParseWeekday(tt.in)
		if tt.wantErr {
			if err == nil {
				t.Errorf("ParseWeekday(%q) expected error", tt.in)
			}
			continue
		}
		if err != nil || got != tt.want {
			t.Errorf("ParseWeekday(%q) = %v, %v; want %v", tt.in, got, err, tt.want)
		}
	}
}
