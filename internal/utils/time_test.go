package utils

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	if _, err := ParseDate("2026-03-10"); err != nil {
		t.Errorf("ParseDate(2026-03-10) error: %v", err)
	}
	for _, bad := range []string{"", "03/10/2026", "2026-3-10", "2026-13-01", "2026-02-30"} {
		if _, err := ParseDate(bad); err == nil {
			t.Errorf("ParseDate(%q) should fail", bad)
		}
	}
}

func TestAddDays(t *testing.T) {
	tests := []struct {
		date string
		n    int
		want string
	}{
		{"2026-03-10", 1, "2026-03-11"},
		{"2026-03-10", -1, "2026-03-09"},
		{"2026-03-01", -1, "2026-02-28"},
		{"2024-03-01", -1, "2024-02-29"},
		{"2026-12-31", 1, "2027-01-01"},
	}
	for _, tt := range tests {
		got, err := AddDays(tt.date, tt.n)
		if err != nil {
			t.Errorf("AddDays(%s, %d) error: %v", tt.date, tt.n, err)
			continue
		}
		if got != tt.want {
			t.Errorf("AddDays(%s, %d) = %s, want %s", tt.date, tt.n, got, tt.want)
		}
	}

	if _, err := PrevDate("not-a-date"); err == nil {
		t.Error("PrevDate on a bad date should fail")
	}
}

func TestWeekWindow(t *testing.T) {
	start, end, err := WeekWindow("2026-03-10")
	if err != nil {
		t.Fatalf("WeekWindow() error: %v", err)
	}
	if start != "2026-03-04" || end != "2026-03-10" {
		t.Errorf("window = [%s, %s], want [2026-03-04, 2026-03-10]", start, end)
	}
}

func TestMonthRange(t *testing.T) {
	tests := []struct {
		year        int
		month       time.Month
		first, last string
	}{
		{2026, time.March, "2026-03-01", "2026-03-31"},
		{2026, time.February, "2026-02-01", "2026-02-28"},
		{2024, time.February, "2024-02-01", "2024-02-29"},
		{2026, time.December, "2026-12-01", "2026-12-31"},
	}
	for _, tt := range tests {
		first, last, err := MonthRange(tt.year, tt.month)
		if err != nil {
			t.Errorf("MonthRange(%d, %s) error: %v", tt.year, tt.month, err)
			continue
		}
		if first != tt.first || last != tt.last {
			t.Errorf("MonthRange(%d, %s) = [%s, %s], want [%s, %s]",
				tt.year, tt.month, first, last, tt.first, tt.last)
		}
	}

	if _, _, err := MonthRange(2026, time.Month(13)); err == nil {
		t.Error("month 13 should fail")
	}
	if _, _, err := MonthRange(0, time.March); err == nil {
		t.Error("year 0 should fail")
	}
}

func TestValidateTimeFormat(t *testing.T) {
	for _, good := range []string{"00:00", "09:30", "23:59"} {
		if !ValidateTimeFormat(good) {
			t.Errorf("ValidateTimeFormat(%q) = false", good)
		}
	}
	for _, bad := range []string{"", "24:00", "9:30pm", "12:60"} {
		if ValidateTimeFormat(bad) {
			t.Errorf("ValidateTimeFormat(%q) = true", bad)
		}
	}
}
