package rules

import (
	"sort"
	"testing"

	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/models"
)

// fakeHistory is an in-memory History keyed by date. All days belong to
// the same test user.
type fakeHistory struct {
	days map[string]models.Day
}

func newFakeHistory() *fakeHistory {
	return &fakeHistory{days: make(map[string]models.Day)}
}

func (f *fakeHistory) add(date string, mood models.Mood) {
	f.days[date] = models.Day{ID: date, UserID: "u1", Date: date, Mood: mood}
}

func (f *fakeHistory) GetDay(userID, date string) (models.Day, bool, error) {
	d, ok := f.days[date]
	return d, ok, nil
}

func (f *fakeHistory) ListRecentDaysBefore(userID, date string, limit int) ([]models.Day, error) {
	var dates []string
	for d := range f.days {
		if d < date {
			dates = append(dates, d)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(dates)))
	if len(dates) > limit {
		dates = dates[:limit]
	}
	days := make([]models.Day, 0, len(dates))
	for _, d := range dates {
		days = append(days, f.days[d])
	}
	return days, nil
}

func day(date string, mood models.Mood) models.Day {
	return models.Day{ID: date, UserID: "u1", Date: date, Mood: mood}
}

func TestMaxTasks(t *testing.T) {
	engine := New(newFakeHistory())

	t.Run("per-mood ceilings", func(t *testing.T) {
		cases := []struct {
			mood models.Mood
			want int
		}{
			{models.MoodVeryBad, 1},
			{models.MoodBad, 3},
			{models.MoodNeutral, 5},
			{models.MoodGood, 7},
			{models.MoodVeryGood, 99},
		}
		for _, tc := range cases {
			got := engine.MaxTasks(day("2026-03-10", tc.mood))
			if got != tc.want {
				t.Errorf("MaxTasks(%s) = %d, want %d", tc.mood, got, tc.want)
			}
		}
	})

	t.Run("unset mood falls back to default", func(t *testing.T) {
		got := engine.MaxTasks(day("2026-03-10", ""))
		if got != constants.DefaultTaskLimit {
			t.Errorf("MaxTasks(no mood) = %d, want %d", got, constants.DefaultTaskLimit)
		}
	})

	t.Run("rest day caps at one regardless of mood", func(t *testing.T) {
		d := day("2026-03-10", models.MoodVeryGood)
		d.RestDay = true
		if got := engine.MaxTasks(d); got != constants.RestDayTaskCap {
			t.Errorf("MaxTasks(rest day) = %d, want %d", got, constants.RestDayTaskCap)
		}
	})

	t.Run("custom limits table is copied", func(t *testing.T) {
		limits := map[models.Mood]int{models.MoodGood: 2}
		engine := NewWithLimits(newFakeHistory(), limits, 4)
		limits[models.MoodGood] = 50

		if got := engine.MaxTasks(day("2026-03-10", models.MoodGood)); got != 2 {
			t.Errorf("MaxTasks(good) = %d, want 2 after caller mutation", got)
		}
		if got := engine.MaxTasks(day("2026-03-10", models.MoodBad)); got != 4 {
			t.Errorf("MaxTasks(bad) = %d, want the default 4", got)
		}
	})
}

func TestIsGentleDay(t *testing.T) {
	t.Run("hard mood yesterday", func(t *testing.T) {
		hist := newFakeHistory()
		hist.add("2026-03-09", models.MoodBad)
		engine := New(hist)

		gentle, err := engine.IsGentleDay(day("2026-03-10", models.MoodGood))
		if err != nil {
			t.Fatalf("IsGentleDay() error: %v", err)
		}
		if !gentle {
			t.Error("IsGentleDay() = false, want true after a bad day")
		}
	})

	t.Run("good mood yesterday", func(t *testing.T) {
		hist := newFakeHistory()
		hist.add("2026-03-09", models.MoodGood)
		engine := New(hist)

		gentle, err := engine.IsGentleDay(day("2026-03-10", models.MoodNeutral))
		if err != nil {
			t.Fatalf("IsGentleDay() error: %v", err)
		}
		if gentle {
			t.Error("IsGentleDay() = true, want false after a good day")
		}
	})

	t.Run("no record for yesterday", func(t *testing.T) {
		engine := New(newFakeHistory())

		gentle, err := engine.IsGentleDay(day("2026-03-10", models.MoodNeutral))
		if err != nil {
			t.Fatalf("IsGentleDay() error: %v", err)
		}
		if gentle {
			t.Error("IsGentleDay() = true, want false with no history")
		}
	})

	t.Run("gap day does not count", func(t *testing.T) {
		// A very_bad day two days ago with nothing yesterday is not a
		// gentle-day trigger.
		hist := newFakeHistory()
		hist.add("2026-03-08", models.MoodVeryBad)
		engine := New(hist)

		gentle, err := engine.IsGentleDay(day("2026-03-10", models.MoodNeutral))
		if err != nil {
			t.Fatalf("IsGentleDay() error: %v", err)
		}
		if gentle {
			t.Error("IsGentleDay() = true, want false when yesterday is unlogged")
		}
	})
}

func TestShouldForceRest(t *testing.T) {
	cases := []struct {
		name  string
		moods []models.Mood // most recent first, consecutive days before 2026-03-10
		want  bool
	}{
		{"two of three hard", []models.Mood{models.MoodBad, models.MoodVeryBad, models.MoodGood}, true},
		{"hard days split by neutral", []models.Mood{models.MoodBad, models.MoodNeutral, models.MoodBad}, true},
		{"one hard day", []models.Mood{models.MoodBad, models.MoodGood, models.MoodGood}, false},
		{"all good", []models.Mood{models.MoodGood, models.MoodGood, models.MoodGood}, false},
		{"two hard of only two logged", []models.Mood{models.MoodVeryBad, models.MoodVeryBad}, true},
		{"single hard day of one logged", []models.Mood{models.MoodVeryBad}, false},
		{"no history", nil, false},
	}

	dates := []string{"2026-03-09", "2026-03-08", "2026-03-07"}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			hist := newFakeHistory()
			for i, mood := range tc.moods {
				hist.add(dates[i], mood)
			}
			engine := New(hist)

			got, err := engine.ShouldForceRest(day("2026-03-10", ""))
			if err != nil {
				t.Fatalf("ShouldForceRest() error: %v", err)
			}
			if got != tc.want {
				t.Errorf("ShouldForceRest() = %v, want %v", got, tc.want)
			}
		})
	}

	t.Run("only the three most recent days count", func(t *testing.T) {
		// Hard days beyond the lookback window are ignored.
		hist := newFakeHistory()
		hist.add("2026-03-09", models.MoodGood)
		hist.add("2026-03-08", models.MoodGood)
		hist.add("2026-03-07", models.MoodBad)
		hist.add("2026-03-06", models.MoodVeryBad)
		hist.add("2026-03-05", models.MoodVeryBad)
		engine := New(hist)

		got, err := engine.ShouldForceRest(day("2026-03-10", ""))
		if err != nil {
			t.Fatalf("ShouldForceRest() error: %v", err)
		}
		if got {
			t.Error("ShouldForceRest() = true, want false when older hard days fall outside the window")
		}
	})
}

func TestDayMessage(t *testing.T) {
	t.Run("rest day wins over gentle day", func(t *testing.T) {
		hist := newFakeHistory()
		hist.add("2026-03-09", models.MoodVeryBad)
		engine := New(hist)

		d := day("2026-03-10", "")
		d.RestDay = true
		msg, err := engine.DayMessage(d)
		if err != nil {
			t.Fatalf("DayMessage() error: %v", err)
		}
		if msg != constants.RestDayMessage {
			t.Errorf("DayMessage() = %q, want rest day message", msg)
		}
	})

	t.Run("gentle day", func(t *testing.T) {
		hist := newFakeHistory()
		hist.add("2026-03-09", models.MoodBad)
		engine := New(hist)

		msg, err := engine.DayMessage(day("2026-03-10", ""))
		if err != nil {
			t.Fatalf("DayMessage() error: %v", err)
		}
		if msg != constants.GentleDayMessage {
			t.Errorf("DayMessage() = %q, want gentle day message", msg)
		}
	})

	t.Run("ordinary day", func(t *testing.T) {
		engine := New(newFakeHistory())

		msg, err := engine.DayMessage(day("2026-03-10", models.MoodGood))
		if err != nil {
			t.Fatalf("DayMessage() error: %v", err)
		}
		if msg != "" {
			t.Errorf("DayMessage() = %q, want empty", msg)
		}
	})
}
