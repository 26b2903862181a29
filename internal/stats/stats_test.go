package stats

import (
	"testing"
	"time"

	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/models"
)

type fakeStore struct {
	days      []models.Day
	completed map[string]int
}

func (f *fakeStore) ListDaysRange(userID, start, end string) ([]models.Day, error) {
	var out []models.Day
	for _, d := range f.days {
		if d.Date >= start && d.Date <= end {
			out = append(out, d)
		}
	}
	return out, nil
}

func (f *fakeStore) ListAllDays(userID string) ([]models.Day, error) {
	return f.days, nil
}

func (f *fakeStore) CountCompletedBlocksInRange(userID, start, end string) (int, error) {
	total := 0
	for date, n := range f.completed {
		if date >= start && date <= end {
			total += n
		}
	}
	return total, nil
}

func (f *fakeStore) CompletedBlockCountsByDate(userID string) (map[string]int, error) {
	return f.completed, nil
}

func TestScore(t *testing.T) {
	cases := []struct {
		name                              string
		daysLogged, moodDays, completed   int
		want                              int
	}{
		{"empty week", 0, 0, 0, 0},
		{"days only", 3, 0, 0, 30},
		{"moods add eight", 2, 2, 0, 36},
		{"tasks add two", 1, 0, 5, 20},
		{"full week saturates", 7, 5, 10, 100},
		{"cap is exact", 7, 7, 100, constants.WeeklyScoreMax},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := Score(tc.daysLogged, tc.moodDays, tc.completed)
			if got != tc.want {
				t.Errorf("Score(%d, %d, %d) = %d, want %d", tc.daysLogged, tc.moodDays, tc.completed, got, tc.want)
			}
		})
	}

	t.Run("monotonic in each input", func(t *testing.T) {
		base := Score(2, 1, 3)
		if Score(3, 1, 3) < base || Score(2, 2, 3) < base || Score(2, 1, 4) < base {
			t.Error("score decreased when an input increased")
		}
	})
}

func TestTierFor(t *testing.T) {
	cases := []struct {
		score int
		want  Tier
	}{
		{0, TierHard},
		{39, TierHard},
		{40, TierBalanced}, // boundary belongs to the higher tier
		{69, TierBalanced},
		{70, TierGentle},
		{100, TierGentle},
	}
	for _, tc := range cases {
		if got := TierFor(tc.score); got != tc.want {
			t.Errorf("TierFor(%d) = %s, want %s", tc.score, got, tc.want)
		}
	}
}

func TestWeeklyBalance(t *testing.T) {
	store := &fakeStore{
		days: []models.Day{
			{Date: "2026-03-02", Mood: models.MoodGood},
			{Date: "2026-03-04"},
			{Date: "2026-03-06", Mood: models.MoodBad},
			// Outside the window ending 2026-03-08.
			{Date: "2026-03-01", Mood: models.MoodGood},
		},
		completed: map[string]int{
			"2026-03-02": 2,
			"2026-03-06": 1,
			"2026-03-01": 9,
		},
	}
	agg := New(store)

	score, err := agg.WeeklyBalance("u1", "2026-03-08")
	if err != nil {
		t.Fatalf("WeeklyBalance() error: %v", err)
	}
	if score.Start != "2026-03-02" || score.End != "2026-03-08" {
		t.Errorf("window = [%s, %s], want [2026-03-02, 2026-03-08]", score.Start, score.End)
	}
	if score.DaysLogged != 3 {
		t.Errorf("DaysLogged = %d, want 3", score.DaysLogged)
	}
	if score.MoodDays != 2 {
		t.Errorf("MoodDays = %d, want 2", score.MoodDays)
	}
	if score.CompletedTasks != 3 {
		t.Errorf("CompletedTasks = %d, want 3", score.CompletedTasks)
	}
	// 3*10 + 2*8 + 3*2 = 52
	if score.Score != 52 {
		t.Errorf("Score = %d, want 52", score.Score)
	}
	if score.Tier != TierBalanced {
		t.Errorf("Tier = %s, want balanced", score.Tier)
	}
	if score.Message != constants.BalancedWeekMessage {
		t.Errorf("Message = %q, want the balanced week message", score.Message)
	}
}

func TestWeeklyBalanceEmpty(t *testing.T) {
	agg := New(&fakeStore{completed: map[string]int{}})

	score, err := agg.WeeklyBalance("u1", "2026-03-08")
	if err != nil {
		t.Fatalf("WeeklyBalance() error: %v", err)
	}
	if score.Score != 0 || score.Tier != TierHard {
		t.Errorf("empty week: score=%d tier=%s, want 0/hard", score.Score, score.Tier)
	}
	if score.Message != constants.HardWeekMessage {
		t.Errorf("Message = %q, want the hard week message", score.Message)
	}
}

func TestMoodAndProductivitySeries(t *testing.T) {
	store := &fakeStore{
		days: []models.Day{
			{Date: "2026-03-01", Mood: models.MoodGood},
			{Date: "2026-03-02"},
		},
		completed: map[string]int{"2026-03-01": 4},
	}
	agg := New(store)

	moods, err := agg.MoodSeries("u1")
	if err != nil {
		t.Fatalf("MoodSeries() error: %v", err)
	}
	if len(moods) != 2 || moods[0].Mood != models.MoodGood || moods[1].Mood != "" {
		t.Errorf("unexpected mood series: %+v", moods)
	}

	prod, err := agg.ProductivitySeries("u1")
	if err != nil {
		t.Fatalf("ProductivitySeries() error: %v", err)
	}
	if len(prod) != 2 || prod[0].Completed != 4 || prod[1].Completed != 0 {
		t.Errorf("unexpected productivity series: %+v", prod)
	}
}

func TestMonthlyOverview(t *testing.T) {
	store := &fakeStore{
		days: []models.Day{
			{Date: "2026-02-28"},
			{Date: "2026-03-01"},
			{Date: "2026-03-31"},
			{Date: "2026-04-01"},
		},
	}
	agg := New(store)

	days, err := agg.MonthlyOverview("u1", 2026, time.March)
	if err != nil {
		t.Fatalf("MonthlyOverview() error: %v", err)
	}
	if len(days) != 2 {
		t.Fatalf("got %d days, want 2", len(days))
	}
	if days[0].Date != "2026-03-01" || days[1].Date != "2026-03-31" {
		t.Errorf("unexpected month window: %s .. %s", days[0].Date, days[1].Date)
	}
}
