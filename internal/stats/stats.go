// Package stats computes the weekly balance score and the calendar
// projections the charts are drawn from.
package stats

import (
	"time"

	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
)

// Store is the read-only slice of the provider the aggregator needs.
type Store interface {
	ListDaysRange(userID, dateFrom, dateTo string) ([]models.Day, error)
	ListAllDays(userID string) ([]models.Day, error)
	CountCompletedBlocksInRange(userID, dateFrom, dateTo string) (int, error)
	CompletedBlockCountsByDate(userID string) (map[string]int, error)
}

// Tier is the message tone band a weekly score falls into.
type Tier string

const (
	TierHard     Tier = "hard"
	TierBalanced Tier = "balanced"
	TierGentle   Tier = "gentle"
)

// WeeklyScore is the balance summary over a trailing 7-day window.
type WeeklyScore struct {
	Start          string `json:"start"`
	End            string `json:"end"`
	DaysLogged     int    `json:"days_logged"`
	MoodDays       int    `json:"mood_days"`
	CompletedTasks int    `json:"completed_tasks"`
	Score          int    `json:"score"`
	Tier           Tier   `json:"tier"`
	Message        string `json:"message"`
}

// Aggregator computes windowed summaries over a user's days.
type Aggregator struct {
	store Store
}

func New(store Store) *Aggregator {
	return &Aggregator{store: store}
}

// Score computes the saturating weighted sum from the raw counts,
// capped at 100.
func Score(daysLogged, moodDays, completedTasks int) int {
	score := daysLogged*constants.ScoreWeightDayLogged +
		moodDays*constants.ScoreWeightMoodDay +
		completedTasks*constants.ScoreWeightCompletedTask
	if score > constants.WeeklyScoreMax {
		return constants.WeeklyScoreMax
	}
	return score
}

// TierFor maps a score to its tone band. Lower bounds are inclusive:
// 40 and 70 belong to the higher tier.
func TierFor(score int) Tier {
	switch {
	case score >= constants.TierGentleMin:
		return TierGentle
	case score >= constants.TierBalancedMin:
		return TierBalanced
	default:
		return TierHard
	}
}

func messageFor(tier Tier) string {
	switch tier {
	case TierGentle:
		return constants.GentleWeekMessage
	case TierBalanced:
		return constants.BalancedWeekMessage
	default:
		return constants.HardWeekMessage
	}
}

// WeeklyBalance scores the inclusive [asOf-6d, asOf] window.
func (a *Aggregator) WeeklyBalance(userID, asOf string) (WeeklyScore, error) {
	start, end, err := utils.WeekWindow(asOf)
	if err != nil {
		return WeeklyScore{}, err
	}

	days, err := a.store.ListDaysRange(userID, start, end)
	if err != nil {
		return WeeklyScore{}, err
	}
	moodDays := 0
	for _, d := range days {
		if d.HasMood() {
			moodDays++
		}
	}
	completed, err := a.store.CountCompletedBlocksInRange(userID, start, end)
	if err != nil {
		return WeeklyScore{}, err
	}

	score := Score(len(days), moodDays, completed)
	tier := TierFor(score)
	return WeeklyScore{
		Start:          start,
		End:            end,
		DaysLogged:     len(days),
		MoodDays:       moodDays,
		CompletedTasks: completed,
		Score:          score,
		Tier:           tier,
		Message:        messageFor(tier),
	}, nil
}

// MonthlyOverview returns the user's day records for a calendar month,
// ascending by date. A pure projection, no scoring.
func (a *Aggregator) MonthlyOverview(userID string, year int, month time.Month) ([]models.Day, error) {
	first, last, err := utils.MonthRange(year, month)
	if err != nil {
		return nil, err
	}
	return a.store.ListDaysRange(userID, first, last)
}

// MoodPoint is one day on the mood chart.
type MoodPoint struct {
	Date string      `json:"date"`
	Mood models.Mood `json:"mood,omitempty"`
}

// MoodSeries returns every logged day's mood, ascending by date.
func (a *Aggregator) MoodSeries(userID string) ([]MoodPoint, error) {
	days, err := a.store.ListAllDays(userID)
	if err != nil {
		return nil, err
	}
	points := make([]MoodPoint, 0, len(days))
	for _, d := range days {
		points = append(points, MoodPoint{Date: d.Date, Mood: d.Mood})
	}
	return points, nil
}

// ProductivityPoint is one day on the completed-blocks chart.
type ProductivityPoint struct {
	Date      string `json:"date"`
	Completed int    `json:"completed"`
}

// ProductivitySeries returns per-day completed block counts, ascending
// by date.
func (a *Aggregator) ProductivitySeries(userID string) ([]ProductivityPoint, error) {
	days, err := a.store.ListAllDays(userID)
	if err != nil {
		return nil, err
	}
	counts, err := a.store.CompletedBlockCountsByDate(userID)
	if err != nil {
		return nil, err
	}
	points := make([]ProductivityPoint, 0, len(days))
	for _, d := range days {
		points = append(points, ProductivityPoint{Date: d.Date, Completed: counts[d.Date]})
	}
	return points, nil
}
