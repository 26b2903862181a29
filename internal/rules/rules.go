// Package rules holds the emotional-constraint engine: pure decisions
// over a user's recent day history. Missing history always degrades to
// the permissive default; only store failures propagate.
package rules

import (
	"github.com/gentleday/gentleday/internal/constants"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/utils"
)

// History is the read-only day lookup the engine needs.
type History interface {
	GetDay(userID, date string) (models.Day, bool, error)
	ListRecentDaysBefore(userID, date string, limit int) ([]models.Day, error)
}

// Engine computes gentle-day, forced-rest and task-limit decisions.
// The limits table is fixed at construction; it is never mutated.
type Engine struct {
	history      History
	limits       map[models.Mood]int
	defaultLimit int
}

// DefaultLimits returns the per-mood task ceiling table. Harder moods
// get stricter ceilings; very_good is effectively unbounded.
func DefaultLimits() map[models.Mood]int {
	return map[models.Mood]int{
		models.MoodVeryBad:  1,
		models.MoodBad:      3,
		models.MoodNeutral:  5,
		models.MoodGood:     7,
		models.MoodVeryGood: 99,
	}
}

// New creates an engine over the given history with the default limits.
func New(history History) *Engine {
	return NewWithLimits(history, DefaultLimits(), constants.DefaultTaskLimit)
}

// NewWithLimits creates an engine with an explicit limits table. The
// table is copied so later mutation by the caller cannot leak in.
func NewWithLimits(history History, limits map[models.Mood]int, defaultLimit int) *Engine {
	copied := make(map[models.Mood]int, len(limits))
	for k, v := range limits {
		copied[k] = v
	}
	return &Engine{history: history, limits: copied, defaultLimit: defaultLimit}
}

// IsGentleDay reports whether yesterday's record exists with a hard
// mood. No record for yesterday means false, not an error.
func (e *Engine) IsGentleDay(day models.Day) (bool, error) {
	yesterday, err := utils.PrevDate(day.Date)
	if err != nil {
		return false, err
	}
	prev, ok, err := e.history.GetDay(day.UserID, yesterday)
	if err != nil {
		return false, err
	}
	return ok && prev.Mood.IsHard(), nil
}

// ShouldForceRest reports whether at least 2 of the up-to-3 most recent
// days before this one were hard days. Short history never forces rest.
func (e *Engine) ShouldForceRest(day models.Day) (bool, error) {
	recent, err := e.history.ListRecentDaysBefore(day.UserID, day.Date, constants.ForceRestLookback)
	if err != nil {
		return false, err
	}
	hard := 0
	for _, d := range recent {
		if d.Mood.IsHard() {
			hard++
		}
	}
	return hard >= constants.ForceRestThreshold, nil
}

// MaxTasks returns the block ceiling for the day. A rest day caps at
// one regardless of mood; an unset or unknown mood falls back to the
// default.
func (e *Engine) MaxTasks(day models.Day) int {
	if day.RestDay {
		return constants.RestDayTaskCap
	}
	if limit, ok := e.limits[day.Mood]; ok {
		return limit
	}
	return e.defaultLimit
}

// DayMessage returns the supportive banner for the day, empty when
// neither the rest-day nor the gentle-day rule applies.
func (e *Engine) DayMessage(day models.Day) (string, error) {
	if day.RestDay {
		return constants.RestDayMessage, nil
	}
	gentle, err := e.IsGentleDay(day)
	if err != nil {
		return "", err
	}
	if gentle {
		return constants.GentleDayMessage, nil
	}
	return "", nil
}
