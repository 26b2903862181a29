package models

import "time"

// EveningReflection holds the end-of-day answers for one Day. At most
// one exists per Day; it is created lazily on first access and written
// for the last time when the day is closed.
type EveningReflection struct {
	DayID     string    `json:"day_id"`
	Drain     string    `json:"drain"`     // what drained you today
	SmallWin  string    `json:"small_win"` // one small win
	CreatedAt time.Time `json:"created_at"`
}
