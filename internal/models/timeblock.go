package models

import (
	"fmt"
	"time"

	"github.com/gentleday/gentleday/internal/constants"
)

// Category buckets a time block by what kind of activity it holds.
type Category string

const (
	CategoryWork     Category = "work"
	CategoryPersonal Category = "personal"
	CategoryHealth   Category = "health"
	CategoryTravel   Category = "travel"
	CategoryRest     Category = "rest"
	CategoryOther    Category = "other"
)

func (c Category) Valid() bool {
	switch c {
	case CategoryWork, CategoryPersonal, CategoryHealth, CategoryTravel, CategoryRest, CategoryOther:
		return true
	}
	return false
}

// TimeBlock is a single planned slot belonging to one Day. Blocks are
// ordered by start time; how many a day may hold is decided by the mood
// rules at creation time.
type TimeBlock struct {
	ID        string    `json:"id"`
	DayID     string    `json:"day_id"`
	Title     string    `json:"title"`
	StartTime string    `json:"start_time"` // HH:MM
	EndTime   string    `json:"end_time"`   // HH:MM
	Category  Category  `json:"category"`
	Completed bool      `json:"completed"`
	CreatedAt time.Time `json:"created_at"`
}

// Validate checks the block's field invariants. The end time must be
// strictly after the start time.
func (b TimeBlock) Validate() error {
	if b.Title == "" {
		return fmt.Errorf("title is required")
	}
	start, err := time.Parse(constants.TimeFormat, b.StartTime)
	if err != nil {
		return fmt.Errorf("invalid start time %q (expected HH:MM): %w", b.StartTime, err)
	}
	end, err := time.Parse(constants.TimeFormat, b.EndTime)
	if err != nil {
		return fmt.Errorf("invalid end time %q (expected HH:MM): %w", b.EndTime, err)
	}
	if !end.After(start) {
		return fmt.Errorf("end time must be after start time")
	}
	if b.Category != "" && !b.Category.Valid() {
		return fmt.Errorf("invalid category: %s", b.Category)
	}
	return nil
}
