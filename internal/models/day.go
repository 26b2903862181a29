package models

import "time"

// Mood is the fixed five-step emotional scale a day can be tagged with.
type Mood string

const (
	MoodVeryBad  Mood = "very_bad"
	MoodBad      Mood = "bad"
	MoodNeutral  Mood = "neutral"
	MoodGood     Mood = "good"
	MoodVeryGood Mood = "very_good"
)

// Moods lists the valid moods in ascending order.
var Moods = []Mood{MoodVeryBad, MoodBad, MoodNeutral, MoodGood, MoodVeryGood}

// Valid reports whether m is one of the known moods. The empty mood
// (unset) is not valid.
func (m Mood) Valid() bool {
	switch m {
	case MoodVeryBad, MoodBad, MoodNeutral, MoodGood, MoodVeryGood:
		return true
	}
	return false
}

// IsHard reports whether m counts as a hard day for the gentle-day and
// forced-rest rules.
func (m Mood) IsHard() bool {
	return m == MoodBad || m == MoodVeryBad
}

// Color is the cosmetic energy tag for a day, independent of mood.
type Color string

const (
	ColorGreen  Color = "green"
	ColorYellow Color = "yellow"
	ColorRed    Color = "red"
	ColorBlue   Color = "blue"
	ColorPurple Color = "purple"
)

func (c Color) Valid() bool {
	switch c {
	case ColorGreen, ColorYellow, ColorRed, ColorBlue, ColorPurple:
		return true
	}
	return false
}

// Day is one journal record per (user, date). Exactly one exists per
// pair; records are created lazily on first access and never deleted by
// the application. Once IsClosed flips to true the whole aggregate is
// frozen: mood/color/notes/blocks/reflection mutations become no-ops.
type Day struct {
	ID     string `json:"id"`
	UserID string `json:"user_id"`
	Date   string `json:"date"` // YYYY-MM-DD

	Mood    Mood   `json:"mood,omitempty"`  // empty when not yet logged
	Color   Color  `json:"color,omitempty"` // empty when not yet tagged
	RestDay bool   `json:"rest_day"`
	Notes   string `json:"notes,omitempty"`
	Focus   string `json:"focus_of_the_day,omitempty"`

	Gratitude string `json:"gratitude,omitempty"`

	IsClosed       bool       `json:"is_closed"`
	ClosedAt       *time.Time `json:"closed_at,omitempty"`
	ClosingQuoteID string     `json:"closing_quote_id,omitempty"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// HasMood reports whether a mood has been logged for the day.
func (d Day) HasMood() bool {
	return d.Mood != ""
}
