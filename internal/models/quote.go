package models

// Quote is a shared pool entry shown on day views and pinned to a day
// at closing time. Mood is an optional affinity tag: an empty mood means
// the quote suits any day.
type Quote struct {
	ID     string `json:"id"`
	Text   string `json:"text"`
	Mood   Mood   `json:"mood,omitempty"`
	Active bool   `json:"active"`
}
