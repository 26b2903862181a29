package sqlite

import (
	"fmt"
	"time"

	"github.com/gentleday/gentleday/internal/models"
)

// GetOrCreateReflection lazily creates the day's reflection on first
// access.
func (s *Store) GetOrCreateReflection(dayID string) (models.EveningReflection, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO reflections (day_id, drain, small_win, created_at)
		VALUES (?, '', '', ?)
		ON CONFLICT(day_id) DO NOTHING`, dayID, now)
	if err != nil {
		return models.EveningReflection{}, fmt.Errorf("failed to create reflection: %w", err)
	}

	var r models.EveningReflection
	var createdAt string
	err = s.db.QueryRow(`SELECT day_id, drain, small_win, created_at FROM reflections WHERE day_id = ?`, dayID).
		Scan(&r.DayID, &r.Drain, &r.SmallWin, &createdAt)
	if err != nil {
		return models.EveningReflection{}, err
	}
	if r.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.EveningReflection{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return r, nil
}

// SaveReflection updates the reflection text while the day is still
// open. Once the day is closed the write is suppressed.
func (s *Store) SaveReflection(dayID, drain, smallWin string) (bool, error) {
	day, err := s.GetDayByID(dayID)
	if err != nil {
		return false, err
	}
	if day.IsClosed {
		return false, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = s.db.Exec(`
		INSERT INTO reflections (day_id, drain, small_win, created_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(day_id) DO UPDATE SET drain = excluded.drain, small_win = excluded.small_win`,
		dayID, drain, smallWin, now)
	if err != nil {
		return false, fmt.Errorf("failed to save reflection: %w", err)
	}
	return true, nil
}
