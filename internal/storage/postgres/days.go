package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/storage"
)

const dayColumns = `id, user_id, date, mood, color, rest_day, notes, focus, gratitude,
	is_closed, closed_at, closing_quote_id, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanDay(row rowScanner) (models.Day, error) {
	var d models.Day
	var mood, color string
	var closedAt, quoteID sql.NullString
	var createdAt, updatedAt string

	err := row.Scan(
		&d.ID, &d.UserID, &d.Date, &mood, &color, &d.RestDay, &d.Notes, &d.Focus, &d.Gratitude,
		&d.IsClosed, &closedAt, &quoteID, &createdAt, &updatedAt,
	)
	if err != nil {
		return models.Day{}, err
	}

	d.Mood = models.Mood(mood)
	d.Color = models.Color(color)
	if quoteID.Valid {
		d.ClosingQuoteID = quoteID.String
	}
	if closedAt.Valid {
		t, err := time.Parse(time.RFC3339, closedAt.String)
		if err != nil {
			return models.Day{}, fmt.Errorf("failed to parse closed_at: %w", err)
		}
		d.ClosedAt = &t
	}
	if d.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.Day{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	if d.UpdatedAt, err = time.Parse(time.RFC3339, updatedAt); err != nil {
		return models.Day{}, fmt.Errorf("failed to parse updated_at: %w", err)
	}
	return d, nil
}

func (s *Store) GetOrCreateDay(userID, date string) (models.Day, error) {
	now := time.Now().UTC().Format(time.RFC3339)
	_, err := s.db.Exec(`
		INSERT INTO days (id, user_id, date, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (user_id, date) DO NOTHING`,
		uuid.New().String(), userID, date, now, now)
	if err != nil {
		return models.Day{}, fmt.Errorf("failed to create day: %w", err)
	}

	day, ok, err := s.GetDay(userID, date)
	if err != nil {
		return models.Day{}, err
	}
	if !ok {
		return models.Day{}, fmt.Errorf("day %s/%s missing after create", userID, date)
	}
	return day, nil
}

func (s *Store) GetDay(userID, date string) (models.Day, bool, error) {
	row := s.db.QueryRow(`SELECT `+dayColumns+` FROM days WHERE user_id = $1 AND date = $2`, userID, date)
	day, err := scanDay(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Day{}, false, nil
		}
		return models.Day{}, false, err
	}
	return day, true, nil
}

func (s *Store) GetDayByID(id string) (models.Day, error) {
	row := s.db.QueryRow(`SELECT `+dayColumns+` FROM days WHERE id = $1`, id)
	day, err := scanDay(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Day{}, apperr.NotFoundf("day %s", id)
		}
		return models.Day{}, err
	}
	return day, nil
}

func (s *Store) listDays(query string, args ...interface{}) ([]models.Day, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var days []models.Day
	for rows.Next() {
		day, err := scanDay(rows)
		if err != nil {
			return nil, err
		}
		days = append(days, day)
	}
	return days, rows.Err()
}

func (s *Store) ListDaysRange(userID, dateFrom, dateTo string) ([]models.Day, error) {
	return s.listDays(`SELECT `+dayColumns+` FROM days
		WHERE user_id = $1 AND date >= $2 AND date <= $3 ORDER BY date`,
		userID, dateFrom, dateTo)
}

func (s *Store) ListRecentDaysBefore(userID, date string, limit int) ([]models.Day, error) {
	return s.listDays(`SELECT `+dayColumns+` FROM days
		WHERE user_id = $1 AND date < $2 ORDER BY date DESC LIMIT $3`,
		userID, date, limit)
}

func (s *Store) ListAllDays(userID string) ([]models.Day, error) {
	return s.listDays(`SELECT `+dayColumns+` FROM days WHERE user_id = $1 ORDER BY date`, userID)
}

var dayFieldColumns = map[string]string{
	storage.DayFieldMood:      "mood",
	storage.DayFieldColor:     "color",
	storage.DayFieldNotes:     "notes",
	storage.DayFieldFocus:     "focus",
	storage.DayFieldGratitude: "gratitude",
	storage.DayFieldRestDay:   "rest_day",
}

func (s *Store) UpdateDayFields(dayID string, fields map[string]interface{}) (bool, error) {
	if len(fields) == 0 {
		return false, nil
	}

	keys := make([]string, 0, len(fields))
	for k := range fields {
		if _, ok := dayFieldColumns[k]; !ok {
			return false, fmt.Errorf("unknown day field: %s", k)
		}
		keys = append(keys, k)
	}
	sort.Strings(keys)

	sets := make([]string, 0, len(keys)+1)
	args := make([]interface{}, 0, len(keys)+2)
	for i, k := range keys {
		sets = append(sets, fmt.Sprintf("%s = $%d", dayFieldColumns[k], i+1))
		args = append(args, fields[k])
	}
	sets = append(sets, fmt.Sprintf("updated_at = $%d", len(keys)+1))
	args = append(args, time.Now().UTC().Format(time.RFC3339), dayID)

	query := fmt.Sprintf(`UPDATE days SET %s WHERE id = $%d AND is_closed = FALSE`,
		strings.Join(sets, ", "), len(keys)+2)
	res, err := s.db.Exec(query, args...)
	if err != nil {
		return false, fmt.Errorf("failed to update day: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		if _, err := s.GetDayByID(dayID); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (s *Store) CloseDay(dayID, drain, smallWin, quoteID string, closedAt time.Time) (bool, error) {
	tx, err := s.db.Begin()
	if err != nil {
		return false, fmt.Errorf("failed to begin close transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	var isClosed bool
	err = tx.QueryRow(`SELECT is_closed FROM days WHERE id = $1 FOR UPDATE`, dayID).Scan(&isClosed)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, apperr.NotFoundf("day %s", dayID)
		}
		return false, err
	}
	if isClosed {
		return false, nil
	}

	now := time.Now().UTC().Format(time.RFC3339)
	_, err = tx.Exec(`
		INSERT INTO reflections (day_id, drain, small_win, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (day_id) DO UPDATE SET drain = excluded.drain, small_win = excluded.small_win`,
		dayID, drain, smallWin, now)
	if err != nil {
		return false, fmt.Errorf("failed to save reflection: %w", err)
	}

	res, err := tx.Exec(`
		UPDATE days SET is_closed = TRUE, closed_at = $1, closing_quote_id = NULLIF($2, ''), updated_at = $3
		WHERE id = $4 AND is_closed = FALSE`,
		closedAt.UTC().Format(time.RFC3339), quoteID, now, dayID)
	if err != nil {
		return false, fmt.Errorf("failed to close day: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		return false, nil
	}

	if err := tx.Commit(); err != nil {
		return false, fmt.Errorf("failed to commit close transaction: %w", err)
	}
	return true, nil
}
