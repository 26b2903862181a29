package sqlite

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
)

func scanQuote(row rowScanner) (models.Quote, error) {
	var q models.Quote
	var mood sql.NullString
	if err := row.Scan(&q.ID, &q.Text, &mood, &q.Active); err != nil {
		return models.Quote{}, err
	}
	if mood.Valid {
		q.Mood = models.Mood(mood.String)
	}
	return q, nil
}

func (s *Store) AddQuote(q models.Quote) error {
	_, err := s.db.Exec(`
		INSERT INTO quotes (id, text, mood, active) VALUES (?, ?, NULLIF(?, ''), ?)`,
		q.ID, q.Text, string(q.Mood), q.Active)
	if err != nil {
		return fmt.Errorf("failed to add quote: %w", err)
	}
	return nil
}

func (s *Store) GetQuote(id string) (models.Quote, error) {
	row := s.db.QueryRow(`SELECT id, text, mood, active FROM quotes WHERE id = ?`, id)
	q, err := scanQuote(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Quote{}, apperr.NotFoundf("quote %s", id)
		}
		return models.Quote{}, err
	}
	return q, nil
}

func (s *Store) listQuotes(query string, args ...interface{}) ([]models.Quote, error) {
	rows, err := s.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var quotes []models.Quote
	for rows.Next() {
		q, err := scanQuote(rows)
		if err != nil {
			return nil, err
		}
		quotes = append(quotes, q)
	}
	return quotes, rows.Err()
}

func (s *Store) ListQuotes() ([]models.Quote, error) {
	return s.listQuotes(`SELECT id, text, mood, active FROM quotes ORDER BY id`)
}

func (s *Store) ListActiveQuotes() ([]models.Quote, error) {
	return s.listQuotes(`SELECT id, text, mood, active FROM quotes WHERE active = 1 ORDER BY id`)
}

// ListActiveQuotesByMood returns active quotes whose affinity tag equals
// the given mood exactly.
func (s *Store) ListActiveQuotesByMood(mood models.Mood) ([]models.Quote, error) {
	return s.listQuotes(`SELECT id, text, mood, active FROM quotes
		WHERE active = 1 AND mood = ? ORDER BY id`, string(mood))
}

// ListActiveQuotesForDisplay returns active quotes matching the mood or
// carrying no affinity tag, for the day-view quote.
func (s *Store) ListActiveQuotesForDisplay(mood models.Mood) ([]models.Quote, error) {
	return s.listQuotes(`SELECT id, text, mood, active FROM quotes
		WHERE active = 1 AND (mood IS NULL OR mood = ?) ORDER BY id`, string(mood))
}
