package postgres

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
)

const blockColumns = `id, day_id, title, start_time, end_time, category, completed, created_at`

func scanBlock(row rowScanner) (models.TimeBlock, error) {
	var b models.TimeBlock
	var category, createdAt string

	err := row.Scan(&b.ID, &b.DayID, &b.Title, &b.StartTime, &b.EndTime, &category, &b.Completed, &createdAt)
	if err != nil {
		return models.TimeBlock{}, err
	}
	b.Category = models.Category(category)
	if b.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return models.TimeBlock{}, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return b, nil
}

func (s *Store) AddTimeBlock(b models.TimeBlock) error {
	createdAt := b.CreatedAt
	if createdAt.IsZero() {
		createdAt = time.Now().UTC()
	}
	_, err := s.db.Exec(`
		INSERT INTO time_blocks (id, day_id, title, start_time, end_time, category, completed, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`,
		b.ID, b.DayID, b.Title, b.StartTime, b.EndTime, string(b.Category), b.Completed,
		createdAt.Format(time.RFC3339))
	if err != nil {
		return fmt.Errorf("failed to add time block: %w", err)
	}
	return nil
}

func (s *Store) GetTimeBlock(id string) (models.TimeBlock, error) {
	row := s.db.QueryRow(`SELECT `+blockColumns+` FROM time_blocks WHERE id = $1`, id)
	b, err := scanBlock(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.TimeBlock{}, apperr.NotFoundf("time block %s", id)
		}
		return models.TimeBlock{}, err
	}
	return b, nil
}

func (s *Store) ListTimeBlocks(dayID string) ([]models.TimeBlock, error) {
	rows, err := s.db.Query(`SELECT `+blockColumns+` FROM time_blocks WHERE day_id = $1 ORDER BY start_time`, dayID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var blocks []models.TimeBlock
	for rows.Next() {
		b, err := scanBlock(rows)
		if err != nil {
			return nil, err
		}
		blocks = append(blocks, b)
	}
	return blocks, rows.Err()
}

func (s *Store) CountTimeBlocks(dayID string) (int, error) {
	var count int
	err := s.db.QueryRow(`SELECT COUNT(*) FROM time_blocks WHERE day_id = $1`, dayID).Scan(&count)
	return count, err
}

func (s *Store) SetTimeBlockCompleted(id string, completed bool) (bool, error) {
	res, err := s.db.Exec(`
		UPDATE time_blocks SET completed = $1
		WHERE id = $2 AND day_id IN (SELECT id FROM days WHERE is_closed = FALSE)`,
		completed, id)
	if err != nil {
		return false, fmt.Errorf("failed to update time block: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		if _, err := s.GetTimeBlock(id); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (s *Store) DeleteTimeBlock(id string) (bool, error) {
	res, err := s.db.Exec(`
		DELETE FROM time_blocks
		WHERE id = $1 AND day_id IN (SELECT id FROM days WHERE is_closed = FALSE)`, id)
	if err != nil {
		return false, fmt.Errorf("failed to delete time block: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	if n == 0 {
		if _, err := s.GetTimeBlock(id); err != nil {
			return false, err
		}
		return false, nil
	}
	return true, nil
}

func (s *Store) CountCompletedBlocksInRange(userID, dateFrom, dateTo string) (int, error) {
	var count int
	err := s.db.QueryRow(`
		SELECT COUNT(*) FROM time_blocks tb
		JOIN days d ON d.id = tb.day_id
		WHERE d.user_id = $1 AND d.date >= $2 AND d.date <= $3 AND tb.completed = TRUE`,
		userID, dateFrom, dateTo).Scan(&count)
	return count, err
}

func (s *Store) CompletedBlockCountsByDate(userID string) (map[string]int, error) {
	rows, err := s.db.Query(`
		SELECT d.date, COUNT(tb.id)
		FROM days d
		LEFT JOIN time_blocks tb ON tb.day_id = d.id AND tb.completed = TRUE
		WHERE d.user_id = $1
		GROUP BY d.date ORDER BY d.date`, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var date string
		var count int
		if err := rows.Scan(&date, &count); err != nil {
			return nil, err
		}
		counts[date] = count
	}
	return counts, rows.Err()
}
