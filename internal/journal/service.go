// Package journal is the day lifecycle controller: every mutation of a
// Day and its blocks and reflection flows through here, including the
// one-way OPEN → CLOSED transition. Mutations on a closed day are a
// deliberate silent no-op surfaced as StatusIgnored, never an error.
package journal

import (
	"math/rand"
	"time"

	"github.com/google/uuid"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/rules"
	"github.com/gentleday/gentleday/internal/storage"
	"github.com/gentleday/gentleday/internal/utils"
	"github.com/gentleday/gentleday/internal/validation"
)

// UpdateStatus tells the caller what happened to a requested mutation.
type UpdateStatus string

const (
	// StatusApplied means the mutation was persisted.
	StatusApplied UpdateStatus = "applied"
	// StatusIgnored means the day is closed and the mutation was
	// deliberately dropped.
	StatusIgnored UpdateStatus = "ignored"
	// StatusLimitReached means the day's block ceiling was hit.
	StatusLimitReached UpdateStatus = "limit_reached"
)

// Service wires the store and the rule engine together. Rand and Now
// are injectable so closing-quote selection and timestamps are
// deterministic under test.
type Service struct {
	Store storage.Provider
	Rules *rules.Engine

	// Rand picks a uniform index in [0, n). n is always > 0.
	Rand func(n int) int
	// Now supplies the closing timestamp.
	Now func() time.Time
}

// New creates a journal service with the default rule limits, random
// source and clock.
func New(store storage.Provider) *Service {
	rng := rand.New(rand.NewSource(time.Now().UnixNano()))
	return &Service{
		Store: store,
		Rules: rules.New(store),
		Rand:  rng.Intn,
		Now:   time.Now,
	}
}

// DayView is everything a day screen needs.
type DayView struct {
	Day     models.Day         `json:"day"`
	Blocks  []models.TimeBlock `json:"time_blocks"`
	Limit   int                `json:"limit"`
	Message string             `json:"message,omitempty"`
	Quote   *models.Quote      `json:"quote,omitempty"`
}

// Today returns the view for the current date, creating the day record
// on first access.
func (s *Service) Today(userID string) (DayView, error) {
	return s.Day(userID, utils.Today())
}

// Day returns the view for a date, creating the day record on first
// access. The forced-rest rule is evaluated here once; when it fires the
// rest_day flag is persisted so the decision stays stable for the rest
// of the day.
func (s *Service) Day(userID, date string) (DayView, error) {
	if err := validation.Date(date); err != nil {
		return DayView{}, err
	}

	day, err := s.Store.GetOrCreateDay(userID, date)
	if err != nil {
		return DayView{}, err
	}

	if !day.IsClosed && !day.RestDay {
		force, err := s.Rules.ShouldForceRest(day)
		if err != nil {
			return DayView{}, err
		}
		if force {
			if _, err := s.Store.UpdateDayFields(day.ID, map[string]interface{}{
				storage.DayFieldRestDay: true,
			}); err != nil {
				return DayView{}, err
			}
			day.RestDay = true
		}
	}

	message, err := s.Rules.DayMessage(day)
	if err != nil {
		return DayView{}, err
	}

	blocks, err := s.Store.ListTimeBlocks(day.ID)
	if err != nil {
		return DayView{}, err
	}

	quote, err := s.dailyQuote(day)
	if err != nil {
		return DayView{}, err
	}

	return DayView{
		Day:     day,
		Blocks:  blocks,
		Limit:   s.Rules.MaxTasks(day),
		Message: message,
		Quote:   quote,
	}, nil
}

// dailyQuote picks a random active quote matching the day's mood or
// carrying no affinity tag. Nil when the pool is empty.
func (s *Service) dailyQuote(day models.Day) (*models.Quote, error) {
	pool, err := s.Store.ListActiveQuotesForDisplay(day.Mood)
	if err != nil {
		return nil, err
	}
	if len(pool) == 0 {
		return nil, nil
	}
	q := pool[s.Rand(len(pool))]
	return &q, nil
}

// DayUpdate carries the writable day fields; nil means "leave alone".
type DayUpdate struct {
	Mood      *models.Mood
	Color     *models.Color
	Notes     *string
	Focus     *string
	Gratitude *string
}

// UpdateDay applies a field-scoped update to an open day. On a closed
// day nothing changes and StatusIgnored is returned.
func (s *Service) UpdateDay(userID, date string, upd DayUpdate) (UpdateStatus, models.Day, error) {
	if err := validation.Date(date); err != nil {
		return "", models.Day{}, err
	}

	fields := make(map[string]interface{})
	if upd.Mood != nil {
		if err := validation.Mood(*upd.Mood); err != nil {
			return "", models.Day{}, err
		}
		fields[storage.DayFieldMood] = string(*upd.Mood)
	}
	if upd.Color != nil {
		if err := validation.Color(*upd.Color); err != nil {
			return "", models.Day{}, err
		}
		fields[storage.DayFieldColor] = string(*upd.Color)
	}
	if upd.Notes != nil {
		fields[storage.DayFieldNotes] = *upd.Notes
	}
	if upd.Focus != nil {
		fields[storage.DayFieldFocus] = *upd.Focus
	}
	if upd.Gratitude != nil {
		fields[storage.DayFieldGratitude] = *upd.Gratitude
	}
	if len(fields) == 0 {
		return "", models.Day{}, apperr.Invariantf("no fields to update")
	}

	day, err := s.Store.GetOrCreateDay(userID, date)
	if err != nil {
		return "", models.Day{}, err
	}
	if day.IsClosed {
		return StatusIgnored, day, nil
	}

	applied, err := s.Store.UpdateDayFields(day.ID, fields)
	if err != nil {
		return "", models.Day{}, err
	}
	if !applied {
		return StatusIgnored, day, nil
	}

	day, err = s.Store.GetDayByID(day.ID)
	if err != nil {
		return "", models.Day{}, err
	}
	return StatusApplied, day, nil
}

// BlockInput is the payload for adding a time block.
type BlockInput struct {
	Title     string
	StartTime string
	EndTime   string
	Category  models.Category
}

// AddBlock appends a block to an open day. The rule engine's ceiling is
// enforced at creation time only.
func (s *Service) AddBlock(userID, date string, input BlockInput) (models.TimeBlock, UpdateStatus, error) {
	if err := validation.Date(date); err != nil {
		return models.TimeBlock{}, "", err
	}

	day, err := s.Store.GetOrCreateDay(userID, date)
	if err != nil {
		return models.TimeBlock{}, "", err
	}
	if day.IsClosed {
		return models.TimeBlock{}, StatusIgnored, nil
	}

	category := input.Category
	if category == "" {
		category = models.CategoryOther
	}
	block := models.TimeBlock{
		ID:        uuid.New().String(),
		DayID:     day.ID,
		Title:     input.Title,
		StartTime: input.StartTime,
		EndTime:   input.EndTime,
		Category:  category,
		CreatedAt: s.Now().UTC(),
	}
	if err := validation.TimeBlock(block); err != nil {
		return models.TimeBlock{}, "", err
	}

	count, err := s.Store.CountTimeBlocks(day.ID)
	if err != nil {
		return models.TimeBlock{}, "", err
	}
	if count >= s.Rules.MaxTasks(day) {
		return models.TimeBlock{}, StatusLimitReached, nil
	}

	if err := s.Store.AddTimeBlock(block); err != nil {
		return models.TimeBlock{}, "", err
	}
	return block, StatusApplied, nil
}

// ownedBlock loads a block and checks it belongs to the user.
func (s *Service) ownedBlock(userID, blockID string) (models.TimeBlock, models.Day, error) {
	block, err := s.Store.GetTimeBlock(blockID)
	if err != nil {
		return models.TimeBlock{}, models.Day{}, err
	}
	day, err := s.Store.GetDayByID(block.DayID)
	if err != nil {
		return models.TimeBlock{}, models.Day{}, err
	}
	if day.UserID != userID {
		return models.TimeBlock{}, models.Day{}, apperr.NotFoundf("time block %s", blockID)
	}
	return block, day, nil
}

// ToggleBlock flips a block's completion flag on an open day.
func (s *Service) ToggleBlock(userID, blockID string) (models.TimeBlock, UpdateStatus, error) {
	block, day, err := s.ownedBlock(userID, blockID)
	if err != nil {
		return models.TimeBlock{}, "", err
	}
	if day.IsClosed {
		return block, StatusIgnored, nil
	}

	applied, err := s.Store.SetTimeBlockCompleted(block.ID, !block.Completed)
	if err != nil {
		return models.TimeBlock{}, "", err
	}
	if !applied {
		return block, StatusIgnored, nil
	}
	block.Completed = !block.Completed
	return block, StatusApplied, nil
}

// DeleteBlock removes a block from an open day.
func (s *Service) DeleteBlock(userID, blockID string) (UpdateStatus, error) {
	block, day, err := s.ownedBlock(userID, blockID)
	if err != nil {
		return "", err
	}
	if day.IsClosed {
		return StatusIgnored, nil
	}

	applied, err := s.Store.DeleteTimeBlock(block.ID)
	if err != nil {
		return "", err
	}
	if !applied {
		return StatusIgnored, nil
	}
	return StatusApplied, nil
}

// Reflection lazily creates and returns the reflection for a date.
func (s *Service) Reflection(userID, date string) (models.EveningReflection, error) {
	if err := validation.Date(date); err != nil {
		return models.EveningReflection{}, err
	}
	day, err := s.Store.GetOrCreateDay(userID, date)
	if err != nil {
		return models.EveningReflection{}, err
	}
	return s.Store.GetOrCreateReflection(day.ID)
}

// SaveReflectionDraft updates reflection text before the day closes.
func (s *Service) SaveReflectionDraft(userID, date, drain, smallWin string) (UpdateStatus, error) {
	if err := validation.Date(date); err != nil {
		return "", err
	}
	day, ok, err := s.Store.GetDay(userID, date)
	if err != nil {
		return "", err
	}
	if !ok {
		return "", apperr.NotFoundf("day %s", date)
	}
	applied, err := s.Store.SaveReflection(day.ID, drain, smallWin)
	if err != nil {
		return "", err
	}
	if !applied {
		return StatusIgnored, nil
	}
	return StatusApplied, nil
}

// CloseResult reports the outcome of a closing attempt.
type CloseResult struct {
	Status UpdateStatus  `json:"status"`
	Day    models.Day    `json:"day"`
	Quote  *models.Quote `json:"closing_quote,omitempty"`
}

// CloseDay performs the one-way closing transition: persist the evening
// reflection, pin a closing quote, stamp closed_at and freeze the day.
// Closing an already-closed day is a no-op on the quote and timestamp
// and the reflection text is rejected. Empty reflection fields count as
// provided-but-blank and do not block closing.
func (s *Service) CloseDay(userID, date, drain, smallWin string) (CloseResult, error) {
	if err := validation.Date(date); err != nil {
		return CloseResult{}, err
	}

	day, ok, err := s.Store.GetDay(userID, date)
	if err != nil {
		return CloseResult{}, err
	}
	if !ok {
		return CloseResult{}, apperr.NotFoundf("day %s", date)
	}
	if day.IsClosed {
		return s.closeResult(StatusIgnored, day)
	}

	quoteID, err := s.pickClosingQuote(day)
	if err != nil {
		return CloseResult{}, err
	}

	applied, err := s.Store.CloseDay(day.ID, drain, smallWin, quoteID, s.Now())
	if err != nil {
		return CloseResult{}, err
	}

	day, err = s.Store.GetDayByID(day.ID)
	if err != nil {
		return CloseResult{}, err
	}
	status := StatusApplied
	if !applied {
		status = StatusIgnored
	}
	return s.closeResult(status, day)
}

// pickClosingQuote narrows the active pool to the day's mood affinity
// when any such quotes exist, otherwise falls back to the full active
// pool. Empty pool means no quote, which is fine.
func (s *Service) pickClosingQuote(day models.Day) (string, error) {
	var pool []models.Quote
	var err error
	if day.HasMood() {
		pool, err = s.Store.ListActiveQuotesByMood(day.Mood)
		if err != nil {
			return "", err
		}
	}
	if len(pool) == 0 {
		pool, err = s.Store.ListActiveQuotes()
		if err != nil {
			return "", err
		}
	}
	if len(pool) == 0 {
		return "", nil
	}
	return pool[s.Rand(len(pool))].ID, nil
}

func (s *Service) closeResult(status UpdateStatus, day models.Day) (CloseResult, error) {
	result := CloseResult{Status: status, Day: day}
	if day.ClosingQuoteID != "" {
		quote, err := s.Store.GetQuote(day.ClosingQuoteID)
		if err != nil {
			if !apperr.IsNotFound(err) {
				return CloseResult{}, err
			}
		} else {
			result.Quote = &quote
		}
	}
	return result, nil
}
