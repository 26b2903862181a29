package storage

import (
	"database/sql"
	"time"

	"github.com/gentleday/gentleday/internal/models"
)

// Provider is the durable store contract the journal core talks to.
//
// Day mutations are narrow, field-scoped writes guarded by the day's
// is_closed flag inside the store itself: the returned applied flag is
// false when the guard suppressed the write (the caller treats that as a
// policy no-op, not an error). GetOrCreateDay serializes on the
// (user, date) uniqueness constraint so concurrent first accesses
// observe a single record.
type Provider interface {
	// Lifecycle
	Init() error
	Load() error
	Close() error
	GetConfigPath() string
	GetDB() *sql.DB

	// Users
	CreateUser(models.User) error
	GetUser(id string) (models.User, error)
	GetUserByEmail(email string) (models.User, error)
	ActivateUser(id string) error

	// Profiles
	GetOrCreateProfile(userID string) (models.UserProfile, error)
	SaveProfile(models.UserProfile) error

	// Sessions
	CreateSession(models.Session) error
	GetSession(token string) (models.Session, error)
	DeleteSession(token string) error
	DeleteExpiredSessions(now time.Time) error

	// Days
	GetOrCreateDay(userID, date string) (models.Day, error)
	GetDay(userID, date string) (models.Day, bool, error)
	GetDayByID(id string) (models.Day, error)
	ListDaysRange(userID, dateFrom, dateTo string) ([]models.Day, error)
	ListRecentDaysBefore(userID, date string, limit int) ([]models.Day, error)
	ListAllDays(userID string) ([]models.Day, error)
	UpdateDayFields(dayID string, fields map[string]interface{}) (applied bool, err error)
	CloseDay(dayID, drain, smallWin, quoteID string, closedAt time.Time) (applied bool, err error)

	// Time blocks
	AddTimeBlock(models.TimeBlock) error
	GetTimeBlock(id string) (models.TimeBlock, error)
	ListTimeBlocks(dayID string) ([]models.TimeBlock, error)
	CountTimeBlocks(dayID string) (int, error)
	SetTimeBlockCompleted(id string, completed bool) (applied bool, err error)
	DeleteTimeBlock(id string) (applied bool, err error)
	CountCompletedBlocksInRange(userID, dateFrom, dateTo string) (int, error)
	CompletedBlockCountsByDate(userID string) (map[string]int, error)

	// Quotes
	AddQuote(models.Quote) error
	GetQuote(id string) (models.Quote, error)
	ListQuotes() ([]models.Quote, error)
	ListActiveQuotes() ([]models.Quote, error)
	ListActiveQuotesByMood(mood models.Mood) ([]models.Quote, error)
	ListActiveQuotesForDisplay(mood models.Mood) ([]models.Quote, error)

	// Reflections
	GetOrCreateReflection(dayID string) (models.EveningReflection, error)
	SaveReflection(dayID, drain, smallWin string) (applied bool, err error)
}

// DayFieldMood and friends are the UpdateDayFields keys the stores accept.
const (
	DayFieldMood      = "mood"
	DayFieldColor     = "color"
	DayFieldNotes     = "notes"
	DayFieldFocus     = "focus"
	DayFieldGratitude = "gratitude"
	DayFieldRestDay   = "rest_day"
)
