package journal

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
	"github.com/gentleday/gentleday/internal/storage/sqlite"
)

func setupService(t *testing.T) (*Service, string) {
	t.Helper()

	store := sqlite.NewStore(filepath.Join(t.TempDir(), "test.db"))
	if err := store.Init(); err != nil {
		t.Fatalf("failed to init store: %v", err)
	}
	t.Cleanup(func() { store.Close() })

	user := models.User{
		ID:        uuid.New().String(),
		Email:     "test@example.com",
		Active:    true,
		CreatedAt: time.Now().UTC(),
	}
	if err := store.CreateUser(user); err != nil {
		t.Fatalf("failed to create user: %v", err)
	}

	svc := New(store)
	svc.Rand = func(n int) int { return 0 }
	svc.Now = func() time.Time {
		return time.Date(2026, 3, 10, 21, 30, 0, 0, time.UTC)
	}
	return svc, user.ID
}

func mustAddQuote(t *testing.T, svc *Service, text string, mood models.Mood) models.Quote {
	t.Helper()
	q := models.Quote{ID: uuid.New().String(), Text: text, Mood: mood, Active: true}
	if err := svc.Store.AddQuote(q); err != nil {
		t.Fatalf("failed to add quote: %v", err)
	}
	return q
}

func logMood(t *testing.T, svc *Service, userID, date string, mood models.Mood) {
	t.Helper()
	status, _, err := svc.UpdateDay(userID, date, DayUpdate{Mood: &mood})
	if err != nil {
		t.Fatalf("failed to log mood for %s: %v", date, err)
	}
	if status != StatusApplied {
		t.Fatalf("logging mood for %s: status = %s, want applied", date, status)
	}
}

func TestDayLazyCreation(t *testing.T) {
	svc, userID := setupService(t)

	view, err := svc.Day(userID, "2026-03-10")
	if err != nil {
		t.Fatalf("Day() error: %v", err)
	}
	if view.Day.Date != "2026-03-10" {
		t.Errorf("Day.Date = %q, want 2026-03-10", view.Day.Date)
	}
	if view.Day.HasMood() {
		t.Error("fresh day should have no mood")
	}
	if view.Limit != 5 {
		t.Errorf("Limit = %d, want the default 5 with no mood", view.Limit)
	}

	// Same date resolves to the same record.
	again, err := svc.Day(userID, "2026-03-10")
	if err != nil {
		t.Fatalf("Day() second call error: %v", err)
	}
	if again.Day.ID != view.Day.ID {
		t.Errorf("second access created a new day: %s vs %s", again.Day.ID, view.Day.ID)
	}
}

func TestDayForcedRestPersists(t *testing.T) {
	svc, userID := setupService(t)

	logMood(t, svc, userID, "2026-03-08", models.MoodBad)
	logMood(t, svc, userID, "2026-03-09", models.MoodVeryBad)

	view, err := svc.Day(userID, "2026-03-10")
	if err != nil {
		t.Fatalf("Day() error: %v", err)
	}
	if !view.Day.RestDay {
		t.Fatal("expected forced rest after two hard days")
	}
	if view.Limit != 1 {
		t.Errorf("Limit = %d, want 1 on a rest day", view.Limit)
	}
	if view.Message == "" {
		t.Error("expected a rest day message")
	}

	// The flag is a persisted snapshot: clearing the history does not
	// reopen the decision.
	view2, err := svc.Day(userID, "2026-03-10")
	if err != nil {
		t.Fatalf("Day() second call error: %v", err)
	}
	if !view2.Day.RestDay {
		t.Error("rest day flag should persist across reads")
	}
}

func TestUpdateDay(t *testing.T) {
	svc, userID := setupService(t)

	t.Run("applies mood and notes", func(t *testing.T) {
		mood := models.MoodGood
		notes := "an ordinary tuesday"
		status, day, err := svc.UpdateDay(userID, "2026-03-10", DayUpdate{Mood: &mood, Notes: &notes})
		if err != nil {
			t.Fatalf("UpdateDay() error: %v", err)
		}
		if status != StatusApplied {
			t.Errorf("status = %s, want applied", status)
		}
		if day.Mood != models.MoodGood || day.Notes != notes {
			t.Errorf("day not updated: mood=%s notes=%q", day.Mood, day.Notes)
		}
	})

	t.Run("rejects unknown mood", func(t *testing.T) {
		bad := models.Mood("ecstatic")
		_, _, err := svc.UpdateDay(userID, "2026-03-10", DayUpdate{Mood: &bad})
		if !apperr.IsInvariant(err) {
			t.Errorf("expected invariant error, got %v", err)
		}
	})

	t.Run("rejects empty update", func(t *testing.T) {
		_, _, err := svc.UpdateDay(userID, "2026-03-10", DayUpdate{})
		if !apperr.IsInvariant(err) {
			t.Errorf("expected invariant error, got %v", err)
		}
	})

	t.Run("ignored on a closed day even when value is unchanged", func(t *testing.T) {
		logMood(t, svc, userID, "2026-03-11", models.MoodGood)
		if _, err := svc.CloseDay(userID, "2026-03-11", "", ""); err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}

		same := models.MoodGood
		status, day, err := svc.UpdateDay(userID, "2026-03-11", DayUpdate{Mood: &same})
		if err != nil {
			t.Fatalf("UpdateDay() error: %v", err)
		}
		if status != StatusIgnored {
			t.Errorf("status = %s, want ignored", status)
		}
		if day.Mood != models.MoodGood {
			t.Errorf("day mood changed on a closed day: %s", day.Mood)
		}
	})
}

func TestAddBlock(t *testing.T) {
	svc, userID := setupService(t)

	t.Run("applies and defaults category", func(t *testing.T) {
		block, status, err := svc.AddBlock(userID, "2026-03-10", BlockInput{
			Title:     "morning walk",
			StartTime: "08:00",
			EndTime:   "08:30",
		})
		if err != nil {
			t.Fatalf("AddBlock() error: %v", err)
		}
		if status != StatusApplied {
			t.Errorf("status = %s, want applied", status)
		}
		if block.Category != models.CategoryOther {
			t.Errorf("category = %s, want other", block.Category)
		}
	})

	t.Run("rejects end before start", func(t *testing.T) {
		_, _, err := svc.AddBlock(userID, "2026-03-10", BlockInput{
			Title:     "backwards",
			StartTime: "10:00",
			EndTime:   "09:00",
		})
		if !apperr.IsInvariant(err) {
			t.Errorf("expected invariant error, got %v", err)
		}
	})

	t.Run("enforces the mood ceiling", func(t *testing.T) {
		logMood(t, svc, userID, "2026-03-12", models.MoodVeryBad)

		if _, status, err := svc.AddBlock(userID, "2026-03-12", BlockInput{
			Title: "one thing", StartTime: "09:00", EndTime: "10:00",
		}); err != nil || status != StatusApplied {
			t.Fatalf("first block: status=%s err=%v", status, err)
		}

		_, status, err := svc.AddBlock(userID, "2026-03-12", BlockInput{
			Title: "too much", StartTime: "10:00", EndTime: "11:00",
		})
		if err != nil {
			t.Fatalf("second block error: %v", err)
		}
		if status != StatusLimitReached {
			t.Errorf("status = %s, want limit_reached on a very_bad day", status)
		}
	})

	t.Run("ignored on a closed day", func(t *testing.T) {
		if _, err := svc.Day(userID, "2026-03-13"); err != nil {
			t.Fatalf("Day() error: %v", err)
		}
		if _, err := svc.CloseDay(userID, "2026-03-13", "", ""); err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}

		_, status, err := svc.AddBlock(userID, "2026-03-13", BlockInput{
			Title: "late idea", StartTime: "20:00", EndTime: "21:00",
		})
		if err != nil {
			t.Fatalf("AddBlock() error: %v", err)
		}
		if status != StatusIgnored {
			t.Errorf("status = %s, want ignored", status)
		}
	})
}

func TestToggleAndDeleteBlock(t *testing.T) {
	svc, userID := setupService(t)

	block, status, err := svc.AddBlock(userID, "2026-03-10", BlockInput{
		Title: "write", StartTime: "09:00", EndTime: "10:00",
	})
	if err != nil || status != StatusApplied {
		t.Fatalf("AddBlock(): status=%s err=%v", status, err)
	}

	t.Run("toggle flips completion", func(t *testing.T) {
		toggled, status, err := svc.ToggleBlock(userID, block.ID)
		if err != nil {
			t.Fatalf("ToggleBlock() error: %v", err)
		}
		if status != StatusApplied || !toggled.Completed {
			t.Errorf("toggle: status=%s completed=%v", status, toggled.Completed)
		}

		back, status, err := svc.ToggleBlock(userID, block.ID)
		if err != nil {
			t.Fatalf("second ToggleBlock() error: %v", err)
		}
		if status != StatusApplied || back.Completed {
			t.Errorf("second toggle: status=%s completed=%v", status, back.Completed)
		}
	})

	t.Run("other users cannot see the block", func(t *testing.T) {
		stranger := models.User{ID: uuid.New().String(), Email: "other@example.com", Active: true, CreatedAt: time.Now().UTC()}
		if err := svc.Store.CreateUser(stranger); err != nil {
			t.Fatalf("failed to create user: %v", err)
		}
		_, _, err := svc.ToggleBlock(stranger.ID, block.ID)
		if !apperr.IsNotFound(err) {
			t.Errorf("expected not found for foreign block, got %v", err)
		}
	})

	t.Run("toggle and delete ignored after closing", func(t *testing.T) {
		if _, err := svc.CloseDay(userID, "2026-03-10", "", ""); err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}

		_, status, err := svc.ToggleBlock(userID, block.ID)
		if err != nil {
			t.Fatalf("ToggleBlock() error: %v", err)
		}
		if status != StatusIgnored {
			t.Errorf("toggle status = %s, want ignored", status)
		}

		delStatus, err := svc.DeleteBlock(userID, block.ID)
		if err != nil {
			t.Fatalf("DeleteBlock() error: %v", err)
		}
		if delStatus != StatusIgnored {
			t.Errorf("delete status = %s, want ignored", delStatus)
		}

		// The block survived both attempts.
		if _, err := svc.Store.GetTimeBlock(block.ID); err != nil {
			t.Errorf("block should still exist: %v", err)
		}
	})

	t.Run("delete removes an open day's block", func(t *testing.T) {
		b2, _, err := svc.AddBlock(userID, "2026-03-11", BlockInput{
			Title: "stretch", StartTime: "07:00", EndTime: "07:15",
		})
		if err != nil {
			t.Fatalf("AddBlock() error: %v", err)
		}
		status, err := svc.DeleteBlock(userID, b2.ID)
		if err != nil {
			t.Fatalf("DeleteBlock() error: %v", err)
		}
		if status != StatusApplied {
			t.Errorf("status = %s, want applied", status)
		}
		if _, err := svc.Store.GetTimeBlock(b2.ID); !apperr.IsNotFound(err) {
			t.Errorf("expected block gone, got %v", err)
		}
	})
}

func TestCloseDay(t *testing.T) {
	t.Run("closes with reflection and mood-matched quote", func(t *testing.T) {
		svc, userID := setupService(t)
		matched := mustAddQuote(t, svc, "matched", models.MoodBad)
		mustAddQuote(t, svc, "untagged", "")

		logMood(t, svc, userID, "2026-03-10", models.MoodBad)
		result, err := svc.CloseDay(userID, "2026-03-10", "meetings", "finished the draft")
		if err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}
		if result.Status != StatusApplied {
			t.Errorf("status = %s, want applied", result.Status)
		}
		if !result.Day.IsClosed || result.Day.ClosedAt == nil {
			t.Error("day not frozen after closing")
		}
		if result.Quote == nil || result.Quote.ID != matched.ID {
			t.Errorf("expected the mood-matched quote, got %+v", result.Quote)
		}

		refl, err := svc.Reflection(userID, "2026-03-10")
		if err != nil {
			t.Fatalf("Reflection() error: %v", err)
		}
		if refl.Drain != "meetings" || refl.SmallWin != "finished the draft" {
			t.Errorf("reflection not persisted: %+v", refl)
		}
	})

	t.Run("falls back to the full pool when no affinity match", func(t *testing.T) {
		svc, userID := setupService(t)
		first := models.Quote{ID: "a-first", Text: "first", Active: true}
		second := models.Quote{ID: "b-second", Text: "second", Active: true}
		for _, q := range []models.Quote{first, second} {
			if err := svc.Store.AddQuote(q); err != nil {
				t.Fatalf("failed to add quote: %v", err)
			}
		}

		logMood(t, svc, userID, "2026-03-10", models.MoodGood)
		result, err := svc.CloseDay(userID, "2026-03-10", "", "")
		if err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}
		if result.Quote == nil {
			t.Fatal("expected a closing quote from the untagged pool")
		}
		// Rand is pinned to 0 and the pool is ordered by id.
		if result.Quote.ID != first.ID {
			t.Errorf("quote = %s, want %s", result.Quote.ID, first.ID)
		}
	})

	t.Run("closing is idempotent", func(t *testing.T) {
		svc, userID := setupService(t)
		mustAddQuote(t, svc, "only", "")

		logMood(t, svc, userID, "2026-03-10", models.MoodNeutral)
		first, err := svc.CloseDay(userID, "2026-03-10", "tired", "slept early")
		if err != nil {
			t.Fatalf("first CloseDay() error: %v", err)
		}

		second, err := svc.CloseDay(userID, "2026-03-10", "OVERWRITE", "OVERWRITE")
		if err != nil {
			t.Fatalf("second CloseDay() error: %v", err)
		}
		if second.Status != StatusIgnored {
			t.Errorf("second close status = %s, want ignored", second.Status)
		}
		if second.Day.ClosedAt == nil || !second.Day.ClosedAt.Equal(*first.Day.ClosedAt) {
			t.Errorf("closed_at changed on re-close: %v vs %v", second.Day.ClosedAt, first.Day.ClosedAt)
		}
		if second.Day.ClosingQuoteID != first.Day.ClosingQuoteID {
			t.Errorf("closing quote changed on re-close")
		}

		refl, err := svc.Reflection(userID, "2026-03-10")
		if err != nil {
			t.Fatalf("Reflection() error: %v", err)
		}
		if refl.Drain != "tired" || refl.SmallWin != "slept early" {
			t.Errorf("reflection overwritten by re-close: %+v", refl)
		}
	})

	t.Run("closing an absent day is not found", func(t *testing.T) {
		svc, userID := setupService(t)
		_, err := svc.CloseDay(userID, "2026-03-10", "", "")
		if !apperr.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("closes without any quotes", func(t *testing.T) {
		svc, userID := setupService(t)
		logMood(t, svc, userID, "2026-03-10", models.MoodGood)

		result, err := svc.CloseDay(userID, "2026-03-10", "", "")
		if err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}
		if result.Status != StatusApplied {
			t.Errorf("status = %s, want applied", result.Status)
		}
		if result.Quote != nil {
			t.Errorf("expected no quote with an empty pool, got %+v", result.Quote)
		}
	})
}

func TestSaveReflectionDraft(t *testing.T) {
	svc, userID := setupService(t)

	t.Run("requires an existing day", func(t *testing.T) {
		_, err := svc.SaveReflectionDraft(userID, "2026-03-10", "x", "y")
		if !apperr.IsNotFound(err) {
			t.Errorf("expected not found, got %v", err)
		}
	})

	t.Run("saves on an open day", func(t *testing.T) {
		if _, err := svc.Day(userID, "2026-03-10"); err != nil {
			t.Fatalf("Day() error: %v", err)
		}
		status, err := svc.SaveReflectionDraft(userID, "2026-03-10", "noise", "quiet hour")
		if err != nil {
			t.Fatalf("SaveReflectionDraft() error: %v", err)
		}
		if status != StatusApplied {
			t.Errorf("status = %s, want applied", status)
		}

		refl, err := svc.Reflection(userID, "2026-03-10")
		if err != nil {
			t.Fatalf("Reflection() error: %v", err)
		}
		if refl.Drain != "noise" || refl.SmallWin != "quiet hour" {
			t.Errorf("draft not saved: %+v", refl)
		}
	})

	t.Run("ignored after closing", func(t *testing.T) {
		if _, err := svc.CloseDay(userID, "2026-03-10", "final", "final"); err != nil {
			t.Fatalf("CloseDay() error: %v", err)
		}
		status, err := svc.SaveReflectionDraft(userID, "2026-03-10", "late", "late")
		if err != nil {
			t.Fatalf("SaveReflectionDraft() error: %v", err)
		}
		if status != StatusIgnored {
			t.Errorf("status = %s, want ignored", status)
		}

		refl, err := svc.Reflection(userID, "2026-03-10")
		if err != nil {
			t.Fatalf("Reflection() error: %v", err)
		}
		if refl.Drain != "final" {
			t.Errorf("reflection overwritten after close: %+v", refl)
		}
	})
}

func TestDailyQuoteAffinity(t *testing.T) {
	svc, userID := setupService(t)
	mustAddQuote(t, svc, "for hard days", models.MoodBad)
	untagged := mustAddQuote(t, svc, "for any day", "")

	// With no mood logged, only untagged quotes are eligible.
	view, err := svc.Day(userID, "2026-03-10")
	if err != nil {
		t.Fatalf("Day() error: %v", err)
	}
	if view.Quote == nil || view.Quote.ID != untagged.ID {
		t.Errorf("expected the untagged quote with no mood, got %+v", view.Quote)
	}
}
