package validation

import (
	"testing"

	"github.com/gentleday/gentleday/internal/apperr"
	"github.com/gentleday/gentleday/internal/models"
)

func TestEmail(t *testing.T) {
	for _, good := range []string{"a@b.co", "someone+tag@example.com", "  padded@example.com  "} {
		if err := Email(good); err != nil {
			t.Errorf("Email(%q) error: %v", good, err)
		}
	}
	for _, bad := range []string{"", "plainword", "a@", "@example.com"} {
		if err := Email(bad); !apperr.IsInvariant(err) {
			t.Errorf("Email(%q) = %v, want invariant error", bad, err)
		}
	}
}

func TestPassword(t *testing.T) {
	if err := Password("eightchr"); err != nil {
		t.Errorf("eight characters should pass: %v", err)
	}
	if err := Password("seven77"); !apperr.IsInvariant(err) {
		t.Errorf("seven characters should fail, got %v", err)
	}
}

func TestDate(t *testing.T) {
	if err := Date("2026-03-10"); err != nil {
		t.Errorf("Date() error: %v", err)
	}
	if err := Date("10.03.2026"); !apperr.IsInvariant(err) {
		t.Errorf("expected invariant error, got %v", err)
	}
}

func TestMoodAndColor(t *testing.T) {
	if err := Mood(""); err != nil {
		t.Errorf("empty mood should pass: %v", err)
	}
	if err := Mood(models.MoodVeryGood); err != nil {
		t.Errorf("Mood(very_good) error: %v", err)
	}
	if err := Mood("ecstatic"); !apperr.IsInvariant(err) {
		t.Errorf("unknown mood: got %v", err)
	}

	if err := Color(""); err != nil {
		t.Errorf("empty color should pass: %v", err)
	}
	if err := Color(models.ColorGreen); err != nil {
		t.Errorf("Color(green) error: %v", err)
	}
	if err := Color("amber"); !apperr.IsInvariant(err) {
		t.Errorf("unknown color: got %v", err)
	}
}

func TestTimeBlock(t *testing.T) {
	block := models.TimeBlock{Title: "deep work", StartTime: "09:00", EndTime: "10:30"}
	if err := TimeBlock(block); err != nil {
		t.Errorf("TimeBlock() error: %v", err)
	}

	tests := []struct {
		name  string
		block models.TimeBlock
	}{
		{"end before start", models.TimeBlock{Title: "x", StartTime: "10:00", EndTime: "09:00"}},
		{"zero length", models.TimeBlock{Title: "x", StartTime: "10:00", EndTime: "10:00"}},
		{"bad start", models.TimeBlock{Title: "x", StartTime: "late", EndTime: "10:00"}},
		{"empty title", models.TimeBlock{StartTime: "09:00", EndTime: "10:00"}},
		{"bad category", models.TimeBlock{Title: "x", StartTime: "09:00", EndTime: "10:00", Category: "chores"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if err := TimeBlock(tt.block); !apperr.IsInvariant(err) {
				t.Errorf("got %v, want invariant error", err)
			}
		})
	}
}

func TestQuote(t *testing.T) {
	if err := Quote(models.Quote{Text: "onward", Mood: models.MoodBad}); err != nil {
		t.Errorf("Quote() error: %v", err)
	}
	if err := Quote(models.Quote{Text: "onward"}); err != nil {
		t.Errorf("untagged quote should pass: %v", err)
	}
	if err := Quote(models.Quote{Text: "   "}); !apperr.IsInvariant(err) {
		t.Errorf("blank text: got %v", err)
	}
	if err := Quote(models.Quote{Text: "onward", Mood: "ecstatic"}); !apperr.IsInvariant(err) {
		t.Errorf("bad mood tag: got %v", err)
	}
}

func TestReminderTime(t *testing.T) {
	if err := ReminderTime(""); err != nil {
		t.Errorf("empty reminder should pass: %v", err)
	}
	if err := ReminderTime("21:30"); err != nil {
		t.Errorf("ReminderTime() error: %v", err)
	}
	if err := ReminderTime("9pm"); !apperr.IsInvariant(err) {
		t.Errorf("expected invariant error, got %v", err)
	}
}
