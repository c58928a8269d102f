package mood

import (
	"context"
	"net/url"
	"os"
	"path/filepath"
	"testing"
	"time"

	moodmodel "github.com/mindcare-app/backend/internal/model/mood"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestSaveSameDayOverwrites(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	day := time.Date(2024, time.December, 16, 9, 30, 0, 0, time.UTC)
	svc := NewService(store, nil, fixedClock(day))
	ctx := context.Background()

	if _, err := svc.Save(ctx, moodmodel.Okay, "rough morning"); err != nil {
		t.Fatalf("first Save err: %v", err)
	}
	if _, err := svc.Save(ctx, moodmodel.Good, "better after lunch"); err != nil {
		t.Fatalf("second Save err: %v", err)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 1 {
		t.Fatalf("expected one entry for the day, got %d", len(history))
	}
	if history[0].Mood != moodmodel.Good || history[0].Notes != "better after lunch" {
		t.Fatalf("expected last write to win, got %+v", history[0])
	}
}

func TestSaveRejectsUnknownLevel(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	svc := NewService(store, nil, nil)

	if _, err := svc.Save(context.Background(), moodmodel.Level("ecstatic"), ""); err != ErrInvalidLevel {
		t.Fatalf("expected ErrInvalidLevel, got %v", err)
	}
}

func TestHistoryChronologicalAcrossDays(t *testing.T) {
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	ctx := context.Background()

	days := []time.Time{
		time.Date(2024, time.December, 14, 8, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 15, 8, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 16, 8, 0, 0, 0, time.UTC),
	}
	levels := []moodmodel.Level{moodmodel.Low, moodmodel.Okay, moodmodel.Excellent}
	for i, day := range days {
		svc := NewService(store, nil, fixedClock(day))
		if _, err := svc.Save(ctx, levels[i], ""); err != nil {
			t.Fatalf("Save day %d err: %v", i, err)
		}
	}

	svc := NewService(store, nil, fixedClock(days[2]))
	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 3 {
		t.Fatalf("expected 3 entries, got %d", len(history))
	}
	for i := range levels {
		if history[i].Mood != levels[i] {
			t.Fatalf("history out of order at %d: %+v", i, history)
		}
	}

	if _, ok := svc.Today(ctx); !ok {
		t.Fatal("expected today's entry to be present")
	}
}

func TestHistorySkipsMalformedEntries(t *testing.T) {
	dir := t.TempDir()
	store, err := kv.NewFileStore(dir)
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	day := time.Date(2024, time.December, 16, 8, 0, 0, 0, time.UTC)
	svc := NewService(store, nil, fixedClock(day))
	ctx := context.Background()

	if _, err := svc.Save(ctx, moodmodel.Good, ""); err != nil {
		t.Fatalf("Save err: %v", err)
	}
	badPath := filepath.Join(dir, url.PathEscape("mood_2024-12-15")+".json")
	if err := os.WriteFile(badPath, []byte("][not json"), 0o644); err != nil {
		t.Fatalf("seed malformed entry: %v", err)
	}

	history, err := svc.History(ctx)
	if err != nil {
		t.Fatalf("History err: %v", err)
	}
	if len(history) != 1 || history[0].Mood != moodmodel.Good {
		t.Fatalf("expected malformed entry skipped, got %+v", history)
	}
}
