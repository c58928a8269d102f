package mood

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	moodmodel "github.com/mindcare-app/backend/internal/model/mood"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

// ErrInvalidLevel rejects moods outside the five-step scale.
var ErrInvalidLevel = errors.New("unknown mood level")

// Service keeps one mood entry per calendar day under a date-derived key.
// A second save on the same day overwrites the first (last write wins).
type Service struct {
	store  kv.Store
	logger *zap.Logger
	now    func() time.Time
}

// NewService wires the mood log to its store. The clock is injectable so
// tests can pin the calendar day.
func NewService(store kv.Store, logger *zap.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	return &Service{store: store, logger: logger, now: now}
}

// Save records today's mood, replacing any earlier entry for the day.
func (s *Service) Save(_ context.Context, level moodmodel.Level, notes string) (moodmodel.Entry, error) {
	if !level.Valid() {
		return moodmodel.Entry{}, ErrInvalidLevel
	}

	now := s.now()
	entry := moodmodel.Entry{
		ID:    uuid.NewString(),
		Mood:  level,
		Notes: notes,
		Date:  now,
	}
	if err := s.store.Put(moodmodel.Key(now), entry); err != nil {
		return moodmodel.Entry{}, fmt.Errorf("save mood entry: %w", err)
	}
	return entry, nil
}

// Today returns the current day's entry, if logged.
func (s *Service) Today(_ context.Context) (moodmodel.Entry, bool) {
	var entry moodmodel.Entry
	if err := s.store.Get(moodmodel.Key(s.now()), &entry); err != nil {
		return moodmodel.Entry{}, false
	}
	return entry, true
}

// History lists every logged day in chronological order. Unreadable
// entries are skipped rather than failing the whole listing.
func (s *Service) History(_ context.Context) ([]moodmodel.Entry, error) {
	keys, err := s.store.Keys(moodmodel.KeyPrefix)
	if err != nil {
		return nil, fmt.Errorf("list mood keys: %w", err)
	}
	sort.Strings(keys)

	entries := make([]moodmodel.Entry, 0, len(keys))
	for _, key := range keys {
		var entry moodmodel.Entry
		if err := s.store.Get(key, &entry); err != nil {
			s.logger.Warn("skipping unreadable mood entry", zap.String("key", key), zap.Error(err))
			continue
		}
		entries = append(entries, entry)
	}
	return entries, nil
}
