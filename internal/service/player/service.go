package player

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/mindcare-app/backend/internal/model/wellness"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

// Player errors.
var (
	ErrSoundNotFound = errors.New("sound not found")
	ErrGameNotFound  = errors.New("game not found")
	ErrBadRating     = errors.New("rating must be between 1 and 5")
	ErrBadDuration   = errors.New("sleep timer duration must be positive")
)

// State is a snapshot of the ambient-sound player.
type State struct {
	Sound        *wellness.Sound `json:"sound,omitempty"`
	Playing      bool            `json:"playing"`
	TimerEndsAt  *time.Time      `json:"timerEndsAt,omitempty"`
	TimerMinutes int             `json:"timerMinutes,omitempty"`
}

// gameProgress is the persisted per-game state.
type gameProgress struct {
	Completed bool    `json:"completed"`
	Rating    float64 `json:"rating,omitempty"`
}

// Service models the ambient-sound player and wellness-exercise progress.
// The sleep timer pauses playback when it elapses; selecting a new timer
// replaces the old one.
type Service struct {
	mu     sync.Mutex
	store  kv.Store
	logger *zap.Logger

	current   *wellness.Sound
	playing   bool
	timer     *time.Timer
	timerEnds time.Time
	timerMins int
}

func NewService(store kv.Store, logger *zap.Logger) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Service{store: store, logger: logger}
}

// Sounds returns the ambient catalog.
func (s *Service) Sounds(_ context.Context) []wellness.Sound {
	return wellness.Sounds()
}

// Play starts (or resumes) the given sound. Selecting a different sound
// switches tracks.
func (s *Service) Play(_ context.Context, soundID string) (State, error) {
	sound, ok := wellness.FindSound(soundID)
	if !ok {
		return State{}, ErrSoundNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.current = &sound
	s.playing = true
	return s.stateLocked(), nil
}

// Pause stops playback without clearing the selected sound.
func (s *Service) Pause(_ context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	return s.stateLocked()
}

// State reports the current player snapshot.
func (s *Service) State(_ context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

// SetSleepTimer arms (or re-arms) the timer that pauses playback after
// the given number of minutes.
func (s *Service) SetSleepTimer(_ context.Context, minutes int) (State, error) {
	if minutes <= 0 {
		return State{}, ErrBadDuration
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.timer != nil {
		s.timer.Stop()
	}
	d := time.Duration(minutes) * time.Minute
	s.timerEnds = time.Now().Add(d)
	s.timerMins = minutes
	s.timer = time.AfterFunc(d, s.timerElapsed)
	return s.stateLocked(), nil
}

// CancelSleepTimer disarms the timer, leaving playback alone.
func (s *Service) CancelSleepTimer(_ context.Context) State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.clearTimerLocked()
	return s.stateLocked()
}

func (s *Service) timerElapsed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.playing = false
	s.clearTimerLocked()
	s.logger.Info("sleep timer elapsed, playback paused")
}

func (s *Service) clearTimerLocked() {
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.timerEnds = time.Time{}
	s.timerMins = 0
}

func (s *Service) stateLocked() State {
	state := State{Playing: s.playing, TimerMinutes: s.timerMins}
	if s.current != nil {
		sound := *s.current
		state.Sound = &sound
	}
	if !s.timerEnds.IsZero() {
		ends := s.timerEnds
		state.TimerEndsAt = &ends
	}
	return state
}

// Games returns the exercise catalog merged with saved progress.
func (s *Service) Games(_ context.Context) ([]wellness.Game, error) {
	progress, err := s.loadProgress()
	if err != nil {
		return nil, err
	}
	games := wellness.Games()
	for i := range games {
		if p, ok := progress[games[i].ID]; ok {
			games[i].Completed = p.Completed
			games[i].Rating = p.Rating
		}
	}
	return games, nil
}

// CompleteGame marks an exercise done, optionally recording a 1-5 rating
// (0 leaves any earlier rating in place).
func (s *Service) CompleteGame(_ context.Context, gameID string, rating float64) (wellness.Game, error) {
	game, ok := wellness.FindGame(gameID)
	if !ok {
		return wellness.Game{}, ErrGameNotFound
	}
	if rating != 0 && (rating < 1 || rating > 5) {
		return wellness.Game{}, ErrBadRating
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	progress, err := s.loadProgress()
	if err != nil {
		return wellness.Game{}, err
	}
	p := progress[gameID]
	p.Completed = true
	if rating != 0 {
		p.Rating = rating
	}
	progress[gameID] = p
	if err := s.store.Put(wellness.GameProgressKey, progress); err != nil {
		return wellness.Game{}, fmt.Errorf("persist game progress: %w", err)
	}

	game.Completed = p.Completed
	game.Rating = p.Rating
	return game, nil
}

func (s *Service) loadProgress() (map[string]gameProgress, error) {
	progress := make(map[string]gameProgress)
	err := s.store.Get(wellness.GameProgressKey, &progress)
	if err != nil && !errors.Is(err, kv.ErrNotFound) {
		s.logger.Warn("game progress unreadable, starting fresh", zap.Error(err))
		return make(map[string]gameProgress), nil
	}
	return progress, nil
}
