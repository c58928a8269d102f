package therapy

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	therapymodel "github.com/mindcare-app/backend/internal/model/therapy"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

// Booking errors.
var (
	ErrTherapistNotFound  = errors.New("therapist not found")
	ErrChannelUnsupported = errors.New("therapist does not offer this session type")
	ErrDateRequired       = errors.New("session date and time are required")
	ErrSessionNotFound    = errors.New("session not found")
)

// Session list filters.
const (
	FilterAll       = "all"
	FilterUpcoming  = "upcoming"
	FilterCompleted = "completed"
)

// Service books therapy sessions against the therapist directory and
// keeps the booking log in the store.
type Service struct {
	mu         sync.Mutex
	therapists therapymodel.Store
	store      kv.Store
	logger     *zap.Logger
	now        func() time.Time
	sessions   []therapymodel.Session
}

// NewService loads existing bookings; an absent or unreadable log starts
// empty.
func NewService(therapists therapymodel.Store, store kv.Store, logger *zap.Logger, now func() time.Time) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if now == nil {
		now = time.Now
	}
	s := &Service{therapists: therapists, store: store, logger: logger, now: now}

	var sessions []therapymodel.Session
	if err := store.Get(therapymodel.SessionsKey, &sessions); err != nil {
		if !errors.Is(err, kv.ErrNotFound) {
			logger.Warn("session log unreadable, starting empty", zap.Error(err))
		}
		sessions = nil
	}
	s.sessions = sessions
	return s
}

// Therapists returns the bookable directory.
func (s *Service) Therapists(_ context.Context) []therapymodel.Therapist {
	return s.therapists.List()
}

// Therapist looks up one directory entry.
func (s *Service) Therapist(_ context.Context, id string) (therapymodel.Therapist, error) {
	t, ok := s.therapists.FindByID(id)
	if !ok {
		return therapymodel.Therapist{}, ErrTherapistNotFound
	}
	return t, nil
}

// BookingInput carries a booking request.
type BookingInput struct {
	TherapistID   string
	StudentID     string
	Type          string // chat, call, video
	ScheduledDate time.Time
	Notes         string
}

// Book validates and records a session. Cost comes from the therapist's
// per-channel pricing; campus therapists book free.
func (s *Service) Book(_ context.Context, input BookingInput) (therapymodel.Session, error) {
	therapist, ok := s.therapists.FindByID(input.TherapistID)
	if !ok {
		return therapymodel.Session{}, ErrTherapistNotFound
	}
	if !therapist.Offers(input.Type) {
		return therapymodel.Session{}, ErrChannelUnsupported
	}
	if input.ScheduledDate.IsZero() {
		return therapymodel.Session{}, ErrDateRequired
	}

	session := therapymodel.Session{
		ID:            uuid.NewString(),
		TherapistID:   therapist.ID,
		StudentID:     input.StudentID,
		Type:          input.Type,
		Status:        therapymodel.StatusScheduled,
		ScheduledDate: input.ScheduledDate,
		Duration:      60,
		Notes:         input.Notes,
		Cost:          therapist.Pricing[input.Type],
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions = append(s.sessions, session)
	if err := s.persistLocked(); err != nil {
		s.sessions = s.sessions[:len(s.sessions)-1]
		return therapymodel.Session{}, err
	}
	s.logger.Info("session booked",
		zap.String("therapist", therapist.Name),
		zap.String("type", input.Type),
		zap.Time("scheduled", input.ScheduledDate))
	return session, nil
}

// Sessions lists a student's bookings under one of the three filters.
// "upcoming" means still scheduled and in the future; "completed" covers
// finished sessions and scheduled ones whose date has passed.
func (s *Service) Sessions(_ context.Context, studentID, filter string) []therapymodel.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	out := make([]therapymodel.Session, 0, len(s.sessions))
	for _, session := range s.sessions {
		if studentID != "" && session.StudentID != studentID {
			continue
		}
		switch filter {
		case FilterUpcoming:
			if session.Status != therapymodel.StatusScheduled || !session.ScheduledDate.After(now) {
				continue
			}
		case FilterCompleted:
			past := session.Status == therapymodel.StatusScheduled && !session.ScheduledDate.After(now)
			if session.Status != therapymodel.StatusCompleted && !past {
				continue
			}
		}
		out = append(out, session)
	}
	return out
}

// Cancel marks a scheduled session cancelled.
func (s *Service) Cancel(_ context.Context, sessionID, studentID string) (therapymodel.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.sessions {
		if s.sessions[i].ID != sessionID {
			continue
		}
		if studentID != "" && s.sessions[i].StudentID != studentID {
			continue
		}
		s.sessions[i].Status = therapymodel.StatusCancelled
		if err := s.persistLocked(); err != nil {
			return therapymodel.Session{}, err
		}
		return s.sessions[i], nil
	}
	return therapymodel.Session{}, ErrSessionNotFound
}

func (s *Service) persistLocked() error {
	if err := s.store.Put(therapymodel.SessionsKey, s.sessions); err != nil {
		return fmt.Errorf("persist therapy sessions: %w", err)
	}
	return nil
}
