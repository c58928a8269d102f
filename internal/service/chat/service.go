package chat

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/mindcare-app/backend/internal/analysis/triage"
	chatmodel "github.com/mindcare-app/backend/internal/model/chat"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

// ErrEmptyMessage rejects blank or whitespace-only submissions; they must
// never produce a transcript entry or a reply.
var ErrEmptyMessage = errors.New("message text is required")

// Event is pushed to subscribers when the conversation changes. Drives
// the SSE and websocket transports.
type Event struct {
	Type    string             `json:"type"` // message, typing, cleared
	Typing  bool               `json:"typing,omitempty"`
	Message *chatmodel.Message `json:"message,omitempty"`
}

// Service owns the conversation log and the scripted-reply state machine:
// Idle -> AwaitingReply -> Idle. The log is persisted whole after every
// change and restored on construction, seeded with a greeting when absent
// or unreadable.
type Service struct {
	mu        sync.Mutex
	store     kv.Store
	responder *triage.Responder
	logger    *zap.Logger

	delayMin time.Duration
	delayMax time.Duration

	messages []chatmodel.Message
	typing   bool
	pending  *time.Timer

	// epoch guards delayed replies: Clear bumps it, so a reply computed
	// for a conversation that no longer exists is dropped, not appended.
	epoch uint64

	subscribers map[chan Event]struct{}
}

// NewService restores (or seeds) the conversation from the store. The
// delay bounds model assistant "thinking"; tests pass near-zero values.
func NewService(store kv.Store, responder *triage.Responder, logger *zap.Logger, delayMin, delayMax time.Duration) *Service {
	if logger == nil {
		logger = zap.NewNop()
	}
	if delayMax < delayMin {
		delayMax = delayMin
	}

	s := &Service{
		store:       store,
		responder:   responder,
		logger:      logger,
		delayMin:    delayMin,
		delayMax:    delayMax,
		subscribers: make(map[chan Event]struct{}),
	}

	var saved []chatmodel.Message
	err := store.Get(chatmodel.StorageKey, &saved)
	switch {
	case err == nil && len(saved) > 0:
		s.messages = saved
	case errors.Is(err, kv.ErrNotFound), err == nil:
		s.seedGreetingLocked()
	default:
		logger.Warn("chat history unreadable, reseeding", zap.Error(err))
		s.seedGreetingLocked()
	}

	return s
}

// seedGreetingLocked appends a random greeting and persists. Callers hold
// the lock (or own the service exclusively during construction).
func (s *Service) seedGreetingLocked() chatmodel.Message {
	greeting := chatmodel.Message{
		ID:        uuid.NewString(),
		Text:      s.responder.Reply(triage.Greeting),
		IsUser:    false,
		Timestamp: time.Now().UTC(),
	}
	s.messages = append(s.messages, greeting)
	s.persistLocked()
	return greeting
}

func (s *Service) persistLocked() {
	if err := s.store.Put(chatmodel.StorageKey, s.messages); err != nil {
		s.logger.Error("persist chat history", zap.Error(err))
	}
}

// History returns the transcript in chronological order.
func (s *Service) History(_ context.Context) []chatmodel.Message {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := make([]chatmodel.Message, len(s.messages))
	copy(copied, s.messages)
	return copied
}

// Typing reports whether a reply is pending.
func (s *Service) Typing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.typing
}

// Send appends the user's message synchronously and schedules the
// scripted reply after the simulated thinking delay. Concurrent sends are
// not blocked at this layer; the UI discourages them.
func (s *Service) Send(_ context.Context, text string) (chatmodel.Message, error) {
	trimmed := strings.TrimSpace(text)
	if trimmed == "" {
		return chatmodel.Message{}, ErrEmptyMessage
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	message := chatmodel.Message{
		ID:        uuid.NewString(),
		Text:      trimmed,
		IsUser:    true,
		Timestamp: time.Now().UTC(),
	}
	s.messages = append(s.messages, message)
	s.persistLocked()
	s.broadcastLocked(Event{Type: "message", Message: &message})

	s.typing = true
	s.broadcastLocked(Event{Type: "typing", Typing: true})

	epoch := s.epoch
	delay := s.delayMin
	if span := s.delayMax - s.delayMin; span > 0 {
		delay += time.Duration(rand.Int63n(int64(span)))
	}
	s.pending = time.AfterFunc(delay, func() {
		s.completeReply(epoch, trimmed)
	})

	return message, nil
}

// completeReply runs when the thinking timer fires. The epoch check drops
// replies that were scheduled before a Clear.
func (s *Service) completeReply(epoch uint64, userText string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if epoch != s.epoch {
		s.logger.Debug("dropping reply for cleared conversation")
		return
	}

	category, text := s.responder.Respond(userText)
	reply := chatmodel.Message{
		ID:        uuid.NewString(),
		Text:      text,
		IsUser:    false,
		Timestamp: time.Now().UTC(),
	}
	s.messages = append(s.messages, reply)
	s.persistLocked()

	s.typing = false
	s.pending = nil
	s.broadcastLocked(Event{Type: "typing", Typing: false})
	s.broadcastLocked(Event{Type: "message", Message: &reply})

	s.logger.Info("assistant replied",
		zap.String("category", string(category)),
		zap.String("messageId", reply.ID),
	)
}

// Clear empties the log, cancels any pending reply, and re-seeds a fresh
// greeting. Clearing twice in a row yields the same single-greeting shape.
func (s *Service) Clear(_ context.Context) (chatmodel.Message, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.epoch++
	if s.pending != nil {
		s.pending.Stop()
		s.pending = nil
	}
	s.typing = false
	s.messages = nil

	greeting := s.seedGreetingLocked()
	s.broadcastLocked(Event{Type: "cleared"})
	s.broadcastLocked(Event{Type: "message", Message: &greeting})
	return greeting, nil
}

// Export renders the transcript as flat text, one line per message.
func (s *Service) Export(_ context.Context) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	lines := make([]string, 0, len(s.messages))
	for _, message := range s.messages {
		lines = append(lines, fmt.Sprintf("%s (%s): %s",
			message.OriginatorLabel(),
			message.Timestamp.Local().Format("15:04:05"),
			message.Text,
		))
	}
	return strings.Join(lines, "\n\n")
}

// Subscribe registers an event channel; the returned function removes it.
// Slow subscribers miss events rather than blocking the conversation.
func (s *Service) Subscribe() (<-chan Event, func()) {
	ch := make(chan Event, 16)
	s.mu.Lock()
	s.subscribers[ch] = struct{}{}
	s.mu.Unlock()

	cancel := func() {
		s.mu.Lock()
		if _, ok := s.subscribers[ch]; ok {
			delete(s.subscribers, ch)
			close(ch)
		}
		s.mu.Unlock()
	}
	return ch, cancel
}

func (s *Service) broadcastLocked(event Event) {
	for ch := range s.subscribers {
		select {
		case ch <- event:
		default:
		}
	}
}
