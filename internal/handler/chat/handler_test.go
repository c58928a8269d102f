package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"math/rand"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindcare-app/backend/internal/analysis/triage"
	chatmodel "github.com/mindcare-app/backend/internal/model/chat"
	chatservice "github.com/mindcare-app/backend/internal/service/chat"
	"github.com/mindcare-app/backend/internal/storage/kv"
)

func setupRouter(t *testing.T) (*chi.Mux, *chatservice.Service) {
	t.Helper()
	store, err := kv.NewFileStore(t.TempDir())
	if err != nil {
		t.Fatalf("NewFileStore err: %v", err)
	}
	responder := triage.NewResponder(rand.New(rand.NewSource(1)))
	svc := chatservice.NewService(store, responder, nil, time.Millisecond, 2*time.Millisecond)
	handler := New(svc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, svc
}

func TestHistoryStartsWithGreeting(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/chat/history", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	var body struct {
		Messages []chatmodel.Message `json:"messages"`
		Typing   bool                `json:"typing"`
	}
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if len(body.Messages) != 1 || body.Messages[0].IsUser {
		t.Fatalf("expected a single assistant greeting, got %+v", body.Messages)
	}
	if body.Typing {
		t.Fatal("fresh conversation should not be typing")
	}
}

func TestSendMessage(t *testing.T) {
	r, _ := setupRouter(t)

	payload, _ := json.Marshal(map[string]string{"text": "I'm feeling stressed about exams"})
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", resp.Code, resp.Body.String())
	}
	var message chatmodel.Message
	if err := json.Unmarshal(resp.Body.Bytes(), &message); err != nil {
		t.Fatalf("decode body: %v", err)
	}
	if !message.IsUser || message.Text != "I'm feeling stressed about exams" {
		t.Fatalf("unexpected message: %+v", message)
	}
}

func TestSendBlankMessageRejected(t *testing.T) {
	r, _ := setupRouter(t)

	payload, _ := json.Marshal(map[string]string{"text": "   "})
	req := httptest.NewRequest(http.MethodPost, "/chat/messages", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}

func TestClearResetsConversation(t *testing.T) {
	r, svc := setupRouter(t)

	if _, err := svc.Send(context.Background(), "hello there"); err != nil {
		t.Fatalf("Send err: %v", err)
	}

	req := httptest.NewRequest(http.MethodPost, "/chat/clear", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	history := svc.History(context.Background())
	if len(history) != 1 || history[0].IsUser {
		t.Fatalf("expected single greeting after clear, got %+v", history)
	}
}

func TestExportIsPlainText(t *testing.T) {
	r, _ := setupRouter(t)

	req := httptest.NewRequest(http.MethodGet, "/chat/export", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if ct := resp.Header().Get("Content-Type"); !strings.HasPrefix(ct, "text/plain") {
		t.Fatalf("expected text/plain, got %s", ct)
	}
	if !strings.Contains(resp.Body.String(), "AI Assistant") {
		t.Fatalf("export missing assistant label: %q", resp.Body.String())
	}
}
