package chat

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	chatservice "github.com/mindcare-app/backend/internal/service/chat"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler exposes the support conversation over HTTP.
type Handler struct {
	chatSvc *chatservice.Service
}

// New creates the chat handler.
func New(chatSvc *chatservice.Service) *Handler {
	return &Handler{chatSvc: chatSvc}
}

// RegisterRoutes mounts the conversation endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/chat/history", h.handleHistory)
	r.Post("/chat/messages", h.handleSend)
	r.Post("/chat/clear", h.handleClear)
	r.Get("/chat/export", h.handleExport)
	r.Get("/chat/stream", h.handleStream)
	r.Get("/chat/ws", h.handleWebSocket)
}

// handleHistory returns the transcript plus the typing flag.
func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"messages": h.chatSvc.History(r.Context()),
		"typing":   h.chatSvc.Typing(),
	})
}

// handleSend appends a user message; the assistant reply arrives later
// over the stream (or a subsequent history poll).
func (h *Handler) handleSend(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message, err := h.chatSvc.Send(r.Context(), payload.Text)
	if err != nil {
		if errors.Is(err, chatservice.ErrEmptyMessage) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to send message")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, message)
}

// handleClear resets the conversation to a fresh greeting.
func (h *Handler) handleClear(w http.ResponseWriter, r *http.Request) {
	greeting, err := h.chatSvc.Clear(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to clear conversation")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"messages": []any{greeting}})
}

// handleExport downloads the transcript as plain text.
func (h *Handler) handleExport(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("Content-Disposition", `attachment; filename="chat-history.txt"`)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(h.chatSvc.Export(r.Context())))
}

// handleStream pushes conversation events over Server-Sent Events. The
// current transcript is sent first so a reconnecting client catches up.
func (h *Handler) handleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	events, cancel := h.chatSvc.Subscribe()
	defer cancel()

	utils.SetupSSEHeaders(w)
	utils.SendSSEEvent(w, flusher, "history", map[string]any{
		"messages": h.chatSvc.History(r.Context()),
		"typing":   h.chatSvc.Typing(),
	})

	ctx := r.Context()
	for {
		select {
		case <-ctx.Done():
			return
		case event := <-events:
			utils.SendSSEEvent(w, flusher, event.Type, event)
		}
	}
}
