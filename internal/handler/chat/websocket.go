package chat

import (
	"encoding/json"
	"net/http"
	"time"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/mindcare-app/backend/internal/logging"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true
	},
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
}

type inboundFrame struct {
	Type string `json:"type"` // send, clear
	Text string `json:"text,omitempty"`
}

type outboundFrame struct {
	Type      string `json:"type"`
	Data      any    `json:"data,omitempty"`
	Timestamp int64  `json:"timestamp"`
}

// handleWebSocket serves a bidirectional chat connection: inbound frames
// carry send/clear commands, outbound frames mirror conversation events.
func (h *Handler) handleWebSocket(w http.ResponseWriter, r *http.Request) {
	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		logging.Logger.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	events, cancel := h.chatSvc.Subscribe()
	defer cancel()

	// Writer goroutine owns the connection's write side.
	done := make(chan struct{})
	go func() {
		defer close(done)
		send := func(frameType string, data any) bool {
			frame := outboundFrame{Type: frameType, Data: data, Timestamp: time.Now().UnixMilli()}
			return conn.WriteJSON(frame) == nil
		}
		if !send("history", map[string]any{
			"messages": h.chatSvc.History(r.Context()),
			"typing":   h.chatSvc.Typing(),
		}) {
			return
		}
		for event := range events {
			if !send(event.Type, event) {
				return
			}
		}
	}()

	for {
		_, raw, err := conn.ReadMessage()
		if err != nil {
			break
		}
		var frame inboundFrame
		if err := json.Unmarshal(raw, &frame); err != nil {
			continue
		}
		switch frame.Type {
		case "send":
			if _, err := h.chatSvc.Send(r.Context(), frame.Text); err != nil {
				_ = conn.WriteJSON(outboundFrame{
					Type:      "error",
					Data:      map[string]string{"error": err.Error()},
					Timestamp: time.Now().UnixMilli(),
				})
			}
		case "clear":
			_, _ = h.chatSvc.Clear(r.Context())
		}
	}

	cancel()
	<-done
}
