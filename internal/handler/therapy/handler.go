package therapy

import (
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/mindcare-app/backend/internal/middleware"
	therapyservice "github.com/mindcare-app/backend/internal/service/therapy"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler exposes the therapist directory and session booking.
type Handler struct {
	therapySvc *therapyservice.Service
}

func New(therapySvc *therapyservice.Service) *Handler {
	return &Handler{therapySvc: therapySvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/therapy/therapists", h.handleTherapists)
	r.Get("/therapy/therapists/{therapistID}", h.handleTherapist)
	r.Get("/therapy/sessions", h.handleSessions)
	r.Post("/therapy/sessions", h.handleBook)
	r.Post("/therapy/sessions/{sessionID}/cancel", h.handleCancel)
}

func (h *Handler) handleTherapists(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"therapists": h.therapySvc.Therapists(r.Context()),
	})
}

func (h *Handler) handleTherapist(w http.ResponseWriter, r *http.Request) {
	therapist, err := h.therapySvc.Therapist(r.Context(), chi.URLParam(r, "therapistID"))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, therapist)
}

func (h *Handler) handleBook(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		TherapistID   string    `json:"therapistId"`
		Type          string    `json:"type"`
		ScheduledDate time.Time `json:"scheduledDate"`
		Notes         string    `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	session, err := h.therapySvc.Book(r.Context(), therapyservice.BookingInput{
		TherapistID:   payload.TherapistID,
		StudentID:     middleware.UserID(r.Context()),
		Type:          payload.Type,
		ScheduledDate: payload.ScheduledDate,
		Notes:         payload.Notes,
	})
	if err != nil {
		switch {
		case errors.Is(err, therapyservice.ErrTherapistNotFound):
			utils.RespondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, therapyservice.ErrChannelUnsupported),
			errors.Is(err, therapyservice.ErrDateRequired):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to book session")
		}
		return
	}
	utils.RespondJSON(w, http.StatusCreated, session)
}

func (h *Handler) handleSessions(w http.ResponseWriter, r *http.Request) {
	filter := r.URL.Query().Get("filter")
	if filter == "" {
		filter = therapyservice.FilterAll
	}
	sessions := h.therapySvc.Sessions(r.Context(), middleware.UserID(r.Context()), filter)
	utils.RespondJSON(w, http.StatusOK, map[string]any{"sessions": sessions})
}

func (h *Handler) handleCancel(w http.ResponseWriter, r *http.Request) {
	session, err := h.therapySvc.Cancel(r.Context(), chi.URLParam(r, "sessionID"), middleware.UserID(r.Context()))
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, session)
}
