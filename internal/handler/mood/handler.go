package mood

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	moodmodel "github.com/mindcare-app/backend/internal/model/mood"
	moodservice "github.com/mindcare-app/backend/internal/service/mood"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler exposes the daily mood log.
type Handler struct {
	moodSvc *moodservice.Service
}

func New(moodSvc *moodservice.Service) *Handler {
	return &Handler{moodSvc: moodSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/mood/today", h.handleToday)
	r.Get("/mood/history", h.handleHistory)
	r.Post("/mood", h.handleSave)
}

func (h *Handler) handleSave(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Mood  string `json:"mood"`
		Notes string `json:"notes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	entry, err := h.moodSvc.Save(r.Context(), moodmodel.Level(payload.Mood), payload.Notes)
	if err != nil {
		if errors.Is(err, moodservice.ErrInvalidLevel) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to save mood")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, entry)
}

func (h *Handler) handleToday(w http.ResponseWriter, r *http.Request) {
	entry, ok := h.moodSvc.Today(r.Context())
	if !ok {
		utils.RespondError(w, http.StatusNotFound, "no mood logged today")
		return
	}
	utils.RespondJSON(w, http.StatusOK, entry)
}

func (h *Handler) handleHistory(w http.ResponseWriter, r *http.Request) {
	entries, err := h.moodSvc.History(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load mood history")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"entries": entries})
}
