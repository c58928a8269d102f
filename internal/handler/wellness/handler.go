package wellness

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	playerservice "github.com/mindcare-app/backend/internal/service/player"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler exposes the relaxation exercises and the ambient-sound player.
type Handler struct {
	playerSvc *playerservice.Service
}

func New(playerSvc *playerservice.Service) *Handler {
	return &Handler{playerSvc: playerSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/wellness/games", h.handleGames)
	r.Post("/wellness/games/{gameID}/complete", h.handleCompleteGame)
	r.Get("/wellness/sounds", h.handleSounds)
	r.Get("/wellness/player", h.handlePlayerState)
	r.Post("/wellness/player/play", h.handlePlay)
	r.Post("/wellness/player/pause", h.handlePause)
	r.Post("/wellness/player/sleep-timer", h.handleSetSleepTimer)
	r.Delete("/wellness/player/sleep-timer", h.handleCancelSleepTimer)
}

func (h *Handler) handleGames(w http.ResponseWriter, r *http.Request) {
	games, err := h.playerSvc.Games(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to load exercises")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]any{"games": games})
}

func (h *Handler) handleCompleteGame(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Rating float64 `json:"rating"`
	}
	if r.Body != nil {
		// Empty body means complete without a rating.
		_ = json.NewDecoder(r.Body).Decode(&payload)
	}

	game, err := h.playerSvc.CompleteGame(r.Context(), chi.URLParam(r, "gameID"), payload.Rating)
	if err != nil {
		switch {
		case errors.Is(err, playerservice.ErrGameNotFound):
			utils.RespondError(w, http.StatusNotFound, err.Error())
		case errors.Is(err, playerservice.ErrBadRating):
			utils.RespondError(w, http.StatusBadRequest, err.Error())
		default:
			utils.RespondError(w, http.StatusInternalServerError, "failed to save progress")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, game)
}

func (h *Handler) handleSounds(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"sounds": h.playerSvc.Sounds(r.Context())})
}

func (h *Handler) handlePlayerState(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.playerSvc.State(r.Context()))
}

func (h *Handler) handlePlay(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		SoundID string `json:"soundId"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.playerSvc.Play(r.Context(), payload.SoundID)
	if err != nil {
		if errors.Is(err, playerservice.ErrSoundNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to start playback")
		return
	}
	utils.RespondJSON(w, http.StatusOK, state)
}

func (h *Handler) handlePause(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.playerSvc.Pause(r.Context()))
}

func (h *Handler) handleSetSleepTimer(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Minutes int `json:"minutes"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	state, err := h.playerSvc.SetSleepTimer(r.Context(), payload.Minutes)
	if err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	utils.RespondJSON(w, http.StatusOK, state)
}

func (h *Handler) handleCancelSleepTimer(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.playerSvc.CancelSleepTimer(r.Context()))
}
