package weather

import (
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	weatherservice "github.com/mindcare-app/backend/internal/service/weather"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler serves the dashboard weather widget.
type Handler struct {
	weatherSvc *weatherservice.Service
}

func New(weatherSvc *weatherservice.Service) *Handler {
	return &Handler{weatherSvc: weatherSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/weather", h.handleCurrent)
}

func (h *Handler) handleCurrent(w http.ResponseWriter, r *http.Request) {
	report, err := h.weatherSvc.Current(r.Context(), r.URL.Query().Get("city"))
	if err != nil {
		switch {
		case errors.Is(err, weatherservice.ErrDisabled):
			utils.RespondError(w, http.StatusServiceUnavailable, err.Error())
		case errors.Is(err, weatherservice.ErrUnavailable):
			utils.RespondError(w, http.StatusServiceUnavailable, "weather data unavailable")
		default:
			utils.RespondError(w, http.StatusInternalServerError, "weather lookup failed")
		}
		return
	}
	utils.RespondJSON(w, http.StatusOK, report)
}
