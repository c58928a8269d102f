package emergency

import (
	"net/http"

	"github.com/go-chi/chi/v5"

	emergencymodel "github.com/mindcare-app/backend/internal/model/emergency"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler serves the emergency contact directory. Contacts are static
// per deployment; no auth so the page loads even when logged out.
type Handler struct {
	contacts []emergencymodel.Contact
}

func New(contacts []emergencymodel.Contact) *Handler {
	return &Handler{contacts: contacts}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/emergency/contacts", h.handleContacts)
}

func (h *Handler) handleContacts(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"contacts": h.contacts,
		"grouped":  emergencymodel.GroupByType(h.contacts),
	})
}
