package auth

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindcare-app/backend/internal/middleware"
	usermodel "github.com/mindcare-app/backend/internal/model/user"
	authservice "github.com/mindcare-app/backend/internal/service/auth"
	settingsservice "github.com/mindcare-app/backend/internal/service/settings"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler exposes login, registration and the profile/preferences
// endpoints.
type Handler struct {
	authSvc     *authservice.Service
	settingsSvc *settingsservice.Service
}

// New creates the auth handler.
func New(authSvc *authservice.Service, settingsSvc *settingsservice.Service) *Handler {
	return &Handler{authSvc: authSvc, settingsSvc: settingsSvc}
}

// RegisterRoutes mounts the public auth endpoints.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/auth/login", h.handleLogin)
	r.Post("/auth/register", h.handleRegister)
	r.Post("/auth/forgot-password", h.handleForgotPassword)
	r.Post("/auth/password-strength", h.handlePasswordStrength)
}

// RegisterProtectedRoutes mounts endpoints that need a bearer token.
func (h *Handler) RegisterProtectedRoutes(r chi.Router) {
	r.Get("/auth/profile", h.handleProfile)
	r.Post("/auth/logout", h.handleLogout)
	r.Get("/settings", h.handleGetSettings)
	r.Put("/settings", h.handleUpdateSettings)
	r.Delete("/settings", h.handleResetSettings)
	r.Get("/settings/dark-mode", h.handleGetDarkMode)
	r.Post("/settings/dark-mode", h.handleToggleDarkMode)
}

func (h *Handler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email    string `json:"email"`
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := authservice.ValidateEmail(payload.Email); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}
	if err := authservice.ValidateLoginPassword(payload.Password); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.Login(r.Context(), payload.Email, payload.Password)
	if err != nil {
		if errors.Is(err, authservice.ErrInvalidCredentials) {
			utils.RespondError(w, http.StatusUnauthorized, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "login failed")
		return
	}
	utils.RespondJSON(w, http.StatusOK, result)
}

func (h *Handler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var payload authservice.RegisterData
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := authservice.ValidateRegistration(payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := h.authSvc.Register(r.Context(), payload)
	if err != nil {
		if errors.Is(err, authservice.ErrDuplicateEmail) {
			utils.RespondError(w, http.StatusConflict, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "registration failed")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, result)
}

func (h *Handler) handleForgotPassword(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Email string `json:"email"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := authservice.ValidateEmail(payload.Email); err != nil {
		utils.RespondError(w, http.StatusBadRequest, err.Error())
		return
	}

	if err := h.authSvc.ForgotPassword(r.Context(), payload.Email); err != nil {
		if errors.Is(err, authservice.ErrEmailNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "password reset failed")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{
		"message": "Password reset link sent! Check your email.",
	})
}

// handlePasswordStrength powers the registration form's live meter.
func (h *Handler) handlePasswordStrength(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Password string `json:"password"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	score, label := authservice.PasswordStrength(payload.Password)
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"score": score,
		"label": label,
	})
}

func (h *Handler) handleProfile(w http.ResponseWriter, r *http.Request) {
	profile, err := h.authSvc.CachedProfile(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusNotFound, "no profile cached")
		return
	}
	if id := middleware.UserID(r.Context()); id != "" && id != profile.ID {
		utils.RespondError(w, http.StatusNotFound, "no profile cached")
		return
	}
	utils.RespondJSON(w, http.StatusOK, profile)
}

func (h *Handler) handleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.authSvc.Logout(r.Context()); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "logout failed")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]string{"message": "logged out"})
}

func (h *Handler) handleGetSettings(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, h.settingsSvc.Get(r.Context()))
}

func (h *Handler) handleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var payload usermodel.Settings
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}
	if err := h.settingsSvc.Update(r.Context(), payload); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to save settings")
		return
	}
	utils.RespondJSON(w, http.StatusOK, payload)
}

func (h *Handler) handleResetSettings(w http.ResponseWriter, r *http.Request) {
	if err := h.settingsSvc.Reset(r.Context()); err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to reset settings")
		return
	}
	utils.RespondJSON(w, http.StatusOK, h.settingsSvc.Get(r.Context()))
}

func (h *Handler) handleGetDarkMode(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"darkMode": h.settingsSvc.DarkMode(r.Context())})
}

func (h *Handler) handleToggleDarkMode(w http.ResponseWriter, r *http.Request) {
	enabled, err := h.settingsSvc.ToggleDarkMode(r.Context())
	if err != nil {
		utils.RespondError(w, http.StatusInternalServerError, "failed to toggle dark mode")
		return
	}
	utils.RespondJSON(w, http.StatusOK, map[string]bool{"darkMode": enabled})
}
