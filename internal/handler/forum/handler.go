package forum

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/mindcare-app/backend/internal/middleware"
	forummodel "github.com/mindcare-app/backend/internal/model/forum"
	forumservice "github.com/mindcare-app/backend/internal/service/forum"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Handler exposes the peer-support forum.
type Handler struct {
	forumSvc *forumservice.Service
}

func New(forumSvc *forumservice.Service) *Handler {
	return &Handler{forumSvc: forumSvc}
}

func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/forum/posts", h.handleList)
	r.Get("/forum/categories", h.handleCategories)
	r.Post("/forum/posts", h.handleCreate)
	r.Post("/forum/posts/{postID}/like", h.handleToggleLike)
}

func (h *Handler) handleList(w http.ResponseWriter, r *http.Request) {
	category := r.URL.Query().Get("category")
	utils.RespondJSON(w, http.StatusOK, map[string]any{
		"posts": h.forumSvc.List(r.Context(), category),
	})
}

func (h *Handler) handleCategories(w http.ResponseWriter, r *http.Request) {
	utils.RespondJSON(w, http.StatusOK, map[string]any{"categories": forummodel.Categories()})
}

func (h *Handler) handleCreate(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Title       string `json:"title"`
		Content     string `json:"content"`
		Category    string `json:"category"`
		Author      string `json:"author"`
		IsAnonymous bool   `json:"isAnonymous"`
	}
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	post, err := h.forumSvc.Create(r.Context(), forumservice.CreateInput{
		Title:       payload.Title,
		Content:     payload.Content,
		Category:    payload.Category,
		Author:      payload.Author,
		IsAnonymous: payload.IsAnonymous,
	})
	if err != nil {
		if errors.Is(err, forumservice.ErrMissingFields) {
			utils.RespondError(w, http.StatusBadRequest, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to create post")
		return
	}
	utils.RespondJSON(w, http.StatusCreated, post)
}

func (h *Handler) handleToggleLike(w http.ResponseWriter, r *http.Request) {
	postID := chi.URLParam(r, "postID")
	userID := middleware.UserID(r.Context())
	if userID == "" {
		// Unauthenticated likes are keyed per anonymous browser session.
		userID = r.Header.Get("X-Client-ID")
	}
	if userID == "" {
		utils.RespondError(w, http.StatusBadRequest, "user identity required to like a post")
		return
	}

	post, err := h.forumSvc.ToggleLike(r.Context(), postID, userID)
	if err != nil {
		if errors.Is(err, forumservice.ErrPostNotFound) {
			utils.RespondError(w, http.StatusNotFound, err.Error())
			return
		}
		utils.RespondError(w, http.StatusInternalServerError, "failed to toggle like")
		return
	}
	utils.RespondJSON(w, http.StatusOK, post)
}
