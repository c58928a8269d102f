package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	authHandler "github.com/mindcare-app/backend/internal/handler/auth"
	chatHandler "github.com/mindcare-app/backend/internal/handler/chat"
	emergencyHandler "github.com/mindcare-app/backend/internal/handler/emergency"
	forumHandler "github.com/mindcare-app/backend/internal/handler/forum"
	moodHandler "github.com/mindcare-app/backend/internal/handler/mood"
	therapyHandler "github.com/mindcare-app/backend/internal/handler/therapy"
	weatherHandler "github.com/mindcare-app/backend/internal/handler/weather"
	wellnessHandler "github.com/mindcare-app/backend/internal/handler/wellness"
	middlewarePkg "github.com/mindcare-app/backend/internal/middleware"
	emergencyModel "github.com/mindcare-app/backend/internal/model/emergency"
	authService "github.com/mindcare-app/backend/internal/service/auth"
	chatService "github.com/mindcare-app/backend/internal/service/chat"
	forumService "github.com/mindcare-app/backend/internal/service/forum"
	moodService "github.com/mindcare-app/backend/internal/service/mood"
	playerService "github.com/mindcare-app/backend/internal/service/player"
	settingsService "github.com/mindcare-app/backend/internal/service/settings"
	therapyService "github.com/mindcare-app/backend/internal/service/therapy"
	weatherService "github.com/mindcare-app/backend/internal/service/weather"
	"github.com/mindcare-app/backend/pkg/utils"
)

// Services bundles everything the router wires up.
type Services struct {
	Auth      *authService.Service
	Settings  *settingsService.Service
	Chat      *chatService.Service
	Mood      *moodService.Service
	Forum     *forumService.Service
	Therapy   *therapyService.Service
	Player    *playerService.Service
	Weather   *weatherService.Service
	Emergency []emergencyModel.Contact
}

// NewRouter wires HTTP routes to core services.
func NewRouter(svcs Services) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	auth := authHandler.New(svcs.Auth, svcs.Settings)
	chat := chatHandler.New(svcs.Chat)
	mood := moodHandler.New(svcs.Mood)
	forum := forumHandler.New(svcs.Forum)
	therapy := therapyHandler.New(svcs.Therapy)
	emergency := emergencyHandler.New(svcs.Emergency)
	wellness := wellnessHandler.New(svcs.Player)

	r.Get("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
	})

	r.Route("/api", func(api chi.Router) {
		// Public surface: auth entry points, the support chat, and the
		// crisis directory stay reachable without a token.
		auth.RegisterRoutes(api)
		chat.RegisterRoutes(api)
		emergency.RegisterRoutes(api)
		forum.RegisterRoutes(api)
		wellness.RegisterRoutes(api)

		if svcs.Weather != nil {
			weatherHandler.New(svcs.Weather).RegisterRoutes(api)
		}

		// Everything touching a user's own records requires a bearer token.
		api.Group(func(protected chi.Router) {
			protected.Use(middlewarePkg.RequireAuth(svcs.Auth))
			auth.RegisterProtectedRoutes(protected)
			mood.RegisterRoutes(protected)
			therapy.RegisterRoutes(protected)
		})
	})

	return r
}
