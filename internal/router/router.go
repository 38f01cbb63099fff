package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"github.com/NizCom/JaMoveo-backend/internal/catalog"
	"github.com/NizCom/JaMoveo-backend/internal/config"
	"github.com/NizCom/JaMoveo-backend/internal/database"
	"github.com/NizCom/JaMoveo-backend/internal/handlers"
	"github.com/NizCom/JaMoveo-backend/internal/live"
	"github.com/NizCom/JaMoveo-backend/internal/middleware"
	"github.com/NizCom/JaMoveo-backend/internal/services"
	"github.com/NizCom/JaMoveo-backend/internal/session"
)

// New wires all routes. The hub must already be running.
func New(cfg *config.Config, musicians *database.MusicianStore, cat *catalog.Catalog, state *session.State, hub *live.Hub) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestContextMiddleware)
	r.Use(middleware.CORSMiddleware(cfg.CORSAllowedOrigins))

	// Services
	authService := services.NewAuthService(cfg.JWTSecret, cfg.TokenDuration)

	// Handlers
	authHandler := handlers.NewAuthHandler(musicians, authService)
	songHandler := handlers.NewSongHandler(cat, state)
	liveHandler := handlers.NewLiveHandler(hub, authService, cfg.CORSAllowedOrigins)

	// Rate limiter for catalog search
	searchRateLimiter := middleware.NewRateLimiter(cfg.RateLimitPerMinute)

	r.Route("/api", func(r chi.Router) {
		// Health check
		r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"status":"ok"}`))
		})

		// Registration and login
		r.Route("/auth", func(r chi.Router) {
			r.Post("/signup", authHandler.Signup)
			r.Post("/login", authHandler.Login)
		})

		// Song catalog and live session state
		r.Group(func(r chi.Router) {
			r.Use(middleware.AuthMiddleware(authService))
			r.Use(middleware.UpdateRequestContextMiddleware)

			r.With(searchRateLimiter.Middleware).Get("/songs", songHandler.Search)
			r.Get("/song", songHandler.Get)
			r.Get("/current-song", songHandler.CurrentLive)
		})
	})

	// Websocket endpoint: authenticates via token query parameter.
	r.Get("/ws", liveHandler.Serve)

	return r
}
