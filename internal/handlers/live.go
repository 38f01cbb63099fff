package handlers

import (
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/websocket"

	"github.com/NizCom/JaMoveo-backend/internal/live"
	"github.com/NizCom/JaMoveo-backend/internal/logging"
	"github.com/NizCom/JaMoveo-backend/internal/services"
)

// LiveHandler upgrades authenticated requests to websocket connections and
// attaches them to the hub.
type LiveHandler struct {
	hub         *live.Hub
	authService *services.AuthService
	upgrader    websocket.Upgrader
}

// NewLiveHandler creates a LiveHandler allowing upgrades from the given origins.
func NewLiveHandler(hub *live.Hub, authService *services.AuthService, allowedOrigins []string) *LiveHandler {
	allowed := make(map[string]bool, len(allowedOrigins))
	for _, origin := range allowedOrigins {
		allowed[origin] = true
	}
	return &LiveHandler{
		hub:         hub,
		authService: authService,
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
			CheckOrigin: func(r *http.Request) bool {
				// Non-browser clients send no Origin header.
				origin := r.Header.Get("Origin")
				return origin == "" || allowed[origin]
			},
		},
	}
}

// Serve authenticates the token query parameter, upgrades the connection,
// and registers it with the hub. The websocket handshake cannot carry an
// Authorization header from browsers, hence the query parameter.
func (h *LiveHandler) Serve(w http.ResponseWriter, r *http.Request) {
	token := r.URL.Query().Get("token")
	if token == "" {
		logging.LogSecurityEvent(r.Context(), logging.SecurityEventMissingAuth, "websocket connect without token")
		writeError(w, http.StatusUnauthorized, "missing token")
		return
	}

	claims, err := h.authService.ValidateToken(token)
	if err != nil {
		logging.LogSecurityEvent(r.Context(), logging.SecurityEventInvalidJWT, "websocket connect with invalid token")
		writeError(w, http.StatusUnauthorized, "invalid token")
		return
	}

	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error response.
		return
	}

	client := live.NewClient(h.hub, conn, uuid.New().String(), claims.Username)
	h.hub.Connect(client)
	client.Start()
}
