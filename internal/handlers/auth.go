package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/google/uuid"

	"github.com/NizCom/JaMoveo-backend/internal/crypto"
	"github.com/NizCom/JaMoveo-backend/internal/database"
	"github.com/NizCom/JaMoveo-backend/internal/logging"
	"github.com/NizCom/JaMoveo-backend/internal/models"
	"github.com/NizCom/JaMoveo-backend/internal/services"
)

// AuthHandler manages musician registration and login.
type AuthHandler struct {
	musicians   *database.MusicianStore
	authService *services.AuthService
}

// NewAuthHandler creates an AuthHandler with the required dependencies.
func NewAuthHandler(musicians *database.MusicianStore, authService *services.AuthService) *AuthHandler {
	return &AuthHandler{
		musicians:   musicians,
		authService: authService,
	}
}

// Signup registers a new musician with a bcrypt-hashed password.
func (h *AuthHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req models.SignupRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" || req.Instrument == "" {
		writeError(w, http.StatusBadRequest, "username, password, and instrument are required")
		return
	}

	role := req.Role
	if role == "" {
		role = string(services.RolePlayer)
	}
	if role != string(services.RolePlayer) && role != string(services.RoleAdmin) {
		writeError(w, http.StatusBadRequest, "role must be 'player' or 'admin'")
		return
	}

	existing, err := h.musicians.GetByUsername(r.Context(), req.Username)
	if err != nil {
		writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "failed to check username", err)
		return
	}
	if existing != nil {
		writeError(w, http.StatusBadRequest, "username is already in use")
		return
	}

	hash, err := crypto.HashPassword(req.Password)
	if err != nil {
		writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "failed to hash password", err)
		return
	}

	err = h.musicians.Create(r.Context(), database.Musician{
		ID:           uuid.New().String(),
		Username:     req.Username,
		PasswordHash: hash,
		Instrument:   req.Instrument,
		Role:         role,
	})
	if err != nil {
		writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "failed to register user", err)
		return
	}

	writeJSON(w, http.StatusCreated, models.SignupResponse{Message: "User registered successfully"})
}

// Login verifies credentials and issues a JWT.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req models.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Username == "" || req.Password == "" {
		writeError(w, http.StatusBadRequest, "username and password are required")
		return
	}

	musician, err := h.musicians.GetByUsername(r.Context(), req.Username)
	if err != nil {
		writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "failed to look up user", err)
		return
	}
	if musician == nil {
		logging.LogSecurityEvent(r.Context(), logging.SecurityEventBadLogin, "login with unknown username")
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	if !crypto.CheckPassword(musician.PasswordHash, req.Password) {
		logging.LogSecurityEvent(r.Context(), logging.SecurityEventBadLogin, "login with wrong password")
		writeError(w, http.StatusUnauthorized, "invalid username or password")
		return
	}

	token, err := h.authService.GenerateToken(musician.Username, services.Role(musician.Role))
	if err != nil {
		writeErrorWithCause(r.Context(), w, http.StatusInternalServerError, "failed to generate token", err)
		return
	}

	writeJSON(w, http.StatusOK, models.LoginResponse{
		Message: "Login successful",
		Token:   token,
		User: models.PublicUser{
			Username:   musician.Username,
			Role:       musician.Role,
			Instrument: musician.Instrument,
		},
	})
}
