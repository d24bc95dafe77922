package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/Spigel00/work-force-matchup/internal/app"
	"github.com/Spigel00/work-force-matchup/internal/auth"
	"github.com/Spigel00/work-force-matchup/internal/http/respond"
	"github.com/Spigel00/work-force-matchup/internal/models"
	"github.com/Spigel00/work-force-matchup/internal/models/dto"
)

// AuthHandler owns the register/login/logout/session endpoints.
type AuthHandler struct {
	app    *app.App
	tokens *auth.TokenManager
}

// NewAuthHandler constructs the handler.
func NewAuthHandler(a *app.App, tokens *auth.TokenManager) *AuthHandler {
	return &AuthHandler{app: a, tokens: tokens}
}

// Register attaches auth routes to the router.
func (h *AuthHandler) Register(r chi.Router) {
	r.Post("/register", h.handleRegister)
	r.Post("/login", h.handleLogin)
	r.Post("/logout", h.handleLogout)
	r.Get("/session", h.handleSession)
}

func (h *AuthHandler) handleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" || strings.TrimSpace(req.Name) == "" {
		respond.Error(w, http.StatusBadRequest, "email and name are required")
		return
	}
	role, err := models.ParseUserRole(req.Role)
	if err != nil {
		respond.Error(w, http.StatusBadRequest, err.Error())
		return
	}

	user, err := h.app.RegisterUser(r.Context(), strings.TrimSpace(req.Email), req.Password, strings.TrimSpace(req.Name), role)
	if err != nil {
		respond.Err(w, err)
		return
	}
	h.issue(w, http.StatusCreated, "User created successfully", user)
}

func (h *AuthHandler) handleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := decodeJSON(w, r, &req); err != nil {
		respond.Error(w, http.StatusBadRequest, "invalid JSON payload")
		return
	}
	if strings.TrimSpace(req.Email) == "" {
		respond.Error(w, http.StatusBadRequest, "email is required")
		return
	}

	user, err := h.app.Login(r.Context(), strings.TrimSpace(req.Email), req.Password)
	if err != nil {
		respond.Err(w, err)
		return
	}
	h.issue(w, http.StatusOK, "login successful", user)
}

// handleLogout ends the single server-side session and needs no token, so any
// client can sign the current user out. Bearer tokens already issued stay
// valid until they expire.
func (h *AuthHandler) handleLogout(w http.ResponseWriter, r *http.Request) {
	h.app.Logout(r.Context())
	respond.JSON(w, http.StatusOK, "logged out", nil)
}

func (h *AuthHandler) handleSession(w http.ResponseWriter, r *http.Request) {
	user, ok := h.app.CurrentUser()
	if !ok {
		w.WriteHeader(http.StatusNoContent)
		return
	}
	respond.JSON(w, http.StatusOK, "current session", user)
}

func (h *AuthHandler) issue(w http.ResponseWriter, status int, message string, user models.User) {
	token, err := h.tokens.Generate(user)
	if err != nil {
		slog.Error("generate token failed", "user_id", user.ID, "err", err)
		respond.Error(w, http.StatusInternalServerError, "failed to generate token")
		return
	}
	respond.JSON(w, status, message, dto.LoginResponse{Token: token, User: user})
}
