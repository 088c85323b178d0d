// Package handler contains the HTTP layer: request parsing, response
// shaping, and nothing else. Business rules live in the session store and
// the listing packages; handlers translate between them and JSON.
package handler

import (
	"context"
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/raiyan/alumni-network/internal/auth"
	"github.com/raiyan/alumni-network/internal/model"
)

// SessionLifecycle is the slice of the session store the auth handler needs.
// An interface (rather than *session.Store) so handler tests can use a fake.
type SessionLifecycle interface {
	Login(ctx context.Context, email, secret string, role model.Role) (*model.Session, error)
	Register(ctx context.Context, email, secret, name string, role model.Role) (*model.Session, error)
	Logout(ctx context.Context) error
	Current() *model.Session
}

// AuthHandler manages the session lifecycle over HTTP.
//
//	POST /api/auth/login     → establish a session, set the token cookie
//	POST /api/auth/register  → same, with a caller-supplied name
//	POST /api/auth/logout    → clear the session and the cookie
//	GET  /api/me             → return the current session (behind RequireAuth)
type AuthHandler struct {
	sessions SessionLifecycle
	tokens   *auth.TokenService
	logger   *slog.Logger
}

// NewAuthHandler creates an AuthHandler. Dependencies are injected; the
// handler has no knowledge of how they're constructed.
func NewAuthHandler(sessions SessionLifecycle, tokens *auth.TokenService, logger *slog.Logger) *AuthHandler {
	return &AuthHandler{
		sessions: sessions,
		tokens:   tokens,
		logger:   logger,
	}
}

type loginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Role     string `json:"role"`
}

type registerRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}

type sessionResponse struct {
	Session *model.Session `json:"session"`
}

// HandleLogin establishes a session from the posted credentials.
//
// HTTP: POST /api/auth/login
// BODY: {"email": "...", "password": "...", "role": "student|alumni|admin"}
//
// With the default verifier this always succeeds for well-formed input — the
// backend round trip is simulated and the credentials are not checked.
func (h *AuthHandler) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid login JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.Login(r.Context(), req.Email, req.Password, model.Role(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.setSessionCookie(w, session.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusOK, sessionResponse{Session: session})
}

// HandleRegister establishes a session from the posted registration.
//
// HTTP: POST /api/auth/register
// BODY: {"email": "...", "password": "...", "name": "...", "role": "..."}
func (h *AuthHandler) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.logger.Warn("invalid register JSON", slog.String("error", err.Error()))
		http.Error(w, "Invalid JSON body", http.StatusBadRequest)
		return
	}

	session, err := h.sessions.Register(r.Context(), req.Email, req.Password, req.Name, model.Role(req.Role))
	if err != nil {
		writeError(w, err)
		return
	}

	if err := h.setSessionCookie(w, session.ID); err != nil {
		writeError(w, err)
		return
	}
	writeJSON(w, http.StatusCreated, sessionResponse{Session: session})
}

// HandleLogout clears the session and expires the cookie.
//
// HTTP: POST /api/auth/logout
//
// Idempotent: logging out while logged out is still a 204.
func (h *AuthHandler) HandleLogout(w http.ResponseWriter, r *http.Request) {
	if err := h.sessions.Logout(r.Context()); err != nil {
		writeError(w, err)
		return
	}

	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	w.WriteHeader(http.StatusNoContent)
}

// HandleMe returns the current session.
//
// HTTP: GET /api/me (behind RequireAuth)
//
// RequireAuth proves the request carries a valid token; the session itself
// comes from the store. A valid token for a session the store no longer
// holds (e.g. logged out elsewhere) is a 401 — the cookie outlived the
// session.
func (h *AuthHandler) HandleMe(w http.ResponseWriter, r *http.Request) {
	session := h.sessions.Current()
	if session == nil {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "no active session",
		})
		return
	}

	tokenID, _ := auth.SessionIDFromContext(r.Context())
	if tokenID != session.ID {
		writeJSON(w, http.StatusUnauthorized, ErrorResponse{
			Error:   "unauthorized",
			Message: "token does not match the active session",
		})
		return
	}

	writeJSON(w, http.StatusOK, sessionResponse{Session: session})
}

// setSessionCookie issues a JWT for the session and stores it in the
// HttpOnly cookie.
func (h *AuthHandler) setSessionCookie(w http.ResponseWriter, sessionID string) error {
	token, err := h.tokens.Generate(sessionID)
	if err != nil {
		return err
	}
	http.SetCookie(w, &http.Cookie{
		Name:     auth.CookieName,
		Value:    token,
		Path:     "/",
		MaxAge:   24 * 60 * 60,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	return nil
}
