package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/raiyan/alumni-network/internal/apperror"
	"github.com/raiyan/alumni-network/internal/auth"
	"github.com/raiyan/alumni-network/internal/handler"
	"github.com/raiyan/alumni-network/internal/model"
	"github.com/stretchr/testify/assert"
)

// MockSessions implements handler.SessionLifecycle without a repository or
// the simulated latency, so handler tests stay fast.
type MockSessions struct {
	CapturedEmail string
	CapturedName  string
	CapturedRole  model.Role

	ReturnSession *model.Session
	ReturnErr     error

	LogoutCalled bool
	CurrentValue *model.Session
}

func (m *MockSessions) Login(ctx context.Context, email, secret string, role model.Role) (*model.Session, error) {
	m.CapturedEmail = email
	m.CapturedRole = role
	if m.ReturnErr != nil {
		return nil, m.ReturnErr
	}
	return m.ReturnSession, nil
}

func (m *MockSessions) Register(ctx context.Context, email, secret, name string, role model.Role) (*model.Session, error) {
	m.CapturedEmail = email
	m.CapturedName = name
	m.CapturedRole = role
	if m.ReturnErr != nil {
		return nil, m.ReturnErr
	}
	return m.ReturnSession, nil
}

func (m *MockSessions) Logout(ctx context.Context) error {
	m.LogoutCalled = true
	return nil
}

func (m *MockSessions) Current() *model.Session {
	return m.CurrentValue
}

func quietLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func testTokens(t *testing.T) *auth.TokenService {
	t.Helper()
	tokens, err := auth.NewTokenService("test-secret-at-least-16-chars")
	if err != nil {
		t.Fatalf("token service: %v", err)
	}
	return tokens
}

func TestAuthHandler_HandleLogin(t *testing.T) {
	t.Run("successful login sets the token cookie", func(t *testing.T) {
		mock := &MockSessions{
			ReturnSession: &model.Session{ID: "s1", Email: "jane.doe@example.com", Name: "Jane Doe", Role: model.RoleAlumni},
		}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		body := `{"email":"jane.doe@example.com","password":"pw","role":"alumni"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		req.Header.Set("Content-Type", "application/json")
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "jane.doe@example.com", mock.CapturedEmail)
		assert.Equal(t, model.RoleAlumni, mock.CapturedRole)

		var res struct {
			Session model.Session `json:"session"`
		}
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "Jane Doe", res.Session.Name)

		cookies := rr.Result().Cookies()
		var found *http.Cookie
		for _, c := range cookies {
			if c.Name == auth.CookieName {
				found = c
			}
		}
		if assert.NotNil(t, found, "expected the session cookie") {
			assert.True(t, found.HttpOnly)
			assert.NotEmpty(t, found.Value)
		}
	})

	t.Run("invalid JSON body", func(t *testing.T) {
		h := handler.NewAuthHandler(&MockSessions{}, testTokens(t), quietLogger())

		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(`{"email":`))
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("validation failure maps to 400", func(t *testing.T) {
		mock := &MockSessions{ReturnErr: apperror.ValidationFailed("email", "email is required")}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		body := `{"email":"","password":"pw","role":"student"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusBadRequest, rr.Code)

		var res handler.ErrorResponse
		assert.NoError(t, json.NewDecoder(rr.Body).Decode(&res))
		assert.Equal(t, "validation_error", res.Error)
	})

	t.Run("rejected credentials map to 401", func(t *testing.T) {
		mock := &MockSessions{ReturnErr: apperror.LoginRejected("jane@example.com")}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		body := `{"email":"jane@example.com","password":"wrong","role":"student"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("superseded login maps to 409", func(t *testing.T) {
		mock := &MockSessions{ReturnErr: apperror.Superseded("login")}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		body := `{"email":"jane@example.com","password":"pw","role":"student"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/login", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleLogin(rr, req)

		assert.Equal(t, http.StatusConflict, rr.Code)
	})
}

func TestAuthHandler_HandleRegister(t *testing.T) {
	t.Run("successful registration returns 201", func(t *testing.T) {
		mock := &MockSessions{
			ReturnSession: &model.Session{ID: "s2", Email: "new@example.com", Name: "Priya Sharma", Role: model.RoleStudent},
		}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		body := `{"email":"new@example.com","password":"pw","name":"Priya Sharma","role":"student"}`
		req := httptest.NewRequest(http.MethodPost, "/api/auth/register", bytes.NewBufferString(body))
		rr := httptest.NewRecorder()

		h.HandleRegister(rr, req)

		assert.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "Priya Sharma", mock.CapturedName)
	})
}

func TestAuthHandler_HandleLogout(t *testing.T) {
	mock := &MockSessions{}
	h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

	req := httptest.NewRequest(http.MethodPost, "/api/auth/logout", nil)
	rr := httptest.NewRecorder()

	h.HandleLogout(rr, req)

	assert.Equal(t, http.StatusNoContent, rr.Code)
	assert.True(t, mock.LogoutCalled)

	// The cookie must be expired, not merely forgotten server-side.
	cookies := rr.Result().Cookies()
	var found *http.Cookie
	for _, c := range cookies {
		if c.Name == auth.CookieName {
			found = c
		}
	}
	if assert.NotNil(t, found) {
		assert.Equal(t, -1, found.MaxAge)
		assert.Empty(t, found.Value)
	}
}

func TestAuthHandler_HandleMe(t *testing.T) {
	t.Run("returns the active session", func(t *testing.T) {
		session := &model.Session{ID: "s1", Email: "jane@example.com", Name: "Jane", Role: model.RoleAlumni}
		mock := &MockSessions{CurrentValue: session}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = req.WithContext(auth.ContextWithSessionID(req.Context(), "s1"))
		rr := httptest.NewRecorder()

		h.HandleMe(rr, req)

		assert.Equal(t, http.StatusOK, rr.Code)
	})

	t.Run("no active session is 401", func(t *testing.T) {
		h := handler.NewAuthHandler(&MockSessions{}, testTokens(t), quietLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = req.WithContext(auth.ContextWithSessionID(req.Context(), "s1"))
		rr := httptest.NewRecorder()

		h.HandleMe(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})

	t.Run("token for a different session is 401", func(t *testing.T) {
		mock := &MockSessions{CurrentValue: &model.Session{ID: "s1", Email: "jane@example.com", Role: model.RoleAlumni}}
		h := handler.NewAuthHandler(mock, testTokens(t), quietLogger())

		req := httptest.NewRequest(http.MethodGet, "/api/me", nil)
		req = req.WithContext(auth.ContextWithSessionID(req.Context(), "someone-else"))
		rr := httptest.NewRecorder()

		h.HandleMe(rr, req)

		assert.Equal(t, http.StatusUnauthorized, rr.Code)
	})
}
