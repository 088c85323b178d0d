package auth

import (
	"context"
	"net/http"
)

// contextKey is an unexported type used for context keys in this package.
// A package-private key type means only this package can read or write the
// session ID in a request context — no collisions with other packages.
type contextKey string

const sessionIDKey contextKey = "sessionID"

// CookieName is the HttpOnly cookie the session token travels in.
// HttpOnly keeps it out of reach of page JavaScript.
const CookieName = "token"

// RequireAuth enforces authentication on protected routes.
//
// It reads the JWT from the cookie, validates it, and stores the session ID
// in the request context. Missing or invalid tokens end the request with
// 401 Unauthorized.
func RequireAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			sessionID, err := extractSessionID(r, tokens)
			if err != nil {
				w.Header().Set("Content-Type", "application/json")
				http.Error(w, `{"error":"unauthorized","message":"valid authentication required"}`, http.StatusUnauthorized)
				return
			}

			next.ServeHTTP(w, r.WithContext(ContextWithSessionID(r.Context(), sessionID)))
		})
	}
}

// OptionalAuth extracts the session identity if a valid token is present but
// never blocks the request. Listing routes use this: anonymous visitors can
// browse, while logged-in users get per-user extras (saved-job markers).
func OptionalAuth(tokens *TokenService) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if sessionID, err := extractSessionID(r, tokens); err == nil && sessionID != "" {
				r = r.WithContext(ContextWithSessionID(r.Context(), sessionID))
			}
			next.ServeHTTP(w, r)
		})
	}
}

// ContextWithSessionID returns a context carrying the authenticated
// session's ID. The middlewares use it; handler tests can too.
func ContextWithSessionID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, sessionIDKey, id)
}

// SessionIDFromContext retrieves the authenticated session's ID from the
// request context. Returns ("", false) for anonymous requests.
func SessionIDFromContext(ctx context.Context) (string, bool) {
	id, ok := ctx.Value(sessionIDKey).(string)
	return id, ok && id != ""
}

// extractSessionID reads the JWT cookie and validates it.
// Shared by RequireAuth and OptionalAuth.
func extractSessionID(r *http.Request, tokens *TokenService) (string, error) {
	cookie, err := r.Cookie(CookieName)
	if err != nil {
		// http.ErrNoCookie — not an error, just anonymous
		return "", err
	}
	return tokens.Validate(cookie.Value)
}
