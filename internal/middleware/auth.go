package middleware

import (
	"context"
	"encoding/json"
	"net/http"

	"github.com/kiema2001/prof-mbinda-backend/internal/auth"
	"github.com/kiema2001/prof-mbinda-backend/internal/config"
	"github.com/kiema2001/prof-mbinda-backend/internal/logger"
	"github.com/kiema2001/prof-mbinda-backend/internal/model"
	"github.com/kiema2001/prof-mbinda-backend/internal/session"
)

// unexported, collision-proof context key
type userContextKeyType struct{}

var userKey = userContextKeyType{}

// UserFromContext extracts the authenticated identity from context.
func UserFromContext(ctx context.Context) (model.UserSummary, bool) {
	u, ok := ctx.Value(userKey).(model.UserSummary)
	return u, ok
}

// AuthMiddleware is the single authorization enforcement point. Every
// mutating route is wrapped by it; entity handlers never re-check
// authorization themselves.
type AuthMiddleware struct {
	Auth    *auth.Service
	Carrier string
	Log     *logger.Logger
}

func NewAuthMiddleware(authSvc *auth.Service, carrier string, log *logger.Logger) *AuthMiddleware {
	return &AuthMiddleware{
		Auth:    authSvc,
		Carrier: carrier,
		Log:     log,
	}
}

// Token extracts the session token from the request's configured
// carrier. Cookie for the long-running server deployment, explicit
// header for hosts where cookie semantics are unreliable.
func (a *AuthMiddleware) Token(r *http.Request) string {
	if a.Carrier == config.CarrierHeader {
		return r.Header.Get(session.HeaderName)
	}
	cookie, err := r.Cookie(session.CookieName)
	if err != nil {
		return ""
	}
	return cookie.Value
}

// RequireAuth rejects the request before the wrapped handler runs
// unless the presented token resolves to a live session. The 401 body
// is uniform regardless of which route was targeted.
func (a *AuthMiddleware) RequireAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		token := a.Token(r)
		if token == "" {
			unauthorized(w)
			return
		}

		user, ok, err := a.Auth.Status(r.Context(), token)
		if err != nil {
			// Store fault, not an auth decision. Detail stays
			// server-side.
			a.Log.Error("auth check failed", "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]any{
				"success": false,
				"message": "Internal server error",
			})
			return
		}
		if !ok {
			unauthorized(w)
			return
		}

		ctx := context.WithValue(r.Context(), userKey, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func unauthorized(w http.ResponseWriter) {
	writeJSON(w, http.StatusUnauthorized, map[string]any{
		"success": false,
		"message": "Authentication required",
	})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
