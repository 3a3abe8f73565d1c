package api

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"octosupply/pkg/otel"
	"octosupply/pkg/session"
)

const sessionCookie = "session_id"

// loginRequest represents login credentials.
type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type loginResponse struct {
	Token string `json:"token"`
}

type userKey struct{}

// UserFromContext returns the username of an authenticated request.
func UserFromContext(ctx context.Context) (string, bool) {
	u, ok := ctx.Value(userKey{}).(string)
	return u, ok
}

// loginHandler handles user login and session creation.
// @Summary Login
// @Description Opens a session when auth is enabled
// @Tags Auth
// @Accept json
// @Produce json
// @Param creds body loginRequest true "Credentials"
// @Success 200 {object} loginResponse
// @Failure 400 {string} string "invalid credentials"
// @Failure 500 {string} string "session error"
// @Router /api/login [post]
func (s *server) loginHandler(w http.ResponseWriter, r *http.Request) {
	ctx, span := otel.AddSpan(r.Context(), "loginHandler")
	defer span.End()

	var req loginRequest
	if err := decodeBody(r, &req); err != nil || req.Username == "" {
		http.Error(w, "invalid credentials", http.StatusBadRequest)
		return
	}
	sid, err := s.sessions.Create(ctx, req.Username)
	if err != nil {
		s.log.Error(ctx, "create session", "error", err)
		http.Error(w, "session error", http.StatusInternalServerError)
		return
	}
	http.SetCookie(w, &http.Cookie{
		Name:     sessionCookie,
		Value:    sid,
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})
	writeJSON(w, http.StatusOK, loginResponse{Token: sid})
}

// authMiddleware requires a valid session on requests that change data.
// Reads stay public.
func (s *server) authMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodGet, http.MethodHead, http.MethodOptions:
			next.ServeHTTP(w, r)
			return
		}
		sid := sessionID(r)
		if sid == "" {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		user, err := s.sessions.Lookup(r.Context(), sid)
		if err != nil {
			if !errors.Is(err, session.ErrNoSession) {
				s.log.Error(r.Context(), "lookup session", "error", err)
			}
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}
		ctx := context.WithValue(r.Context(), userKey{}, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// sessionID reads the session from a bearer token or the session cookie.
func sessionID(r *http.Request) string {
	if h := r.Header.Get("Authorization"); h != "" {
		if token, ok := strings.CutPrefix(h, "Bearer "); ok {
			return strings.TrimSpace(token)
		}
	}
	if c, err := r.Cookie(sessionCookie); err == nil {
		return c.Value
	}
	return ""
}
