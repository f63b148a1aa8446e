package server

import (
	"context"
	"net/http"
	"strings"
)

// UserInfo identifies the authenticated caller.
type UserInfo struct {
	Login       string `json:"login"`
	DisplayName string `json:"display_name"`
}

type contextKey int

const (
	userIDKey contextKey = iota
	userInfoKey
)

// devUser is the identity every request runs as when Tailscale is disabled.
// The initial migration seeds it as user 1.
var devUser = UserInfo{Login: "local", DisplayName: "Local Dev User"}

// DevIdentity pins every request to user 1, the seeded local development
// user, so the API works without a tailnet.
func DevIdentity(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := context.WithValue(r.Context(), userIDKey, 1)
		ctx = context.WithValue(ctx, userInfoKey, devUser)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// identity resolves the calling user. With a tsnet local client it maps the
// tailnet identity to a database user, creating one on first sight; without
// one it falls back to the dev user.
func (s *Server) identity(next http.Handler) http.Handler {
	dev := DevIdentity(next)
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if s.lc == nil {
			dev.ServeHTTP(w, r)
			return
		}

		who, err := s.lc.WhoIs(r.Context(), r.RemoteAddr)
		if err != nil {
			s.log.Error("whois failed", "remote", r.RemoteAddr, "error", err)
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "unable to identify caller"})
			return
		}
		login := strings.ToLower(strings.TrimSpace(who.UserProfile.LoginName))
		if login == "" {
			writeJSON(w, http.StatusForbidden, map[string]string{"error": "unable to identify caller"})
			return
		}

		uid, err := s.db.GetOrCreateUser(r.Context(), login, who.UserProfile.DisplayName)
		if err != nil {
			s.log.Error("user lookup failed", "login", login, "error", err)
			writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "user lookup failed"})
			return
		}

		ctx := context.WithValue(r.Context(), userIDKey, uid)
		ctx = context.WithValue(ctx, userInfoKey, UserInfo{Login: login, DisplayName: who.UserProfile.DisplayName})
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// userIDFromContext returns the authenticated user ID, defaulting to the
// dev user when no identity middleware ran.
func userIDFromContext(r *http.Request) int {
	if id, ok := r.Context().Value(userIDKey).(int); ok {
		return id
	}
	return 1
}

// userInfoFromContext returns the authenticated identity, defaulting to the
// dev user when no identity middleware ran.
func userInfoFromContext(r *http.Request) UserInfo {
	if info, ok := r.Context().Value(userInfoKey).(UserInfo); ok {
		return info
	}
	return devUser
}
