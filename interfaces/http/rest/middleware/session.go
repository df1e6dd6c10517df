package middleware

import (
	"net/http"
	"strings"

	"go.uber.org/zap"
)

// TokenVerifier validates a session token taken from the auth cookie.
type TokenVerifier interface {
	Verify(token string) error
}

// exemptPrefixes lists the paths the gate never intercepts: the login
// page, every API path, and static assets. API requests answer with
// their own statuses and must never be redirected.
var exemptPrefixes = []string{
	"/login",
	"/auth",
	"/memories",
	"/memory-of-the-day",
	"/mongodb",
	"/health",
	"/metrics",
	"/static/",
	"/favicon.ico",
}

// SessionGate redirects unauthenticated page requests to the login
// page. Everything outside the exempt list requires a valid auth
// cookie.
func SessionGate(verifier TokenVerifier, logger *zap.Logger) func(next http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if isExempt(r.URL.Path) {
				next.ServeHTTP(w, r)
				return
			}

			cookie, err := r.Cookie("auth")
			if err != nil || cookie.Value == "" {
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			if err := verifier.Verify(cookie.Value); err != nil {
				logger.Info("Rejected session cookie",
					zap.String("path", r.URL.Path),
					zap.Error(err),
				)
				http.Redirect(w, r, "/login", http.StatusFound)
				return
			}

			next.ServeHTTP(w, r)
		})
	}
}

func isExempt(path string) bool {
	for _, prefix := range exemptPrefixes {
		if strings.HasSuffix(prefix, "/") {
			if strings.HasPrefix(path, prefix) {
				return true
			}
			continue
		}
		// Exact path or a subpath; "/memoriesX" must not ride on
		// the "/memories" exemption.
		if path == prefix || strings.HasPrefix(path, prefix+"/") {
			return true
		}
	}
	return false
}
