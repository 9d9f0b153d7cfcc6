package http

import (
	"encoding/json"
	"net"
	"net/http"

	"github.com/rogerio-castellano/ink-to-doc/internal/auth"
	"github.com/rogerio-castellano/ink-to-doc/internal/http/ban"
	"github.com/rogerio-castellano/ink-to-doc/internal/http/handlers"
	rl "github.com/rogerio-castellano/ink-to-doc/internal/http/rate_limiter"
)

// AuthMiddleware rejects requests without a valid token before the profile
// and account handlers run. Expired and tampered tokens get the same
// response so a caller cannot tell which check failed.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		tokenStr := r.Header.Get(handlers.TokenHeader)
		if tokenStr == "" {
			writeMessage(w, http.StatusUnauthorized, "No token, authorization denied")
			return
		}

		if _, err := auth.VerifyToken(tokenStr); err != nil {
			writeMessage(w, http.StatusUnauthorized, "Token is not valid")
			return
		}

		next.ServeHTTP(w, r)
	})
}

// RateLimitMiddleware applies the per-IP token bucket and the redis-backed
// ban list to the credential endpoints.
func RateLimitMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ip := clientIP(r)

		if ban.IsBanned(ip) {
			writeMessage(w, http.StatusTooManyRequests, "Too many requests, try again later")
			return
		}

		if !rl.GetVisitor(ip).Allow() {
			ban.AddStrike(ip, r.URL.Path)
			writeMessage(w, http.StatusTooManyRequests, "Too many requests, try again later")
			return
		}

		next.ServeHTTP(w, r)
	})
}

func clientIP(r *http.Request) string {
	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

func writeMessage(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"message": message})
}
