package http

import (
	"context"
	"net/http"
	"nightlife-booking/common/errs"
	"nightlife-booking/session"
	"strings"
	"time"
)

func TimeoutMiddleware(timeout time.Duration) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.TimeoutHandler(next, timeout, "request timeout")
	}
}

func CorsMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

// Auth is the caller identity resolved from the bearer token.
type Auth struct {
	Token  string
	Claims *session.Claims
}

type authCtxKey struct{}

// AuthMiddleware parses the bearer token when present and puts the identity
// into the request context. Handlers that need it call requireAuth.
func AuthMiddleware(secret string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			header := r.Header.Get("Authorization")
			if !strings.HasPrefix(header, "Bearer ") {
				next.ServeHTTP(w, r)
				return
			}

			token := strings.TrimPrefix(header, "Bearer ")
			claims, err := session.ParseToken(token, secret)
			if err != nil {
				writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Invalid token"})
				return
			}

			ctx := context.WithValue(r.Context(), authCtxKey{}, Auth{Token: token, Claims: claims})
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

func requireAuth(w http.ResponseWriter, r *http.Request) (Auth, bool) {
	auth, ok := r.Context().Value(authCtxKey{}).(Auth)
	if !ok {
		writeErrorResponse(w, &errs.HttpError{Code: http.StatusUnauthorized, Message: "Unauthorized"})
		return Auth{}, false
	}

	return auth, true
}
