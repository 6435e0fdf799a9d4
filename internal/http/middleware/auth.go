package middleware

import (
	"net/http"
	"strings"

	"github.com/rogerio-castellano/retail-pos/internal/auth"
)

// AuthMiddleware rejects requests without a valid bearer token and puts the
// caller's principal on the request context.
func AuthMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		if !strings.HasPrefix(header, "Bearer ") {
			http.Error(w, "missing or invalid token", http.StatusUnauthorized)
			return
		}

		p, err := auth.ParseToken(header)
		if err != nil {
			http.Error(w, "invalid token", http.StatusUnauthorized)
			return
		}

		next.ServeHTTP(w, r.WithContext(auth.WithPrincipal(r.Context(), p)))
	})
}
