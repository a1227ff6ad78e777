// Package middleware holds adapters and in house middlewares
package middleware

import (
	"net/http"

	pnet "chrono/internal/platform/net"

	"github.com/google/uuid"
)

// requestIDHeader is the canonical correlation header
const requestIDHeader = "X-Request-ID"

// RequestID propagates an incoming X-Request-ID or mints a fresh uuid v4,
// stores it on the context, and mirrors it on the response
func RequestID() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			id := r.Header.Get(requestIDHeader)
			if id == "" {
				id = uuid.NewString()
			}
			w.Header().Set(requestIDHeader, id)
			next.ServeHTTP(w, r.WithContext(pnet.WithRequest(r.Context(), id)))
		})
	}
}
