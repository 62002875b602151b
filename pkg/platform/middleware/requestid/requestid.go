// Package requestid assigns every request a UUID so log lines and error
// reports can be correlated across the handler and service layers.
package requestid

import (
	"net/http"

	"github.com/google/uuid"

	"chrono/pkg/requestcontext"
)

// Header carries the request ID back to the caller.
const Header = "X-Request-ID"

// Middleware generates a request ID, honoring one supplied by a trusted
// upstream proxy, and exposes it through the context and response header.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(Header)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		w.Header().Set(Header, requestID)
		ctx := requestcontext.WithRequestID(r.Context(), requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
