package testutil

import (
	"net/http"
	"time"

	"chrono/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped clock, simulating what the
// requesttime middleware does on a live server.
func WithRequestTime(req *http.Request, at time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), at))
}

// WithRequestID stamps a request ID onto the request context, simulating the
// requestid middleware.
func WithRequestID(req *http.Request, id string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), id))
}
