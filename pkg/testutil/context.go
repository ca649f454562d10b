package testutil

import (
	"net/http"
	"time"

	"inbank/pkg/requestcontext"
)

// WithRequestTime pins the request-scoped time, as the requesttime middleware
// would, so date-dependent rules are deterministic.
func WithRequestTime(req *http.Request, t time.Time) *http.Request {
	return req.WithContext(requestcontext.WithTime(req.Context(), t))
}

// WithRequestID adds a request ID to the request context.
func WithRequestID(req *http.Request, requestID string) *http.Request {
	return req.WithContext(requestcontext.WithRequestID(req.Context(), requestID))
}
