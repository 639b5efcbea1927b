package server

import (
	"context"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/google/uuid"

	"github.com/matzehuels/wordbridge/pkg/buildinfo"
	"github.com/matzehuels/wordbridge/pkg/observability"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

type ctxKey int

const requestIDKey ctxKey = 0

// maxRequestIDLength bounds client-supplied request ids.
const maxRequestIDLength = 128

// requestID propagates the client's X-Request-ID or assigns a fresh UUID.
func requestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLength {
			id = uuid.NewString()
		}
		w.Header().Set(RequestIDHeader, id)
		w.Header().Set("Server", buildinfo.UserAgent())
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), requestIDKey, id)))
	})
}

// requestIDFromContext returns the id assigned by requestID, or "".
func requestIDFromContext(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey).(string)
	return id
}

// logRequests logs every request at debug level and reports it to the HTTP
// hooks.
func (s *Server) logRequests(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := middleware.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		elapsed := time.Since(start)
		s.logger.Debug("Request",
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"id", requestIDFromContext(r.Context()),
			"duration", elapsed.Round(time.Microsecond),
		)
		observability.HTTP().OnRequest(r.Context(), r.Method, r.URL.Path, status, elapsed)
	})
}
