package http

import (
	"net/http"
	"time"

	"github.com/MKhiriev/secret-decoder/internal/logger"
	"github.com/rs/zerolog"
)

// withLogging writes one access log line per request. Server errors log at
// error level and client errors at warn, so a probe for absent assets stays
// visible without drowning the log.
func (h *Handler) withLogging(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		lw := &responseWriter{ResponseWriter: w}
		next.ServeHTTP(lw, r)

		status := lw.status
		if status == 0 {
			status = http.StatusOK
		}

		event := logger.FromRequest(r).WithLevel(accessLogLevel(status))
		if enc := w.Header().Get("Content-Encoding"); enc != "" {
			event = event.Str("encoding", enc)
		}
		event.
			Str("method", r.Method).
			Str("uri", r.RequestURI).
			Int("status", status).
			Int("size", lw.size).
			Dur("duration", time.Since(start)).
			Send()
	})
}

func accessLogLevel(status int) zerolog.Level {
	switch {
	case status >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case status >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}
