package http

import (
	"net/http"

	"github.com/MKhiriev/secret-decoder/internal/utils"
	"github.com/google/uuid"
)

const maxTraceIDLength = 64

// withTraceID tags the request with the caller's X-Trace-ID and attaches a
// logger carrying it. A missing or malformed header gets a fresh uuid.
func (h *Handler) withTraceID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		traceID := r.Header.Get(utils.TraceIDHeader)
		if !validTraceID(traceID) {
			traceID = uuid.NewString()
		}

		ctx := utils.WithTraceID(r.Context(), traceID)
		ctx = h.logger.WithTraceID(traceID).WithContext(ctx)

		w.Header().Set(utils.TraceIDHeader, traceID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// validTraceID accepts short tokens of letters, digits, '-', '_' and '.'.
func validTraceID(id string) bool {
	if id == "" || len(id) > maxTraceIDLength {
		return false
	}
	for _, c := range id {
		switch {
		case c >= 'a' && c <= 'z', c >= 'A' && c <= 'Z', c >= '0' && c <= '9':
		case c == '-', c == '_', c == '.':
		default:
			return false
		}
	}
	return true
}
