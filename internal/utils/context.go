// Package utils provides general-purpose helpers shared by the server, the
// client and the encoder: request trace ids in context, SHA-256 digests for
// integrity metadata, HTTP response writing, the resty client wrapper and
// uuid generation.
package utils

import (
	"context"
)

// contextKey is a private type for context keys.
// Using a dedicated type instead of a plain string prevents key collisions
// with other packages that may use string-based keys in the context.
type contextKey string

// String returns the string representation of the context key.
func (c contextKey) String() string {
	return string(c)
}

// TraceIDHeader carries the trace id between the client and the bundle
// host.
const TraceIDHeader = "X-Trace-ID"

// TraceIDCtxKey stores the request trace id assigned by the HTTP
// middleware.
var TraceIDCtxKey = contextKey("traceID")

// WithTraceID returns ctx carrying traceID.
func WithTraceID(ctx context.Context, traceID string) context.Context {
	return context.WithValue(ctx, TraceIDCtxKey, traceID)
}

// GetTraceIDFromContext retrieves the trace id stored by [WithTraceID].
//
// Parameters:
//
//	ctx - context of the request or of the reveal attempt
//
// Returns:
//
//	string - the trace id, empty when absent
//	bool   - false when the value is missing or empty
//
// Example usage:
//
//	if traceID, ok := utils.GetTraceIDFromContext(ctx); ok {
//		req.SetHeader(utils.TraceIDHeader, traceID)
//	}
func GetTraceIDFromContext(ctx context.Context) (string, bool) {
	traceID, ok := ctx.Value(TraceIDCtxKey).(string)
	return traceID, ok && traceID != ""
}
