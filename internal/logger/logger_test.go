package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// lastEntry decodes the single JSON line written to buf.
func lastEntry(t *testing.T, buf *bytes.Buffer) map[string]any {
	t.Helper()
	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	return entry
}

func TestNewLoggerTo_EntryShape(t *testing.T) {
	var buf bytes.Buffer
	l := NewLoggerTo(&buf, "secret-server")

	l.Warn().Msg("written")

	entry := lastEntry(t, &buf)
	assert.Equal(t, "secret-server", entry["role"])
	assert.Equal(t, "warn", entry["level"])
	assert.Contains(t, entry, "time")
	assert.Contains(t, entry["func"], "TestNewLoggerTo_EntryShape")
}

func TestNewLogger_GlobalSettings(t *testing.T) {
	require.NotNil(t, NewLogger("settings"))

	assert.Equal(t, "func", zerolog.CallerFieldName)
	assert.Equal(t, zerolog.DebugLevel, zerolog.GlobalLevel())
}

func TestNop_DiscardsOutput(t *testing.T) {
	var buf bytes.Buffer
	l := Nop()
	l.Logger = l.Output(&buf)

	l.Error().Msg("dropped")

	assert.Empty(t, buf.String())
}

func TestChildLoggers_KeepParentFields(t *testing.T) {
	tests := []struct {
		name  string
		child func(*Logger) *Logger
		check func(t *testing.T, entry map[string]any)
	}{
		{
			name:  "plain child",
			child: (*Logger).GetChildLogger,
			check: func(t *testing.T, entry map[string]any) {},
		},
		{
			name:  "attempt",
			child: func(l *Logger) *Logger { return l.WithAttempt(7) },
			check: func(t *testing.T, entry map[string]any) {
				assert.EqualValues(t, 7, entry["attempt"])
			},
		},
		{
			name:  "attempt and trace",
			child: func(l *Logger) *Logger { return l.WithAttempt(2).WithTraceID("trace-1") },
			check: func(t *testing.T, entry map[string]any) {
				assert.EqualValues(t, 2, entry["attempt"])
				assert.Equal(t, "trace-1", entry["trace_id"])
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			parent := NewLoggerTo(&buf, "secret-client")

			child := tt.child(parent)
			require.NotSame(t, parent, child)
			child.Info().Msg("child")

			entry := lastEntry(t, &buf)
			assert.Equal(t, "secret-client", entry["role"])
			tt.check(t, entry)
		})
	}
}

func TestWithTraceID_DoesNotTagParent(t *testing.T) {
	var buf bytes.Buffer
	parent := NewLoggerTo(&buf, "secret-client")
	_ = parent.WithTraceID("trace-1")

	parent.Info().Msg("parent")

	assert.NotContains(t, lastEntry(t, &buf), "trace_id")
}

func TestFromContext(t *testing.T) {
	t.Run("without logger", func(t *testing.T) {
		require.NotNil(t, FromContext(context.Background()))
	})

	t.Run("attached with WithContext", func(t *testing.T) {
		var buf bytes.Buffer
		ctx := NewLoggerTo(&buf, "ctx-role").WithContext(context.Background())

		FromContext(ctx).Info().Msg("via ctx")

		assert.Equal(t, "ctx-role", lastEntry(t, &buf)["role"])
	})

	t.Run("attached by zerolog", func(t *testing.T) {
		var buf bytes.Buffer
		zl := zerolog.New(&buf).With().Str("asset", "audio").Logger()

		FromContext(zl.WithContext(context.Background())).Info().Msg("via zerolog")

		assert.Equal(t, "audio", lastEntry(t, &buf)["asset"])
	})
}

func TestFromRequest(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/passcode-hash.txt", nil)
	require.NotNil(t, FromRequest(req))

	var buf bytes.Buffer
	zl := zerolog.New(&buf).With().Str("trace_id", "req-1").Logger()
	req = req.WithContext(zl.WithContext(req.Context()))

	FromRequest(req).Info().Msg("from request")

	assert.Equal(t, "req-1", lastEntry(t, &buf)["trace_id"])
}
