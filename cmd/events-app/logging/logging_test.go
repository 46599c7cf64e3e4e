package logging

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewLogger_Levels(t *testing.T) {
	tests := []struct {
		level    string
		expected zerolog.Level
	}{
		{"debug", zerolog.DebugLevel},
		{"WARN", zerolog.WarnLevel},
		{"error", zerolog.ErrorLevel},
		{"", zerolog.InfoLevel},
		{"verbose", zerolog.InfoLevel},
	}

	for _, tt := range tests {
		t.Run(tt.level, func(t *testing.T) {
			var buf bytes.Buffer
			logger := newLogger(&buf, tt.level, "json")
			assert.Equal(t, tt.expected, logger.GetLevel())
		})
	}
}

func TestNewLogger_JSONOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	logger.Info().Str("event_id", "event-1").Msg("hello")

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "hello", line["message"])
	assert.Equal(t, "event-1", line["event_id"])
	assert.Contains(t, line, "time")
}

func TestNewLogger_ConsoleOutput(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "console")

	logger.Info().Msg("hello")

	assert.Contains(t, buf.String(), "hello")
	assert.False(t, json.Valid(bytes.TrimSpace(buf.Bytes())))
}

func TestRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "info", "json")

	e := echo.New()
	e.Use(RequestLogger(logger))
	e.GET("/events", func(c echo.Context) error {
		return c.NoContent(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/events?x=1", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	var line map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &line))
	assert.Equal(t, "request", line["message"])
	assert.Equal(t, "GET", line["method"])
	assert.Equal(t, "/events?x=1", line["uri"])
	assert.Equal(t, "/events", line["route"])
	assert.Equal(t, float64(http.StatusOK), line["status"])
}
