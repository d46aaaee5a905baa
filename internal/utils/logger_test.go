package utils

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestNewLogger_ProductionWritesJSON(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("production", &buf)

	logger.Debug("hidden")
	logger.Info("visible", "key", "value")

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 1)

	var entry map[string]any
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	assert.Equal(t, "visible", entry["msg"])
	assert.Equal(t, "value", entry["key"])
}

func TestNewLogger_DevelopmentWritesTextAtDebug(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("development", &buf)

	logger.Debug("shown")
	assert.Contains(t, buf.String(), "level=DEBUG")
	assert.Contains(t, buf.String(), "msg=shown")
}

func TestLogRequest_LevelFollowsStatus(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("development", &buf)

	logger.LogRequest("POST", "/", 200, "1ms")
	logger.LogRequest("GET", "/", 405, "1ms")
	logger.LogRequest("POST", "/", 500, "1ms")

	out := buf.String()
	assert.Contains(t, out, "level=INFO")
	assert.Contains(t, out, "level=WARN")
	assert.Contains(t, out, "level=ERROR")
}

func TestRequestID(t *testing.T) {
	var buf bytes.Buffer
	logger := NewLogger("development", &buf)

	router := gin.New()
	router.Use(RequestID(logger))
	router.GET("/", func(c *gin.Context) {
		GetLoggerFromContext(c, logger).Info("inside handler")
		c.Status(http.StatusNoContent)
	})

	t.Run("generated", func(t *testing.T) {
		w := httptest.NewRecorder()
		router.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/", nil))

		id := w.Header().Get(RequestIDHeader)
		_, err := uuid.Parse(id)
		assert.NoError(t, err)
		assert.Contains(t, buf.String(), "request_id="+id)
	})

	t.Run("echoed", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodGet, "/", nil)
		req.Header.Set(RequestIDHeader, "abc-123")
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)

		assert.Equal(t, "abc-123", w.Header().Get(RequestIDHeader))
	})
}

func TestGetLoggerFromContext_Fallback(t *testing.T) {
	fallback := NewLogger("production", &bytes.Buffer{})
	c, _ := gin.CreateTestContext(httptest.NewRecorder())

	assert.Same(t, fallback, GetLoggerFromContext(c, fallback))
}
