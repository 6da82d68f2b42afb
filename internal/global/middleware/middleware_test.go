package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"camp-signup-system/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func TestRecoveryTurnsPanicInto500(t *testing.T) {
	config.Set(&config.Config{Mode: config.ModeRelease})

	r := gin.New()
	r.Use(Recovery())
	r.GET("/boom", func(*gin.Context) { panic("boom") })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/boom", nil))

	require.Equal(t, http.StatusInternalServerError, w.Code)
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	require.Equal(t, map[string]any{"error": "internal server error"}, body)
}

func TestLoggerRecordsStatusAndBody(t *testing.T) {
	var buf bytes.Buffer
	log := slog.New(slog.NewJSONHandler(&buf, nil))

	r := gin.New()
	r.Use(Logger(log))
	r.GET("/ok", func(c *gin.Context) { c.String(http.StatusOK, "hello") })
	r.GET("/missing", func(c *gin.Context) { c.String(http.StatusNotFound, strings.Repeat("x", maxResponseLogSize+10)) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/ok?a=1", nil))
	require.Equal(t, "hello", w.Body.String())

	var rec map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "INFO", rec["level"])
	require.EqualValues(t, 200, rec["status"])
	require.Equal(t, "a=1", rec["query"])
	require.Equal(t, "hello", rec["response_body"])

	buf.Reset()
	w = httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/missing", nil))
	require.Equal(t, maxResponseLogSize+10, w.Body.Len())

	require.NoError(t, json.Unmarshal(buf.Bytes(), &rec))
	require.Equal(t, "WARN", rec["level"])
	require.True(t, strings.HasSuffix(rec["response_body"].(string), "...(truncated)"))
}

func TestCorsPreflight(t *testing.T) {
	r := gin.New()
	r.Use(Cors())
	r.GET("/campers", func(c *gin.Context) { c.Status(http.StatusOK) })

	req := httptest.NewRequest(http.MethodOptions, "/campers", nil)
	req.Header.Set("Origin", "http://localhost:3000")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	require.Equal(t, http.StatusNoContent, w.Code)
	require.Equal(t, "http://localhost:3000", w.Header().Get("Access-Control-Allow-Origin"))
}

func TestTraceKeepsRequestFlowing(t *testing.T) {
	r := gin.New()
	r.Use(Trace())
	r.GET("/campers/:id", func(c *gin.Context) { c.Status(http.StatusAccepted) })

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/campers/1", nil))
	require.Equal(t, http.StatusAccepted, w.Code)
}
