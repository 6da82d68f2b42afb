package sentry

import (
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"camp-signup-system/config"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
)

type codedErr int32

func (c codedErr) Error() string  { return "coded" }
func (c codedErr) GetCode() int32 { return int32(c) }

func TestShouldReport(t *testing.T) {
	require.False(t, shouldReport(nil))
	require.True(t, shouldReport(errors.New("boom")))
	require.True(t, shouldReport(codedErr(500)))
	require.True(t, shouldReport(codedErr(503)))
	require.False(t, shouldReport(codedErr(404)))
	require.False(t, shouldReport(codedErr(200)))
}

func TestDisabledWithoutDsn(t *testing.T) {
	config.Set(&config.Config{Mode: config.ModeDebug})
	require.NoError(t, Init())

	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.Use(Middleware())
	r.GET("/x", func(c *gin.Context) {
		CaptureException(c, errors.New("ignored"))
		c.Status(http.StatusTeapot)
	})

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, "/x", nil))
	require.Equal(t, http.StatusTeapot, w.Code)
}
