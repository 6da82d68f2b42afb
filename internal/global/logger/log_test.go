package logger

import (
	"bytes"
	"context"
	"encoding/json"
	"log/slog"
	"os"
	"path/filepath"
	"testing"

	"camp-signup-system/config"

	"github.com/stretchr/testify/require"
)

func TestGetLogLevel(t *testing.T) {
	require.Equal(t, slog.LevelDebug, getLogLevel("DEBUG"))
	require.Equal(t, slog.LevelWarn, getLogLevel("warn"))
	require.Equal(t, slog.LevelError, getLogLevel("error"))
	require.Equal(t, slog.LevelInfo, getLogLevel(""))
	require.Equal(t, slog.LevelInfo, getLogLevel("verbose"))
}

func TestBuildDebugWritesTextToConsole(t *testing.T) {
	var buf bytes.Buffer
	l := build(&config.Config{Mode: config.ModeDebug, Log: config.Log{Level: "info"}}, &buf)

	l.With("module", "Camper").Info("创建营员成功", "id", 1)
	l.Debug("hidden")

	out := buf.String()
	require.Contains(t, out, "创建营员成功")
	require.Contains(t, out, "module=Camper")
	require.Contains(t, out, "app_name=camp-signup-system")
	require.NotContains(t, out, "hidden")
}

func TestBuildReleaseWritesJSONFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "server.log")
	l := build(&config.Config{
		Mode: config.ModeRelease,
		Log:  config.Log{FilePath: path, Level: "warn", MaxSize: 1},
	}, &bytes.Buffer{})

	l.Info("dropped")
	l.Warn("活动不存在", "id", 7)

	data, err := os.ReadFile(path)
	require.NoError(t, err)

	var rec map[string]any
	require.NoError(t, json.Unmarshal(bytes.TrimSpace(data), &rec))
	require.Equal(t, "活动不存在", rec["msg"])
	require.EqualValues(t, 7, rec["id"])
	require.Equal(t, "release", rec["env"])
}

func TestMultiHandlerFansOut(t *testing.T) {
	var a, b bytes.Buffer
	h := newMultiHandler(
		slog.NewTextHandler(&a, &slog.HandlerOptions{Level: slog.LevelInfo}),
		slog.NewTextHandler(&b, &slog.HandlerOptions{Level: slog.LevelError}),
	)
	require.True(t, h.Enabled(context.Background(), slog.LevelInfo))

	l := slog.New(h).WithGroup("g").With("k", "v")
	l.Info("only-a")
	l.Error("both")

	require.Contains(t, a.String(), "only-a")
	require.Contains(t, a.String(), "both")
	require.NotContains(t, b.String(), "only-a")
	require.Contains(t, b.String(), "g.k=v")
}

type fakeRequest map[string]string

func (f fakeRequest) ClientIP() string          { return "10.0.0.1" }
func (f fakeRequest) GetHeader(k string) string { return f[k] }

func TestWithContext(t *testing.T) {
	var buf bytes.Buffer
	base := slog.New(slog.NewTextHandler(&buf, nil))
	WithContext(base, fakeRequest{"X-Real-IP": "1.2.3.4"}).Info("hi")

	require.Contains(t, buf.String(), "client_ip=10.0.0.1")
	require.Contains(t, buf.String(), "x_real_ip=1.2.3.4")
	require.NotContains(t, buf.String(), "x_forwarded_for")
}
