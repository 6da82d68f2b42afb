package test

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"camp-signup-system/internal/global/response"

	"github.com/stretchr/testify/require"
)

// ErrorEqual 断言响应的状态码和 {"error": ...}/{"errors": [...]} 消息与预定义错误一致
func ErrorEqual(t *testing.T, expected *response.Error, strict bool, w *httptest.ResponseRecorder) {
	t.Helper()
	require.Equal(t, expected.Status(strict), w.Code, w.Body.String())

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body), w.Body.String())
	if expected.List {
		require.Equal(t, []any{expected.Message}, body[expected.Key])
	} else {
		require.Equal(t, expected.Message, body[expected.Key])
	}
}
