package server

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"camp-signup-system/config"
	"camp-signup-system/internal/global/database"
	"camp-signup-system/test"

	"github.com/go-resty/resty/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newClient(t *testing.T) *resty.Client {
	t.Helper()
	config.Set(&config.Config{Mode: config.ModeRelease})
	database.DB = test.NewDB(t)
	InitModules()

	srv := httptest.NewServer(NewEngine())
	t.Cleanup(srv.Close)
	return resty.New().SetBaseURL(srv.URL)
}

func TestCampSignupFlow(t *testing.T) {
	client := newClient(t)

	var camper map[string]any
	resp, err := client.R().
		SetBody(map[string]any{"name": "Alex", "age": 10}).
		SetResult(&camper).
		Post("/campers")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode(), resp.String())
	camperPath := fmt.Sprintf("/campers/%v", camper["id"])

	var fetched map[string]any
	resp, err = client.R().SetResult(&fetched).Get(camperPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, camper, fetched)

	var activity map[string]any
	resp, err = client.R().
		SetBody(map[string]any{"name": "Archery", "difficulty": 2}).
		SetResult(&activity).
		Post("/activities")
	require.NoError(t, err)
	require.Equal(t, http.StatusCreated, resp.StatusCode())

	var signup map[string]any
	resp, err = client.R().
		SetBody(map[string]any{"camper_id": camper["id"], "activity_id": activity["id"], "time": 23}).
		SetResult(&signup).
		Post("/signups")
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode(), resp.String())
	assert.EqualValues(t, 23, signup["time"])

	resp, err = client.R().SetResult(&fetched).Get(camperPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	signups := fetched["signups"].([]any)
	require.Len(t, signups, 1)
	assert.NotContains(t, signups[0], "camper")
	assert.NotContains(t, signups[0].(map[string]any)["activity"], "signups")

	resp, err = client.R().Delete(fmt.Sprintf("/activities/%v", activity["id"]))
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())

	fetched = nil
	resp, err = client.R().SetResult(&fetched).Get(camperPath)
	require.NoError(t, err)
	require.Equal(t, http.StatusOK, resp.StatusCode())
	assert.Equal(t, []any{}, fetched["signups"])
}

func TestUnknownRouteAndCors(t *testing.T) {
	client := newClient(t)

	resp, err := client.R().Get("/nope")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode())

	resp, err = client.R().SetHeader("Origin", "http://example.com").Options("/campers")
	require.NoError(t, err)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode())
}
