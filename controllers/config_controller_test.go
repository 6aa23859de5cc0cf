package controller_test

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"

	"safarsaathi/config"
)

func getJSON(t *testing.T, app *fiber.App, path string) (*http.Response, map[string]interface{}) {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	assert.NoError(t, err)
	var decoded map[string]interface{}
	assert.NoError(t, json.Unmarshal(raw, &decoded))
	return resp, decoded
}

func TestGetConfig(t *testing.T) {
	t.Run("Serves resolved credentials", func(t *testing.T) {
		app := setupApp(&fakeStore{}, nil)

		resp, body := getJSON(t, app, "/api/config")
		assert.Equal(t, fiber.StatusOK, resp.StatusCode)
		assert.Equal(t, "https://proj.supabase.co", body["supabaseUrl"])
		assert.Equal(t, "anon-key", body["supabaseAnonKey"])
	})

	t.Run("Unresolvable credentials return 503", func(t *testing.T) {
		app := setupApp(&fakeStore{}, &config.StaticSource{})

		resp, body := getJSON(t, app, "/api/config")
		assert.Equal(t, fiber.StatusServiceUnavailable, resp.StatusCode)
		assert.Equal(t, false, body["success"])
	})
}

func TestGetContent(t *testing.T) {
	app := setupApp(&fakeStore{}, nil)

	resp, body := getJSON(t, app, "/api/content")
	assert.Equal(t, fiber.StatusOK, resp.StatusCode)

	grades := body["gradeOptions"].([]interface{})
	assert.Contains(t, grades, "Class 5")
	assert.Contains(t, grades, "Nursery")

	assert.Contains(t, body, "hero")
	assert.NotEmpty(t, body["features"])
	assert.NotEmpty(t, body["howItWorks"])
	assert.NotEmpty(t, body["testimonials"])
}

func TestUnknownRoute(t *testing.T) {
	app := setupApp(&fakeStore{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/api/leads", nil)
	resp, err := app.Test(req, -1)
	assert.NoError(t, err)
	assert.Equal(t, fiber.StatusNotFound, resp.StatusCode)
}
