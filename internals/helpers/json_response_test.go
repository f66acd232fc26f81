package helper_test

import (
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	helper "schoolku_backend/internals/helpers"
)

func doGet(t *testing.T, app *fiber.App, path string) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(httptest.NewRequest(http.MethodGet, path, nil))
	require.NoError(t, err)
	defer resp.Body.Close()

	var body map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&body))
	return resp.StatusCode, body
}

func TestJsonError_CodesAndFallbackMessage(t *testing.T) {
	app := fiber.New()
	app.Get("/conflict", func(c *fiber.Ctx) error { return helper.JsonError(c, fiber.StatusConflict, "dup") })
	app.Get("/empty", func(c *fiber.Ctx) error { return helper.JsonError(c, fiber.StatusNotFound, "  ") })
	app.Get("/zero", func(c *fiber.Ctx) error { return helper.JsonError(c, 0, "x") })

	status, body := doGet(t, app, "/conflict")
	assert.Equal(t, http.StatusConflict, status)
	assert.Equal(t, "CONFLICT", body["error_code"])
	assert.Equal(t, false, body["success"])
	assert.NotContains(t, body, "errors")

	status, body = doGet(t, app, "/empty")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "Not Found", body["message"])

	status, body = doGet(t, app, "/zero")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "INTERNAL_ERROR", body["error_code"])
}

func TestJsonList_HasPagination(t *testing.T) {
	app := fiber.New()
	app.Get("/", func(c *fiber.Ctx) error {
		return helper.JsonList(c, "", []int{1, 2}, helper.BuildMeta(2, helper.Params{Page: 1, PerPage: 10}))
	})

	status, body := doGet(t, app, "/")
	assert.Equal(t, http.StatusOK, status)
	assert.Equal(t, "ok", body["message"])
	assert.Equal(t, true, body["success"])
	pg, ok := body["pagination"].(map[string]any)
	require.True(t, ok)
	assert.EqualValues(t, 2, pg["total"])
}

func TestFromFiberError(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: helper.FromFiberError})
	app.Get("/unauth", func(c *fiber.Ctx) error { return fiber.NewError(fiber.StatusUnauthorized, "Invalid token") })
	app.Get("/raw", func(c *fiber.Ctx) error { return errors.New("secret detail") })

	status, body := doGet(t, app, "/unauth")
	assert.Equal(t, http.StatusUnauthorized, status)
	assert.Equal(t, "Invalid token", body["message"])
	assert.Equal(t, "UNAUTHORIZED", body["error_code"])

	status, body = doGet(t, app, "/raw")
	assert.Equal(t, http.StatusInternalServerError, status)
	assert.Equal(t, "Internal server error, contact support.", body["message"])

	status, body = doGet(t, app, "/missing")
	assert.Equal(t, http.StatusNotFound, status)
	assert.Equal(t, "NOT_FOUND", body["error_code"])
}
