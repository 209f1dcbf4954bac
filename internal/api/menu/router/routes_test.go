package router

import (
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"strings"
	"testing"

	"github.com/gofiber/fiber/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basehdl "fullsco_api/internal/api/base/handler"
	basesvc "fullsco_api/internal/api/base/service"
	apirouter "fullsco_api/internal/api/router"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func id(t *testing.T, resp map[string]any) string {
	t.Helper()
	data, ok := resp["data"].(map[string]any)
	require.True(t, ok, "data is an object")
	return data["id"].(string)
}

func TestMenuRoutes(t *testing.T) {
	app := fiber.New(fiber.Config{ErrorHandler: basehdl.ErrorHandler})
	require.NoError(t, apirouter.SetupRoutes(app, apirouter.Deps{Stores: basesvc.NewMemoryStoreProvider()}, Register))

	status, resp := do(t, app, http.MethodPost, "/api/v1/menus", `{"title":"Main Menu","location":"header"}`)
	require.Equal(t, http.StatusCreated, status)
	menuID := id(t, resp)
	assert.Equal(t, "main-menu", resp["data"].(map[string]any)["slug"])
	assert.Equal(t, true, resp["data"].(map[string]any)["isActive"])

	status, resp = do(t, app, http.MethodPost, "/api/v1/menu-items", `{"menuId":"`+menuID+`","label":"Home","url":"/","order":1}`)
	require.Equal(t, http.StatusCreated, status)
	homeID := id(t, resp)

	status, _ = do(t, app, http.MethodPost, "/api/v1/menu-items", `{"menuId":"`+menuID+`","parentId":"`+homeID+`","label":"News","url":"/news","order":1}`)
	require.Equal(t, http.StatusCreated, status)

	status, resp = do(t, app, http.MethodPost, "/api/v1/menu-items", `{"menuId":"64b7f0c2a1b2c3d4e5f60718","label":"x","url":"/x"}`)
	assert.Equal(t, http.StatusNotFound, status)

	status, resp = do(t, app, http.MethodGet, "/api/v1/menus/"+menuID+"/items?parentId=null", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["data"], 1)

	status, resp = do(t, app, http.MethodGet, "/api/v1/menus/"+menuID+"/items", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["data"], 2)

	status, resp = do(t, app, http.MethodGet, "/api/v1/menus/location/header/structure", "")
	require.Equal(t, http.StatusOK, status)
	structure := resp["data"].(map[string]any)
	items := structure["items"].([]any)
	require.Len(t, items, 1)
	home := items[0].(map[string]any)
	assert.Equal(t, "Home", home["label"])
	assert.Len(t, home["children"], 1)

	status, _ = do(t, app, http.MethodGet, "/api/v1/menus/location/header", "")
	assert.Equal(t, http.StatusOK, status)

	status, _ = do(t, app, http.MethodPatch, "/api/v1/menu-items/"+homeID, `{"parentId":"`+homeID+`"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, resp = do(t, app, http.MethodPost, "/api/v1/menu-items", `{"menuId":"`+menuID+`","parentId":"`+homeID+`","label":"Blog","url":"/blog","order":2}`)
	require.Equal(t, http.StatusCreated, status)
	blogID := id(t, resp)

	status, resp = do(t, app, http.MethodPatch, "/api/v1/menu-items/"+blogID, `{"parentId":""}`)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp["data"].(map[string]any)["parentId"])

	status, _ = do(t, app, http.MethodPatch, "/api/v1/menu-items/"+blogID, `{"parentId":"`+homeID+`"}`)
	require.Equal(t, http.StatusOK, status)
	status, resp = do(t, app, http.MethodPatch, "/api/v1/menu-items/"+blogID, `{"parentId":null,"label":"Journal"}`)
	require.Equal(t, http.StatusOK, status)
	data := resp["data"].(map[string]any)
	assert.Nil(t, data["parentId"])
	assert.Equal(t, "Journal", data["label"])

	status, resp = do(t, app, http.MethodGet, "/api/v1/menus/"+menuID+"/items?parentId=null", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["data"], 2)

	status, _ = do(t, app, http.MethodPatch, "/api/v1/menu-items/"+blogID, `{"parentId":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)

	status, _ = do(t, app, http.MethodDelete, "/api/v1/menus/"+menuID, "")
	require.Equal(t, http.StatusOK, status)
	status, resp = do(t, app, http.MethodGet, "/api/v1/menu-items?menuId="+menuID, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["data"], 0)
}
