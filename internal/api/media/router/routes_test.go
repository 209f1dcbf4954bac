package router

import (
	"bytes"
	"encoding/json"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"os"
	"path/filepath"
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

func newApp(t *testing.T) (*fiber.App, string) {
	t.Helper()
	dir := t.TempDir()
	app := fiber.New(fiber.Config{ErrorHandler: basehdl.ErrorHandler})
	require.NoError(t, apirouter.SetupRoutes(app, apirouter.Deps{
		Stores:    basesvc.NewMemoryStoreProvider(),
		UploadDir: dir,
	}, Register))
	return app, dir
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, map[string]any) {
	t.Helper()
	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	var out map[string]any
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	return resp.StatusCode, out
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, map[string]any) {
	t.Helper()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	return send(t, app, req)
}

func upload(t *testing.T, app *fiber.App, filename, mime string, content []byte, fields map[string]string) (int, map[string]any) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if filename != "" {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="file"; filename="`+filename+`"`)
		h.Set("Content-Type", mime)
		part, err := w.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())

	req := httptest.NewRequest(http.MethodPost, "/api/v1/media/upload", &buf)
	req.Header.Set("Content-Type", w.FormDataContentType())
	return send(t, app, req)
}

func TestUploadStoresFileAndRecord(t *testing.T) {
	app, dir := newApp(t)

	status, resp := upload(t, app, "Logo.PNG", "image/png", []byte("pngdata"), map[string]string{"altText": "Logo", "title": "Site logo"})
	require.Equal(t, http.StatusCreated, status)
	file := resp["data"].(map[string]any)
	assert.Equal(t, "image/png", file["type"])
	assert.Equal(t, float64(7), file["size"])
	assert.Equal(t, "Logo", file["altText"])
	assert.Equal(t, true, file["isActive"])

	name := file["filename"].(string)
	assert.True(t, strings.HasSuffix(name, ".png"))
	assert.Equal(t, "/uploads/"+name, file["url"])

	stored, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, "pngdata", string(stored))

	status, resp = do(t, app, http.MethodDelete, "/api/v1/media/"+file["id"].(string), "")
	require.Equal(t, http.StatusOK, status)
	_, err = os.Stat(filepath.Join(dir, name))
	assert.True(t, os.IsNotExist(err))

	status, _ = do(t, app, http.MethodDelete, "/api/v1/media/"+file["id"].(string), "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestUploadRequiresFile(t *testing.T) {
	app, dir := newApp(t)

	status, resp := upload(t, app, "", "", nil, map[string]string{"title": "nothing"})
	require.Equal(t, http.StatusBadRequest, status)
	errs := resp["errors"].([]any)
	require.Len(t, errs, 1)
	assert.Equal(t, "file", errs[0].(map[string]any)["field"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Empty(t, entries)
}

func TestRegisterExistingFileAndFilter(t *testing.T) {
	app, _ := newApp(t)

	status, resp := do(t, app, http.MethodPost, "/api/v1/media", `{"filename":"cdn.jpg","url":"https://cdn.example.com/cdn.jpg","type":"image/jpeg","size":10}`)
	require.Equal(t, http.StatusCreated, status)
	id := resp["data"].(map[string]any)["id"].(string)

	status, resp = do(t, app, http.MethodPost, "/api/v1/media", `{"filename":"x","url":"x","type":"notamime"}`)
	require.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, "type", resp["errors"].([]any)[0].(map[string]any)["field"])

	status, _ = upload(t, app, "doc.pdf", "application/pdf", []byte("%PDF"), nil)
	require.Equal(t, http.StatusCreated, status)

	status, resp = do(t, app, http.MethodGet, "/api/v1/media?type=image/", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp["data"].([]any), 1)

	status, resp = do(t, app, http.MethodPatch, "/api/v1/media/"+id, `{"altText":"CDN image","isActive":false}`)
	require.Equal(t, http.StatusOK, status)
	updated := resp["data"].(map[string]any)
	assert.Equal(t, "CDN image", updated["altText"])
	assert.Equal(t, false, updated["isActive"])
	assert.Equal(t, "https://cdn.example.com/cdn.jpg", updated["url"])
}

func TestBulkDelete(t *testing.T) {
	app, dir := newApp(t)

	var ids []string
	for _, name := range []string{"a.png", "b.png", "c.png"} {
		status, resp := upload(t, app, name, "image/png", []byte(name), nil)
		require.Equal(t, http.StatusCreated, status)
		ids = append(ids, resp["data"].(map[string]any)["id"].(string))
	}

	status, resp := do(t, app, http.MethodPost, "/api/v1/media/bulk-delete", `{"ids":[]}`)
	require.Equal(t, http.StatusBadRequest, status)

	status, resp = do(t, app, http.MethodPost, "/api/v1/media/bulk-delete", `{"ids":["`+ids[0]+`","`+ids[1]+`"]}`)
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, float64(2), resp["data"].(map[string]any)["deleted"])

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	assert.Len(t, entries, 1)

	status, resp = do(t, app, http.MethodGet, "/api/v1/media", "")
	require.Equal(t, http.StatusOK, status)
	list := resp["data"].([]any)
	require.Len(t, list, 1)
	assert.Equal(t, ids[2], list[0].(map[string]any)["id"])
}
