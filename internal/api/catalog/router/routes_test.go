package router

import (
	"context"
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
	"fullsco_api/internal/api/catalog/models"
	apirouter "fullsco_api/internal/api/router"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

// spyStore counts inserts reaching the store
type spyStore[T any] struct {
	basesvc.BaseServiceMongo[T]
	inserts int
}

func (s *spyStore[T]) InsertOne(ctx context.Context, data T) (T, error) {
	s.inserts++
	return s.BaseServiceMongo.InsertOne(ctx, data)
}

func newApp(t *testing.T) (*fiber.App, *spyStore[models.Scholarship]) {
	t.Helper()
	stores := basesvc.NewMemoryStoreProvider()
	spy := &spyStore[models.Scholarship]{
		BaseServiceMongo: basesvc.NewBaseServiceMemory[models.Scholarship](global.MongoDB_ColNames.Scholarships),
	}
	require.NoError(t, basesvc.Use[models.Scholarship](stores, global.MongoDB_ColNames.Scholarships, spy))

	app := fiber.New(fiber.Config{ErrorHandler: basehdl.ErrorHandler})
	require.NoError(t, apirouter.SetupRoutes(app, apirouter.Deps{Stores: stores, Environment: "test"}, Register))
	return app, spy
}

func do(t *testing.T, app *fiber.App, method, path, body string) (int, basehdl.Response) {
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

	var out basehdl.Response
	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	require.NoError(t, json.Unmarshal(raw, &out), string(raw))
	return resp.StatusCode, out
}

func TestCreateRejectsInvalidInputBeforeStore(t *testing.T) {
	app, spy := newApp(t)

	status, resp := do(t, app, http.MethodPost, "/api/v1/scholarships", `{"slug":"Not A Slug","website":"nope"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.False(t, resp.Success)
	assert.NotEmpty(t, resp.Errors)
	assert.Equal(t, 0, spy.inserts)

	fields := map[string]bool{}
	for _, fe := range resp.Errors {
		fields[fe.Field] = true
	}
	assert.True(t, fields["title"])
	assert.True(t, fields["slug"])
	assert.True(t, fields["website"])

	status, _ = do(t, app, http.MethodPost, "/api/v1/scholarships", `{"title":`)
	assert.Equal(t, http.StatusBadRequest, status)
	assert.Equal(t, 0, spy.inserts)
}

func TestScholarshipLifecycle(t *testing.T) {
	app, spy := newApp(t)

	status, resp := do(t, app, http.MethodPost, "/api/v1/scholarships", `{"title":"DAAD Scholarship","isFeatured":true,"isPublished":true}`)
	require.Equal(t, http.StatusCreated, status)
	assert.True(t, resp.Success)
	assert.Equal(t, 1, spy.inserts)
	created := resp.Data.(map[string]any)
	assert.Equal(t, "daad-scholarship", created["slug"])
	id := created["id"].(string)

	status, _ = do(t, app, http.MethodPost, "/api/v1/scholarships", `{"title":"Other","slug":"daad-scholarship"}`)
	assert.Equal(t, http.StatusConflict, status)

	status, resp = do(t, app, http.MethodGet, "/api/v1/scholarships/featured", "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Data, 1)

	status, resp = do(t, app, http.MethodGet, "/api/v1/scholarships/slug/daad-scholarship", "")
	require.Equal(t, http.StatusOK, status)
	assert.Equal(t, id, resp.Data.(map[string]any)["id"])

	status, resp = do(t, app, http.MethodPost, "/api/v1/scholarships/"+id+"/views", "")
	require.Equal(t, http.StatusOK, status)
	assert.EqualValues(t, 1, resp.Data.(map[string]any)["views"])

	status, resp = do(t, app, http.MethodPatch, "/api/v1/scholarships/"+id, `{"amount":"1200 EUR"}`)
	require.Equal(t, http.StatusOK, status)
	updated := resp.Data.(map[string]any)
	assert.Equal(t, "1200 EUR", updated["amount"])
	assert.Equal(t, "DAAD Scholarship", updated["title"])

	status, _ = do(t, app, http.MethodDelete, "/api/v1/scholarships/"+id, "")
	assert.Equal(t, http.StatusOK, status)
	status, _ = do(t, app, http.MethodDelete, "/api/v1/scholarships/"+id, "")
	assert.Equal(t, http.StatusNotFound, status)
}

func TestInvalidIDIsBadRequest(t *testing.T) {
	app, _ := newApp(t)

	for _, path := range []string{"/api/v1/scholarships/not-an-id", "/api/v1/categories/123", "/api/v1/levels/zzz"} {
		status, resp := do(t, app, http.MethodGet, path, "")
		assert.Equal(t, http.StatusBadRequest, status, path)
		assert.False(t, resp.Success)
	}
}

func TestDanglingReferenceIsBadRequest(t *testing.T) {
	app, spy := newApp(t)

	status, resp := do(t, app, http.MethodPost, "/api/v1/scholarships", `{"title":"Orphan","levelId":"64b7f0c2a1b2c3d4e5f60718"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "levelId", resp.Errors[0].Field)
	assert.Equal(t, 0, spy.inserts)

	status, resp = do(t, app, http.MethodPost, "/api/v1/levels", `{"name":"Master"}`)
	require.Equal(t, http.StatusCreated, status)
	levelID := resp.Data.(map[string]any)["id"].(string)

	status, _ = do(t, app, http.MethodPost, "/api/v1/scholarships", `{"title":"Linked","levelId":"`+levelID+`"}`)
	assert.Equal(t, http.StatusCreated, status)
}

func TestScholarshipPatchClearsOptionalFields(t *testing.T) {
	app, _ := newApp(t)

	status, resp := do(t, app, http.MethodPost, "/api/v1/countries", `{"name":"Germany"}`)
	require.Equal(t, http.StatusCreated, status)
	countryID := resp.Data.(map[string]any)["id"].(string)

	status, resp = do(t, app, http.MethodPost, "/api/v1/scholarships",
		`{"title":"Erasmus","startDate":"2025-09-01","endDate":"2026-06-30","countryId":"`+countryID+`"}`)
	require.Equal(t, http.StatusCreated, status)
	created := resp.Data.(map[string]any)
	id := created["id"].(string)
	require.NotNil(t, created["startDate"])
	require.Equal(t, countryID, created["countryId"])

	status, resp = do(t, app, http.MethodPatch, "/api/v1/scholarships/"+id, `{"startDate":"","countryId":""}`)
	require.Equal(t, http.StatusOK, status)
	updated := resp.Data.(map[string]any)
	assert.Nil(t, updated["startDate"])
	assert.Nil(t, updated["countryId"])
	assert.NotNil(t, updated["endDate"], "fields left out keep their value")

	status, resp = do(t, app, http.MethodPatch, "/api/v1/scholarships/"+id, `{"endDate":null}`)
	require.Equal(t, http.StatusOK, status)
	assert.Nil(t, resp.Data.(map[string]any)["endDate"])

	status, resp = do(t, app, http.MethodGet, "/api/v1/scholarships?countryId="+countryID, "")
	require.Equal(t, http.StatusOK, status)
	assert.Len(t, resp.Data, 0)

	status, resp = do(t, app, http.MethodPatch, "/api/v1/scholarships/"+id, `{"startDate":"soon"}`)
	assert.Equal(t, http.StatusBadRequest, status)
	require.Len(t, resp.Errors, 1)
	assert.Equal(t, "startDate", resp.Errors[0].Field)
}
