package initsvc

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/logger"
)

const seedYAML = `
siteSettings:
  siteName: Test Site
  email: hello@example.com
levels:
  - name: Bachelor
  - name: Master
    slug: masters
menus:
  - title: Header
    slug: header
    location: header
    items:
      - label: Home
        url: /
        order: 1
      - label: Scholarships
        url: /scholarships
        order: 2
        children:
          - label: Master
            url: /scholarships?level=master
            order: 1
statistics:
  - type: scholarships
    order: 1
    data:
      value: 1500
      label: Scholarships
`

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func loadSeed(t *testing.T) *SeedData {
	t.Helper()
	path := filepath.Join(t.TempDir(), "seed.yaml")
	require.NoError(t, os.WriteFile(path, []byte(seedYAML), 0o644))
	data, err := LoadSeedFile(path)
	require.NoError(t, err)
	return data
}

func TestLoadSeedFile(t *testing.T) {
	data := loadSeed(t)
	assert.Equal(t, "Test Site", data.SiteSettings["siteName"])
	require.Len(t, data.Menus, 1)
	require.Len(t, data.Menus[0].Items, 2)
	assert.Len(t, data.Menus[0].Items[1].Children, 1)

	_, err := LoadSeedFile(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}

func TestInitAllSeedsOnce(t *testing.T) {
	ctx := context.Background()
	stores := basesvc.NewMemoryStoreProvider()
	svc, err := NewInitService(stores)
	require.NoError(t, err)
	data := loadSeed(t)

	require.NoError(t, svc.InitAll(ctx, data))
	require.NoError(t, svc.InitAll(ctx, data), "a second run finds the data and skips")

	settings, err := svc.siteSettingsService.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, settings)
	assert.Equal(t, "Test Site", settings.SiteName)

	levels, err := svc.levelService.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, levels, 2)
	assert.Equal(t, "bachelor", levels[0].Slug)
	assert.Equal(t, "masters", levels[1].Slug)

	structure, err := svc.menuService.Structure(ctx, "header")
	require.NoError(t, err)
	require.Len(t, structure.Items, 2)
	assert.Equal(t, "Home", structure.Items[0].Label)
	require.Len(t, structure.Items[1].Children, 1)
	assert.Equal(t, "Master", structure.Items[1].Children[0].Label)

	stat, err := svc.statisticService.GetByType(ctx, "scholarships")
	require.NoError(t, err)
	assert.Equal(t, 1, stat.Order)

	items, err := svc.menuItemService.List(ctx, nil)
	require.NoError(t, err)
	assert.Len(t, items, 3)
}

func TestInitSiteSettingsKeepsExisting(t *testing.T) {
	ctx := context.Background()
	svc, err := NewInitService(basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)

	_, err = svc.siteSettingsService.Update(ctx, map[string]any{"siteName": "Edited"})
	require.NoError(t, err)

	require.NoError(t, svc.InitSiteSettings(ctx, loadSeed(t)))
	settings, err := svc.siteSettingsService.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Edited", settings.SiteName)
}
