package settingssvc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/settings/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func TestSiteSettingsSingleton(t *testing.T) {
	ctx := context.Background()
	stores := basesvc.NewMemoryStoreProvider()
	svc, err := NewSiteSettingsService(stores)
	require.NoError(t, err)

	got, err := svc.Get(ctx)
	require.NoError(t, err)
	assert.Nil(t, got, "nothing saved yet")

	first, err := svc.Update(ctx, map[string]any{"tagline": "Study abroad"})
	require.NoError(t, err)
	assert.Equal(t, models.SiteSettingsDefaultName, first.SiteName)
	assert.Equal(t, "Study abroad", first.Tagline)
	assert.False(t, first.ID.IsZero())

	second, err := svc.Update(ctx, map[string]any{"siteName": "FullSco", "showHeroSection": true})
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID, "the same document is updated")
	assert.Equal(t, "FullSco", second.SiteName)
	assert.Equal(t, "Study abroad", second.Tagline)
	assert.True(t, second.ShowHeroSection)
	assert.Equal(t, first.CreatedAt, second.CreatedAt)

	third, err := svc.Update(ctx, map[string]any{"siteName": ""})
	require.NoError(t, err)
	assert.Equal(t, "FullSco", third.SiteName, "a blank name is ignored")

	count, err := svc.store.CountDocuments(ctx, nil)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	got, err = svc.Get(ctx)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, first.ID, got.ID)
}

func TestSeoSettingsUpsertByPath(t *testing.T) {
	ctx := context.Background()
	svc, err := NewSeoSettingsService(basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)

	_, err = svc.GetByPath(ctx, "/about")
	assert.ErrorIs(t, err, common.ErrNotFound)

	created, err := svc.UpsertByPath(ctx, "/about", map[string]any{"metaTitle": "About"})
	require.NoError(t, err)
	assert.Equal(t, "/about", created.PagePath)
	assert.Equal(t, "About", created.MetaTitle)

	updated, err := svc.UpsertByPath(ctx, "/about", map[string]any{"keywords": "scholarships", "pagePath": "/elsewhere"})
	require.NoError(t, err)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, "/about", updated.PagePath, "the path in the body cannot move the record")
	assert.Equal(t, "About", updated.MetaTitle)
	assert.Equal(t, "scholarships", updated.Keywords)

	got, err := svc.GetByPath(ctx, "/about")
	require.NoError(t, err)
	assert.Equal(t, created.ID, got.ID)

	_, err = svc.Create(ctx, models.SeoSettings{PagePath: "/about"})
	assert.ErrorIs(t, err, common.ErrDuplicate)
}
