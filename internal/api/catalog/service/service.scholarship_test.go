package catalogsvc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/catalog/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func newServices(t *testing.T) (*ScholarshipService, *CountryService) {
	t.Helper()
	stores := basesvc.NewMemoryStoreProvider()
	scholarships, err := NewScholarshipService(stores)
	require.NoError(t, err)
	countries, err := NewCountryService(stores)
	require.NoError(t, err)
	return scholarships, countries
}

func TestScholarshipRejectsDanglingReference(t *testing.T) {
	ctx := context.Background()
	scholarships, countries := newServices(t)

	_, err := scholarships.Create(ctx, models.Scholarship{Title: "Erasmus", CountryID: "64b7f0c2a1b2c3d4e5f60718"})
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrInvalidInput)
	fields := common.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "countryId", fields[0].Field)

	germany, err := countries.Create(ctx, models.Country{Name: "Germany"})
	require.NoError(t, err)
	assert.Equal(t, "germany", germany.Slug)

	created, err := scholarships.Create(ctx, models.Scholarship{Title: "Erasmus", CountryID: germany.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, "erasmus", created.Slug)

	_, err = scholarships.Update(ctx, created.ID.Hex(), map[string]any{"countryId": "64b7f0c2a1b2c3d4e5f60718"})
	assert.ErrorIs(t, err, common.ErrInvalidInput)
}

func TestScholarshipIncrementViews(t *testing.T) {
	ctx := context.Background()
	scholarships, _ := newServices(t)

	created, err := scholarships.Create(ctx, models.Scholarship{Title: "Chevening"})
	require.NoError(t, err)
	assert.Zero(t, created.Views)

	for i := 0; i < 3; i++ {
		_, err = scholarships.IncrementViews(ctx, created.ID.Hex())
		require.NoError(t, err)
	}
	got, err := scholarships.GetById(ctx, created.ID.Hex())
	require.NoError(t, err)
	assert.Equal(t, int64(3), got.Views)
	assert.Equal(t, "Chevening", got.Title)

	_, err = scholarships.IncrementViews(ctx, "64b7f0c2a1b2c3d4e5f60718")
	assert.ErrorIs(t, err, common.ErrNotFound)

	_, err = scholarships.IncrementViews(ctx, "bad")
	assert.ErrorIs(t, err, common.ErrInvalidID)
}

func TestScholarshipFeatured(t *testing.T) {
	ctx := context.Background()
	scholarships, _ := newServices(t)

	for _, s := range []models.Scholarship{
		{Title: "Featured published", IsFeatured: true, IsPublished: true},
		{Title: "Featured draft", IsFeatured: true},
		{Title: "Plain published", IsPublished: true},
	} {
		_, err := scholarships.Create(ctx, s)
		require.NoError(t, err)
	}

	featured, err := scholarships.Featured(ctx)
	require.NoError(t, err)
	require.Len(t, featured, 1)
	assert.Equal(t, "Featured published", featured[0].Title)

	published, err := scholarships.List(ctx, map[string]string{"isPublished": "true"})
	require.NoError(t, err)
	assert.Len(t, published, 2)
}
