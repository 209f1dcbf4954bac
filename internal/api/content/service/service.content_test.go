package contentsvc

import (
	"context"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	basesvc "fullsco_api/internal/api/base/service"
	catalogmodels "fullsco_api/internal/api/catalog/models"
	catalogsvc "fullsco_api/internal/api/catalog/service"
	"fullsco_api/internal/api/content/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
)

func TestMain(m *testing.M) {
	_ = logger.Init(&logger.LogConfig{Level: "error", Format: "text", Output: "stdout"})
	code := m.Run()
	logger.Close()
	os.Exit(code)
}

func TestSuccessStorySlug(t *testing.T) {
	ctx := context.Background()
	svc, err := NewSuccessStoryService(basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)

	story, err := svc.Create(ctx, models.SuccessStory{Name: "Sara", Title: "From Cairo to Berlin", Content: "..."})
	require.NoError(t, err)
	assert.Equal(t, "from-cairo-to-berlin", story.Slug)

	updated, err := svc.Update(ctx, story.ID.Hex(), map[string]any{"title": "من القاهرة إلى برلين"})
	require.NoError(t, err)
	assert.Equal(t, "من-القاهرة-إلى-برلين", updated.Slug)
	assert.Equal(t, "Sara", updated.Name)

	_, err = svc.Create(ctx, models.SuccessStory{Name: "Other", Title: "From Cairo to Berlin", Content: "..."})
	require.NoError(t, err, "the first story no longer holds the old slug")

	_, err = svc.Create(ctx, models.SuccessStory{Name: "Dup", Title: "From  Cairo to Berlin!", Content: "..."})
	assert.ErrorIs(t, err, common.ErrDuplicate)
}

func TestSuccessStoryScholarshipReference(t *testing.T) {
	ctx := context.Background()
	stores := basesvc.NewMemoryStoreProvider()
	svc, err := NewSuccessStoryService(stores)
	require.NoError(t, err)
	scholarships, err := catalogsvc.NewScholarshipService(stores)
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.SuccessStory{Name: "A", Title: "A", Content: "x", ScholarshipID: "64b7f0c2a1b2c3d4e5f60718"})
	require.Error(t, err)
	fields := common.FieldErrors(err)
	require.Len(t, fields, 1)
	assert.Equal(t, "scholarshipId", fields[0].Field)

	sch, err := scholarships.Create(ctx, catalogmodels.Scholarship{Title: "Chevening"})
	require.NoError(t, err)
	story, err := svc.Create(ctx, models.SuccessStory{Name: "A", Title: "A", Content: "x", ScholarshipID: sch.ID.Hex()})
	require.NoError(t, err)
	assert.Equal(t, sch.ID.Hex(), story.ScholarshipID)
}

func TestStatisticGetByType(t *testing.T) {
	ctx := context.Background()
	svc, err := NewStatisticService(basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.Statistic{Type: "students", Data: map[string]any{"value": int64(900)}, Order: 2})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Statistic{Type: "scholarships", Data: map[string]any{"value": int64(1500)}, Order: 1})
	require.NoError(t, err)

	all, err := svc.List(ctx, nil)
	require.NoError(t, err)
	require.Len(t, all, 2)
	assert.Equal(t, "scholarships", all[0].Type, "ordered by order asc")

	stat, err := svc.GetByType(ctx, "students")
	require.NoError(t, err)
	assert.Equal(t, 2, stat.Order)

	_, err = svc.GetByType(ctx, "missing")
	assert.ErrorIs(t, err, common.ErrNotFound)
}

func TestPartnerActiveFilter(t *testing.T) {
	ctx := context.Background()
	svc, err := NewPartnerService(basesvc.NewMemoryStoreProvider())
	require.NoError(t, err)

	_, err = svc.Create(ctx, models.Partner{Name: "DAAD", IsActive: true})
	require.NoError(t, err)
	_, err = svc.Create(ctx, models.Partner{Name: "Retired"})
	require.NoError(t, err)

	active, err := svc.List(ctx, map[string]string{"isActive": "true"})
	require.NoError(t, err)
	require.Len(t, active, 1)
	assert.Equal(t, "DAAD", active[0].Name)
}
