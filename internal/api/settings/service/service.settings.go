// Package settingssvc implements the site settings singleton and per-path SEO settings.
package settingssvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/settings/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
)

// SiteSettingsService reads and writes the single site settings document
type SiteSettingsService struct {
	store basesvc.BaseServiceMongo[models.SiteSettings]
}

// NewSiteSettingsService opens the site settings collection
func NewSiteSettingsService(stores *basesvc.StoreProvider) (*SiteSettingsService, error) {
	store, err := basesvc.Open[models.SiteSettings](stores, global.MongoDB_ColNames.SiteSettings)
	if err != nil {
		return nil, fmt.Errorf("open site settings: %w", err)
	}
	return &SiteSettingsService{store: store}, nil
}

// Get returns the settings, or nil when they were never saved
func (s *SiteSettingsService) Get(ctx context.Context) (*models.SiteSettings, error) {
	settings, err := s.store.FindOne(ctx, bson.M{}, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		if common.IsNotFound(err) {
			return nil, nil
		}
		return nil, err
	}
	return &settings, nil
}

// Update merges patch into the settings, creating them on first use.
// An empty siteName is ignored so the stored name never becomes blank.
func (s *SiteSettingsService) Update(ctx context.Context, patch map[string]any) (models.SiteSettings, error) {
	for _, key := range []string{"_id", "createdAt", "updatedAt"} {
		delete(patch, key)
	}
	if name, ok := patch["siteName"].(string); ok && name == "" {
		delete(patch, "siteName")
	}
	return s.store.Upsert(ctx, bson.M{}, &basesvc.UpdateData{Set: patch})
}

// SeoSettingsService manages SEO settings, unique by page path
type SeoSettingsService struct {
	*basesvc.CrudService[models.SeoSettings]
}

// NewSeoSettingsService opens the SEO settings collection
func NewSeoSettingsService(stores *basesvc.StoreProvider) (*SeoSettingsService, error) {
	store, err := basesvc.Open[models.SeoSettings](stores, global.MongoDB_ColNames.SeoSettings)
	if err != nil {
		return nil, fmt.Errorf("open seo settings: %w", err)
	}
	return &SeoSettingsService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.SeoSettings]{
			Resource:    "SEO settings",
			UniqueField: "pagePath",
			DefaultSort: bson.D{{Key: "pagePath", Value: 1}},
		}),
	}, nil
}

// GetByPath returns the settings of one page path
func (s *SeoSettingsService) GetByPath(ctx context.Context, pagePath string) (models.SeoSettings, error) {
	settings, err := s.Store().FindOne(ctx, bson.M{"pagePath": pagePath}, nil)
	if err != nil {
		if common.IsNotFound(err) {
			return settings, common.NewNotFoundError("SEO settings")
		}
		return settings, err
	}
	return settings, nil
}

// UpsertByPath creates or updates the settings of pagePath with the present fields of patch
func (s *SeoSettingsService) UpsertByPath(ctx context.Context, pagePath string, patch map[string]any) (models.SeoSettings, error) {
	for _, key := range []string{"_id", "pagePath", "createdAt", "updatedAt"} {
		delete(patch, key)
	}
	return s.Store().Upsert(ctx, bson.M{"pagePath": pagePath}, &basesvc.UpdateData{Set: patch})
}
