// Package contentsvc implements pages, success stories, partners and statistics.
package contentsvc

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "fullsco_api/internal/api/base/service"
	catalogmodels "fullsco_api/internal/api/catalog/models"
	"fullsco_api/internal/api/content/models"
	"fullsco_api/internal/global"
)

// PageService manages static pages. The slug comes from the title when
// omitted and must be unique; lists can be filtered by isPublished.
type PageService struct {
	*basesvc.CrudService[models.Page]
}

// NewPageService opens the pages collection
func NewPageService(stores *basesvc.StoreProvider) (*PageService, error) {
	store, err := basesvc.Open[models.Page](stores, global.MongoDB_ColNames.Pages)
	if err != nil {
		return nil, fmt.Errorf("open pages: %w", err)
	}
	return &PageService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.Page]{
			Resource:    "Page",
			UniqueField: "slug",
			SlugField:   "slug",
			SlugSource:  "title",
			DefaultSort: bson.D{{Key: "createdAt", Value: -1}},
			Filters: map[string]basesvc.FilterKind{
				"isPublished": basesvc.FilterBool,
			},
		}),
	}, nil
}

// SuccessStoryService manages success stories.
//
// A story may point to a scholarship. The reference is optional but, when set,
// must name an existing scholarship or the write fails with a validation
// error on scholarshipId. Renaming a story regenerates its slug.
type SuccessStoryService struct {
	*basesvc.CrudService[models.SuccessStory]
}

// NewSuccessStoryService opens success stories and the scholarships they may point to
func NewSuccessStoryService(stores *basesvc.StoreProvider) (*SuccessStoryService, error) {
	store, err := basesvc.Open[models.SuccessStory](stores, global.MongoDB_ColNames.SuccessStories)
	if err != nil {
		return nil, fmt.Errorf("open success stories: %w", err)
	}
	scholarships, err := basesvc.Open[catalogmodels.Scholarship](stores, global.MongoDB_ColNames.Scholarships)
	if err != nil {
		return nil, fmt.Errorf("open scholarships: %w", err)
	}
	return &SuccessStoryService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.SuccessStory]{
			Resource:       "Success story",
			UniqueField:    "slug",
			SlugField:      "slug",
			SlugSource:     "title",
			RegenerateSlug: true,
			DefaultSort:    bson.D{{Key: "createdAt", Value: -1}},
			Filters: map[string]basesvc.FilterKind{
				"isPublished": basesvc.FilterBool,
			},
			References: []basesvc.Reference{
				{Field: "scholarshipId", Resource: "scholarship", Target: scholarships, Optional: true},
			},
		}),
	}, nil
}

// PartnerService manages partners, newest first, filterable by isActive.
type PartnerService struct {
	*basesvc.CrudService[models.Partner]
}

// NewPartnerService opens the partners collection
func NewPartnerService(stores *basesvc.StoreProvider) (*PartnerService, error) {
	store, err := basesvc.Open[models.Partner](stores, global.MongoDB_ColNames.Partners)
	if err != nil {
		return nil, fmt.Errorf("open partners: %w", err)
	}
	return &PartnerService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.Partner]{
			Resource:    "Partner",
			DefaultSort: bson.D{{Key: "createdAt", Value: -1}},
			Filters: map[string]basesvc.FilterKind{
				"isActive": basesvc.FilterBool,
			},
		}),
	}, nil
}
