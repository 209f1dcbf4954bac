// Package catalogsvc implements scholarships and the taxonomies they are filed under.
package catalogsvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/catalog/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
	"fullsco_api/internal/utility"
)

// FeaturedLimit caps GET /scholarships/featured
const FeaturedLimit = 10

// ScholarshipService manages scholarships.
//
// countryId, levelId and categoryId are optional references: when present each
// must name an existing record of its taxonomy, otherwise the write fails with
// a validation error on that field. Lists filter on those ids and on the
// isFeatured, isPublished and isFullyFunded flags.
type ScholarshipService struct {
	*basesvc.CrudService[models.Scholarship]
}

// NewScholarshipService opens scholarships and the taxonomy collections its references point to
func NewScholarshipService(stores *basesvc.StoreProvider) (*ScholarshipService, error) {
	store, err := basesvc.Open[models.Scholarship](stores, global.MongoDB_ColNames.Scholarships)
	if err != nil {
		return nil, fmt.Errorf("open scholarships: %w", err)
	}
	countries, err := basesvc.Open[models.Country](stores, global.MongoDB_ColNames.Countries)
	if err != nil {
		return nil, fmt.Errorf("open countries: %w", err)
	}
	levels, err := basesvc.Open[models.Level](stores, global.MongoDB_ColNames.Levels)
	if err != nil {
		return nil, fmt.Errorf("open levels: %w", err)
	}
	categories, err := basesvc.Open[models.Category](stores, global.MongoDB_ColNames.Categories)
	if err != nil {
		return nil, fmt.Errorf("open categories: %w", err)
	}

	return &ScholarshipService{
		CrudService: basesvc.NewCrudService(store, basesvc.CrudConfig[models.Scholarship]{
			Resource:    "Scholarship",
			UniqueField: "slug",
			SlugField:   "slug",
			SlugSource:  "title",
			DefaultSort: bson.D{{Key: "createdAt", Value: -1}},
			Filters: map[string]basesvc.FilterKind{
				"isFeatured":    basesvc.FilterBool,
				"isPublished":   basesvc.FilterBool,
				"isFullyFunded": basesvc.FilterBool,
				"countryId":     basesvc.FilterExact,
				"levelId":       basesvc.FilterExact,
				"categoryId":    basesvc.FilterExact,
			},
			References: []basesvc.Reference{
				{Field: "countryId", Resource: "country", Target: countries, Optional: true},
				{Field: "levelId", Resource: "level", Target: levels, Optional: true},
				{Field: "categoryId", Resource: "category", Target: categories, Optional: true},
			},
		}),
	}, nil
}

// Featured returns at most FeaturedLimit scholarships that are both featured
// and published, newest first. Drafts never appear here even when featured.
func (s *ScholarshipService) Featured(ctx context.Context) ([]models.Scholarship, error) {
	opts := options.Find().
		SetSort(bson.D{{Key: "createdAt", Value: -1}}).
		SetLimit(FeaturedLimit)
	return s.Store().Find(ctx, bson.M{"isFeatured": true, "isPublished": true}, opts)
}

// IncrementViews adds one to the view counter and returns the updated record.
//
// The increment is a single $inc so concurrent views never lose a count.
// A malformed id yields an invalid id error, an unknown one a not found error.
func (s *ScholarshipService) IncrementViews(ctx context.Context, id string) (models.Scholarship, error) {
	var zero models.Scholarship
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return zero, err
	}
	updated, err := s.Store().UpdateById(ctx, oid, &basesvc.UpdateData{
		Inc: map[string]any{"views": 1},
	})
	if err != nil {
		if common.IsNotFound(err) {
			return zero, common.NewNotFoundError("Scholarship")
		}
		return zero, err
	}
	return updated, nil
}
