package catalogsvc

import (
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/catalog/models"
	"fullsco_api/internal/global"
)

// CategoryService manages scholarship categories
type CategoryService struct {
	*basesvc.CrudService[models.Category]
}

// CountryService manages countries
type CountryService struct {
	*basesvc.CrudService[models.Country]
}

// LevelService manages academic levels
type LevelService struct {
	*basesvc.CrudService[models.Level]
}

// termConfig is shared by the three taxonomies: unique slug from the name,
// listed alphabetically
func termConfig[T any](resource string) basesvc.CrudConfig[T] {
	return basesvc.CrudConfig[T]{
		Resource:    resource,
		UniqueField: "slug",
		SlugField:   "slug",
		SlugSource:  "name",
		DefaultSort: bson.D{{Key: "name", Value: 1}},
	}
}

// NewCategoryService opens the categories collection
func NewCategoryService(stores *basesvc.StoreProvider) (*CategoryService, error) {
	store, err := basesvc.Open[models.Category](stores, global.MongoDB_ColNames.Categories)
	if err != nil {
		return nil, fmt.Errorf("open categories: %w", err)
	}
	return &CategoryService{
		CrudService: basesvc.NewCrudService(store, termConfig[models.Category]("Category")),
	}, nil
}

// NewCountryService opens the countries collection
func NewCountryService(stores *basesvc.StoreProvider) (*CountryService, error) {
	store, err := basesvc.Open[models.Country](stores, global.MongoDB_ColNames.Countries)
	if err != nil {
		return nil, fmt.Errorf("open countries: %w", err)
	}
	return &CountryService{
		CrudService: basesvc.NewCrudService(store, termConfig[models.Country]("Country")),
	}, nil
}

// NewLevelService opens the levels collection
func NewLevelService(stores *basesvc.StoreProvider) (*LevelService, error) {
	store, err := basesvc.Open[models.Level](stores, global.MongoDB_ColNames.Levels)
	if err != nil {
		return nil, fmt.Errorf("open levels: %w", err)
	}
	return &LevelService{
		CrudService: basesvc.NewCrudService(store, termConfig[models.Level]("Level")),
	}, nil
}
