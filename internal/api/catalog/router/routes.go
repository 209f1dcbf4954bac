// Package router registers the catalog routes: scholarships, categories, countries, levels.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	cataloghdl "fullsco_api/internal/api/catalog/handler"
	catalogsvc "fullsco_api/internal/api/catalog/service"
	apirouter "fullsco_api/internal/api/router"
	"fullsco_api/internal/global"
)

// Register mounts the catalog routes on v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	scholarshipService, err := catalogsvc.NewScholarshipService(r.Stores())
	if err != nil {
		return fmt.Errorf("create scholarship service: %w", err)
	}
	scholarshipHandler := cataloghdl.NewScholarshipHandler(r.NewBaseHandler("catalog", global.MongoDB_ColNames.Scholarships), scholarshipService)
	apirouter.RegisterRouteWithMiddleware(v1, "/scholarships", fiber.MethodGet, "/featured", nil, scholarshipHandler.Featured)
	apirouter.RegisterRouteWithMiddleware(v1, "/scholarships", fiber.MethodPost, "/:id/views", nil, scholarshipHandler.IncrementViews)
	r.RegisterCRUDRoutes(v1, "/scholarships", scholarshipHandler, apirouter.SlugConfig)

	categoryService, err := catalogsvc.NewCategoryService(r.Stores())
	if err != nil {
		return fmt.Errorf("create category service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/categories", cataloghdl.NewCategoryHandler(r.NewBaseHandler("catalog", global.MongoDB_ColNames.Categories), categoryService), apirouter.SlugConfig)

	countryService, err := catalogsvc.NewCountryService(r.Stores())
	if err != nil {
		return fmt.Errorf("create country service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/countries", cataloghdl.NewCountryHandler(r.NewBaseHandler("catalog", global.MongoDB_ColNames.Countries), countryService), apirouter.SlugConfig)

	levelService, err := catalogsvc.NewLevelService(r.Stores())
	if err != nil {
		return fmt.Errorf("create level service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/levels", cataloghdl.NewLevelHandler(r.NewBaseHandler("catalog", global.MongoDB_ColNames.Levels), levelService), apirouter.SlugConfig)

	return nil
}
