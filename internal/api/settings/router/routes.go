// Package router registers /site-settings and /seo-settings.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	apirouter "fullsco_api/internal/api/router"
	settingshdl "fullsco_api/internal/api/settings/handler"
	settingssvc "fullsco_api/internal/api/settings/service"
	"fullsco_api/internal/global"
)

// Register mounts the settings routes on v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	siteService, err := settingssvc.NewSiteSettingsService(r.Stores())
	if err != nil {
		return fmt.Errorf("create site settings service: %w", err)
	}
	siteHandler := settingshdl.NewSiteSettingsHandler(r.NewBaseHandler("settings", global.MongoDB_ColNames.SiteSettings), siteService)
	apirouter.RegisterRouteWithMiddleware(v1, "/site-settings", fiber.MethodGet, "/", nil, siteHandler.Get)
	apirouter.RegisterRouteWithMiddleware(v1, "/site-settings", fiber.MethodPut, "/", nil, siteHandler.Update)

	seoService, err := settingssvc.NewSeoSettingsService(r.Stores())
	if err != nil {
		return fmt.Errorf("create seo settings service: %w", err)
	}
	seoHandler := settingshdl.NewSeoSettingsHandler(r.NewBaseHandler("settings", global.MongoDB_ColNames.SeoSettings), seoService)
	apirouter.RegisterRouteWithMiddleware(v1, "/seo-settings", fiber.MethodGet, "/path", nil, seoHandler.GetByPath)
	apirouter.RegisterRouteWithMiddleware(v1, "/seo-settings", fiber.MethodPut, "/path", nil, seoHandler.UpsertByPath)
	r.RegisterCRUDRoutes(v1, "/seo-settings", seoHandler, apirouter.ReadWriteConfig)

	return nil
}
