// Package router registers the content routes: pages, success stories, partners, statistics.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	contenthdl "fullsco_api/internal/api/content/handler"
	contentsvc "fullsco_api/internal/api/content/service"
	apirouter "fullsco_api/internal/api/router"
	"fullsco_api/internal/global"
)

// Register mounts the content routes on v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	pageService, err := contentsvc.NewPageService(r.Stores())
	if err != nil {
		return fmt.Errorf("create page service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/pages", contenthdl.NewPageHandler(r.NewBaseHandler("content", global.MongoDB_ColNames.Pages), pageService), apirouter.SlugConfig)

	storyService, err := contentsvc.NewSuccessStoryService(r.Stores())
	if err != nil {
		return fmt.Errorf("create success story service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/success-stories", contenthdl.NewSuccessStoryHandler(r.NewBaseHandler("content", global.MongoDB_ColNames.SuccessStories), storyService), apirouter.SlugConfig)

	partnerService, err := contentsvc.NewPartnerService(r.Stores())
	if err != nil {
		return fmt.Errorf("create partner service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/partners", contenthdl.NewPartnerHandler(r.NewBaseHandler("content", global.MongoDB_ColNames.Partners), partnerService), apirouter.ReadWriteConfig)

	statisticService, err := contentsvc.NewStatisticService(r.Stores())
	if err != nil {
		return fmt.Errorf("create statistic service: %w", err)
	}
	statisticHandler := contenthdl.NewStatisticHandler(r.NewBaseHandler("content", global.MongoDB_ColNames.Statistics), statisticService)
	apirouter.RegisterRouteWithMiddleware(v1, "/statistics", fiber.MethodGet, "/type/:type", nil, statisticHandler.GetByType)
	r.RegisterCRUDRoutes(v1, "/statistics", statisticHandler, apirouter.ReadWriteConfig)

	return nil
}
