// Package router registers /menus and /menu-items.
package router

import (
	"fmt"

	"github.com/gofiber/fiber/v3"

	menuhdl "fullsco_api/internal/api/menu/handler"
	menusvc "fullsco_api/internal/api/menu/service"
	apirouter "fullsco_api/internal/api/router"
	"fullsco_api/internal/global"
)

// Register mounts the menu routes on v1
func Register(v1 fiber.Router, r *apirouter.Router) error {
	menuService, err := menusvc.NewMenuService(r.Stores())
	if err != nil {
		return fmt.Errorf("create menu service: %w", err)
	}
	menuHandler := menuhdl.NewMenuHandler(r.NewBaseHandler("menu", global.MongoDB_ColNames.Menus), menuService)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", fiber.MethodGet, "/location/:location", nil, menuHandler.GetByLocation)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", fiber.MethodGet, "/location/:location/structure", nil, menuHandler.Structure)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", fiber.MethodGet, "/:id/items", nil, menuHandler.Items)
	apirouter.RegisterRouteWithMiddleware(v1, "/menus", fiber.MethodGet, "/:id/tree", nil, menuHandler.Tree)
	r.RegisterCRUDRoutes(v1, "/menus", menuHandler, apirouter.SlugConfig)

	itemService, err := menusvc.NewMenuItemService(r.Stores())
	if err != nil {
		return fmt.Errorf("create menu item service: %w", err)
	}
	r.RegisterCRUDRoutes(v1, "/menu-items", menuhdl.NewMenuItemHandler(r.NewBaseHandler("menu", global.MongoDB_ColNames.MenuItems), itemService), apirouter.ReadWriteConfig)

	return nil
}
