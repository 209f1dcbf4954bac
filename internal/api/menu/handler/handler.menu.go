// Package menuhdl serves menus and menu items.
package menuhdl

import (
	"github.com/gofiber/fiber/v3"

	basehdl "fullsco_api/internal/api/base/handler"
	menudto "fullsco_api/internal/api/menu/dto"
	"fullsco_api/internal/api/menu/models"
	menusvc "fullsco_api/internal/api/menu/service"
)

// MenuHandler serves /menus
type MenuHandler struct {
	*basehdl.CrudHandler[models.Menu, menudto.MenuCreateInput, menudto.MenuUpdateInput]
	MenuService *menusvc.MenuService
}

// NewMenuHandler builds the handler on service
func NewMenuHandler(base *basehdl.BaseHandler, service *menusvc.MenuService) *MenuHandler {
	hdl := &MenuHandler{
		MenuService: service,
	}
	hdl.CrudHandler = basehdl.NewCrudHandler[models.Menu, menudto.MenuCreateInput, menudto.MenuUpdateInput](base, service.CrudService,
		func(in *menudto.MenuCreateInput) models.Menu {
			return models.Menu{
				Title:    in.Title,
				Slug:     in.Slug,
				Location: in.Location,
				IsActive: in.IsActive == nil || *in.IsActive,
			}
		})
	return hdl
}

// GetByLocation serves GET /menus/location/:location
func (h *MenuHandler) GetByLocation(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.MenuService.GetByLocation(ctx, c.Params("location"))
		return h.HandleResponse(c, data, err)
	})
}

// Items serves GET /menus/:id/items. ?parentId=<id> narrows to the children of an item,
// ?parentId=null to the root items.
func (h *MenuHandler) Items(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		raw, filterParent := c.Queries()["parentId"]
		var parentID *string
		if filterParent && raw != "" && raw != "null" {
			parentID = &raw
		}

		data, err := h.MenuService.Items(ctx, c.Params("id"), filterParent, parentID)
		return h.HandleResponse(c, data, err)
	})
}

// Tree serves GET /menus/:id/tree
func (h *MenuHandler) Tree(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.MenuService.Tree(ctx, c.Params("id"))
		return h.HandleResponse(c, data, err)
	})
}

// Structure serves GET /menus/location/:location/structure
func (h *MenuHandler) Structure(c fiber.Ctx) error {
	return h.SafeHandler(c, func() error {
		ctx, cancel := h.Context(c)
		defer cancel()

		data, err := h.MenuService.Structure(ctx, c.Params("location"))
		return h.HandleResponse(c, data, err)
	})
}

// NewMenuItemHandler serves /menu-items. A null or empty parentId moves the item to the root.
func NewMenuItemHandler(base *basehdl.BaseHandler, service *menusvc.MenuItemService) *basehdl.CrudHandler[models.MenuItem, menudto.MenuItemCreateInput, menudto.MenuItemUpdateInput] {
	hdl := basehdl.NewCrudHandler[models.MenuItem, menudto.MenuItemCreateInput, menudto.MenuItemUpdateInput](base, service.CrudService,
		func(in *menudto.MenuItemCreateInput) models.MenuItem {
			item := models.MenuItem{
				MenuID:   in.MenuID,
				Label:    in.Label,
				URL:      in.URL,
				Order:    in.Order,
				Icon:     in.Icon,
				IsActive: in.IsActive == nil || *in.IsActive,
			}
			if in.ParentID != "" {
				parent := in.ParentID
				item.ParentID = &parent
			}
			return item
		})
	hdl.Clearable = []string{"parentId"}
	return hdl
}
