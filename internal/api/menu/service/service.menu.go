// Package menusvc implements menus, their items and the item tree.
package menusvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo/options"

	basesvc "fullsco_api/internal/api/base/service"
	"fullsco_api/internal/api/menu/models"
	"fullsco_api/internal/common"
	"fullsco_api/internal/global"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/utility"
)

var itemOrder = bson.D{{Key: "order", Value: 1}}

// MenuService manages menus
type MenuService struct {
	*basesvc.CrudService[models.Menu]
	items basesvc.BaseServiceMongo[models.MenuItem]
}

// NewMenuService opens menus and menu items. Deleting a menu deletes its items.
func NewMenuService(stores *basesvc.StoreProvider) (*MenuService, error) {
	store, err := basesvc.Open[models.Menu](stores, global.MongoDB_ColNames.Menus)
	if err != nil {
		return nil, fmt.Errorf("open menus: %w", err)
	}
	items, err := basesvc.Open[models.MenuItem](stores, global.MongoDB_ColNames.MenuItems)
	if err != nil {
		return nil, fmt.Errorf("open menu items: %w", err)
	}

	s := &MenuService{items: items}
	s.CrudService = basesvc.NewCrudService(store, basesvc.CrudConfig[models.Menu]{
		Resource:    "Menu",
		UniqueField: "slug",
		SlugField:   "slug",
		SlugSource:  "title",
		DefaultSort: bson.D{{Key: "createdAt", Value: -1}},
		Filters: map[string]basesvc.FilterKind{
			"isActive": basesvc.FilterBool,
			"location": basesvc.FilterExact,
		},
		BeforeDelete: s.deleteItems,
	})
	return s, nil
}

// deleteItems removes every item of menu. It runs before the menu itself is deleted, so a
// failure here leaves the menu in place.
func (s *MenuService) deleteItems(ctx context.Context, menu models.Menu) error {
	n, err := s.items.DeleteMany(ctx, bson.M{"menuId": menu.ID.Hex()})
	if err != nil {
		return err
	}
	logger.WithCollection(global.MongoDB_ColNames.MenuItems).WithFields(map[string]any{
		"menu_id": menu.ID.Hex(),
		"deleted": n,
	}).Debug("Deleted menu items")
	return nil
}

// GetByLocation returns the first menu placed at location
func (s *MenuService) GetByLocation(ctx context.Context, location string) (models.Menu, error) {
	menu, err := s.Store().FindOne(ctx, bson.M{"location": location}, options.FindOne().SetSort(bson.D{{Key: "createdAt", Value: 1}}))
	if err != nil {
		if common.IsNotFound(err) {
			return menu, common.NewNotFoundError("Menu")
		}
		return menu, err
	}
	return menu, nil
}

// Items returns the items of a menu by order. With filterParent set, only the children of
// parentID are returned, the root items when parentID is nil.
func (s *MenuService) Items(ctx context.Context, menuID string, filterParent bool, parentID *string) ([]models.MenuItem, error) {
	if _, err := s.GetById(ctx, menuID); err != nil {
		return nil, err
	}
	filter := bson.M{"menuId": menuID}
	if filterParent {
		if parentID == nil {
			filter["parentId"] = nil
		} else {
			filter["parentId"] = *parentID
		}
	}
	return s.items.Find(ctx, filter, options.Find().SetSort(itemOrder))
}

// Tree returns the item tree of a menu
func (s *MenuService) Tree(ctx context.Context, menuID string) ([]models.MenuItemNode, error) {
	items, err := s.Items(ctx, menuID, false, nil)
	if err != nil {
		return nil, err
	}
	return BuildTree(items, nil), nil
}

// Structure returns the menu at location with its item tree
func (s *MenuService) Structure(ctx context.Context, location string) (*models.MenuStructure, error) {
	menu, err := s.GetByLocation(ctx, location)
	if err != nil {
		return nil, err
	}
	tree, err := s.Tree(ctx, menu.ID.Hex())
	if err != nil {
		return nil, err
	}
	return &models.MenuStructure{Menu: menu, Items: tree}, nil
}

// MenuItemService manages menu items and keeps their parent links a tree within one menu
type MenuItemService struct {
	*basesvc.CrudService[models.MenuItem]
	menus basesvc.BaseServiceMongo[models.Menu]
}

// NewMenuItemService opens menu items and menus
func NewMenuItemService(stores *basesvc.StoreProvider) (*MenuItemService, error) {
	store, err := basesvc.Open[models.MenuItem](stores, global.MongoDB_ColNames.MenuItems)
	if err != nil {
		return nil, fmt.Errorf("open menu items: %w", err)
	}
	menus, err := basesvc.Open[models.Menu](stores, global.MongoDB_ColNames.Menus)
	if err != nil {
		return nil, fmt.Errorf("open menus: %w", err)
	}

	s := &MenuItemService{menus: menus}
	s.CrudService = basesvc.NewCrudService(store, basesvc.CrudConfig[models.MenuItem]{
		Resource:    "Menu item",
		DefaultSort: itemOrder,
		Filters: map[string]basesvc.FilterKind{
			"menuId":   basesvc.FilterExact,
			"isActive": basesvc.FilterBool,
		},
		BeforeCreate: s.beforeCreate,
		BeforeUpdate: s.beforeUpdate,
	})
	return s, nil
}

func (s *MenuItemService) beforeCreate(ctx context.Context, item *models.MenuItem) error {
	if item.ParentID != nil && *item.ParentID == "" {
		item.ParentID = nil
	}
	if err := s.checkMenu(ctx, item.MenuID); err != nil {
		return err
	}
	return s.checkParent(ctx, "", item.MenuID, item.ParentID)
}

// beforeUpdate keeps parent and child in the same menu. An item with children cannot change
// menu, and an item moving alone must leave its parent or get one in the new menu.
func (s *MenuItemService) beforeUpdate(ctx context.Context, existing models.MenuItem, patch map[string]any) error {
	menuID := existing.MenuID
	menuChanged := false
	if v, ok := patch["menuId"].(string); ok && v != existing.MenuID {
		if err := s.checkMenu(ctx, v); err != nil {
			return err
		}
		hasChildren, err := s.Store().DocumentExists(ctx, bson.M{"parentId": existing.ID.Hex()})
		if err != nil {
			return err
		}
		if hasChildren {
			return parentError("menuId", "no_children", "cannot change while the item has children")
		}
		menuID = v
		menuChanged = true
	}

	parentID := existing.ParentID
	raw, parentChanged := patch["parentId"]
	if parentChanged {
		parentID = nil
		if v, ok := raw.(string); ok && v != "" {
			parentID = &v
		} else {
			patch["parentId"] = nil
		}
	}

	if !menuChanged && !parentChanged {
		return nil
	}
	return s.checkParent(ctx, existing.ID.Hex(), menuID, parentID)
}

// checkMenu fails with 404 when the menu does not exist
func (s *MenuItemService) checkMenu(ctx context.Context, menuID string) error {
	oid, err := utility.ParseObjectID(menuID)
	if err != nil {
		return parentError("menuId", "exists", "must reference an existing menu")
	}
	if _, err := s.menus.FindOneById(ctx, oid); err != nil {
		if common.IsNotFound(err) {
			return common.NewNotFoundError("Menu")
		}
		return err
	}
	return nil
}

// checkParent verifies that parentID, when set, is an item of the same menu and that attaching
// selfID under it does not close a cycle. selfID is empty on create.
func (s *MenuItemService) checkParent(ctx context.Context, selfID string, menuID string, parentID *string) error {
	if parentID == nil {
		return nil
	}
	oid, err := utility.ParseObjectID(*parentID)
	if err != nil {
		return parentError("parentId", "exists", "must reference an existing menu item")
	}
	parent, err := s.Store().FindOneById(ctx, oid)
	if err != nil {
		if common.IsNotFound(err) {
			return parentError("parentId", "exists", "must reference an existing menu item")
		}
		return err
	}
	if parent.MenuID != menuID {
		return parentError("parentId", "same_menu", "must belong to the same menu")
	}

	if selfID == "" {
		return nil
	}

	// walk up from the new parent; meeting self again would make a cycle
	visited := map[string]bool{}
	current := parent
	for {
		id := current.ID.Hex()
		if id == selfID || visited[id] {
			return parentError("parentId", "acyclic", "must not be the item itself or one of its descendants")
		}
		visited[id] = true
		if current.ParentID == nil || *current.ParentID == "" {
			return nil
		}
		next, err := utility.ParseObjectID(*current.ParentID)
		if err != nil {
			return nil
		}
		current, err = s.Store().FindOneById(ctx, next)
		if err != nil {
			if common.IsNotFound(err) {
				return nil
			}
			return err
		}
	}
}

func parentError(field, tag, message string) error {
	return common.NewValidationError(common.MsgValidationError, common.FieldError{Field: field, Tag: tag, Message: message})
}
