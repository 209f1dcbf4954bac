package menusvc

import (
	"fullsco_api/internal/api/menu/models"
)

// BuildTree nests items under their parents starting from parentID (nil for the root items).
// Sibling order follows the input order. Items whose parent is not reachable from the starting
// level, orphans and cycles included, are left out.
func BuildTree(items []models.MenuItem, parentID *string) []models.MenuItemNode {
	children := make(map[string][]models.MenuItem, len(items))
	for _, item := range items {
		key := parentKey(item.ParentID)
		children[key] = append(children[key], item)
	}

	visited := make(map[string]bool, len(items))
	var build func(key string) []models.MenuItemNode
	build = func(key string) []models.MenuItemNode {
		level := children[key]
		nodes := make([]models.MenuItemNode, 0, len(level))
		for _, item := range level {
			id := item.ID.Hex()
			if visited[id] {
				continue
			}
			visited[id] = true
			nodes = append(nodes, models.MenuItemNode{
				MenuItem: item,
				Children: build(id),
			})
		}
		return nodes
	}
	return build(parentKey(parentID))
}

// parentKey maps nil and "" to the root key ""
func parentKey(parentID *string) string {
	if parentID == nil {
		return ""
	}
	return *parentID
}
