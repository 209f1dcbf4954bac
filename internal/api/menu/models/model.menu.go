package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Menu is a named navigation menu shown at a site location (header, footer, ...)
type Menu struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title     string             `json:"title" bson:"title"`
	Slug      string             `json:"slug" bson:"slug" index:"unique"`
	Location  string             `json:"location,omitempty" bson:"location,omitempty" index:"single:1"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// MenuItem is one link of a menu. Items form a tree through ParentID; nil means a root item.
type MenuItem struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	MenuID    string             `json:"menuId" bson:"menuId" index:"compound:menu_order"`
	ParentID  *string            `json:"parentId" bson:"parentId,omitempty" index:"single:1"`
	Label     string             `json:"label" bson:"label"`
	URL       string             `json:"url" bson:"url"`
	Order     int                `json:"order" bson:"order" index:"compound:menu_order"`
	Icon      string             `json:"icon,omitempty" bson:"icon,omitempty"`
	IsActive  bool               `json:"isActive" bson:"isActive"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// MenuItemNode is an item with its subtree
type MenuItemNode struct {
	MenuItem
	Children []MenuItemNode `json:"children"`
}

// MenuStructure is a menu with its item tree
type MenuStructure struct {
	Menu  Menu           `json:"menu"`
	Items []MenuItemNode `json:"items"`
}
