// Package menudto holds the request bodies of menus and menu items.
package menudto

// MenuCreateInput is the body of POST /menus. isActive defaults to true.
type MenuCreateInput struct {
	Title    string `json:"title" validate:"required,max=200,no_xss"`
	Slug     string `json:"slug,omitempty" validate:"omitempty,max=200,slug"`
	Location string `json:"location,omitempty" validate:"omitempty,max=100"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// MenuUpdateInput is the body of PUT/PATCH /menus/:id
type MenuUpdateInput struct {
	Title    *string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Slug     *string `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,max=200,slug"`
	Location *string `json:"location,omitempty" bson:"location,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// MenuItemCreateInput is the body of POST /menu-items. An empty parentId makes a root item.
type MenuItemCreateInput struct {
	MenuID   string `json:"menuId" validate:"required,mongodb"`
	ParentID string `json:"parentId,omitempty" validate:"omitempty,mongodb"`
	Label    string `json:"label" validate:"required,max=200,no_xss"`
	URL      string `json:"url" validate:"required,max=500,no_xss"`
	Order    int    `json:"order,omitempty" validate:"gte=0"`
	Icon     string `json:"icon,omitempty" validate:"omitempty,max=100"`
	IsActive *bool  `json:"isActive,omitempty"`
}

// MenuItemUpdateInput is the body of PUT/PATCH /menu-items/:id.
// parentId null or "" moves the item to the root.
type MenuItemUpdateInput struct {
	MenuID   *string `json:"menuId,omitempty" bson:"menuId,omitempty" validate:"omitempty,mongodb"`
	ParentID *string `json:"parentId,omitempty" bson:"parentId,omitempty" validate:"omitempty,mongodb_or_empty"`
	Label    *string `json:"label,omitempty" bson:"label,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	URL      *string `json:"url,omitempty" bson:"url,omitempty" validate:"omitempty,min=1,max=500,no_xss"`
	Order    *int    `json:"order,omitempty" bson:"order,omitempty" validate:"omitempty,gte=0"`
	Icon     *string `json:"icon,omitempty" bson:"icon,omitempty" validate:"omitempty,max=100"`
	IsActive *bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}
