package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Partner is a sponsoring organisation shown on the home page
type Partner struct {
	ID          primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name        string             `json:"name" bson:"name"`
	LogoURL     string             `json:"logoUrl,omitempty" bson:"logoUrl,omitempty"`
	Website     string             `json:"website,omitempty" bson:"website,omitempty"`
	Description string             `json:"description,omitempty" bson:"description,omitempty"`
	IsActive    bool               `json:"isActive" bson:"isActive" index:"single:1"`
	CreatedAt   int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt   int64              `json:"updatedAt" bson:"updatedAt"`
}
