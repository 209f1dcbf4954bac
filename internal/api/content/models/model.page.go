package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Page is a static site page (about, privacy, ...)
type Page struct {
	ID              primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Title           string             `json:"title" bson:"title"`
	Slug            string             `json:"slug" bson:"slug" index:"unique"`
	Content         string             `json:"content" bson:"content"`
	Excerpt         string             `json:"excerpt,omitempty" bson:"excerpt,omitempty"`
	MetaTitle       string             `json:"metaTitle,omitempty" bson:"metaTitle,omitempty"`
	MetaDescription string             `json:"metaDescription,omitempty" bson:"metaDescription,omitempty"`
	MetaKeywords    string             `json:"metaKeywords,omitempty" bson:"metaKeywords,omitempty"`
	IsPublished     bool               `json:"isPublished" bson:"isPublished" index:"single:1"`
	CreatedAt       int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt       int64              `json:"updatedAt" bson:"updatedAt"`
}
