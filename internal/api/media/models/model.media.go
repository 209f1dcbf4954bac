package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// MediaFile describes an uploaded file served under /uploads
type MediaFile struct {
	ID         primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Filename   string             `json:"filename" bson:"filename"`
	URL        string             `json:"url" bson:"url"`
	Type       string             `json:"type" bson:"type" index:"single:1"` // mime type
	Size       int64              `json:"size" bson:"size"`                  // bytes
	AltText    string             `json:"altText,omitempty" bson:"altText,omitempty"`
	Title      string             `json:"title,omitempty" bson:"title,omitempty"`
	UploadedBy string             `json:"uploadedBy,omitempty" bson:"uploadedBy,omitempty"`
	IsActive   bool               `json:"isActive" bson:"isActive"`
	CreatedAt  int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt  int64              `json:"updatedAt" bson:"updatedAt"`
}
