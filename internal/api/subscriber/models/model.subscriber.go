package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Subscriber is a newsletter address, stored trimmed and lowercased
type Subscriber struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Email     string             `json:"email" bson:"email" index:"unique"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}
