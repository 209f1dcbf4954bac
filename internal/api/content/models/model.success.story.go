package models

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// SuccessStory is a testimonial from a former scholarship holder
type SuccessStory struct {
	ID      primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Name    string             `json:"name" bson:"name"`
	Title   string             `json:"title" bson:"title"`
	Slug    string             `json:"slug" bson:"slug" index:"unique"` // derived from title when omitted
	Content string             `json:"content" bson:"content"`

	// ===== STUDENT =====
	StudentName    string `json:"studentName,omitempty" bson:"studentName,omitempty"`
	University     string `json:"university,omitempty" bson:"university,omitempty"`
	Country        string `json:"country,omitempty" bson:"country,omitempty"`
	Degree         string `json:"degree,omitempty" bson:"degree,omitempty"`
	GraduationYear string `json:"graduationYear,omitempty" bson:"graduationYear,omitempty"`

	// ===== SCHOLARSHIP ===== scholarshipId is a hex id, checked on write
	ScholarshipName string `json:"scholarshipName,omitempty" bson:"scholarshipName,omitempty"`
	ScholarshipID   string `json:"scholarshipId,omitempty" bson:"scholarshipId,omitempty" index:"single:1"`

	ThumbnailURL string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty"`
	ImageURL     string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	IsPublished  bool   `json:"isPublished" bson:"isPublished" index:"single:1"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
