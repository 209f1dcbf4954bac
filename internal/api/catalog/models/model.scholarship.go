package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Scholarship is a published funding opportunity
type Scholarship struct {
	ID primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`

	Title       string `json:"title" bson:"title"`
	Slug        string `json:"slug" bson:"slug" index:"unique"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
	Content     string `json:"content,omitempty" bson:"content,omitempty"` // HTML body

	// ===== FUNDING =====
	Deadline      string     `json:"deadline,omitempty" bson:"deadline,omitempty"` // free text, e.g. "March 2025"
	Amount        string     `json:"amount,omitempty" bson:"amount,omitempty"`
	Currency      string     `json:"currency,omitempty" bson:"currency,omitempty"`
	University    string     `json:"university,omitempty" bson:"university,omitempty"`
	Department    string     `json:"department,omitempty" bson:"department,omitempty"`
	Website       string     `json:"website,omitempty" bson:"website,omitempty"`
	StartDate     *time.Time `json:"startDate,omitempty" bson:"startDate,omitempty"`
	EndDate       *time.Time `json:"endDate,omitempty" bson:"endDate,omitempty"`
	IsFullyFunded bool       `json:"isFullyFunded" bson:"isFullyFunded"`

	// ===== VISIBILITY =====
	IsFeatured  bool `json:"isFeatured" bson:"isFeatured" index:"single:1"`
	IsPublished bool `json:"isPublished" bson:"isPublished" index:"single:1"`

	// ===== SEO =====
	SeoTitle       string `json:"seoTitle,omitempty" bson:"seoTitle,omitempty"`
	SeoDescription string `json:"seoDescription,omitempty" bson:"seoDescription,omitempty"`
	SeoKeywords    string `json:"seoKeywords,omitempty" bson:"seoKeywords,omitempty"`
	FocusKeyword   string `json:"focusKeyword,omitempty" bson:"focusKeyword,omitempty"`

	// ===== TAXONOMY ===== hex ids, checked for existence on write
	CountryID  string `json:"countryId,omitempty" bson:"countryId,omitempty" index:"single:1"`
	LevelID    string `json:"levelId,omitempty" bson:"levelId,omitempty" index:"single:1"`
	CategoryID string `json:"categoryId,omitempty" bson:"categoryId,omitempty" index:"single:1"`

	Requirements    string `json:"requirements,omitempty" bson:"requirements,omitempty"`
	ApplicationLink string `json:"applicationLink,omitempty" bson:"applicationLink,omitempty"`
	ImageURL        string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
	Views           int64  `json:"views" bson:"views"`

	CreatedAt int64 `json:"createdAt" bson:"createdAt" index:"single:-1"`
	UpdatedAt int64 `json:"updatedAt" bson:"updatedAt"`
}
