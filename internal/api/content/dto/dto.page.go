// Package contentdto holds the request bodies of the content domain.
package contentdto

// PageCreateInput is the body of POST /pages. isPublished defaults to true.
type PageCreateInput struct {
	Title           string `json:"title" validate:"required,max=300,no_xss"`
	Slug            string `json:"slug,omitempty" validate:"omitempty,max=300,slug"`
	Content         string `json:"content" validate:"required"`
	Excerpt         string `json:"excerpt,omitempty" validate:"omitempty,max=1000"`
	MetaTitle       string `json:"metaTitle,omitempty" validate:"omitempty,max=300"`
	MetaDescription string `json:"metaDescription,omitempty" validate:"omitempty,max=500"`
	MetaKeywords    string `json:"metaKeywords,omitempty"`
	IsPublished     *bool  `json:"isPublished,omitempty"`
}

// PageUpdateInput is the body of PUT/PATCH /pages/:id
type PageUpdateInput struct {
	Title           *string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=1,max=300,no_xss"`
	Slug            *string `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,max=300,slug"`
	Content         *string `json:"content,omitempty" bson:"content,omitempty" validate:"omitempty,min=1"`
	Excerpt         *string `json:"excerpt,omitempty" bson:"excerpt,omitempty" validate:"omitempty,max=1000"`
	MetaTitle       *string `json:"metaTitle,omitempty" bson:"metaTitle,omitempty" validate:"omitempty,max=300"`
	MetaDescription *string `json:"metaDescription,omitempty" bson:"metaDescription,omitempty" validate:"omitempty,max=500"`
	MetaKeywords    *string `json:"metaKeywords,omitempty" bson:"metaKeywords,omitempty"`
	IsPublished     *bool   `json:"isPublished,omitempty" bson:"isPublished,omitempty"`
}
