package catalogdto

// ScholarshipCreateInput is the body of POST /scholarships. An omitted slug is derived from the title.
type ScholarshipCreateInput struct {
	Title       string `json:"title" validate:"required,max=300,no_xss"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=300,slug"`
	Description string `json:"description,omitempty"`
	Content     string `json:"content,omitempty"`

	Deadline      string `json:"deadline,omitempty" validate:"omitempty,max=100"`
	Amount        string `json:"amount,omitempty" validate:"omitempty,max=100"`
	Currency      string `json:"currency,omitempty" validate:"omitempty,max=10"`
	University    string `json:"university,omitempty" validate:"omitempty,max=300"`
	Department    string `json:"department,omitempty" validate:"omitempty,max=300"`
	Website       string `json:"website,omitempty" validate:"omitempty,url"`
	StartDate     string `json:"startDate,omitempty" validate:"omitempty,date"`
	EndDate       string `json:"endDate,omitempty" validate:"omitempty,date"`
	IsFullyFunded bool   `json:"isFullyFunded,omitempty"`
	IsFeatured    bool   `json:"isFeatured,omitempty"`
	IsPublished   bool   `json:"isPublished,omitempty"`

	SeoTitle       string `json:"seoTitle,omitempty" validate:"omitempty,max=300"`
	SeoDescription string `json:"seoDescription,omitempty" validate:"omitempty,max=500"`
	SeoKeywords    string `json:"seoKeywords,omitempty"`
	FocusKeyword   string `json:"focusKeyword,omitempty"`

	CountryID  string `json:"countryId,omitempty" validate:"omitempty,mongodb"`
	LevelID    string `json:"levelId,omitempty" validate:"omitempty,mongodb"`
	CategoryID string `json:"categoryId,omitempty" validate:"omitempty,mongodb"`

	Requirements    string `json:"requirements,omitempty"`
	ApplicationLink string `json:"applicationLink,omitempty" validate:"omitempty,url"`
	ImageURL        string `json:"imageUrl,omitempty"`
}

// ScholarshipUpdateInput is the body of PUT/PATCH /scholarships/:id. Only present fields change.
// The dates and the taxonomy ids are cleared by null or "".
type ScholarshipUpdateInput struct {
	Title       *string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=1,max=300,no_xss"`
	Slug        *string `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,max=300,slug"`
	Description *string `json:"description,omitempty" bson:"description,omitempty"`
	Content     *string `json:"content,omitempty" bson:"content,omitempty"`

	Deadline      *string `json:"deadline,omitempty" bson:"deadline,omitempty" validate:"omitempty,max=100"`
	Amount        *string `json:"amount,omitempty" bson:"amount,omitempty" validate:"omitempty,max=100"`
	Currency      *string `json:"currency,omitempty" bson:"currency,omitempty" validate:"omitempty,max=10"`
	University    *string `json:"university,omitempty" bson:"university,omitempty" validate:"omitempty,max=300"`
	Department    *string `json:"department,omitempty" bson:"department,omitempty" validate:"omitempty,max=300"`
	Website       *string `json:"website,omitempty" bson:"website,omitempty" validate:"omitempty,url"`
	StartDate     *string `json:"startDate,omitempty" bson:"-" validate:"omitempty,date_or_empty"`
	EndDate       *string `json:"endDate,omitempty" bson:"-" validate:"omitempty,date_or_empty"`
	IsFullyFunded *bool   `json:"isFullyFunded,omitempty" bson:"isFullyFunded,omitempty"`
	IsFeatured    *bool   `json:"isFeatured,omitempty" bson:"isFeatured,omitempty"`
	IsPublished   *bool   `json:"isPublished,omitempty" bson:"isPublished,omitempty"`

	SeoTitle       *string `json:"seoTitle,omitempty" bson:"seoTitle,omitempty" validate:"omitempty,max=300"`
	SeoDescription *string `json:"seoDescription,omitempty" bson:"seoDescription,omitempty" validate:"omitempty,max=500"`
	SeoKeywords    *string `json:"seoKeywords,omitempty" bson:"seoKeywords,omitempty"`
	FocusKeyword   *string `json:"focusKeyword,omitempty" bson:"focusKeyword,omitempty"`

	CountryID  *string `json:"countryId,omitempty" bson:"countryId,omitempty" validate:"omitempty,mongodb_or_empty"`
	LevelID    *string `json:"levelId,omitempty" bson:"levelId,omitempty" validate:"omitempty,mongodb_or_empty"`
	CategoryID *string `json:"categoryId,omitempty" bson:"categoryId,omitempty" validate:"omitempty,mongodb_or_empty"`

	Requirements    *string `json:"requirements,omitempty" bson:"requirements,omitempty"`
	ApplicationLink *string `json:"applicationLink,omitempty" bson:"applicationLink,omitempty" validate:"omitempty,url"`
	ImageURL        *string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty"`
}
