package catalogdto

// TermCreateInput is the body of POST /categories and POST /levels
type TermCreateInput struct {
	Name        string `json:"name" validate:"required,max=200,no_xss"`
	Slug        string `json:"slug,omitempty" validate:"omitempty,max=200,slug"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
}

// TermUpdateInput is the body of PUT/PATCH on a category or level
type TermUpdateInput struct {
	Name        *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Slug        *string `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,max=200,slug"`
	Description *string `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
}

// CountryCreateInput is the body of POST /countries
type CountryCreateInput struct {
	Name    string `json:"name" validate:"required,max=200,no_xss"`
	Slug    string `json:"slug,omitempty" validate:"omitempty,max=200,slug"`
	FlagURL string `json:"flagUrl,omitempty" validate:"omitempty,max=500"`
}

// CountryUpdateInput is the body of PUT/PATCH /countries/:id
type CountryUpdateInput struct {
	Name    *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Slug    *string `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,max=200,slug"`
	FlagURL *string `json:"flagUrl,omitempty" bson:"flagUrl,omitempty" validate:"omitempty,max=500"`
}
