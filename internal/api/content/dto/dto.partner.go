package contentdto

// PartnerCreateInput is the body of POST /partners. isActive defaults to true.
type PartnerCreateInput struct {
	Name        string `json:"name" validate:"required,max=200,no_xss"`
	LogoURL     string `json:"logoUrl,omitempty" validate:"omitempty,max=500"`
	Website     string `json:"website,omitempty" validate:"omitempty,url"`
	Description string `json:"description,omitempty" validate:"omitempty,max=2000"`
	IsActive    *bool  `json:"isActive,omitempty"`
}

// PartnerUpdateInput is the body of PUT/PATCH /partners/:id
type PartnerUpdateInput struct {
	Name        *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	LogoURL     *string `json:"logoUrl,omitempty" bson:"logoUrl,omitempty" validate:"omitempty,max=500"`
	Website     *string `json:"website,omitempty" bson:"website,omitempty" validate:"omitempty,url"`
	Description *string `json:"description,omitempty" bson:"description,omitempty" validate:"omitempty,max=2000"`
	IsActive    *bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}
