package contentdto

// SuccessStoryCreateInput is the body of POST /success-stories. An omitted slug is derived from the title.
type SuccessStoryCreateInput struct {
	Name            string `json:"name" validate:"required,max=200,no_xss"`
	Title           string `json:"title" validate:"required,max=300,no_xss"`
	Slug            string `json:"slug,omitempty" validate:"omitempty,max=300,slug"`
	Content         string `json:"content" validate:"required"`
	StudentName     string `json:"studentName,omitempty" validate:"omitempty,max=200"`
	University      string `json:"university,omitempty" validate:"omitempty,max=300"`
	Country         string `json:"country,omitempty" validate:"omitempty,max=200"`
	Degree          string `json:"degree,omitempty" validate:"omitempty,max=200"`
	GraduationYear  string `json:"graduationYear,omitempty" validate:"omitempty,max=20"`
	ScholarshipName string `json:"scholarshipName,omitempty" validate:"omitempty,max=300"`
	ScholarshipID   string `json:"scholarshipId,omitempty" validate:"omitempty,mongodb"`
	ThumbnailURL    string `json:"thumbnailUrl,omitempty" validate:"omitempty,max=500"`
	ImageURL        string `json:"imageUrl,omitempty" validate:"omitempty,max=500"`
	IsPublished     *bool  `json:"isPublished,omitempty"`
}

// SuccessStoryUpdateInput is the body of PUT/PATCH /success-stories/:id.
// A new title without a slug regenerates the slug.
type SuccessStoryUpdateInput struct {
	Name            *string `json:"name,omitempty" bson:"name,omitempty" validate:"omitempty,min=1,max=200,no_xss"`
	Title           *string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,min=1,max=300,no_xss"`
	Slug            *string `json:"slug,omitempty" bson:"slug,omitempty" validate:"omitempty,max=300,slug"`
	Content         *string `json:"content,omitempty" bson:"content,omitempty" validate:"omitempty,min=1"`
	StudentName     *string `json:"studentName,omitempty" bson:"studentName,omitempty" validate:"omitempty,max=200"`
	University      *string `json:"university,omitempty" bson:"university,omitempty" validate:"omitempty,max=300"`
	Country         *string `json:"country,omitempty" bson:"country,omitempty" validate:"omitempty,max=200"`
	Degree          *string `json:"degree,omitempty" bson:"degree,omitempty" validate:"omitempty,max=200"`
	GraduationYear  *string `json:"graduationYear,omitempty" bson:"graduationYear,omitempty" validate:"omitempty,max=20"`
	ScholarshipName *string `json:"scholarshipName,omitempty" bson:"scholarshipName,omitempty" validate:"omitempty,max=300"`
	ScholarshipID   *string `json:"scholarshipId,omitempty" bson:"scholarshipId,omitempty" validate:"omitempty,mongodb_or_empty"`
	ThumbnailURL    *string `json:"thumbnailUrl,omitempty" bson:"thumbnailUrl,omitempty" validate:"omitempty,max=500"`
	ImageURL        *string `json:"imageUrl,omitempty" bson:"imageUrl,omitempty" validate:"omitempty,max=500"`
	IsPublished     *bool   `json:"isPublished,omitempty" bson:"isPublished,omitempty"`
}
