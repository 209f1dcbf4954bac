// Package mediadto holds the request bodies of the media library.
package mediadto

// MediaCreateInput is the body of POST /media, registering a file that is already stored
type MediaCreateInput struct {
	Filename   string `json:"filename" validate:"required,max=255"`
	URL        string `json:"url" validate:"required,max=1000"`
	Type       string `json:"type" validate:"required,mime"`
	Size       int64  `json:"size" validate:"gte=0"`
	AltText    string `json:"altText,omitempty" validate:"omitempty,max=300"`
	Title      string `json:"title,omitempty" validate:"omitempty,max=300"`
	UploadedBy string `json:"uploadedBy,omitempty" validate:"omitempty,max=200"`
	IsActive   *bool  `json:"isActive,omitempty"`
}

// MediaUpdateInput is the body of PUT/PATCH /media/:id. The stored file itself cannot change.
type MediaUpdateInput struct {
	AltText  *string `json:"altText,omitempty" bson:"altText,omitempty" validate:"omitempty,max=300"`
	Title    *string `json:"title,omitempty" bson:"title,omitempty" validate:"omitempty,max=300"`
	IsActive *bool   `json:"isActive,omitempty" bson:"isActive,omitempty"`
}

// UploadInput holds the form fields sent with POST /media/upload next to the file
type UploadInput struct {
	AltText string `json:"altText" validate:"omitempty,max=300"`
	Title   string `json:"title" validate:"omitempty,max=300"`
}

// BulkDeleteInput is the body of POST /media/bulk-delete
type BulkDeleteInput struct {
	IDs []string `json:"ids" validate:"required,min=1,max=100,dive,mongodb"`
}
