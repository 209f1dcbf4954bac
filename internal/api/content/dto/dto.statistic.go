package contentdto

// StatisticCreateInput is the body of POST /statistics. Data is any JSON value.
type StatisticCreateInput struct {
	Type  string `json:"type" validate:"required,max=100"`
	Data  any    `json:"data" validate:"required"`
	Order int    `json:"order,omitempty"`
}

// StatisticUpdateInput is the body of PUT/PATCH /statistics/:id
type StatisticUpdateInput struct {
	Type  *string `json:"type,omitempty" bson:"type,omitempty" validate:"omitempty,min=1,max=100"`
	Data  any     `json:"data,omitempty" bson:"data,omitempty"`
	Order *int    `json:"order,omitempty" bson:"order,omitempty"`
}
