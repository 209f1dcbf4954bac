package models

import (
	"encoding/json"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fullsco_api/internal/utility"
)

// Statistic is a free-form counter block, e.g. {"value": 1500, "label": "Scholarships"}
type Statistic struct {
	ID        primitive.ObjectID `json:"id,omitempty" bson:"_id,omitempty"`
	Type      string             `json:"type" bson:"type" index:"single:1"`
	Data      any                `json:"data" bson:"data"`
	Order     int                `json:"order" bson:"order"`
	CreatedAt int64              `json:"createdAt" bson:"createdAt"`
	UpdatedAt int64              `json:"updatedAt" bson:"updatedAt"`
}

// MarshalJSON renders Data as plain JSON whatever BSON container it was decoded into
func (s Statistic) MarshalJSON() ([]byte, error) {
	type plain Statistic
	out := plain(s)
	out.Data = utility.PlainValue(s.Data)
	return json.Marshal(out)
}
