package utility

import (
	"strings"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"fullsco_api/internal/common"
)

// ParseObjectID converts a hex string, failing with common.ErrInvalidID
func ParseObjectID(id string) (primitive.ObjectID, error) {
	id = strings.TrimSpace(id)
	if !primitive.IsValidObjectID(id) {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidID, common.StatusBadRequest, map[string]any{"id": id})
	}
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, common.NewError(common.ErrCodeValidationFormat, common.MsgInvalidID, common.StatusBadRequest, map[string]any{"id": id})
	}
	return oid, nil
}
