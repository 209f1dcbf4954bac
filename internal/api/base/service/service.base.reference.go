package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"

	"fullsco_api/internal/common"
	"fullsco_api/internal/utility"
)

// Counter is the part of a store needed to check that a referenced record exists
type Counter interface {
	Name() string
	CountDocuments(ctx context.Context, filter any) (int64, error)
}

// Reference declares that Field holds the hex id of a record in Target
type Reference struct {
	// Field is the bson/json name of the foreign key, e.g. countryId
	Field    string
	Resource string
	Target   Counter
	Optional bool
}

// CheckReferences verifies every reference found in doc points at an existing record.
// A dangling or malformed id is a 400 on the foreign key field.
func CheckReferences(ctx context.Context, doc map[string]any, refs []Reference) error {
	for _, ref := range refs {
		raw, present := doc[ref.Field]
		if !present || raw == nil {
			continue
		}
		id, _ := raw.(string)
		if id == "" {
			if ref.Optional {
				continue
			}
			return referenceError(ref, "must not be empty")
		}
		oid, err := utility.ParseObjectID(id)
		if err != nil {
			return referenceError(ref, "must be a valid identifier")
		}
		count, err := ref.Target.CountDocuments(ctx, bson.M{"_id": oid})
		if err != nil {
			return common.ConvertMongoError(err)
		}
		if count == 0 {
			return referenceError(ref, fmt.Sprintf("references a %s that does not exist", ref.Resource))
		}
	}
	return nil
}

func referenceError(ref Reference, message string) error {
	return common.NewValidationError(common.MsgValidationError, common.FieldError{
		Field:   ref.Field,
		Tag:     "exists",
		Message: message,
	})
}
