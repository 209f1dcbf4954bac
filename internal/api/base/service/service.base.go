// Package basesvc provides the generic store used by every entity and the generic CRUD service built on it.
package basesvc

import (
	"context"
	"reflect"
	"strconv"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fullsco_api/internal/common"
	"fullsco_api/internal/utility"
)

// UpdateData is a partial update expressed with MongoDB operators
type UpdateData struct {
	Set         map[string]any `bson:"$set,omitempty"`
	SetOnInsert map[string]any `bson:"$setOnInsert,omitempty"`
	Unset       map[string]any `bson:"$unset,omitempty"`
	Inc         map[string]any `bson:"$inc,omitempty"`
}

// ToUpdateData turns data into an UpdateData. A struct or plain map becomes a $set.
func ToUpdateData(data any) (*UpdateData, error) {
	switch v := data.(type) {
	case *UpdateData:
		return v, nil
	case UpdateData:
		return &v, nil
	}

	dataMap := asMap(data)
	if dataMap == nil {
		var err error
		if dataMap, err = utility.ToMap(data); err != nil {
			return nil, err
		}
	}

	if _, hasOp := firstOperator(dataMap); hasOp {
		return &UpdateData{
			Set:         asMap(dataMap["$set"]),
			SetOnInsert: asMap(dataMap["$setOnInsert"]),
			Unset:       asMap(dataMap["$unset"]),
			Inc:         asMap(dataMap["$inc"]),
		}, nil
	}

	return &UpdateData{Set: dataMap}, nil
}

// asMap returns v as a plain map when it already is a document, else nil
func asMap(v any) map[string]any {
	switch m := v.(type) {
	case map[string]any:
		return m
	case bson.M:
		return m
	case bson.D:
		return m.Map()
	}
	return nil
}

func firstOperator(m map[string]any) (string, bool) {
	for k := range m {
		if strings.HasPrefix(k, "$") {
			return k, true
		}
	}
	return "", false
}

// BaseServiceMongo is the store contract each entity collection is accessed through.
// Two implementations exist: BaseServiceMongoImpl (MongoDB) and BaseServiceMemoryImpl (in process).
type BaseServiceMongo[Model any] interface {
	// Name returns the collection name
	Name() string

	InsertOne(ctx context.Context, data Model) (Model, error)

	// FindOne fails with common.ErrNotFound when nothing matches
	FindOne(ctx context.Context, filter any, opts *options.FindOneOptions) (Model, error)
	// Find never returns a nil slice
	Find(ctx context.Context, filter any, opts *options.FindOptions) ([]Model, error)
	FindOneById(ctx context.Context, id primitive.ObjectID) (Model, error)

	// UpdateById applies data (UpdateData, struct or map) and returns the updated document.
	// It fails with common.ErrNotFound when the id does not exist.
	UpdateById(ctx context.Context, id primitive.ObjectID, data any) (Model, error)

	// DeleteById reports whether a document was removed
	DeleteById(ctx context.Context, id primitive.ObjectID) (bool, error)
	DeleteMany(ctx context.Context, filter any) (int64, error)

	// Upsert updates the first document matching filter or inserts one, filling
	// `default` tagged fields that data does not set
	Upsert(ctx context.Context, filter any, data any) (Model, error)

	CountDocuments(ctx context.Context, filter any) (int64, error)
	DocumentExists(ctx context.Context, filter any) (bool, error)
}

// toFilter normalizes a nil or empty filter
func toFilter(filter any) any {
	if filter == nil {
		return bson.M{}
	}
	if m, ok := filter.(map[string]any); ok {
		return bson.M(m)
	}
	return filter
}

// stampInsert adds timestamps to a new document
func stampInsert(doc map[string]any) {
	now := utility.CurrentTimeInMilli()
	doc["createdAt"] = now
	doc["updatedAt"] = now
}

// applyInsertDefaultsToModel fills zero fields that carry a `default` tag
func applyInsertDefaultsToModel(ptr any) {
	v := reflect.ValueOf(ptr)
	if v.Kind() != reflect.Ptr || v.IsNil() {
		return
	}
	v = v.Elem()
	if v.Kind() != reflect.Struct {
		return
	}
	t := v.Type()
	for i := 0; i < t.NumField(); i++ {
		def, ok := t.Field(i).Tag.Lookup("default")
		if !ok {
			continue
		}
		f := v.Field(i)
		if !f.CanSet() || !f.IsZero() {
			continue
		}
		if val := parseDefaultValue(def, f.Type()); val != nil {
			f.Set(reflect.ValueOf(val).Convert(f.Type()))
		}
	}
}

// insertDefaults returns bson name → default value for every `default` tagged field of T
func insertDefaults[T any]() map[string]any {
	var zero T
	t := reflect.TypeOf(zero)
	if t == nil || t.Kind() != reflect.Struct {
		return nil
	}
	out := map[string]any{}
	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		def, ok := field.Tag.Lookup("default")
		if !ok {
			continue
		}
		name := strings.SplitN(field.Tag.Get("bson"), ",", 2)[0]
		if name == "" || name == "-" {
			continue
		}
		if val := parseDefaultValue(def, field.Type); val != nil {
			out[name] = val
		}
	}
	return out
}

func parseDefaultValue(s string, t reflect.Type) any {
	switch t.Kind() {
	case reflect.String:
		return s
	case reflect.Bool:
		if b, err := strconv.ParseBool(s); err == nil {
			return b
		}
	case reflect.Int, reflect.Int32, reflect.Int64:
		if n, err := strconv.ParseInt(s, 10, 64); err == nil {
			return reflect.ValueOf(n).Convert(t).Interface()
		}
	case reflect.Float64:
		if f, err := strconv.ParseFloat(s, 64); err == nil {
			return f
		}
	}
	return nil
}

// upsertDocument merges the SetOnInsert defaults of T with update, skipping keys already $set
func upsertDocument[T any](update *UpdateData) *UpdateData {
	if update.Set == nil {
		update.Set = map[string]any{}
	}
	now := utility.CurrentTimeInMilli()
	update.Set["updatedAt"] = now

	if update.SetOnInsert == nil {
		update.SetOnInsert = map[string]any{}
	}
	for k, v := range insertDefaults[T]() {
		if _, inSet := update.Set[k]; inSet {
			continue
		}
		if _, inInc := update.Inc[k]; inInc {
			continue
		}
		if _, ok := update.SetOnInsert[k]; !ok {
			update.SetOnInsert[k] = v
		}
	}
	update.SetOnInsert["createdAt"] = now
	return update
}

// insertDocument converts a model to a document ready for insertion
func insertDocument[T any](data T) (map[string]any, error) {
	applyInsertDefaultsToModel(&data)
	doc, err := utility.ToMap(data)
	if err != nil {
		return nil, common.ErrInvalidFormat
	}
	if id, ok := doc["_id"].(primitive.ObjectID); ok && id.IsZero() {
		delete(doc, "_id")
	}
	stampInsert(doc)
	return doc, nil
}
