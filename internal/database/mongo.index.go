package database

import (
	"context"
	"fmt"
	"reflect"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fullsco_api/internal/logger"
)

// IndexSpec is one index derived from an `index` struct tag
type IndexSpec struct {
	Name   string
	Keys   bson.D
	Unique bool
	Sparse bool
}

// parseIndexTag splits "unique;single:-1" into one option map per index
func parseIndexTag(tag string) []map[string]string {
	var result []map[string]string
	for _, part := range strings.Split(tag, ";") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}
		entry := map[string]string{}
		for _, sub := range strings.Split(part, ",") {
			kv := strings.SplitN(sub, ":", 2)
			if len(kv) == 2 {
				entry[kv[0]] = kv[1]
			} else {
				entry[kv[0]] = ""
			}
		}
		result = append(result, entry)
	}
	return result
}

func parseOrder(value string) int {
	if value == "-1" {
		return -1
	}
	return 1
}

// IndexSpecs reads the `index` tags of model.
//
// Supported forms:
//
//	index:"unique"          unique ascending index on the field
//	index:"unique,sparse"   unique index skipping documents without the field
//	index:"single:-1"       plain index, descending
//	index:"text"            text index
//	index:"compound:name"   joins every field tagged with the same group name
func IndexSpecs(model any) []IndexSpec {
	modelType := reflect.TypeOf(model)
	if modelType.Kind() == reflect.Ptr {
		modelType = modelType.Elem()
	}

	var specs []IndexSpec
	compound := map[string]*IndexSpec{}
	var compoundOrder []string

	for i := 0; i < modelType.NumField(); i++ {
		field := modelType.Field(i)
		tag, ok := field.Tag.Lookup("index")
		if !ok {
			continue
		}
		bsonField := strings.SplitN(field.Tag.Get("bson"), ",", 2)[0]
		if bsonField == "" || bsonField == "-" {
			continue
		}

		for _, cfg := range parseIndexTag(tag) {
			_, sparse := cfg["sparse"]
			if _, ok := cfg["unique"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_unique", Keys: bson.D{{Key: bsonField, Value: 1}}, Unique: true, Sparse: sparse})
			}
			if order, ok := cfg["single"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_single", Keys: bson.D{{Key: bsonField, Value: parseOrder(order)}}, Sparse: sparse})
			}
			if _, ok := cfg["text"]; ok {
				specs = append(specs, IndexSpec{Name: bsonField + "_text", Keys: bson.D{{Key: bsonField, Value: "text"}}})
			}
			if group, ok := cfg["compound"]; ok && group != "" {
				spec, exists := compound[group]
				if !exists {
					spec = &IndexSpec{Name: group, Unique: strings.HasSuffix(group, "_unique")}
					compound[group] = spec
					compoundOrder = append(compoundOrder, group)
				}
				spec.Keys = append(spec.Keys, bson.E{Key: bsonField, Value: parseOrder(cfg["order"])})
				spec.Sparse = spec.Sparse || sparse
			}
		}
	}

	for _, group := range compoundOrder {
		specs = append(specs, *compound[group])
	}
	return specs
}

// CreateIndexes makes sure every index declared on model exists on the collection.
// Indexes with the same name but a different definition are dropped and rebuilt.
func CreateIndexes(ctx context.Context, collection *mongo.Collection, model any) error {
	log := logger.WithCollection(collection.Name())

	cursor, err := collection.Indexes().List(ctx)
	if err != nil {
		return fmt.Errorf("list indexes of %s: %w", collection.Name(), err)
	}
	defer cursor.Close(ctx)

	existing := map[string]bson.M{}
	for cursor.Next(ctx) {
		var info bson.M
		if err := cursor.Decode(&info); err != nil {
			return fmt.Errorf("decode index info: %w", err)
		}
		if name, ok := info["name"].(string); ok {
			existing[name] = info
		}
	}

	for _, spec := range IndexSpecs(model) {
		opts := options.Index().SetName(spec.Name)
		if spec.Unique {
			opts.SetUnique(true)
		}
		if spec.Sparse {
			opts.SetSparse(true)
		}

		if info, ok := existing[spec.Name]; ok {
			if sameIndex(info, spec) {
				continue
			}
			if _, err := collection.Indexes().DropOne(ctx, spec.Name); err != nil {
				return fmt.Errorf("drop index %s: %w", spec.Name, err)
			}
			log.WithField("index", spec.Name).Info("Dropped outdated index")
		}

		if _, err := collection.Indexes().CreateOne(ctx, mongo.IndexModel{Keys: spec.Keys, Options: opts}); err != nil {
			return fmt.Errorf("create index %s: %w", spec.Name, err)
		}
		log.WithField("index", spec.Name).Info("Created index")
	}
	return nil
}

// sameIndex compares key names and the unique flag of an existing index with spec
func sameIndex(info bson.M, spec IndexSpec) bool {
	unique, _ := info["unique"].(bool)
	if unique != spec.Unique {
		return false
	}

	var keys []string
	switch k := info["key"].(type) {
	case bson.M:
		for name := range k {
			keys = append(keys, name)
		}
	case bson.D:
		for _, e := range k {
			keys = append(keys, e.Key)
		}
	default:
		return false
	}
	if len(keys) != len(spec.Keys) {
		return false
	}
	for _, e := range spec.Keys {
		found := false
		for _, k := range keys {
			if k == e.Key {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
