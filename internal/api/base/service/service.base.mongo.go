package basesvc

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/utility"
)

// BaseServiceMongoImpl is the MongoDB backed store
type BaseServiceMongoImpl[T any] struct {
	collection *mongo.Collection
}

// NewBaseServiceMongo wraps a collection
func NewBaseServiceMongo[T any](collection *mongo.Collection) *BaseServiceMongoImpl[T] {
	return &BaseServiceMongoImpl[T]{
		collection: collection,
	}
}

// Name returns the collection name
func (s *BaseServiceMongoImpl[T]) Name() string {
	return s.collection.Name()
}

// InsertOne inserts data with createdAt/updatedAt and returns the stored document
func (s *BaseServiceMongoImpl[T]) InsertOne(ctx context.Context, data T) (T, error) {
	var zero T

	doc, err := insertDocument(data)
	if err != nil {
		return zero, err
	}

	result, err := s.collection.InsertOne(ctx, doc)
	if err != nil {
		return zero, common.ConvertMongoError(err)
	}

	var created T
	if err := s.collection.FindOne(ctx, bson.M{"_id": result.InsertedID}).Decode(&created); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return created, nil
}

// FindOne returns the first document matching filter
func (s *BaseServiceMongoImpl[T]) FindOne(ctx context.Context, filter any, opts *options.FindOneOptions) (T, error) {
	var zero T
	if opts == nil {
		opts = options.FindOne()
	}

	var result T
	if err := s.collection.FindOne(ctx, toFilter(filter), opts).Decode(&result); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// Find returns every document matching filter
func (s *BaseServiceMongoImpl[T]) Find(ctx context.Context, filter any, opts *options.FindOptions) ([]T, error) {
	if opts == nil {
		opts = options.Find()
	}

	cursor, err := s.collection.Find(ctx, toFilter(filter), opts)
	if err != nil {
		return nil, common.ConvertMongoError(err)
	}
	defer cursor.Close(ctx)

	results := []T{}
	if err := cursor.All(ctx, &results); err != nil {
		return nil, common.ConvertMongoError(err)
	}
	return results, nil
}

// FindOneById finds a document by ObjectID
func (s *BaseServiceMongoImpl[T]) FindOneById(ctx context.Context, id primitive.ObjectID) (T, error) {
	return s.FindOne(ctx, bson.M{"_id": id}, nil)
}

// UpdateById applies data to one document and returns it after the update
func (s *BaseServiceMongoImpl[T]) UpdateById(ctx context.Context, id primitive.ObjectID, data any) (T, error) {
	var zero T

	update, err := ToUpdateData(data)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if update.Set == nil {
		update.Set = map[string]any{}
	}
	update.Set["updatedAt"] = utility.CurrentTimeInMilli()

	opts := options.FindOneAndUpdate().SetReturnDocument(options.After)

	var updated T
	if err := s.collection.FindOneAndUpdate(ctx, bson.M{"_id": id}, update, opts).Decode(&updated); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return zero, common.ErrNotFound
		}
		return zero, common.ConvertMongoError(err)
	}
	return updated, nil
}

// DeleteById removes one document and reports whether it existed
func (s *BaseServiceMongoImpl[T]) DeleteById(ctx context.Context, id primitive.ObjectID) (bool, error) {
	result, err := s.collection.DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return result.DeletedCount > 0, nil
}

// DeleteMany removes every document matching filter
func (s *BaseServiceMongoImpl[T]) DeleteMany(ctx context.Context, filter any) (int64, error) {
	result, err := s.collection.DeleteMany(ctx, toFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return result.DeletedCount, nil
}

// Upsert updates the document matching filter, or inserts it with defaults
func (s *BaseServiceMongoImpl[T]) Upsert(ctx context.Context, filter any, data any) (T, error) {
	var zero T

	update, err := ToUpdateData(data)
	if err != nil {
		logger.WithCollection(s.Name()).WithError(err).Error("Upsert: cannot convert data to UpdateData")
		return zero, common.ErrInvalidFormat
	}
	update = upsertDocument[T](update)

	opts := options.FindOneAndUpdate().
		SetUpsert(true).
		SetReturnDocument(options.After)

	var result T
	if err := s.collection.FindOneAndUpdate(ctx, toFilter(filter), update, opts).Decode(&result); err != nil {
		return zero, common.ConvertMongoError(err)
	}
	return result, nil
}

// CountDocuments counts documents matching filter
func (s *BaseServiceMongoImpl[T]) CountDocuments(ctx context.Context, filter any) (int64, error) {
	count, err := s.collection.CountDocuments(ctx, toFilter(filter))
	if err != nil {
		return 0, common.ConvertMongoError(err)
	}
	return count, nil
}

// DocumentExists reports whether at least one document matches filter
func (s *BaseServiceMongoImpl[T]) DocumentExists(ctx context.Context, filter any) (bool, error) {
	count, err := s.collection.CountDocuments(ctx, toFilter(filter), options.Count().SetLimit(1))
	if err != nil {
		return false, common.ConvertMongoError(err)
	}
	return count > 0, nil
}
