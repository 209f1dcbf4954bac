package basesvc

import (
	"context"
	"errors"
	"fmt"
	"regexp"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"

	"fullsco_api/internal/common"
	"fullsco_api/internal/logger"
	"fullsco_api/internal/utility"
)

// FilterKind says how a list query parameter becomes a filter condition
type FilterKind int

const (
	// FilterExact matches the string value as is
	FilterExact FilterKind = iota
	// FilterBool matches true for "true" and false for anything else
	FilterBool
	// FilterPrefix matches values starting with the parameter
	FilterPrefix
)

// CrudConfig parameterizes CrudService for one entity
type CrudConfig[T any] struct {
	// Resource names the entity in error messages, e.g. "Scholarship"
	Resource string

	// UniqueField is the bson field that must be unique across the collection, or ""
	UniqueField string

	// SlugField and SlugSource enable slug derivation: when SlugField is empty on create it is
	// generated from SlugSource.
	SlugField  string
	SlugSource string
	// RegenerateSlug re-derives the slug on update when SlugSource changes and no slug is given
	RegenerateSlug bool

	DefaultSort bson.D
	// Filters maps accepted list query parameters (named like the bson field) to their kind
	Filters map[string]FilterKind

	References []Reference

	BeforeCreate func(ctx context.Context, input *T) error
	BeforeUpdate func(ctx context.Context, existing T, patch map[string]any) error
	BeforeDelete func(ctx context.Context, existing T) error
}

// CrudService implements list/get/create/update/delete for one entity on top of a store
type CrudService[T any] struct {
	store BaseServiceMongo[T]
	cfg   CrudConfig[T]
}

// NewCrudService builds the service
func NewCrudService[T any](store BaseServiceMongo[T], cfg CrudConfig[T]) *CrudService[T] {
	if cfg.Resource == "" {
		cfg.Resource = store.Name()
	}
	return &CrudService[T]{
		store: store,
		cfg:   cfg,
	}
}

// Store returns the underlying store
func (s *CrudService[T]) Store() BaseServiceMongo[T] {
	return s.store
}

// Resource returns the entity name
func (s *CrudService[T]) Resource() string {
	return s.cfg.Resource
}

// List returns every record matching the recognized query parameters, in the default order.
// Unknown parameters are ignored.
func (s *CrudService[T]) List(ctx context.Context, query map[string]string) ([]T, error) {
	return s.store.Find(ctx, s.BuildFilter(query), s.findOptions())
}

// BuildFilter turns list query parameters into a store filter
func (s *CrudService[T]) BuildFilter(query map[string]string) bson.M {
	filter := bson.M{}
	for key, kind := range s.cfg.Filters {
		value, ok := query[key]
		if !ok || value == "" {
			continue
		}
		switch kind {
		case FilterBool:
			filter[key] = value == "true"
		case FilterPrefix:
			filter[key] = bson.M{"$regex": "^" + regexp.QuoteMeta(value)}
		default:
			filter[key] = value
		}
	}
	return filter
}

func (s *CrudService[T]) findOptions() *options.FindOptions {
	opts := options.Find()
	if len(s.cfg.DefaultSort) > 0 {
		opts.SetSort(s.cfg.DefaultSort)
	}
	return opts
}

// Find returns the records matching filter in the default order
func (s *CrudService[T]) Find(ctx context.Context, filter any) ([]T, error) {
	return s.store.Find(ctx, filter, s.findOptions())
}

// GetById returns the record with the given hex id
func (s *CrudService[T]) GetById(ctx context.Context, id string) (T, error) {
	var zero T
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return zero, err
	}
	item, err := s.store.FindOneById(ctx, oid)
	if err != nil {
		return zero, s.notFound(err)
	}
	return item, nil
}

// GetBySlug returns the record whose slug matches exactly
func (s *CrudService[T]) GetBySlug(ctx context.Context, slug string) (T, error) {
	var zero T
	if s.cfg.SlugField == "" {
		return zero, common.NewNotFoundError(s.cfg.Resource)
	}
	item, err := s.store.FindOne(ctx, bson.M{s.cfg.SlugField: slug}, nil)
	if err != nil {
		return zero, s.notFound(err)
	}
	return item, nil
}

// Create derives the slug, runs the hooks, checks references and uniqueness, then inserts
func (s *CrudService[T]) Create(ctx context.Context, input T) (T, error) {
	var zero T

	if s.cfg.SlugField != "" {
		derived, err := s.deriveSlug(input)
		if err != nil {
			return zero, err
		}
		input = derived
	}

	if s.cfg.BeforeCreate != nil {
		if err := s.cfg.BeforeCreate(ctx, &input); err != nil {
			return zero, err
		}
	}

	doc, err := utility.ToMap(input)
	if err != nil {
		return zero, common.ErrInvalidFormat
	}
	if err := CheckReferences(ctx, doc, s.cfg.References); err != nil {
		return zero, err
	}
	if err := s.checkUnique(ctx, doc[s.cfg.UniqueField], primitive.NilObjectID); err != nil {
		return zero, err
	}

	return s.store.InsertOne(ctx, input)
}

// Update merges patch into the record. Only keys present in patch change; a nil value
// removes the field.
func (s *CrudService[T]) Update(ctx context.Context, id string, patch map[string]any) (T, error) {
	var zero T
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return zero, err
	}

	existing, err := s.store.FindOneById(ctx, oid)
	if err != nil {
		return zero, s.notFound(err)
	}

	if patch == nil {
		patch = map[string]any{}
	}
	for _, k := range []string{"_id", "createdAt", "updatedAt"} {
		delete(patch, k)
	}

	if s.cfg.SlugField != "" && s.cfg.RegenerateSlug {
		if _, hasSlug := patch[s.cfg.SlugField]; !hasSlug {
			if source, ok := patch[s.cfg.SlugSource].(string); ok {
				slug := utility.GenerateSlug(source)
				if slug == "" {
					return zero, s.slugError()
				}
				patch[s.cfg.SlugField] = slug
			}
		}
	}

	if s.cfg.BeforeUpdate != nil {
		if err := s.cfg.BeforeUpdate(ctx, existing, patch); err != nil {
			return zero, err
		}
	}

	if err := CheckReferences(ctx, patch, s.cfg.References); err != nil {
		return zero, err
	}
	if err := s.checkUnique(ctx, patch[s.cfg.UniqueField], oid); err != nil {
		return zero, err
	}

	updated, err := s.store.UpdateById(ctx, oid, splitPatch(patch))
	if err != nil {
		return zero, s.notFound(err)
	}
	return updated, nil
}

// splitPatch sets the present values and unsets the nil ones
func splitPatch(patch map[string]any) *UpdateData {
	update := &UpdateData{Set: make(map[string]any, len(patch))}
	for k, v := range patch {
		if v == nil {
			if update.Unset == nil {
				update.Unset = map[string]any{}
			}
			update.Unset[k] = ""
			continue
		}
		update.Set[k] = v
	}
	return update
}

// Delete removes the record and reports whether it existed. BeforeDelete runs first
// and only for an existing record.
func (s *CrudService[T]) Delete(ctx context.Context, id string) (bool, error) {
	oid, err := utility.ParseObjectID(id)
	if err != nil {
		return false, err
	}

	if s.cfg.BeforeDelete != nil {
		existing, err := s.store.FindOneById(ctx, oid)
		if err != nil {
			if errors.Is(err, common.ErrNotFound) {
				return false, nil
			}
			return false, err
		}
		if err := s.cfg.BeforeDelete(ctx, existing); err != nil {
			return false, err
		}
	}

	return s.store.DeleteById(ctx, oid)
}

// deriveSlug fills an empty slug from the source field
func (s *CrudService[T]) deriveSlug(input T) (T, error) {
	doc, err := utility.ToMap(input)
	if err != nil {
		return input, common.ErrInvalidFormat
	}
	if slug, _ := doc[s.cfg.SlugField].(string); slug != "" {
		return input, nil
	}

	source, _ := doc[s.cfg.SlugSource].(string)
	slug := utility.GenerateSlug(source)
	if slug == "" {
		return input, s.slugError()
	}
	doc[s.cfg.SlugField] = slug

	out, err := utility.FromMap[T](doc)
	if err != nil {
		return input, common.ErrInvalidFormat
	}
	return out, nil
}

func (s *CrudService[T]) slugError() error {
	return common.NewValidationError(common.MsgValidationError, common.FieldError{
		Field:   s.cfg.SlugField,
		Tag:     "slug",
		Message: fmt.Sprintf("could not be derived from %s", s.cfg.SlugSource),
	})
}

// checkUnique fails with a conflict when another record already holds value
func (s *CrudService[T]) checkUnique(ctx context.Context, value any, self primitive.ObjectID) error {
	if s.cfg.UniqueField == "" || value == nil || value == "" {
		return nil
	}

	filter := bson.M{s.cfg.UniqueField: value}
	if !self.IsZero() {
		filter["_id"] = bson.M{"$ne": self}
	}
	exists, err := s.store.DocumentExists(ctx, filter)
	if err != nil {
		return err
	}
	if exists {
		logger.WithCollection(s.store.Name()).WithFields(map[string]any{
			"field": s.cfg.UniqueField,
			"value": value,
		}).Debug("Unique check rejected write")
		return common.NewConflictError(s.cfg.Resource, s.cfg.UniqueField, value)
	}
	return nil
}

// notFound names the resource in store not-found errors
func (s *CrudService[T]) notFound(err error) error {
	if errors.Is(err, common.ErrNotFound) {
		return common.NewNotFoundError(s.cfg.Resource)
	}
	return err
}
