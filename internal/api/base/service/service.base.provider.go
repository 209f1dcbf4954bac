package basesvc

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"fullsco_api/internal/common"
	"fullsco_api/internal/registry"
)

// StoreProvider hands out one store per collection. It is created once at boot and passed
// to every domain, replacing a process wide collection registry.
type StoreProvider struct {
	db     *mongo.Database
	stores *registry.Collections
}

// NewMongoStoreProvider serves stores backed by db
func NewMongoStoreProvider(db *mongo.Database) *StoreProvider {
	return &StoreProvider{
		db:     db,
		stores: registry.NewCollections(),
	}
}

// NewMemoryStoreProvider serves in-process stores
func NewMemoryStoreProvider() *StoreProvider {
	return &StoreProvider{
		stores: registry.NewCollections(),
	}
}

// IsMemory reports whether stores live in process
func (p *StoreProvider) IsMemory() bool {
	return p.db == nil
}

// Collections lists the collections opened so far
func (p *StoreProvider) Collections() []string {
	return p.stores.Names()
}

// Ping checks the database is reachable
func (p *StoreProvider) Ping(ctx context.Context) error {
	if p.db == nil {
		return nil
	}
	if err := p.db.Client().Ping(ctx, readpref.Primary()); err != nil {
		return common.ConvertMongoError(err)
	}
	return nil
}

// Open returns the store for collection, creating it on first use. Opening the same
// collection with a different model type is an error.
func Open[T any](p *StoreProvider, collection string) (BaseServiceMongo[T], error) {
	item, err := p.stores.Open(collection, func() any {
		if p.db == nil {
			return BaseServiceMongo[T](NewBaseServiceMemory[T](collection))
		}
		return BaseServiceMongo[T](NewBaseServiceMongo[T](p.db.Collection(collection)))
	})
	if err != nil {
		return nil, err
	}
	store, ok := item.(BaseServiceMongo[T])
	if !ok {
		return nil, common.NewError(common.ErrCodeInternalServer,
			fmt.Sprintf("collection %s is already open with model %T", collection, item),
			common.StatusInternalServerError, nil)
	}
	return store, nil
}

// Use registers store for collection, replacing any earlier one. Tests use it to inject doubles.
func Use[T any](p *StoreProvider, collection string, store BaseServiceMongo[T]) error {
	return p.stores.Replace(collection, store)
}
