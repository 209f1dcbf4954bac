// Package registry tracks the store opened for each collection.
package registry

import (
	"fmt"
	"maps"
	"slices"
	"sync"

	"fullsco_api/internal/common"
)

// Collections maps a collection name to the store serving it. Safe for concurrent use.
// Stores are held as any; the store provider asserts their model type.
type Collections struct {
	mu     sync.Mutex
	stores map[string]any
}

// NewCollections returns an empty set of collections
func NewCollections() *Collections {
	return &Collections{
		stores: make(map[string]any),
	}
}

// Open returns the store of collection. The first call builds it with open; every later
// call, from any goroutine, gets that same store.
func (c *Collections) Open(collection string, open func() any) (any, error) {
	if collection == "" {
		return nil, fmt.Errorf("collection name: %w", common.ErrRequiredField)
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	if store, ok := c.stores[collection]; ok {
		return store, nil
	}
	store := open()
	c.stores[collection] = store
	return store, nil
}

// Replace serves collection from store from now on
func (c *Collections) Replace(collection string, store any) error {
	if collection == "" {
		return fmt.Errorf("collection name: %w", common.ErrRequiredField)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.stores[collection] = store
	return nil
}

// Names returns the opened collections in sorted order
func (c *Collections) Names() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Sorted(maps.Keys(c.stores))
}
