package storage

import (
	"context"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
)

// ItemRepository provides operations for managing searchable catalog
// items, grouped into named collections (one per entity type, e.g.
// "productos"). Implementations must be thread-safe.
type ItemRepository interface {
	// PutItems inserts or replaces items in a collection.
	// Every item must carry a non-empty ID.
	PutItems(ctx context.Context, collection string, items ...*core.Item) error

	// GetItem retrieves a single item by ID.
	// Returns ErrNotFound if the item doesn't exist.
	GetItem(ctx context.Context, collection, id string) (*core.Item, error)

	// ListItems retrieves every item of a collection, ordered by ID.
	ListItems(ctx context.Context, collection string) ([]*core.Item, error)

	// DeleteItems removes items by their IDs.
	// Returns ErrNotFound if any item doesn't exist.
	DeleteItems(ctx context.Context, collection string, ids ...string) error

	// Collections lists the names of all known collections.
	Collections(ctx context.Context) ([]string, error)

	// Close releases repository resources.
	Close() error
}
