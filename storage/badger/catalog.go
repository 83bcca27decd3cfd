// Copyright 2026 FacturaFacil
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package badger

import (
	"context"
	"errors"
	"strings"

	"github.com/dgraph-io/badger/v4"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
	"github.com/Antoniohuaman/FacturaFacil-sub001/storage"
)

// CatalogRepository implements storage.ItemRepository for BadgerDB.
type CatalogRepository struct {
	backend *Backend
}

var _ storage.ItemRepository = (*CatalogRepository)(nil)

// NewCatalogRepository creates a new CatalogRepository on the given backend.
func NewCatalogRepository(backend *Backend) *CatalogRepository {
	return &CatalogRepository{backend: backend}
}

// Close releases repository resources. The backend itself is owned by
// the caller and stays open.
func (r *CatalogRepository) Close() error {
	return nil
}

// PutItems inserts or replaces items in a collection.
func (r *CatalogRepository) PutItems(ctx context.Context, collection string, items ...*core.Item) error {
	if collection == "" {
		return storage.ErrEmptyCollection
	}
	for _, item := range items {
		if item.ID == "" {
			return storage.ErrEmptyItemID
		}
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		// Register the collection so it is listed even when later emptied
		if err := tx.Set(makeCollectionKey(collection), nil); err != nil {
			return err
		}
		for _, item := range items {
			key := makeItemKey(collection, item.ID)
			if err := tx.Set(key, storage.MarshalItem(item)); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// GetItem retrieves a single item by ID.
func (r *CatalogRepository) GetItem(ctx context.Context, collection, id string) (*core.Item, error) {
	if collection == "" {
		return nil, storage.ErrEmptyCollection
	}

	var item *core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		entry, err := tx.Get(makeItemKey(collection, id))
		if err != nil {
			if errors.Is(err, badger.ErrKeyNotFound) {
				return storage.ErrNotFound
			}
			return err
		}
		return entry.Value(func(val []byte) error {
			item, err = storage.UnmarshalItem(val)
			return err
		})
	}, false)
	if err != nil {
		return nil, err
	}
	return item, nil
}

// ListItems retrieves every item of a collection in key order.
func (r *CatalogRepository) ListItems(ctx context.Context, collection string) ([]*core.Item, error) {
	if collection == "" {
		return nil, storage.ErrEmptyCollection
	}

	var items []*core.Item
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = makeItemScanPrefix(collection)
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			err := iter.Item().Value(func(val []byte) error {
				item, err := storage.UnmarshalItem(val)
				if err != nil {
					return err
				}
				items = append(items, item)
				return nil
			})
			if err != nil {
				return err
			}
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return items, nil
}

// DeleteItems removes items by their IDs.
func (r *CatalogRepository) DeleteItems(ctx context.Context, collection string, ids ...string) error {
	if collection == "" {
		return storage.ErrEmptyCollection
	}

	return r.backend.WithTx(func(tx *badger.Txn) error {
		for _, id := range ids {
			key := makeItemKey(collection, id)
			if _, err := tx.Get(key); err != nil {
				if errors.Is(err, badger.ErrKeyNotFound) {
					return storage.ErrNotFound
				}
				return err
			}
			if err := tx.Delete(key); err != nil {
				return err
			}
		}
		return tx.Commit()
	}, true)
}

// Collections lists the names of all known collections.
func (r *CatalogRepository) Collections(ctx context.Context) ([]string, error) {
	var names []string
	err := r.backend.WithTx(func(tx *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Prefix = []byte(collectionPrefix + ":")
		opts.PrefetchValues = false
		iter := tx.NewIterator(opts)
		defer iter.Close()

		for iter.Rewind(); iter.Valid(); iter.Next() {
			key := string(iter.Item().Key())
			names = append(names, strings.TrimPrefix(key, collectionPrefix+":"))
		}
		return nil
	}, false)
	if err != nil {
		return nil, err
	}
	return names, nil
}
