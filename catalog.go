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


// Package facturafacil ties the search engine, the item catalog storage and
// the ingestion loader together behind a single entry point. Open a catalog,
// load items into named collections, snapshot them into datasets, and run
// search passes over the snapshots.
package facturafacil

import (
	"context"
	"log/slog"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
	"github.com/Antoniohuaman/FacturaFacil-sub001/ingestion"
	"github.com/Antoniohuaman/FacturaFacil-sub001/search"
	"github.com/Antoniohuaman/FacturaFacil-sub001/storage"
	"github.com/Antoniohuaman/FacturaFacil-sub001/storage/badger"
)

// Catalog is a persistent store of searchable item collections.
type Catalog struct {
	backend *badger.Backend
	items   storage.ItemRepository
	logger  *slog.Logger
}

// CatalogOption configures a Catalog.
type CatalogOption func(*catalogOptions)

type catalogOptions struct {
	inMemory bool
}

// WithInMemory opens the catalog without touching disk. The file path is
// ignored and all data is lost on Close.
func WithInMemory() CatalogOption {
	return func(o *catalogOptions) {
		o.inMemory = true
	}
}

// OpenCatalog opens the catalog stored at filePath, creating it if needed.
func OpenCatalog(filePath string, opts ...CatalogOption) (*Catalog, error) {
	options := &catalogOptions{}
	for _, opt := range opts {
		opt(options)
	}

	backend, err := badger.OpenBackend(filePath, options.inMemory)
	if err != nil {
		return nil, err
	}

	return &Catalog{
		backend: backend,
		items:   badger.NewCatalogRepository(backend),
		logger:  slog.Default(),
	}, nil
}

func (c *Catalog) Close() error {
	if err := c.items.Close(); err != nil {
		c.logger.Error("error closing item repository", "err", err)
		return err
	}
	if err := c.backend.Close(); err != nil {
		c.logger.Error("error closing backend storage", "err", err)
		return err
	}
	return nil
}

func (c *Catalog) Items() storage.ItemRepository {
	return c.items
}

// DatasetDef names one stored collection and how its section is presented.
type DatasetDef struct {
	Key       string // collection name in storage and section key in results
	Title     string
	RouteBase string
}

// Datasets snapshots the given collections into searchable datasets. A
// collection with no items yields an empty dataset rather than an error, so
// a palette can declare its sections before anything is loaded.
func (c *Catalog) Datasets(ctx context.Context, defs ...DatasetDef) ([]core.Dataset, error) {
	datasets := make([]core.Dataset, 0, len(defs))
	for _, def := range defs {
		items, err := c.items.ListItems(ctx, def.Key)
		if err != nil {
			return nil, err
		}

		ds := core.Dataset{
			Key:       def.Key,
			Title:     def.Title,
			RouteBase: def.RouteBase,
			Items:     make([]core.Item, len(items)),
		}
		for i, item := range items {
			ds.Items[i] = *item
		}
		datasets = append(datasets, ds)
	}
	return datasets, nil
}

func (c *Catalog) NewLoader(opts ...ingestion.Option) (*ingestion.Loader, error) {
	return ingestion.NewLoader(c.items, opts...)
}

func (c *Catalog) NewEngine(opts ...search.Option) (*search.Engine, error) {
	return search.NewEngine(opts...)
}
