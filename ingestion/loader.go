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


package ingestion

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"runtime"
	"sync"

	"github.com/panjf2000/ants/v2"

	"github.com/Antoniohuaman/FacturaFacil-sub001/core"
	"github.com/Antoniohuaman/FacturaFacil-sub001/storage"
)

const defaultBatchSize = 64

// Loader streams catalog items from JSON input into an item repository,
// writing batches concurrently through a worker pool.
type Loader struct {
	repository storage.ItemRepository
	pool       *ants.Pool
	batchSize  int
	logger     *slog.Logger
}

// Option configures a Loader.
type Option func(*Loader) error

// WithPoolSize sets the worker pool size for concurrent batch writes.
// Default is runtime.NumCPU() / 2, with a minimum of 1.
func WithPoolSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			size = 1
		}

		if l.pool != nil {
			l.pool.Release()
		}

		pool, err := ants.NewPool(size)
		if err != nil {
			return err
		}
		l.pool = pool
		return nil
	}
}

// WithBatchSize sets how many items are written per storage call.
// Default is 64.
func WithBatchSize(size int) Option {
	return func(l *Loader) error {
		if size < 1 {
			return ErrInvalidBatchSize
		}
		l.batchSize = size
		return nil
	}
}

// WithLogger sets a custom logger.
// Default is slog.Default().
func WithLogger(logger *slog.Logger) Option {
	return func(l *Loader) error {
		if logger == nil {
			logger = slog.Default()
		}
		l.logger = logger
		return nil
	}
}

// NewLoader creates a loader writing to the given repository.
func NewLoader(repository storage.ItemRepository, opts ...Option) (*Loader, error) {
	if repository == nil {
		return nil, ErrRepositoryRequired
	}

	poolSize := runtime.NumCPU() / 2
	if poolSize < 1 {
		poolSize = 1
	}

	pool, err := ants.NewPool(poolSize)
	if err != nil {
		return nil, err
	}

	l := &Loader{
		repository: repository,
		pool:       pool,
		batchSize:  defaultBatchSize,
		logger:     slog.Default(),
	}

	for _, opt := range opts {
		if optErr := opt(l); optErr != nil {
			l.Release()
			return nil, optErr
		}
	}

	return l, nil
}

// Report summarizes a load run.
type Report struct {
	Loaded  int // Items written to storage
	Skipped int // Items rejected by validation
}

// Load decodes a JSON array of items from r and writes them to the given
// collection. Items failing validation are logged and skipped rather than
// failing the run. Items without an ID get one derived from their content.
func (l *Loader) Load(ctx context.Context, collection string, r io.Reader) (Report, error) {
	var report Report

	decoder := json.NewDecoder(r)
	tok, err := decoder.Token()
	if err != nil {
		return report, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '[' {
		return report, ErrExpectedArray
	}

	var (
		wg       sync.WaitGroup
		mu       sync.Mutex
		writeErr error
	)

	flush := func(batch []*core.Item) error {
		wg.Add(1)
		err := l.pool.Submit(func() {
			defer wg.Done()
			if err := l.repository.PutItems(ctx, collection, batch...); err != nil {
				l.logger.Error("error writing item batch", "collection", collection, "err", err)
				mu.Lock()
				if writeErr == nil {
					writeErr = err
				}
				mu.Unlock()
			}
		})
		if err != nil {
			// Task never ran; balance the Add or Wait blocks forever.
			wg.Done()
		}
		return err
	}

	batch := make([]*core.Item, 0, l.batchSize)
	for decoder.More() {
		item := &core.Item{}
		if err := decoder.Decode(item); err != nil {
			wg.Wait()
			return report, err
		}

		if err := core.ValidateItem(item); err != nil {
			l.logger.Warn("skipping invalid item", "collection", collection, "id", item.ID, "err", err)
			report.Skipped++
			continue
		}

		if item.ID == "" {
			item.ID = core.IDFromContent(item.Label, item.Secondary, item.Description)
		}

		batch = append(batch, item)
		report.Loaded++
		if len(batch) >= l.batchSize {
			if err := flush(batch); err != nil {
				wg.Wait()
				return report, err
			}
			batch = make([]*core.Item, 0, l.batchSize)
		}
	}

	if _, err := decoder.Token(); err != nil {
		wg.Wait()
		return report, err
	}

	if len(batch) > 0 {
		if err := flush(batch); err != nil {
			wg.Wait()
			return report, err
		}
	}
	wg.Wait()

	mu.Lock()
	defer mu.Unlock()
	if writeErr != nil {
		return report, writeErr
	}

	l.logger.Info("load completed", "collection", collection,
		"loaded", report.Loaded, "skipped", report.Skipped)
	return report, nil
}

// Release releases the worker pool.
// The loader should not be used after calling Release.
func (l *Loader) Release() {
	if l.pool != nil {
		l.pool.Release()
	}
}
