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


// Package storage provides the storage abstraction layer for the item
// catalog feeding the command-palette search.
//
// This package defines the repository interface that decouples storage
// implementation from the search engine. The engine itself never touches
// storage: callers assemble dataset snapshots from a repository and hand
// them to the engine by value.
//
// Public constructors in backend packages return the storage.ItemRepository
// interface rather than concrete types, so alternative backends and test
// doubles can be swapped in without touching consumers.
//
// All repository implementations must be thread-safe and support
// concurrent access from multiple goroutines. All methods accept
// context.Context for cancellation; pass context.Background() when no
// timeout applies.
package storage
