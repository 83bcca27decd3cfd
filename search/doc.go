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


// Package search implements the ranking engine behind the global
// command-palette search bar.
//
// The Engine type takes a free-text query and a snapshot of entity
// datasets (products, customers, and so on), tokenizes the query once,
// scores every record against its weighted text and numeric fields, and
// groups the winners into fixed-size per-entity sections. A separate
// Highlight helper splits a rendered field into matching and non-matching
// segments for presentation.
//
// All computation is synchronous, in-memory and deterministic: the result
// of Search is a pure function of the query and the dataset snapshot it
// was given. Debouncing, memoization and navigation are caller concerns.
package search
