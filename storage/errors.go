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


package storage

import "errors"

var (
	// ErrNotFound indicates that the requested item was not found.
	ErrNotFound = errors.New("item not found")

	// ErrEmptyCollection indicates a missing collection name.
	ErrEmptyCollection = errors.New("collection name required")

	// ErrEmptyItemID indicates an item without an identifier.
	ErrEmptyItemID = errors.New("item id required")

	// ErrTrailingData indicates bytes left over after decoding a record.
	ErrTrailingData = errors.New("trailing data after record")
)
