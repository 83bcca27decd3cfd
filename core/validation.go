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


package core

import "fmt"

// ValidateItem validates an Item before it enters the catalog.
//
// Validation rules:
//   - Label must not be empty
//   - Keyword and numeric field weights must not be negative
//
// NOT validated:
//   - ID (assigned from content at ingestion when empty)
//   - All other fields (optional; absent fields never contribute to scoring)
func ValidateItem(item *Item) error {
	if item == nil {
		return fmt.Errorf("%w: item is nil", ErrInvalidItem)
	}

	if item.Label == "" {
		return fmt.Errorf("%w: %w", ErrInvalidItem, ErrEmptyLabel)
	}

	for _, kw := range item.Keywords {
		if kw.Weight < 0 {
			return fmt.Errorf("%w: %w: keyword %q", ErrInvalidItem, ErrNegativeWeight, kw.Value)
		}
	}
	for _, nf := range item.Numerics {
		if nf.Weight < 0 {
			return fmt.Errorf("%w: %w: numeric value %v", ErrInvalidItem, ErrNegativeWeight, nf.Value)
		}
	}

	return nil
}
