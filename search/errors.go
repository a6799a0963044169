// Copyright 2025 Poiesic Systems
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


package search

import "errors"

var (
	// ErrEmbedderRequired is returned when Rank is called without an embedder.
	ErrEmbedderRequired = errors.New("embedder required")

	// ErrCatalogMismatch is returned when products and vectors differ in length.
	ErrCatalogMismatch = errors.New("catalog and vectors differ in length")

	// ErrDimensionMismatch is returned when two vectors differ in dimensionality.
	ErrDimensionMismatch = errors.New("vector dimensions differ")

	// ErrEmptyQueryVector is returned when the embedder returns no values for the query.
	ErrEmptyQueryVector = errors.New("query embedding is empty")

	// ErrInvalidThreshold is returned for thresholds outside [-1, 1).
	ErrInvalidThreshold = errors.New("threshold must be in [-1, 1)")
)
