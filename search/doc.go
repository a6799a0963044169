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


// Package search ranks catalog products against a free-text query.
//
// The Ranker embeds the query once, computes the cosine similarity with
// every precomputed catalog vector and returns the products that clear the
// relevance threshold:
//
//   - items must have raw similarity strictly greater than the threshold
//     (0.1 by default)
//   - results are sorted by raw similarity, highest first; ties keep
//     catalog order
//   - the published score is the raw similarity as a percentage rounded
//     to two decimals
//
// An empty result is a normal outcome and is returned as an empty slice.
package search
