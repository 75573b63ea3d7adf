/*
 * Copyright (c) 2018 XLAB d.o.o
 *
 * Licensed under the Apache License, Version 2.0 (the "License");
 * you may not use this file except in compliance with the License.
 * You may obtain a copy of the License at
 *
 * http://www.apache.org/licenses/LICENSE-2.0
 *
 * Unless required by applicable law or agreed to in writing, software
 * distributed under the License is distributed on an "AS IS" BASIS,
 * WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
 * See the License for the specific language governing permissions and
 * limitations under the License.
 */

package sample

import (
	"github.com/pkg/errors"

	"github.com/fentec-project/godraw/internal"
)

// SampleIndex draws one index from the table's distribution: index i
// is returned with probability weights[i] / sum(weights). It consumes
// exactly one bounded integer draw and one real draw from src.
func SampleIndex(t *AliasTable, src Source) int {
	return t.Index(src.Intn(t.Len()), src.Float64())
}

// Pick draws one of items with probability proportional to its weight
// in the table. It returns an error wrapping internal.ErrLengthMismatch
// when the item slice and the table disagree in size.
func Pick[T any](items []T, t *AliasTable, src Source) (T, error) {
	if len(items) != t.Len() {
		var zero T
		return zero, errors.Wrapf(internal.ErrLengthMismatch,
			"%d items for a table of size %d", len(items), t.Len())
	}
	return items[SampleIndex(t, src)], nil
}

// Weighted couples an alias table with a randomness source for
// repeated weighted index draws.
type Weighted struct {
	table *AliasTable
	src   Source
}

// NewWeighted returns a Weighted sampler over the given weights,
// drawing its randomness from src.
func NewWeighted(weights []float64, src Source) (*Weighted, error) {
	t, err := NewAlias(weights)
	if err != nil {
		return nil, errors.Wrap(err, "cannot build weighted sampler")
	}
	return &Weighted{table: t, src: src}, nil
}

// Sample draws one index from the sampler's distribution.
func (w *Weighted) Sample() int {
	return SampleIndex(w.table, w.src)
}

// Table returns the sampler's alias table. The table is immutable and
// may be shared with other samplers.
func (w *Weighted) Table() *AliasTable {
	return w.table
}
