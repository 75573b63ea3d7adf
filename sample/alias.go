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
	"math"

	"github.com/pkg/errors"

	"github.com/fentec-project/godraw/internal"
)

// AliasTable answers weighted index selection in O(1) per draw after
// O(n) preprocessing, using Vose's variant of Walker's alias method.
// Row i holds a cutoff in [0, 1] and an alias index; a draw lands on
// row i and returns i when a uniform value falls below the cutoff,
// and the alias otherwise.
//
// A table never mutates after construction, so any number of
// concurrent readers may share it.
type AliasTable struct {
	cutoff []float64
	alias  []int
}

// NewAlias builds an alias table for the given weights. Weights must
// be finite and non-negative, with at least one strictly positive
// entry; violating inputs yield an error wrapping
// internal.ErrInvalidSize or internal.ErrInvalidWeights.
func NewAlias(weights []float64) (*AliasTable, error) {
	n := len(weights)
	if n < 1 {
		return nil, errors.Wrap(internal.ErrInvalidSize, "alias table needs at least one weight")
	}

	sum := 0.0
	for i, w := range weights {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return nil, errors.Wrapf(internal.ErrInvalidWeights, "weight %d is %v", i, w)
		}
		sum += w
	}
	if sum <= 0 {
		return nil, errors.Wrap(internal.ErrInvalidWeights, "weights sum to zero")
	}

	// Scale every weight so its expected value is 1, then split the
	// indices into those carrying less than their fair share of
	// probability mass and those carrying at least their share.
	scaled := make([]float64, n)
	for i, w := range weights {
		scaled[i] = float64(n) * w / sum
	}

	small := make([]int, 0, n)
	large := make([]int, 0, n)
	for i, s := range scaled {
		if s < 1 {
			small = append(small, i)
		} else {
			large = append(large, i)
		}
	}

	cutoff := make([]float64, n)
	alias := make([]int, n)

	// Each step settles one deficient row by topping it up from a
	// surplus row, so the loop terminates after at most n-1 steps.
	for len(small) > 0 && len(large) > 0 {
		l := small[len(small)-1]
		small = small[:len(small)-1]
		g := large[len(large)-1]
		large = large[:len(large)-1]

		cutoff[l] = scaled[l]
		alias[l] = g

		scaled[g] -= 1 - scaled[l]
		if scaled[g] < 1 {
			small = append(small, g)
		} else {
			large = append(large, g)
		}
	}

	// Rounding can leave leftovers in either list; each such row keeps
	// its full probability mass.
	for _, i := range large {
		cutoff[i], alias[i] = 1, i
	}
	for _, i := range small {
		cutoff[i], alias[i] = 1, i
	}

	return &AliasTable{cutoff: cutoff, alias: alias}, nil
}

// Len returns the number of rows in the table.
func (t *AliasTable) Len() int {
	return len(t.cutoff)
}

// Index resolves a pair of uniform draws, a row i in [0, n) and a
// value u in [0, 1), to a sampled index. The result is always in
// [0, n) and always an index whose original weight was positive.
func (t *AliasTable) Index(i int, u float64) int {
	if u < t.cutoff[i] {
		return i
	}
	return t.alias[i]
}

// Prob returns the exact marginal probability of index i being
// selected: the mass of its own row plus the mass it receives as the
// alias of other rows. For a well-formed table this equals
// weights[i] / sum(weights) up to floating point rounding.
func (t *AliasTable) Prob(i int) float64 {
	p := t.cutoff[i]
	for j, a := range t.alias {
		if a == i {
			p += 1 - t.cutoff[j]
		}
	}
	return p / float64(len(t.cutoff))
}
