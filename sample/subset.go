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

// SubsetIterator produces a uniformly random k-element subset of
// {0,...,n-1}, one element per call to Next, in strictly increasing
// order. It implements sequential selection (Knuth's Algorithm S):
// candidate i is inspected with one uniform draw and selected with
// probability remaining/(n-i).
//
// The iterator is single-pass and may be abandoned at any point; no
// draws happen beyond those needed for the elements produced.
type SubsetIterator struct {
	n         int
	next      int
	remaining int
	src       Source
}

// NewSubsetIterator returns an iterator over a random k-subset of
// {0,...,n-1}. It requires 0 <= k <= n and returns an error wrapping
// internal.ErrInvalidSize otherwise.
func NewSubsetIterator(k, n int, src Source) (*SubsetIterator, error) {
	if n < 0 || k < 0 || k > n {
		return nil, errors.Wrapf(internal.ErrInvalidSize,
			"cannot draw %d of %d elements", k, n)
	}
	return &SubsetIterator{n: n, remaining: k, src: src}, nil
}

// Next returns the next selected element, or false once all k elements
// have been produced. Each inspected candidate costs exactly one
// uniform draw, including the candidate that triggers selection.
func (it *SubsetIterator) Next() (int, bool) {
	for it.remaining > 0 {
		i := it.next
		it.next++
		if float64(it.n-i)*it.src.Float64() < float64(it.remaining) {
			it.remaining--
			return i, true
		}
	}
	return 0, false
}

// Subset draws a uniformly random k-element subset of {0,...,n-1},
// returned in strictly increasing order. Every size-k subset is
// equally likely.
func Subset(k, n int, src Source) ([]int, error) {
	it, err := NewSubsetIterator(k, n, src)
	if err != nil {
		return nil, err
	}
	out := make([]int, 0, k)
	for v, ok := it.Next(); ok; v, ok = it.Next() {
		out = append(out, v)
	}
	return out, nil
}
