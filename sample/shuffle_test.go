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

package sample_test

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fentec-project/godraw/sample"
)

func TestSwapSequence(t *testing.T) {
	src := sample.NewMersenneTwisterSeeded(3)

	assert.Nil(t, sample.SwapSequence(0, src))
	assert.Nil(t, sample.SwapSequence(1, src))

	for _, n := range []int{2, 5, 100} {
		swaps := sample.SwapSequence(n, src)
		require.Len(t, swaps, n-1)
		for k, s := range swaps {
			assert.Equal(t, n-1-k, s.I, "swap positions must descend from n-1")
			assert.True(t, s.J >= 0 && s.J <= s.I, "swap partner out of range")
		}
	}
}

func TestApplySwaps(t *testing.T) {
	seq := []string{"a", "b", "c", "d"}
	sample.ApplySwaps(seq, []sample.Swap{{I: 3, J: 0}, {I: 2, J: 2}, {I: 1, J: 0}})
	assert.Equal(t, []string{"b", "d", "c", "a"}, seq)

	same := []int{1, 2, 3}
	sample.ApplySwaps(same, nil)
	assert.Equal(t, []int{1, 2, 3}, same)
}

func TestPerm(t *testing.T) {
	src := sample.NewMersenneTwisterSeeded(9)

	assert.Empty(t, sample.Perm(0, src))
	assert.Equal(t, []int{0}, sample.Perm(1, src))

	perm := sample.Perm(100, src)
	seen := make([]bool, 100)
	for _, v := range perm {
		require.True(t, v >= 0 && v < 100)
		assert.False(t, seen[v], "permutation repeats element %d", v)
		seen[v] = true
	}
}

func TestShuffleMatchesSwapSequence(t *testing.T) {
	// Shuffle and SwapSequence+ApplySwaps draw in the same order, so
	// equal seeds must yield equal permutations.
	src1 := sample.NewMersenneTwisterSeeded(31)
	src2 := sample.NewMersenneTwisterSeeded(31)

	direct := make([]int, 50)
	for i := range direct {
		direct[i] = i
	}
	sample.Shuffle(direct, src1)
	assert.Equal(t, sample.Perm(50, src2), direct)
}

func TestShuffleUniformity(t *testing.T) {
	const trials = 24000
	src := sample.NewMersenneTwisterSeeded(41)

	counts := make(map[string]int)
	for i := 0; i < trials; i++ {
		perm := sample.Perm(4, src)
		counts[fmt.Sprint(perm)]++
	}
	// all 4! arrangements must show up
	require.Len(t, counts, 24)

	obs := make([]int, 0, 24)
	for _, c := range counts {
		obs = append(obs, c)
	}
	p := chiSquareUniformP(obs, trials)
	assert.True(t, p > 0.001, "permutation frequencies are too far from uniform (p = %v)", p)
}
