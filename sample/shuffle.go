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

// Swap is a single exchange step of a shuffle, satisfying 0 <= J <= I.
type Swap struct {
	I, J int
}

// SwapSequence generates the n-1 Fisher-Yates swaps for a sequence of
// length n, each consuming one bounded integer draw. Applying them in
// order to any sequence of length n yields each of the n! permutations
// with equal probability. For n < 2 the sequence is empty.
func SwapSequence(n int, src Source) []Swap {
	if n < 2 {
		return nil
	}
	swaps := make([]Swap, 0, n-1)
	for i := n; i >= 2; i-- {
		swaps = append(swaps, Swap{I: i - 1, J: src.Intn(i)})
	}
	return swaps
}

// ApplySwaps applies a swap sequence to seq in place. A swap with
// I == J leaves the sequence unchanged.
func ApplySwaps[T any](seq []T, swaps []Swap) {
	for _, s := range swaps {
		if s.I != s.J {
			seq[s.I], seq[s.J] = seq[s.J], seq[s.I]
		}
	}
}

// Shuffle permutes seq uniformly at random in place, consuming
// len(seq)-1 bounded integer draws.
func Shuffle[T any](seq []T, src Source) {
	for i := len(seq); i >= 2; i-- {
		j := src.Intn(i)
		if j != i-1 {
			seq[i-1], seq[j] = seq[j], seq[i-1]
		}
	}
}

// Perm returns a uniformly random permutation of {0,...,n-1}.
func Perm(n int, src Source) []int {
	p := make([]int, n)
	for i := range p {
		p[i] = i
	}
	ApplySwaps(p, SwapSequence(n, src))
	return p
}
