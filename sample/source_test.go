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
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/fentec-project/godraw/sample"
)

// The stdlib generator satisfies the Source contract directly.
var _ sample.Source = (*rand.Rand)(nil)

// countingSource counts the draws taken from a wrapped source.
type countingSource struct {
	src    sample.Source
	floats int
	ints   int
}

func (c *countingSource) Float64() float64 {
	c.floats++
	return c.src.Float64()
}

func (c *countingSource) Intn(n int) int {
	c.ints++
	return c.src.Intn(n)
}

func testKey(b byte) *[32]byte {
	key := new([32]byte)
	for i := range key {
		key[i] = b
	}
	return key
}

func TestDeterministicSource(t *testing.T) {
	s1 := sample.NewDeterministicSource(testKey(7))
	s2 := sample.NewDeterministicSource(testKey(7))
	s3 := sample.NewDeterministicSource(testKey(8))

	same := true
	for i := 0; i < 100; i++ {
		v1 := s1.Float64()
		v2 := s2.Float64()
		assert.Equal(t, v1, v2, "same key should give the same draws")
		if v1 != s3.Float64() {
			same = false
		}
	}
	assert.False(t, same, "different keys should give different draws")
}

func TestSourceRanges(t *testing.T) {
	sources := []struct {
		name string
		src  sample.Source
	}{
		{"MersenneTwister", sample.NewMersenneTwisterSeeded(42)},
		{"Deterministic", sample.NewDeterministicSource(testKey(1))},
	}

	for _, test := range sources {
		t.Run(test.name, func(t *testing.T) {
			for i := 0; i < 10000; i++ {
				u := test.src.Float64()
				assert.True(t, u >= 0 && u < 1, "Float64 out of [0, 1)")
			}
			for _, n := range []int{1, 2, 3, 7, 1000} {
				seen := make(map[int]bool)
				for i := 0; i < 200; i++ {
					v := test.src.Intn(n)
					assert.True(t, v >= 0 && v < n, "Intn out of [0, n)")
					seen[v] = true
				}
				if n <= 3 {
					assert.Len(t, seen, n, "small ranges should be covered")
				}
			}
		})
	}
}

func TestIntnPanicsOnInvalidBound(t *testing.T) {
	src := sample.NewMersenneTwisterSeeded(1)
	assert.Panics(t, func() { src.Intn(0) })
	assert.Panics(t, func() { src.Intn(-5) })
}
