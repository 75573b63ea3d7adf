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
	"time"

	"gonum.org/v1/gonum/mathext/prng"
)

// Source supplies the uniform random draws that all samplers in this
// package consume.
//
// Float64 must return a value uniform over [0, 1); it may return 0 but
// must never return 1. Intn must return a value uniform over [0, n) and
// may panic when n <= 0. A *math/rand.Rand satisfies Source directly.
type Source interface {
	Float64() float64
	Intn(n int) int
}

// MersenneTwister is a Source backed by the MT19937 generator. It is
// not safe for concurrent use; give each goroutine its own instance.
type MersenneTwister struct {
	rng *prng.MT19937
}

// NewMersenneTwister returns a MersenneTwister seeded from the clock.
func NewMersenneTwister() *MersenneTwister {
	return NewMersenneTwisterSeeded(uint64(time.Now().UnixNano()))
}

// NewMersenneTwisterSeeded returns a MersenneTwister with a fixed seed,
// producing a reproducible stream of draws.
func NewMersenneTwisterSeeded(seed uint64) *MersenneTwister {
	src := prng.NewMT19937()
	src.Seed(seed)
	return &MersenneTwister{rng: src}
}

// Float64 returns a uniform value in [0, 1).
func (m *MersenneTwister) Float64() float64 {
	return float01(m.rng.Uint64)
}

// Intn returns a uniform value in [0, n). It panics when n <= 0.
func (m *MersenneTwister) Intn(n int) int {
	return intn(m.rng.Uint64, n)
}

// float01 maps one raw 64-bit word onto [0, 1) using its top 53 bits,
// so the result is always strictly below 1.
func float01(next func() uint64) float64 {
	return float64(next()>>11) / (1 << 53)
}

// intn maps raw 64-bit words onto [0, n) without modulo bias: draws
// above the largest multiple of n representable in 63 bits are
// rejected and redrawn.
func intn(next func() uint64, n int) int {
	if n <= 0 {
		panic("sample: Intn called with non-positive bound")
	}
	maximum := uint64(1<<63 - 1 - (1<<63)%uint64(n))
	v := next() >> 1
	for v > maximum {
		v = next() >> 1
	}
	return int(v % uint64(n))
}
