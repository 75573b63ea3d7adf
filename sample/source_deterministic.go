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
	"encoding/binary"

	"golang.org/x/crypto/salsa20"
)

// DeterministicSource is a Source whose draws are a pure function of a
// 32-byte key: the same key always yields the same sequence. The
// stream is generated with the salsa20 cipher, one keystream block per
// draw, with the block counter used as the nonce.
type DeterministicSource struct {
	key *[32]byte
	ctr uint64
}

// NewDeterministicSource returns a DeterministicSource generating its
// draws from the given key.
func NewDeterministicSource(key *[32]byte) *DeterministicSource {
	return &DeterministicSource{key: key}
}

// Float64 returns a uniform value in [0, 1).
func (d *DeterministicSource) Float64() float64 {
	return float01(d.next)
}

// Intn returns a uniform value in [0, n). It panics when n <= 0.
func (d *DeterministicSource) Intn(n int) int {
	return intn(d.next, n)
}

func (d *DeterministicSource) next() uint64 {
	var in, out, nonce [8]byte
	binary.LittleEndian.PutUint64(nonce[:], d.ctr)
	d.ctr++
	salsa20.XORKeyStream(out[:], in[:], nonce[:], d.key)
	return binary.LittleEndian.Uint64(out[:])
}
