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

// Package data wraps weight vectors handed to the samplers in
// package sample.
package data

import (
	"math"

	"github.com/pkg/errors"

	"github.com/fentec-project/godraw/internal"
	"github.com/fentec-project/godraw/sample"
)

// Vector wraps a slice of float64 weights.
type Vector []float64

// NewVector returns a new Vector instance.
func NewVector(weights []float64) Vector {
	return Vector(weights)
}

// NewRandomVector returns a new Vector instance with elements drawn
// uniformly from [0, 1) by the provided sample.Source.
func NewRandomVector(len int, src sample.Source) Vector {
	vec := make([]float64, len)
	for i := 0; i < len; i++ {
		vec[i] = src.Float64()
	}
	return NewVector(vec)
}

// Sum returns the sum of the vector's elements.
func (v Vector) Sum() float64 {
	sum := 0.0
	for _, w := range v {
		sum += w
	}
	return sum
}

// Check verifies that the vector is a usable weight vector: non-empty,
// all elements finite and non-negative, and at least one element
// strictly positive. It returns an error wrapping
// internal.ErrInvalidSize or internal.ErrInvalidWeights otherwise.
func (v Vector) Check() error {
	if len(v) < 1 {
		return errors.Wrap(internal.ErrInvalidSize, "weight vector is empty")
	}
	for i, w := range v {
		if w < 0 || math.IsNaN(w) || math.IsInf(w, 0) {
			return errors.Wrapf(internal.ErrInvalidWeights, "weight %d is %v", i, w)
		}
	}
	if v.Sum() <= 0 {
		return errors.Wrap(internal.ErrInvalidWeights, "weights sum to zero")
	}
	return nil
}

// Normalize returns a copy of the vector scaled so its elements sum
// to 1. It fails when the vector is not a valid weight vector.
func (v Vector) Normalize() (Vector, error) {
	if err := v.Check(); err != nil {
		return nil, err
	}
	sum := v.Sum()
	norm := make([]float64, len(v))
	for i, w := range v {
		norm[i] = w / sum
	}
	return NewVector(norm), nil
}
