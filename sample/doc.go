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

// Package sample implements fast, statistically exact sampling from
// discrete distributions.
//
// Package sample provides the Source interface describing a supply of
// uniform random draws, together with samplers built on top of it:
// an alias table for O(1) weighted index selection, sequential
// selection of a uniformly random k-element subset of {0,...,n-1},
// and Fisher-Yates shuffling.
//
// All samplers take their randomness through an explicit Source so
// that they stay free of hidden shared state and can be driven by a
// deterministic source in tests.
package sample
