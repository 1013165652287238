/*
Copyright 2025.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package core

import "fmt"

// WeightMatrix is a dense agent×slot grid of non-negative weights stored row-major
// in a single owned slice. Indexing outside the bounds panics.
type WeightMatrix struct {
	rows, cols int
	data       []int64
}

// NewWeightMatrix returns a zeroed rows×cols matrix.
func NewWeightMatrix(rows, cols int) *WeightMatrix {
	if rows < 0 || cols < 0 {
		panic(fmt.Sprintf("core: invalid matrix shape %dx%d", rows, cols))
	}
	return &WeightMatrix{
		rows: rows,
		cols: cols,
		data: make([]int64, rows*cols),
	}
}

// Rows returns the number of agents.
func (m *WeightMatrix) Rows() int { return m.rows }

// Cols returns the number of slots.
func (m *WeightMatrix) Cols() int { return m.cols }

// At returns the weight of assigning agent i to the 0-indexed slot j.
func (m *WeightMatrix) At(i, j int) int64 {
	return m.data[m.index(i, j)]
}

// Set stores a non-negative weight for agent i and the 0-indexed slot j.
func (m *WeightMatrix) Set(i, j int, w int64) {
	if w < 0 {
		panic(fmt.Sprintf("core: negative weight %d at (%d, %d)", w, i, j))
	}
	m.data[m.index(i, j)] = w
}

// Max returns the largest entry, 0 for an empty matrix.
func (m *WeightMatrix) Max() int64 {
	var best int64
	for _, w := range m.data {
		best = max(best, w)
	}
	return best
}

func (m *WeightMatrix) index(i, j int) int {
	if i < 0 || i >= m.rows || j < 0 || j >= m.cols {
		panic(fmt.Sprintf("core: index (%d, %d) out of bounds for %dx%d matrix", i, j, m.rows, m.cols))
	}
	return i*m.cols + j
}
