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

import "slices"

// Assignment is an injective mapping from agent index to 0-indexed slot, together
// with its total weight. It is immutable once built.
type Assignment struct {
	total int64
	slots []int
}

// NewAssignment builds an Assignment from a per-agent slot list. The slice is copied.
func NewAssignment(total int64, slots []int) Assignment {
	return Assignment{total: total, slots: slices.Clone(slots)}
}

// Total returns the sum of the selected weights.
func (a Assignment) Total() int64 { return a.total }

// Len returns the number of assigned agents.
func (a Assignment) Len() int { return len(a.slots) }

// Slot returns the 0-indexed slot assigned to agent i.
func (a Assignment) Slot(i int) int { return a.slots[i] }

// Slots returns a copy of the per-agent slot list.
func (a Assignment) Slots() []int { return slices.Clone(a.slots) }

// WeightIn sums the entries of m selected by the assignment.
func (a Assignment) WeightIn(m *WeightMatrix) int64 {
	var sum int64
	for i, j := range a.slots {
		sum += m.At(i, j)
	}
	return sum
}
