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

package solver

import (
	"context"
	"fmt"

	"github.com/samueltardieu/assignments/pkg/core"
)

// DefaultExhaustiveLimit bounds the number of injective mappings Exhaustive enumerates.
const DefaultExhaustiveLimit = 50_000_000

// Exhaustive enumerates every injective mapping and keeps the best one. Among optimal
// mappings it returns the lexicographically smallest slot list. Use it only to
// cross-check small instances.
type Exhaustive struct {
	limit int64
}

// NewExhaustive creates an Exhaustive solver that refuses instances with more than
// limit candidate mappings.
func NewExhaustive(limit int64) *Exhaustive {
	return &Exhaustive{limit: limit}
}

// Solve returns the optimal assignment by trying every mapping. It fails with
// ErrShape when there are more agents than slots and with ErrTooLarge above the limit.
func (e *Exhaustive) Solve(ctx context.Context, weights *core.WeightMatrix) (core.Assignment, error) {
	if err := checkShape(weights); err != nil {
		return core.Assignment{}, err
	}
	m, n := weights.Rows(), weights.Cols()
	if count, ok := mappings(m, n, e.limit); !ok {
		return core.Assignment{}, fmt.Errorf("%w: more than %d mappings (%d agents, %d slots)", ErrTooLarge, e.limit, m, n)
	} else if count == 0 {
		return core.NewAssignment(0, []int{}), nil
	}

	current := make([]int, m)
	best := make([]int, m)
	taken := make([]bool, n)
	bestTotal := int64(-1)

	var search func(i int, total int64) error
	search = func(i int, total int64) error {
		if i == m {
			if total > bestTotal {
				bestTotal = total
				copy(best, current)
			}
			return nil
		}
		if i < 2 {
			if err := ctx.Err(); err != nil {
				return err
			}
		}
		for j := range n {
			if taken[j] {
				continue
			}
			taken[j] = true
			current[i] = j
			if err := search(i+1, total+weights.At(i, j)); err != nil {
				return err
			}
			taken[j] = false
		}
		return nil
	}
	if err := search(0, 0); err != nil {
		return core.Assignment{}, err
	}
	return core.NewAssignment(bestTotal, best), nil
}

// mappings returns n!/(n-m)!, or false once it exceeds limit.
func mappings(m, n int, limit int64) (int64, bool) {
	if m == 0 {
		return 0, true
	}
	count := int64(1)
	for k := range m {
		count *= int64(n - k)
		if count > limit {
			return count, false
		}
	}
	return count, true
}
