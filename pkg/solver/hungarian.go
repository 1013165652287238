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
	"math"

	ctrl "sigs.k8s.io/controller-runtime"

	"github.com/samueltardieu/assignments/internal/logging"
	"github.com/samueltardieu/assignments/pkg/core"
)

// Hungarian solves the assignment problem with the shortest-augmenting-path variant
// of the Kuhn–Munkres method. It is stateless and safe to reuse.
type Hungarian struct{}

// NewHungarian creates a Hungarian solver.
func NewHungarian() *Hungarian {
	return &Hungarian{}
}

// Solve returns a maximum-weight assignment. Agents are inserted in row order and,
// among equally tight slots, the lowest slot index is preferred, so identical inputs
// always produce identical assignments.
func (h *Hungarian) Solve(ctx context.Context, weights *core.WeightMatrix) (core.Assignment, error) {
	if err := checkShape(weights); err != nil {
		return core.Assignment{}, err
	}
	m, n := weights.Rows(), weights.Cols()
	if m == 0 {
		return core.NewAssignment(0, []int{}), nil
	}
	logger := ctrl.LoggerFrom(ctx)

	// Maximizing w is minimizing -w. Arrays are 1-indexed; index 0 is the virtual
	// column from which every search starts.
	cost := func(i, j int) int64 { return -weights.At(i-1, j-1) }

	const inf = math.MaxInt64
	u := make([]int64, m+1)    // row potentials
	v := make([]int64, n+1)    // column potentials
	p := make([]int, n+1)      // p[j] = row matched to column j, 0 if free
	way := make([]int, n+1)    // way[j] = previous column on the alternating path
	minv := make([]int64, n+1) // minv[j] = smallest slack reaching column j
	used := make([]bool, n+1)

	for i := 1; i <= m; i++ {
		if err := ctx.Err(); err != nil {
			return core.Assignment{}, err
		}
		p[0] = i
		j0 := 0
		for j := range minv {
			minv[j] = inf
			used[j] = false
		}
		steps := 0
		for {
			used[j0] = true
			i0 := p[j0]
			delta := int64(inf)
			j1 := 0
			for j := 1; j <= n; j++ {
				if used[j] {
					continue
				}
				cur := cost(i0, j) - u[i0] - v[j]
				if cur < minv[j] {
					minv[j] = cur
					way[j] = j0
				}
				// strict comparison keeps the lowest column on ties
				if minv[j] < delta {
					delta = minv[j]
					j1 = j
				}
			}
			for j := 0; j <= n; j++ {
				if used[j] {
					u[p[j]] += delta
					v[j] -= delta
				} else {
					minv[j] -= delta
				}
			}
			j0 = j1
			steps++
			if p[j0] == 0 {
				break
			}
		}
		// flip the augmenting path
		for j0 != 0 {
			j1 := way[j0]
			p[j0] = p[j1]
			j0 = j1
		}
		logger.V(logging.TRACE).Info("Agent inserted", "agent", i-1, "treeSteps", steps)
	}

	slots := make([]int, m)
	for j := 1; j <= n; j++ {
		if p[j] != 0 {
			slots[p[j]-1] = j - 1
		}
	}

	var total, dual int64
	for i, j := range slots {
		total += weights.At(i, j)
	}
	for i := 1; i <= m; i++ {
		dual += u[i]
	}
	for j := 1; j <= n; j++ {
		dual += v[j]
	}
	if -dual != total {
		panic(fmt.Sprintf("solver: duality gap: primal %d, dual %d", total, -dual))
	}

	logger.V(logging.DEBUG).Info("Hungarian solve completed", "agents", m, "slots", n, "total", total)
	return core.NewAssignment(total, slots), nil
}
