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

// Package solver implements the optimal-assignment algorithms of the pipeline.
//
// Given an m×n weight matrix with m ≤ n, a solver finds an injective mapping of the m
// agents onto distinct slots maximizing the total weight (the linear assignment problem).
//
// Key Components:
//
//   - Solver: strategy interface shared by all algorithms
//   - Hungarian: primal-dual Kuhn–Munkres with shortest augmenting paths, O(m²·n)
//   - Exhaustive: brute-force enumeration, for cross-checking small instances
//
// Algorithm:
//
// Hungarian keeps a potential per agent row (u) and per slot column (v) such that
// u[i] + v[j] never exceeds the cost of edge (i, j), with equality on every matched
// edge. Agents are inserted one at a time, in input order. Each insertion grows an
// alternating tree through the equality subgraph; when the tree cannot be extended the
// potentials are shifted by the minimum slack, and the search resumes until a free
// slot is reached. The path is then flipped, growing the matching by one. When every
// agent is matched, the matched weight equals Σu + Σv, which certifies optimality.
//
// Example usage:
//
//	s, err := solver.NewSolver(solver.HungarianStrategy)
//	if err != nil {
//	    return err
//	}
//	assignment, err := s.Solve(ctx, weights)
//	if err != nil {
//	    return err
//	}
//	for i := range assignment.Len() {
//	    log.Info("assigned", "agent", i, "slot", assignment.Slot(i)+1)
//	}
//
// The solver is designed to be:
//   - Deterministic: among equal-slack candidates the lowest slot index is taken
//   - Self-contained: no external optimization routine
//   - Single-threaded: each augmentation depends on the previous matching
package solver
