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

// Package report derives per-agent outcomes and aggregate statistics from an assignment.
package report

import (
	"errors"
	"fmt"
	"sort"

	"github.com/samueltardieu/assignments/pkg/core"
)

// ErrInconsistentTotal indicates that the solver's total does not match the weights
// of the slots it assigned.
var ErrInconsistentTotal = errors.New("inconsistent total satisfaction")

// Unranked marks an agent whose assigned slot is absent from its preference list.
const Unranked = 0

// AgentResult is the outcome of one agent.
type AgentResult struct {
	Name string
	// Slot is the assigned 1-based slot.
	Slot int
	// Rank is the 1-based position of Slot in the agent's choices, or Unranked.
	Rank int
	// Weight is the matrix entry for the agent and its slot.
	Weight int64
}

// Ranked reports whether the agent got one of the slots it listed.
func (r AgentResult) Ranked() bool {
	return r.Rank != Unranked
}

// RankCount is the number of agents that obtained a given rank.
type RankCount struct {
	Rank  int
	Count int
}

// Report summarizes an assignment.
type Report struct {
	Agents []AgentResult
	// Ranks counts agents per achieved rank, in ascending rank order. Ranks nobody
	// achieved are omitted.
	Ranks    []RankCount
	Unranked int
	// TotalSatisfaction is the solver's total weight.
	TotalSatisfaction int64
	NumSlots          int
}

// Build computes the report for assignment over prefs. weights must be the matrix
// the assignment was computed from. Inputs are not modified.
func Build(prefs core.PreferenceSet, weights *core.WeightMatrix, assignment core.Assignment) (*Report, error) {
	if assignment.Len() != len(prefs) {
		return nil, fmt.Errorf("assignment covers %d agents, preferences list %d", assignment.Len(), len(prefs))
	}

	r := &Report{
		Agents:            make([]AgentResult, len(prefs)),
		TotalSatisfaction: assignment.Total(),
		NumSlots:          weights.Cols(),
	}
	counts := make(map[int]int)
	var sum int64
	for i, agent := range prefs {
		slot := assignment.Slot(i) + 1
		res := AgentResult{
			Name:   agent.Name,
			Slot:   slot,
			Rank:   agent.Rank(slot) + 1,
			Weight: weights.At(i, slot-1),
		}
		if res.Ranked() {
			counts[res.Rank]++
		} else {
			r.Unranked++
		}
		sum += res.Weight
		r.Agents[i] = res
	}
	if sum != assignment.Total() {
		return nil, fmt.Errorf("%w: solver reported %d, assigned weights sum to %d",
			ErrInconsistentTotal, assignment.Total(), sum)
	}

	r.Ranks = make([]RankCount, 0, len(counts))
	for rank, count := range counts {
		r.Ranks = append(r.Ranks, RankCount{Rank: rank, Count: count})
	}
	sort.Slice(r.Ranks, func(i, j int) bool {
		return r.Ranks[i].Rank < r.Ranks[j].Rank
	})
	return r, nil
}
