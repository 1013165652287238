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

package report

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/samueltardieu/assignments/pkg/core"
)

func buildMatrix(rows [][]int64) *core.WeightMatrix {
	m := core.NewWeightMatrix(len(rows), len(rows[0]))
	for i, row := range rows {
		for j, w := range row {
			m.Set(i, j, w)
		}
	}
	return m
}

func TestBuild(t *testing.T) {
	prefs := core.PreferenceSet{
		{Name: "Alice", Choices: []int{1, 2}},
		{Name: "Bob", Choices: []int{2, 1}},
		{Name: "Carol", Choices: []int{1}},
		{Name: "Dave", Choices: []int{4, 1}},
	}
	weights := buildMatrix([][]int64{
		{16, 12, 0, 0},
		{12, 16, 0, 0},
		{16, 0, 0, 0},
		{12, 0, 0, 16},
	})
	assignment := core.NewAssignment(48, []int{0, 1, 2, 3})

	got, err := Build(prefs, weights, assignment)
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}

	want := &Report{
		Agents: []AgentResult{
			{Name: "Alice", Slot: 1, Rank: 1, Weight: 16},
			{Name: "Bob", Slot: 2, Rank: 1, Weight: 16},
			{Name: "Carol", Slot: 3, Rank: Unranked, Weight: 0},
			{Name: "Dave", Slot: 4, Rank: 1, Weight: 16},
		},
		Ranks:             []RankCount{{Rank: 1, Count: 3}},
		Unranked:          1,
		TotalSatisfaction: 48,
		NumSlots:          4,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Build() mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildRanksAscending(t *testing.T) {
	prefs := core.PreferenceSet{
		{Name: "A", Choices: []int{2, 3, 1}},
		{Name: "B", Choices: []int{1, 2}},
		{Name: "C", Choices: []int{1, 3}},
	}
	weights := buildMatrix([][]int64{
		{1, 3, 2},
		{3, 2, 0},
		{3, 0, 2},
	})
	// A gets its 3rd choice, B its 2nd, C its 2nd
	got, err := Build(prefs, weights, core.NewAssignment(5, []int{0, 1, 2}))
	if err != nil {
		t.Fatalf("Build() unexpected error: %v", err)
	}
	want := []RankCount{{Rank: 2, Count: 2}, {Rank: 3, Count: 1}}
	if diff := cmp.Diff(want, got.Ranks); diff != "" {
		t.Errorf("Ranks mismatch (-want +got):\n%s", diff)
	}
	if got.Unranked != 0 {
		t.Errorf("Unranked = %d, want 0", got.Unranked)
	}
}

func TestBuildInconsistentTotal(t *testing.T) {
	prefs := core.PreferenceSet{{Name: "A", Choices: []int{1}}}
	weights := buildMatrix([][]int64{{4}})
	_, err := Build(prefs, weights, core.NewAssignment(5, []int{0}))
	if !errors.Is(err, ErrInconsistentTotal) {
		t.Fatalf("Build() error = %v, want ErrInconsistentTotal", err)
	}
}

func TestBuildLengthMismatch(t *testing.T) {
	prefs := core.PreferenceSet{{Name: "A"}, {Name: "B"}}
	weights := buildMatrix([][]int64{{0, 0}, {0, 0}})
	if _, err := Build(prefs, weights, core.NewAssignment(0, []int{0})); err == nil {
		t.Fatal("Build() expected error for mismatched lengths")
	}
}
