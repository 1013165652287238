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

// Package core provides the domain model shared by every stage of the assignment pipeline.
//
// This package contains the entities the solver and the reporter reason about:
//
//   - Agent: an entity needing exactly one slot, with a ranked list of preferred slots
//   - PreferenceSet: the ordered collection of agents read from input
//   - CostModel: the conversion from a preference rank into a numeric weight
//   - WeightMatrix: the agent×slot grid of non-negative weights fed to the solver
//   - Assignment: the solver's output, an injective agent→slot mapping
//
// Example usage:
//
//	prefs := core.PreferenceSet{
//	    {Name: "Alice", Choices: []int{1, 2}},
//	    {Name: "Bob", Choices: []int{2, 1}},
//	}
//	if err := core.Validate(prefs, 2); err != nil {
//	    return err
//	}
//
//	model := core.CostModel{Mult: 4, Power: 1}
//	w, err := model.Weight(0, 2) // 8
//
// The core package is designed to be:
//   - Immutable where possible (values are built once and only read afterwards)
//   - Independent of input formats and presentation
//   - Well-tested with comprehensive unit tests
package core
