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

// Agent is an entity needing exactly one slot.
type Agent struct {
	// Name uniquely identifies the agent within a PreferenceSet.
	Name string
	// Choices are 1-based slot identifiers, most preferred first.
	Choices []int
}

// Rank returns the 0-indexed position of slot (1-based) in the agent's choices,
// or -1 when the agent did not list it.
func (a Agent) Rank(slot int) int {
	return slices.Index(a.Choices, slot)
}

// PreferenceSet is the ordered collection of agents. It is built once from input
// and never mutated afterwards.
type PreferenceSet []Agent

// Names returns the agent names in input order.
func (p PreferenceSet) Names() []string {
	names := make([]string, len(p))
	for i, a := range p {
		names[i] = a.Name
	}
	return names
}
