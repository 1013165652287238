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

import (
	"k8s.io/apimachinery/pkg/util/sets"
)

// Validate checks that prefs is well-formed for numSlots slots.
//
// Agents are scanned in input order and the first violation is returned. For each
// agent the checks run in this order:
//  1. the name was not used by an earlier agent (DuplicateAgent)
//  2. every choice lies in [1, numSlots] (ChoiceOutOfRange)
//  3. no choice is repeated (DuplicateChoice)
//
// Range and duplicate checks are interleaved per choice, so for a list like
// [2, 2, 0] the duplicate 2 is reported before the out-of-range 0.
func Validate(prefs PreferenceSet, numSlots int) error {
	seenAgents := sets.New[string]()
	for _, agent := range prefs {
		if seenAgents.Has(agent.Name) {
			return &ValidationError{Kind: DuplicateAgent, Agent: agent.Name, NumSlots: numSlots}
		}
		seenAgents.Insert(agent.Name)

		seenChoices := sets.New[int]()
		for _, choice := range agent.Choices {
			if choice < 1 || choice > numSlots {
				return &ValidationError{Kind: ChoiceOutOfRange, Agent: agent.Name, Value: choice, NumSlots: numSlots}
			}
			if seenChoices.Has(choice) {
				return &ValidationError{Kind: DuplicateChoice, Agent: agent.Name, Value: choice, NumSlots: numSlots}
			}
			seenChoices.Insert(choice)
		}
	}
	return nil
}
