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
	"errors"
	"fmt"
)

// ErrValidation indicates that a preference set is not well-formed.
var ErrValidation = errors.New("invalid preferences")

// ValidationErrorKind enumerates the ways a preference set can be malformed.
type ValidationErrorKind string

const (
	// DuplicateAgent means two agents share the same name.
	DuplicateAgent ValidationErrorKind = "DuplicateAgent"
	// ChoiceOutOfRange means a choice lies outside [1, numSlots].
	ChoiceOutOfRange ValidationErrorKind = "ChoiceOutOfRange"
	// DuplicateChoice means an agent lists the same slot more than once.
	DuplicateChoice ValidationErrorKind = "DuplicateChoice"
)

// ValidationError describes the first violation found in a preference set.
type ValidationError struct {
	Kind ValidationErrorKind
	// Agent is the name of the offending agent.
	Agent string
	// Value is the offending choice; unused for DuplicateAgent.
	Value int
	// NumSlots is the upper bound of the valid choice range.
	NumSlots int
}

func (e *ValidationError) Error() string {
	switch e.Kind {
	case DuplicateAgent:
		return fmt.Sprintf("duplicate agent %q", e.Agent)
	case ChoiceOutOfRange:
		return fmt.Sprintf("%s has made an unacceptable choice: %d (not in [1..%d])", e.Agent, e.Value, e.NumSlots)
	case DuplicateChoice:
		return fmt.Sprintf("%s has a duplicate choice: %d", e.Agent, e.Value)
	default:
		return fmt.Sprintf("%s: invalid preferences (%s)", e.Agent, e.Kind)
	}
}

// Is reports whether target is ErrValidation.
func (e *ValidationError) Is(target error) bool {
	return target == ErrValidation
}
