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

package config

import (
	"errors"
	"fmt"

	"k8s.io/apimachinery/pkg/util/validation/field"
)

// ErrConfiguration indicates that the run configuration cannot be used.
var ErrConfiguration = errors.New("invalid configuration")

// ConfigurationErrorKind enumerates configuration failures.
type ConfigurationErrorKind string

const (
	InvalidMult       ConfigurationErrorKind = "InvalidMult"
	InvalidPower      ConfigurationErrorKind = "InvalidPower"
	InvalidNumSlots   ConfigurationErrorKind = "InvalidNumSlots"
	InvalidOutput     ConfigurationErrorKind = "InvalidOutput"
	InvalidSolver     ConfigurationErrorKind = "InvalidSolver"
	InvalidDelimiter  ConfigurationErrorKind = "InvalidDelimiter"
	InsufficientSlots ConfigurationErrorKind = "InsufficientSlots"
	// WeightOverflow means the cost model cannot represent the weights in an int64.
	WeightOverflow ConfigurationErrorKind = "WeightOverflow"
)

// ConfigurationError reports a configuration value that cannot be used.
type ConfigurationError struct {
	Kind ConfigurationErrorKind
	// Field carries the offending path, value and detail.
	Field *field.Error
}

func newConfigurationError(kind ConfigurationErrorKind, fe *field.Error) *ConfigurationError {
	return &ConfigurationError{Kind: kind, Field: fe}
}

func (e *ConfigurationError) Error() string {
	if e.Field == nil {
		return string(e.Kind)
	}
	return e.Field.Error()
}

// Is reports whether target is ErrConfiguration.
func (e *ConfigurationError) Is(target error) bool {
	return target == ErrConfiguration
}

// NewInsufficientSlotsError reports that numAgents agents cannot each get one of numSlots slots.
func NewInsufficientSlotsError(numSlots, numAgents int) *ConfigurationError {
	return newConfigurationError(InsufficientSlots, field.Invalid(field.NewPath("numSlots"), numSlots,
		fmt.Sprintf("must be at least the number of agents (%d)", numAgents)))
}

// NewWeightOverflowError reports that the cost model produces weights too large to solve.
func NewWeightOverflowError(mult int64, power int, cause error) *ConfigurationError {
	return newConfigurationError(WeightOverflow, field.Invalid(field.NewPath("power"), power,
		fmt.Sprintf("weights with mult %d overflow: %v", mult, cause)))
}

// NewInvalidValueError reports that value, found at path, cannot be used.
func NewInvalidValueError(kind ConfigurationErrorKind, path string, value any, detail string) *ConfigurationError {
	return newConfigurationError(kind, field.Invalid(field.NewPath(path), value, detail))
}
