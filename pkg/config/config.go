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
	"fmt"
	"slices"
	"strings"

	"k8s.io/apimachinery/pkg/util/validation/field"
	"k8s.io/utils/ptr"

	"github.com/samueltardieu/assignments/pkg/core"
)

// Format selects how the report is rendered.
type Format string

const (
	FormatText Format = "text"
	FormatYAML Format = "yaml"
	FormatJSON Format = "json"
)

// Formats lists the supported report formats.
var Formats = []Format{FormatText, FormatYAML, FormatJSON}

// Solver strategy names.
const (
	SolverHungarian  = "hungarian"
	SolverExhaustive = "exhaustive"
)

// Solvers lists the supported solver strategy names.
var Solvers = []string{SolverHungarian, SolverExhaustive}

const (
	DefaultMult      int64 = 4
	DefaultPower           = 1
	DefaultDelimiter       = ','
)

// Config holds every knob of a run. It is built once and never modified afterwards.
type Config struct {
	Mult  int64
	Power int
	// NumSlots is the number of slots; nil means one slot per agent.
	NumSlots  *int
	Verbose   bool
	Output    Format
	Solver    string
	Delimiter rune
}

// Default returns the configuration used when nothing is specified.
func Default() Config {
	return Config{
		Mult:      DefaultMult,
		Power:     DefaultPower,
		Output:    FormatText,
		Solver:    SolverHungarian,
		Delimiter: DefaultDelimiter,
	}
}

// CostModel returns the cost model described by the configuration.
func (c Config) CostModel() core.CostModel {
	return core.CostModel{Mult: c.Mult, Power: c.Power}
}

// Validate checks each configuration value independently of the input.
func (c Config) Validate() error {
	if c.Mult <= 0 {
		return newConfigurationError(InvalidMult, field.Invalid(field.NewPath("mult"), c.Mult, "must be positive"))
	}
	if c.Power < 0 {
		return newConfigurationError(InvalidPower, field.Invalid(field.NewPath("power"), c.Power, "must be non-negative"))
	}
	if c.NumSlots != nil && *c.NumSlots <= 0 {
		return newConfigurationError(InvalidNumSlots, field.Invalid(field.NewPath("numSlots"), *c.NumSlots, "must be positive"))
	}
	if !slices.Contains(Formats, c.Output) {
		return newConfigurationError(InvalidOutput, field.NotSupported(field.NewPath("output"), c.Output, Formats))
	}
	if !slices.Contains(Solvers, c.Solver) {
		return newConfigurationError(InvalidSolver, field.NotSupported(field.NewPath("solver"), c.Solver, Solvers))
	}
	if c.Delimiter == 0 || c.Delimiter == '"' || c.Delimiter == '\r' || c.Delimiter == '\n' {
		return newConfigurationError(InvalidDelimiter, field.Invalid(field.NewPath("delimiter"), string(c.Delimiter), "not a usable field delimiter"))
	}
	return nil
}

// Resolve returns the effective number of slots for numAgents agents and checks that
// every agent can receive a distinct slot.
func (c Config) Resolve(numAgents int) (int, error) {
	numSlots := ptr.Deref(c.NumSlots, numAgents)
	if c.NumSlots != nil && numSlots <= 0 {
		return 0, newConfigurationError(InvalidNumSlots, field.Invalid(field.NewPath("numSlots"), numSlots, "must be positive"))
	}
	if numSlots < numAgents {
		return 0, NewInsufficientSlotsError(numSlots, numAgents)
	}
	return numSlots, nil
}

// String renders the configuration for logs.
func (c Config) String() string {
	slots := "auto"
	if c.NumSlots != nil {
		slots = fmt.Sprint(*c.NumSlots)
	}
	return strings.Join([]string{
		fmt.Sprintf("mult=%d", c.Mult),
		fmt.Sprintf("power=%d", c.Power),
		"numSlots=" + slots,
		fmt.Sprintf("verbose=%t", c.Verbose),
		"output=" + string(c.Output),
		"solver=" + c.Solver,
	}, " ")
}
