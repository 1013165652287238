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
	"errors"
	"fmt"

	"github.com/samueltardieu/assignments/pkg/core"
)

var (
	// ErrShape indicates a matrix with more agents than slots.
	ErrShape = errors.New("more agents than slots")
	// ErrTooLarge indicates an instance too big for exhaustive search.
	ErrTooLarge = errors.New("instance too large for exhaustive search")
)

// Solver computes a maximum-weight assignment of agents (rows) to distinct slots (columns).
type Solver interface {
	// Solve returns the optimal assignment for weights. weights must not be modified
	// while Solve runs.
	Solve(ctx context.Context, weights *core.WeightMatrix) (core.Assignment, error)
}

// Strategy is an enumeration of the available solver algorithms.
type Strategy int

// enumeration of Strategy
const (
	HungarianStrategy Strategy = iota
	ExhaustiveStrategy
)

func (s Strategy) String() string {
	switch s {
	case HungarianStrategy:
		return "hungarian"
	case ExhaustiveStrategy:
		return "exhaustive"
	default:
		return fmt.Sprintf("Strategy(%d)", int(s))
	}
}

// ParseStrategy maps a strategy name to its Strategy.
func ParseStrategy(name string) (Strategy, error) {
	switch name {
	case "hungarian":
		return HungarianStrategy, nil
	case "exhaustive":
		return ExhaustiveStrategy, nil
	default:
		return 0, fmt.Errorf("unsupported solver strategy: %q", name)
	}
}

// NewSolver is a factory that creates a new Solver based on the provided strategy.
func NewSolver(strategy Strategy) (Solver, error) {
	switch strategy {
	case HungarianStrategy:
		return NewHungarian(), nil
	case ExhaustiveStrategy:
		return NewExhaustive(DefaultExhaustiveLimit), nil
	default:
		return nil, fmt.Errorf("unsupported solver strategy: %v", strategy)
	}
}

func checkShape(weights *core.WeightMatrix) error {
	if weights.Rows() > weights.Cols() {
		return fmt.Errorf("%w: %d agents for %d slots", ErrShape, weights.Rows(), weights.Cols())
	}
	return nil
}
