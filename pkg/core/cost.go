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
	"math"
)

var (
	// ErrWeightOverflow indicates that a weight does not fit in an int64.
	ErrWeightOverflow = errors.New("weight overflows int64")
	// ErrInvalidCostModel indicates a non-positive multiplier or a negative power.
	ErrInvalidCostModel = errors.New("invalid cost model")
)

// CostModel converts a preference rank into a weight:
//
//	weight = ((numSlots - rank) * Mult) ^ Power
//
// Weights strictly decrease as the rank grows. Mult scales the linear gap between
// consecutive ranks and Power controls convexity: a larger Power makes the solver
// favour granting top choices over merely avoiding bottom ones.
type CostModel struct {
	Mult  int64
	Power int
}

// Weight returns the weight of the choice at the 0-indexed rank. A rank outside
// [0, numSlots) is a programming error and panics.
func (c CostModel) Weight(rank, numSlots int) (int64, error) {
	if c.Mult <= 0 || c.Power < 0 {
		return 0, fmt.Errorf("%w: mult=%d power=%d", ErrInvalidCostModel, c.Mult, c.Power)
	}
	if rank < 0 || rank >= numSlots {
		panic(fmt.Sprintf("core: rank %d out of range [0, %d)", rank, numSlots))
	}
	base, ok := mulInt64(int64(numSlots-rank), c.Mult)
	if !ok {
		return 0, fmt.Errorf("%w: (%d - %d) * %d", ErrWeightOverflow, numSlots, rank, c.Mult)
	}
	weight := int64(1)
	for range c.Power {
		if weight, ok = mulInt64(weight, base); !ok {
			return 0, fmt.Errorf("%w: %d ^ %d", ErrWeightOverflow, base, c.Power)
		}
	}
	return weight, nil
}

// MaxWeight returns the weight of a top choice, the largest weight the model can
// produce for numSlots slots.
func (c CostModel) MaxWeight(numSlots int) (int64, error) {
	if numSlots <= 0 {
		return 0, nil
	}
	return c.Weight(0, numSlots)
}

// mulInt64 multiplies two non-negative values, reporting whether the product fits.
func mulInt64(a, b int64) (int64, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	if a > math.MaxInt64/b {
		return 0, false
	}
	return a * b, true
}
